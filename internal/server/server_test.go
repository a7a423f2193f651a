package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carousel/internal/config"
	"carousel/internal/core"
	"carousel/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	posts, err := store.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { posts.Close() })
	return New(posts, config.Server{Host: "localhost", Port: 0}, "test-user")
}

func doJSON(t *testing.T, handler http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodGet, "/health", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[map[string]string](t, rec)
	if got["status"] != "ok" {
		t.Errorf("expected ok status, got %v", got)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodPost, "/api/generate", GenerateRequest{
		Text:       "• Automate your test suite so regressions surface early\n• Keep pull requests small and focused on one change",
		Platform:   "linkedin",
		Tone:       "professional",
		Variations: 3,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[GenerateResponse](t, rec)
	if len(got.Slides) != 4 {
		t.Errorf("expected 4 slides, got %d", len(got.Slides))
	}
	if got.Slides[0].Type != core.SlideHook {
		t.Errorf("first slide should be the hook, got %s", got.Slides[0].Type)
	}
	if got.SuggestedTitle == "" || got.Caption == "" {
		t.Error("response should carry a title and caption")
	}
	if len(got.Variations) != 3 || got.Variations[0].Variant != "Original" {
		t.Errorf("expected 3 variations starting with Original, got %v", got.Variations)
	}
}

func TestGenerateEndpointRejectsBadBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestCaptionEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodPost, "/api/caption", CaptionRequest{
		Title:    "Morning routines",
		Hashtags: []string{"Tips"},
		Platform: "instagram",
		Tone:     "casual",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[map[string]string](t, rec)
	if got["caption"] == "" {
		t.Error("expected a non-empty caption")
	}
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	router := s.Router()

	// Empty list before anything is saved.
	rec := doJSON(t, router, http.MethodGet, "/api/posts/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if posts := decode[[]core.CarouselPost](t, rec); len(posts) != 0 {
		t.Errorf("expected empty post list, got %d", len(posts))
	}

	// Save a draft.
	rec = doJSON(t, router, http.MethodPost, "/api/posts/", core.CarouselPost{
		Title:    "Morning routines",
		Platform: core.PlatformInstagram,
		Slides:   []core.Slide{{ID: "1", Content: "Hook", Type: core.SlideHook, Order: 1}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	saved := decode[core.CarouselPost](t, rec)
	if saved.ID == "" || saved.Status != core.StatusDraft {
		t.Fatalf("unexpected saved post: %+v", saved)
	}

	// Schedule it for tomorrow.
	rec = doJSON(t, router, http.MethodPost, "/api/posts/"+saved.ID+"/schedule", ScheduleRequest{
		ScheduledFor: time.Now().Add(24 * time.Hour),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("schedule: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[core.CarouselPost](t, rec); got.Status != core.StatusScheduled {
		t.Errorf("expected scheduled status, got %s", got.Status)
	}

	// Scheduling in the past is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/posts/"+saved.ID+"/schedule", ScheduleRequest{
		ScheduledFor: time.Now().Add(-time.Hour),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for past schedule, got %d", rec.Code)
	}

	// Publish it.
	rec = doJSON(t, router, http.MethodPost, "/api/posts/"+saved.ID+"/publish", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[core.CarouselPost](t, rec); got.Status != core.StatusPublished || got.PublishedAt == nil {
		t.Errorf("unexpected published post: %+v", got)
	}

	// Delete it.
	rec = doJSON(t, router, http.MethodDelete, "/api/posts/"+saved.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodDelete, "/api/posts/"+saved.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting twice, got %d", rec.Code)
	}
}

func TestSavePostRequiresTitle(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodPost, "/api/posts/", core.CarouselPost{Platform: core.PlatformInstagram})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing title, got %d", rec.Code)
	}
}

func TestPublishUnknownPostReturns404(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodPost, "/api/posts/missing-id/publish", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	got := decode[errorResponse](t, rec)
	if got.Error == "" {
		t.Error("error response should carry a message")
	}
}
