package store

import (
	"errors"
	"testing"
	"time"

	"carousel/internal/core"
	"carousel/internal/templates"
)

const testUser = "user-1"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePost(title string) core.CarouselPost {
	return core.CarouselPost{
		Title:    title,
		Platform: core.PlatformInstagram,
		Slides: []core.Slide{
			{ID: "1", Content: "Hook", Type: core.SlideHook, Order: 1,
				SuggestedEmojis: []core.EmojiSuggestion{{Emoji: "🎯", Reason: "General purpose"}},
				SelectedEmoji:   "🎯"},
			{ID: "2", Content: "Body", Type: core.SlideContent, Order: 2},
			{ID: "3", Content: "Save this", Type: core.SlideCTA, Order: 3},
		},
		Caption:  "A caption\n\n#Tips",
		Hashtags: []string{"Tips", "Growth"},
		TemplateSettings: core.TemplateSettings{
			Template: templates.Default(),
			Colors:   templates.DefaultColors(),
			Logo:     "CC",
		},
	}
}

func TestSavePostRequiresUser(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.SavePost(samplePost("x"), ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := s.ListPosts(""); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from list, got %v", err)
	}
	if _, err := s.GetPost("id", ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from get, got %v", err)
	}
	if _, err := s.PublishPost("id", ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from publish, got %v", err)
	}
}

func TestSaveAndGetPost(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SavePost(samplePost("Morning routines"), testUser)
	if err != nil {
		t.Fatalf("failed to save post: %v", err)
	}
	if saved.ID == "" {
		t.Error("saved post should receive an id")
	}
	if saved.Status != core.StatusDraft {
		t.Errorf("new post should default to draft, got %s", saved.Status)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("saved post should carry timestamps")
	}

	got, err := s.GetPost(saved.ID, testUser)
	if err != nil {
		t.Fatalf("failed to get post: %v", err)
	}
	if got.Title != "Morning routines" {
		t.Errorf("title round-trip failed, got %q", got.Title)
	}
	if len(got.Slides) != 3 || got.Slides[0].SelectedEmoji != "🎯" {
		t.Errorf("slides round-trip failed: %+v", got.Slides)
	}
	if len(got.Hashtags) != 2 || got.Hashtags[0] != "Tips" {
		t.Errorf("hashtags round-trip failed: %v", got.Hashtags)
	}
	if got.TemplateSettings.Template.ID != "modern-minimal" {
		t.Errorf("template settings round-trip failed: %+v", got.TemplateSettings)
	}
	if got.ScheduledFor != nil || got.PublishedAt != nil {
		t.Error("draft post should carry no schedule or publish timestamps")
	}
}

func TestGetPostScopedToOwner(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SavePost(samplePost("private"), testUser)
	if err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	if _, err := s.GetPost(saved.ID, "someone-else"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound for foreign owner, got %v", err)
	}
	if _, err := s.GetPost("missing-id", testUser); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound for unknown id, got %v", err)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	s := newTestStore(t)

	first, err := s.SavePost(samplePost("v1"), testUser)
	if err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	update := first
	update.Title = "v2"
	update.CreatedAt = time.Time{}
	second, err := s.SavePost(update, testUser)
	if err != nil {
		t.Fatalf("failed to update post: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("update changed the post id: %s vs %s", second.ID, first.ID)
	}
	if second.CreatedAt.Unix() != first.CreatedAt.Unix() {
		t.Errorf("update lost the creation time: %v vs %v", second.CreatedAt, first.CreatedAt)
	}

	posts, err := s.ListPosts(testUser)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("update should not create a second row, got %d posts", len(posts))
	}
	if posts[0].Title != "v2" {
		t.Errorf("update did not persist, got title %q", posts[0].Title)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SavePost(samplePost("older"), testUser); err != nil {
		t.Fatalf("failed to save post: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := s.SavePost(samplePost("newer"), testUser); err != nil {
		t.Fatalf("failed to save post: %v", err)
	}
	if _, err := s.SavePost(samplePost("foreign"), "someone-else"); err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	posts, err := s.ListPosts(testUser)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts for the owner, got %d", len(posts))
	}
	if posts[0].Title != "newer" || posts[1].Title != "older" {
		t.Errorf("expected newest first, got %q then %q", posts[0].Title, posts[1].Title)
	}
}

func TestDeletePost(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SavePost(samplePost("doomed"), testUser)
	if err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	if err := s.DeletePost(saved.ID); err != nil {
		t.Fatalf("failed to delete post: %v", err)
	}
	if _, err := s.GetPost(saved.ID, testUser); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("deleted post should be gone, got %v", err)
	}
	if err := s.DeletePost(saved.ID); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound for second delete, got %v", err)
	}
}

func TestSchedulePost(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SavePost(samplePost("to schedule"), testUser)
	if err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	if _, err := s.SchedulePost(saved, testUser, time.Now().Add(-time.Hour)); !errors.Is(err, ErrScheduleInPast) {
		t.Errorf("expected ErrScheduleInPast, got %v", err)
	}

	when := time.Now().Add(24 * time.Hour)
	scheduled, err := s.SchedulePost(saved, testUser, when)
	if err != nil {
		t.Fatalf("failed to schedule post: %v", err)
	}
	if scheduled.Status != core.StatusScheduled {
		t.Errorf("expected scheduled status, got %s", scheduled.Status)
	}
	if scheduled.ScheduledFor == nil || scheduled.ScheduledFor.Unix() != when.Unix() {
		t.Errorf("scheduled time not persisted: %v", scheduled.ScheduledFor)
	}

	got, err := s.GetPost(saved.ID, testUser)
	if err != nil {
		t.Fatalf("failed to get scheduled post: %v", err)
	}
	if got.Status != core.StatusScheduled || got.ScheduledFor == nil {
		t.Errorf("schedule did not round-trip: status %s, time %v", got.Status, got.ScheduledFor)
	}
}

func TestPublishPost(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SavePost(samplePost("to publish"), testUser)
	if err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	published, err := s.PublishPost(saved.ID, testUser)
	if err != nil {
		t.Fatalf("failed to publish post: %v", err)
	}
	if published.Status != core.StatusPublished {
		t.Errorf("expected published status, got %s", published.Status)
	}
	if published.PublishedAt == nil {
		t.Error("publish should stamp the publish time")
	}

	if _, err := s.PublishPost("missing-id", testUser); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := s.PublishPost(saved.ID, "someone-else"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("publish must be owner-scoped, got %v", err)
	}
}
