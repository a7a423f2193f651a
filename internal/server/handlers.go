package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"carousel/internal/caption"
	"carousel/internal/core"
	"carousel/internal/logger"
	"carousel/internal/parser"
	"carousel/internal/store"
)

// GenerateRequest is the payload for POST /api/generate.
type GenerateRequest struct {
	Text       string `json:"text"`
	Platform   string `json:"platform"`
	Tone       string `json:"tone"`
	Variations int    `json:"variations"`
}

// GenerateResponse carries one full pipeline result.
type GenerateResponse struct {
	Slides         []core.Slide     `json:"slides"`
	SuggestedTitle string           `json:"suggested_title"`
	Hashtags       []string         `json:"hashtags"`
	Caption        string           `json:"caption"`
	Variations     []core.Variation `json:"variations,omitempty"`
}

// CaptionRequest is the payload for POST /api/caption.
type CaptionRequest struct {
	Title    string   `json:"title"`
	Hashtags []string `json:"hashtags"`
	Platform string   `json:"platform"`
	Tone     string   `json:"tone"`
}

// ScheduleRequest is the payload for POST /api/posts/{id}/schedule.
type ScheduleRequest struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform := core.ParsePlatform(req.Platform)
	tone := core.ParseTone(req.Tone)

	// The parser holds a random source, so each request gets its own.
	p := parser.New()
	parsed := p.ParseContent(r.Context(), req.Text, platform, tone)

	gen := caption.NewGenerator()
	resp := GenerateResponse{
		Slides:         parsed.Slides,
		SuggestedTitle: parsed.SuggestedTitle,
		Hashtags:       parsed.Hashtags,
		Caption:        gen.GenerateCaption(parsed.SuggestedTitle, parsed.Hashtags, platform, tone),
	}
	if req.Variations > 1 {
		resp.Variations = gen.GenerateVariations(parsed.Slides, req.Variations, tone)
	}

	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCaption(w http.ResponseWriter, r *http.Request) {
	var req CaptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	gen := caption.NewGenerator()
	text := gen.GenerateCaption(req.Title, req.Hashtags, core.ParsePlatform(req.Platform), core.ParseTone(req.Tone))
	s.respondJSON(w, http.StatusOK, map[string]string{"caption": text})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListPosts(s.userID)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	if posts == nil {
		posts = []core.CarouselPost{}
	}
	s.respondJSON(w, http.StatusOK, posts)
}

func (s *Server) handleSavePost(w http.ResponseWriter, r *http.Request) {
	var post core.CarouselPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if post.Title == "" {
		s.respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	saved, err := s.posts.SavePost(post, s.userID)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.DeletePost(chi.URLParam(r, "id")); err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleSchedulePost(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := s.posts.GetPost(chi.URLParam(r, "id"), s.userID)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}

	scheduled, err := s.posts.SchedulePost(post, s.userID, req.ScheduledFor)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, scheduled)
}

func (s *Server) handlePublishPost(w http.ResponseWriter, r *http.Request) {
	published, err := s.posts.PublishPost(chi.URLParam(r, "id"), s.userID)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, published)
}

// respondStoreError maps store sentinel errors to HTTP statuses.
func (s *Server) respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotAuthenticated):
		s.respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, store.ErrPostNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrScheduleInPast):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Store operation failed", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", err)
	}
}
