package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"carousel/internal/config"
	"carousel/internal/logger"
	"carousel/internal/store"
)

// Server exposes the content pipeline and post store as a JSON API for a UI
// layer.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	posts      *store.Store
	config     config.Server
	userID     string
}

// New creates a new HTTP server instance. The userID is the owner identity
// stamped on every post store operation.
func New(posts *store.Store, cfg config.Server, userID string) *Server {
	s := &Server{
		router: chi.NewRouter(),
		posts:  posts,
		config: cfg,
		userID: userID,
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	if s.config.CORSEnabled {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/caption", s.handleCaption)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", s.handleListPosts)
			r.Post("/", s.handleSavePost)
			r.Delete("/{id}", s.handleDeletePost)
			r.Post("/{id}/schedule", s.handleSchedulePost)
			r.Post("/{id}/publish", s.handlePublishPost)
		})
	})
}

// Start begins listening. It blocks until the server stops.
func (s *Server) Start() error {
	logger.Info("Starting server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the route tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
