package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"carousel/internal/config"
	"carousel/internal/logger"
	"carousel/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server for UI consumers",
		Long: `Run an HTTP server exposing the content pipeline and post store.

Endpoints:
  POST /api/generate            run the full pipeline on posted text
  POST /api/caption             build a caption for a title + hashtags
  GET  /api/posts               list posts for the configured owner
  POST /api/posts               create or update a post
  DELETE /api/posts/{id}        delete a post
  POST /api/posts/{id}/schedule schedule a post for a future time
  POST /api/posts/{id}/publish  publish a post`,
		Run: serveRun,
	}

	cmd.Flags().Int("port", 0, "Port to listen on (default from config)")

	return cmd
}

func serveRun(cmd *cobra.Command, args []string) {
	cfg := config.Get()

	serverCfg := cfg.Server
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		serverCfg.Port = port
	}

	posts, closeStore := openStore()
	defer closeStore()

	srv := server.New(posts, serverCfg, cfg.Owner.UserID)

	// Graceful shutdown on SIGINT/SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		logger.Info("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown failed", err)
		}
	}()

	fmt.Printf("🌐 Listening on %s:%d\n", serverCfg.Host, serverCfg.Port)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
