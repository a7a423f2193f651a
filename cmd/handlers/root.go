package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"carousel/internal/config"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "carousel",
		Short: "Turn pasted text into a themed multi-slide carousel",
		Long: `Carousel - Content to Slide Pipeline

Turns free-form text into a themed, multi-slide carousel for social
platforms, using deterministic transformation rules.

Core workflows:
  • Generate: paste text (or point at a file/URL) → hook, content and CTA slides
  • Export: render a stored post to per-slide HTML or markdown files
  • Posts: manage drafts, scheduled and published carousels

Examples:
  # Generate a carousel from a file
  carousel generate notes.md --platform instagram --tone casual

  # Generate from a URL and save as a draft
  carousel generate --url https://example.com/article --save --title "My Post"

  # Preview slides in the terminal
  carousel generate notes.md --preview

  # Manage stored posts
  carousel posts list
  carousel posts publish <id>`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .carousel.yaml)")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewPostsCmd())
	rootCmd.AddCommand(NewServeCmd())

	cobra.OnInitialize(initConfig)

	return rootCmd
}

// initConfig reads in the config file and ENV variables.
func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		// Don't exit - allow running with just environment variables
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
