package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"carousel/internal/config"
	"carousel/internal/render"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [post-id]",
		Short: "Render a stored post to slide files",
		Long: `Render a stored carousel post to export artifacts.

Formats:
  html      one platform-sized HTML page per slide (carousel-slide-<n>.html)
  deck      a single multi-page HTML document, one page per slide
  markdown  a readable markdown document

Examples:
  carousel export 4f8b2c1a-... --format html
  carousel export 4f8b2c1a-... --format markdown --out ./out`,
		Args: cobra.ExactArgs(1),
		Run:  exportRun,
	}

	cmd.Flags().String("format", "", "Export format: html, deck, markdown (default from config)")
	cmd.Flags().String("out", "", "Output directory (default from config)")

	return cmd
}

func exportRun(cmd *cobra.Command, args []string) {
	cfg := config.Get()

	format, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")
	if format == "" {
		format = cfg.Output.Format
	}
	if outDir == "" {
		outDir = cfg.Output.Directory
	}

	posts, closeStore := openStore()
	defer closeStore()

	post, err := posts.GetPost(args[0], cfg.Owner.UserID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if len(post.Slides) == 0 {
		fmt.Fprintln(os.Stderr, "❌ Post has no slides to export")
		os.Exit(1)
	}

	deck := render.Deck{
		Slides:   post.Slides,
		Platform: post.Platform,
		Template: post.TemplateSettings.Template,
		Colors:   post.TemplateSettings.Colors,
		Logo:     post.TemplateSettings.Logo,
	}

	switch format {
	case "html":
		paths, err := render.ExportHTML(deck, outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("🖼  Wrote %d slide files to %s\n", len(paths), outDir)
	case "deck":
		path, err := render.ExportDeckHTML(deck, outDir, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("📄 Wrote deck to %s\n", path)
	case "markdown":
		path, err := render.ExportMarkdown(deck, outDir, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("📄 Wrote markdown to %s\n", path)
	default:
		fmt.Fprintf(os.Stderr, "❌ Unknown format %q (want html, deck, or markdown)\n", format)
		os.Exit(1)
	}
}
