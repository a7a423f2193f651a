package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"carousel/internal/caption"
	"carousel/internal/config"
	"carousel/internal/core"
	"carousel/internal/expand"
	"carousel/internal/fetch"
	"carousel/internal/llm"
	"carousel/internal/logger"
	"carousel/internal/parser"
	"carousel/internal/store"
	"carousel/internal/templates"
	"carousel/internal/tui"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate a carousel slide-set from text",
		Long: `Generate a carousel from pasted text, a file, or a URL.

The input is classified (bullets, topic, thread, paragraph), expanded when it
is too terse, segmented into 3-10 slides with a hook and a call to action,
and decorated with emoji suggestions, hashtags and a shareable caption.

Examples:
  carousel generate notes.md
  carousel generate - < notes.md
  carousel generate --text "5 tips for better sleep" --tone casual
  carousel generate --url https://example.com/article --platform linkedin
  carousel generate notes.md --variations 3 --save --title "Sleep Tips"`,
		Args: cobra.MaximumNArgs(1),
		Run:  generateRun,
	}

	cmd.Flags().String("text", "", "Raw input text (alternative to a file argument)")
	cmd.Flags().String("url", "", "Fetch input text from a URL")
	cmd.Flags().String("platform", "", "Target platform: instagram, linkedin, tiktok")
	cmd.Flags().String("tone", "", "Copy tone: professional, casual, inspirational")
	cmd.Flags().Int("variations", 1, "Number of slide-set variations to generate (1-3)")
	cmd.Flags().Bool("ai", false, "Use the configured Gemini model for content expansion")
	cmd.Flags().Bool("save", false, "Save the result to the post store as a draft")
	cmd.Flags().String("title", "", "Post title used with --save (defaults to the suggested title)")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.Flags().Bool("preview", false, "Open the interactive slide preview")

	return cmd
}

func generateRun(cmd *cobra.Command, args []string) {
	cfg := config.Get()

	text, _ := cmd.Flags().GetString("text")
	url, _ := cmd.Flags().GetString("url")
	platformFlag, _ := cmd.Flags().GetString("platform")
	toneFlag, _ := cmd.Flags().GetString("tone")
	variationCount, _ := cmd.Flags().GetInt("variations")
	useAI, _ := cmd.Flags().GetBool("ai")
	save, _ := cmd.Flags().GetBool("save")
	title, _ := cmd.Flags().GetString("title")
	asJSON, _ := cmd.Flags().GetBool("json")
	preview, _ := cmd.Flags().GetBool("preview")

	if platformFlag == "" {
		platformFlag = cfg.Defaults.Platform
	}
	if toneFlag == "" {
		toneFlag = cfg.Defaults.Tone
	}
	platform := core.ParsePlatform(platformFlag)
	tone := core.ParseTone(toneFlag)

	input, err := resolveInput(cmd, args, text, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	logger.Info("Generating carousel", "platform", platform, "tone", tone, "input_len", len(input))

	var opts []parser.Option
	if useAI {
		client, err := llm.NewClient(cmd.Context(), cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to initialize AI client: %v\n", err)
			fmt.Fprintf(os.Stderr, "💡 Make sure GEMINI_API_KEY is set in your environment or .env file\n")
			os.Exit(1)
		}
		defer client.Close()
		opts = append(opts, parser.WithExpander(expand.NewExpander(expand.WithRemote(client))))
	}

	p := parser.New(opts...)
	parsed := p.ParseContent(cmd.Context(), input, platform, tone)

	gen := caption.NewGenerator()
	captionText := gen.GenerateCaption(parsed.SuggestedTitle, parsed.Hashtags, platform, tone)

	var variations []core.Variation
	if variationCount > 1 {
		variations = gen.GenerateVariations(parsed.Slides, variationCount, tone)
	}

	if asJSON {
		printJSON(parsed, captionText, variations)
	} else {
		printResult(parsed, captionText, variations, platform)
	}

	if save {
		savePost(cfg, parsed, captionText, platform, title)
	}

	if preview {
		if err := tui.StartPreview(parsed.Slides, platform); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Preview failed: %v\n", err)
			os.Exit(1)
		}
	}
}

// resolveInput picks the input source: --text, --url, a file argument, or
// "-" for stdin.
func resolveInput(cmd *cobra.Command, args []string, text, url string) (string, error) {
	switch {
	case text != "":
		return text, nil
	case url != "":
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return "", fmt.Errorf("invalid URL: must start with http:// or https://")
		}
		return fetch.FetchText(cmd.Context(), url)
	case len(args) == 1:
		return fetch.ReadInput(args[0])
	}
	return "", fmt.Errorf("no input: pass a file argument, --text, or --url")
}

func printJSON(parsed core.ParsedContent, captionText string, variations []core.Variation) {
	out := struct {
		core.ParsedContent
		Caption    string           `json:"caption"`
		Variations []core.Variation `json:"variations,omitempty"`
	}{parsed, captionText, variations}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

func printResult(parsed core.ParsedContent, captionText string, variations []core.Variation, platform core.Platform) {
	if len(parsed.Slides) == 0 {
		fmt.Println("⚠️  No usable content found - nothing to generate.")
		return
	}

	size := platform.Size()
	fmt.Printf("📐 %s (%dx%d) - %d slides\n", platform, size.Width, size.Height, len(parsed.Slides))
	fmt.Printf("📝 Suggested title: %s\n\n", parsed.SuggestedTitle)

	for _, slide := range parsed.Slides {
		fmt.Printf("─── Slide %d [%s] ───\n", slide.Order, slide.Type)
		fmt.Println(slide.Content)
		if len(slide.SuggestedEmojis) > 0 {
			parts := make([]string, len(slide.SuggestedEmojis))
			for i, s := range slide.SuggestedEmojis {
				parts[i] = fmt.Sprintf("%s (%s)", s.Emoji, s.Reason)
			}
			fmt.Printf("   Suggested: %s\n", strings.Join(parts, ", "))
		}
		fmt.Println()
	}

	fmt.Println("💬 Caption:")
	fmt.Println(captionText)

	if len(parsed.Hashtags) > 0 {
		tags := make([]string, len(parsed.Hashtags))
		for i, t := range parsed.Hashtags {
			tags[i] = "#" + t
		}
		fmt.Printf("\n🏷  %s\n", strings.Join(tags, " "))
	}

	// The first variation is always the original, already printed above.
	for _, v := range variations {
		if v.Variant == "Original" {
			continue
		}
		fmt.Printf("\n═══ %s ═══\n", v.Variant)
		for _, slide := range v.Slides {
			if slide.Type == core.SlideContent {
				continue
			}
			fmt.Printf("─── Slide %d [%s] ───\n%s\n", slide.Order, slide.Type, slide.Content)
		}
	}
}

func savePost(cfg *config.Config, parsed core.ParsedContent, captionText string, platform core.Platform, title string) {
	if title == "" {
		title = parsed.SuggestedTitle
	}
	if title == "" {
		fmt.Fprintln(os.Stderr, "❌ A title is required to save; pass --title")
		os.Exit(1)
	}

	posts, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to open post store: %v\n", err)
		os.Exit(1)
	}
	defer posts.Close()

	post := core.CarouselPost{
		Title:    title,
		Platform: platform,
		Status:   core.StatusDraft,
		Slides:   parsed.Slides,
		Caption:  captionText,
		Hashtags: parsed.Hashtags,
		TemplateSettings: core.TemplateSettings{
			Template: templates.ByID(cfg.Defaults.Template),
			Colors:   templates.ColorsByName(cfg.Defaults.Colors),
			Logo:     cfg.Defaults.Logo,
		},
	}

	saved, err := posts.SavePost(post, cfg.Owner.UserID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to save post: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n💾 Saved draft %s\n", saved.ID)
}
