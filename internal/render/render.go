package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"carousel/internal/core"
)

// Deck bundles everything the export layer needs to serialize a slide-set.
type Deck struct {
	Slides   []core.Slide
	Platform core.Platform
	Template core.Template
	Colors   core.ColorPreset
	Logo     string
}

// ExportHTML writes one HTML page per slide into outputDir, named
// carousel-slide-<n>.html (1-based, in slide order), each sized to the
// platform's pixel dimensions. Slides are written sequentially in order.
// It returns the written file paths.
func ExportHTML(deck Deck, outputDir string) ([]string, error) {
	if outputDir == "" {
		outputDir = "exports"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	size := deck.Platform.Size()
	paths := make([]string, 0, len(deck.Slides))
	for i, slide := range deck.Slides {
		filename := fmt.Sprintf("carousel-slide-%d.html", i+1)
		path := filepath.Join(outputDir, filename)
		content := renderSlideHTML(deck, slide, size)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return paths, fmt.Errorf("failed to write slide file %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ExportDeckHTML writes a single multi-page HTML document with one
// platform-sized page per slide in slide order, analogous to a PDF export.
func ExportDeckHTML(deck Deck, outputDir, filename string) (string, error) {
	if outputDir == "" {
		outputDir = "exports"
	}
	if filename == "" {
		filename = "carousel-slides.html"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	size := deck.Platform.Size()
	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString(fmt.Sprintf("<title>Carousel (%s)</title>\n", html.EscapeString(string(deck.Platform))))
	doc.WriteString("<style>\n.slide { page-break-after: always; }\n</style>\n")
	doc.WriteString("</head>\n<body style=\"margin:0\">\n")
	for _, slide := range deck.Slides {
		doc.WriteString(renderSlideBody(deck, slide, size))
		doc.WriteString("\n")
	}
	doc.WriteString("</body>\n</html>\n")

	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, []byte(doc.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write deck file %s: %w", path, err)
	}
	return path, nil
}

// ExportMarkdown writes the slide-set as a readable markdown document, one
// section per slide.
func ExportMarkdown(deck Deck, outputDir, filename string) (string, error) {
	if outputDir == "" {
		outputDir = "exports"
	}
	if filename == "" {
		filename = "carousel-slides.md"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	var md strings.Builder
	md.WriteString(fmt.Sprintf("# Carousel (%s)\n\n", deck.Platform))
	for _, slide := range deck.Slides {
		md.WriteString(fmt.Sprintf("## Slide %d (%s)\n\n", slide.Order, slide.Type))
		if slide.SelectedEmoji != "" {
			md.WriteString(slide.SelectedEmoji + " ")
		}
		md.WriteString(strings.ReplaceAll(slide.Content, "\n", "\n\n"))
		md.WriteString("\n\n---\n\n")
	}

	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, []byte(md.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file %s: %w", path, err)
	}
	return path, nil
}

// renderSlideHTML wraps a slide body in a standalone HTML document.
func renderSlideHTML(deck Deck, slide core.Slide, size core.Size) string {
	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString(fmt.Sprintf("<title>Slide %d</title>\n", slide.Order))
	doc.WriteString("</head>\n<body style=\"margin:0\">\n")
	doc.WriteString(renderSlideBody(deck, slide, size))
	doc.WriteString("\n</body>\n</html>\n")
	return doc.String()
}

// renderSlideBody produces one platform-sized slide element. Each element
// carries a stable data-slide-id marker so downstream capture tooling can
// locate it.
func renderSlideBody(deck Deck, slide core.Slide, size core.Size) string {
	align := "center"
	switch deck.Template.Layout {
	case "left-aligned":
		align = "left"
	case "right-aligned":
		align = "right"
	}

	padding := map[string]int{"tight": 40, "comfortable": 64, "generous": 96}[deck.Template.Spacing]
	if padding == 0 {
		padding = 64
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		`<div class="slide" data-slide-id=%q style="width:%dpx;height:%dpx;background:%s;color:%s;`+
			`display:flex;flex-direction:column;justify-content:center;box-sizing:border-box;`+
			`padding:%dpx;text-align:%s;font-family:'%s',sans-serif">`,
		slide.ID, size.Width, size.Height, deck.Colors.Secondary, deck.Colors.Primary,
		padding, align, deck.Template.Fonts.Body,
	))

	if deck.Logo != "" {
		b.WriteString(fmt.Sprintf(
			`<div style="position:absolute;top:32px;left:32px;color:%s;font-weight:bold">%s</div>`,
			deck.Colors.Accent, html.EscapeString(deck.Logo),
		))
	}

	lines := strings.Split(slide.Content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			b.WriteString("<br>")
			continue
		}
		text := html.EscapeString(line)
		if i == 0 {
			b.WriteString(fmt.Sprintf(
				`<div style="font-family:'%s',sans-serif;font-size:48px;font-weight:bold">%s</div>`,
				deck.Template.Fonts.Heading, text,
			))
		} else {
			b.WriteString(fmt.Sprintf(`<div style="font-size:32px">%s</div>`, text))
		}
	}

	if slide.SelectedEmoji != "" {
		b.WriteString(fmt.Sprintf(`<div style="font-size:64px;margin-top:24px">%s</div>`, slide.SelectedEmoji))
	}

	b.WriteString("</div>")
	return b.String()
}
