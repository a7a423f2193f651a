package parser

import (
	"context"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"carousel/internal/core"
	"carousel/internal/emoji"
	"carousel/internal/expand"
	"carousel/internal/logger"
	"carousel/internal/templates"
)

const (
	minSlides = 3
	maxSlides = 10

	// titleLimit caps the suggested title derived from the first item.
	titleLimit = 50

	// sentencesPerChunk groups sentences when splitting a long paragraph.
	sentencesPerChunk = 3
)

var (
	sentenceRegex      = regexp.MustCompile(`[^.!?]+[.!?]+`)
	leadingNumberTitle = regexp.MustCompile(`^\d+\s+(.+)`)
)

// Parser turns free-form text into a themed slide-set. One Parser can be
// reused across runs; it is not safe for concurrent use because of its
// random source.
type Parser struct {
	rng      *rand.Rand
	expander *expand.Expander
}

// Option configures a Parser.
type Option func(*Parser)

// WithRand supplies the random source used for template selection. The same
// source is handed to the internal expander unless one is set explicitly.
func WithRand(rng *rand.Rand) Option {
	return func(p *Parser) { p.rng = rng }
}

// WithExpander supplies a pre-built expander, e.g. one backed by a remote
// text-generation service.
func WithExpander(e *expand.Expander) Option {
	return func(p *Parser) { p.expander = e }
}

// New builds a Parser. Without options it uses a time-seeded random source
// and local template expansion.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.expander == nil {
		p.expander = expand.NewExpander(expand.WithRand(p.rng))
	}
	return p
}

// ParseContent runs the full pipeline: classify and possibly expand the
// input, segment it into content items, and assemble a hook slide, content
// slides and a CTA slide with emoji suggestions and hashtags.
//
// No code path returns an error for malformed input; degenerate input
// degrades to an empty slide-set.
func (p *Parser) ParseContent(ctx context.Context, input string, platform core.Platform, tone core.Tone) core.ParsedContent {
	analysis := expand.Classify(input)

	processed := input
	if analysis.NeedsExpansion {
		expanded, err := p.expander.Expand(ctx, input, tone, platform)
		if err == nil {
			processed = expanded
		} else {
			logger.Warn("Expansion failed, segmenting raw input", "error", err)
		}
	}

	lines := splitLines(processed)
	if len(lines) == 0 {
		return core.ParsedContent{
			Slides:         []core.Slide{},
			SuggestedTitle: "Untitled Carousel",
			Hashtags:       []string{},
		}
	}

	var bulletPoints, paragraphs []string
	for _, line := range lines {
		if expand.IsListItem(line) {
			bulletPoints = append(bulletPoints, expand.StripListMarker(line))
		} else {
			paragraphs = append(paragraphs, line)
		}
	}

	var contentItems []string
	switch {
	case len(bulletPoints) > 0:
		contentItems = bulletPoints
	case len(paragraphs) > 1:
		contentItems = paragraphs
	case len(paragraphs) == 1 && utf8.RuneCountInString(paragraphs[0]) > 200:
		sentences := sentenceRegex.FindAllString(paragraphs[0], -1)
		if len(sentences) == 0 {
			sentences = []string{paragraphs[0]}
		}
		contentItems = chunkSentences(sentences, sentencesPerChunk)
	default:
		contentItems = paragraphs
	}

	contentChunks := chunkContent(contentItems, targetContentSlides(len(contentItems)))

	var slides []core.Slide

	firstItem := input
	if len(contentItems) > 0 {
		firstItem = contentItems[0]
	}
	title := deriveTitle(contentItems)
	hookContent := p.buildHook(firstItem, platform, tone)
	slides = append(slides, newSlide(1, hookContent, core.SlideHook))

	for i, chunk := range contentChunks {
		slides = append(slides, newSlide(i+2, chunk, core.SlideContent))
	}

	ctaContent := p.buildCTA(platform, tone)
	slides = append(slides, newSlide(len(contentChunks)+2, ctaContent, core.SlideCTA))

	// Hashtags come from the original raw input, not the expanded text,
	// so template copy cannot skew topic detection.
	hashtags := generateHashtags(input, platform)

	return core.ParsedContent{
		Slides:         slides,
		SuggestedTitle: title,
		Hashtags:       hashtags,
	}
}

// newSlide assembles a slide at the given order with emoji suggestions. The
// top suggestion becomes the default selected emoji.
func newSlide(order int, content string, slideType core.SlideType) core.Slide {
	suggestions := emoji.SuggestForText(content)
	selected := ""
	if len(suggestions) > 0 {
		selected = suggestions[0].Emoji
	}
	return core.Slide{
		ID:              strconv.Itoa(order),
		Content:         content,
		Type:            slideType,
		Order:           order,
		SuggestedEmojis: suggestions,
		SelectedEmoji:   selected,
	}
}

// targetContentSlides clamps the total slide count to [3, 10] and reserves
// one slide for the hook and one for the CTA.
func targetContentSlides(itemCount int) int {
	slideCount := itemCount + 2
	if slideCount < minSlides {
		slideCount = minSlides
	}
	if slideCount > maxSlides {
		slideCount = maxSlides
	}
	return slideCount - 2
}

// deriveTitle caps the first content item at titleLimit runes.
func deriveTitle(items []string) string {
	if len(items) == 0 || items[0] == "" {
		return "Untitled"
	}
	title := items[0]
	if runes := []rune(title); len(runes) > titleLimit {
		title = string(runes[:titleLimit])
	}
	return title
}

// buildHook picks a hook template and fills in the extracted title phrase.
func (p *Parser) buildHook(firstContent string, platform core.Platform, tone core.Tone) string {
	extracted := firstContent
	if m := leadingNumberTitle.FindStringSubmatch(firstContent); m != nil {
		extracted = m[1]
	} else if idx := strings.IndexByte(firstContent, '\n'); idx >= 0 {
		extracted = firstContent[:idx]
	}

	options := templates.Hooks(tone, platform)
	return templates.Fill(options[p.rng.Intn(len(options))], extracted)
}

// buildCTA picks a call-to-action template.
func (p *Parser) buildCTA(platform core.Platform, tone core.Tone) string {
	options := templates.CTAs(tone, platform)
	return options[p.rng.Intn(len(options))]
}

// splitLines returns trimmed non-empty lines.
func splitLines(input string) []string {
	var lines []string
	for _, l := range strings.Split(input, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// chunkSentences groups sentences into chunks of perChunk, joined by spaces.
func chunkSentences(sentences []string, perChunk int) []string {
	var chunks []string
	for i := 0; i < len(sentences); i += perChunk {
		end := i + perChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		chunk := strings.TrimSpace(strings.Join(sentences[i:end], " "))
		chunks = append(chunks, chunk)
	}
	return chunks
}

// chunkContent groups items into at most targetCount chunks. When there are
// more items than slides, items are merged evenly and joined with a blank
// line; otherwise each item keeps its own slide.
func chunkContent(items []string, targetCount int) []string {
	if len(items) <= targetCount {
		return items
	}

	itemsPerChunk := (len(items) + targetCount - 1) / targetCount
	var chunks []string
	for i := 0; i < len(items); i += itemsPerChunk {
		end := i + itemsPerChunk
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, strings.Join(items[i:end], "\n\n"))
	}
	return chunks
}
