package caption

import (
	"math/rand"
	"strings"
	"time"

	"carousel/internal/core"
	"carousel/internal/templates"
)

// Generator builds shareable captions and alternate slide-sets for
// side-by-side comparison. Template choice is uniformly random; pass a
// seeded rand for deterministic output in tests.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand supplies the random source used for template selection.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// NewGenerator builds a Generator, time-seeded by default.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// GenerateCaption picks a tone/platform intro embedding the title and
// appends the hashtags as space-joined #tag tokens.
func (g *Generator) GenerateCaption(title string, hashtags []string, platform core.Platform, tone core.Tone) string {
	options := templates.CaptionIntros(tone, platform)
	intro := templates.Fill(options[g.rng.Intn(len(options))], title)

	tags := make([]string, len(hashtags))
	for i, tag := range hashtags {
		tags[i] = "#" + tag
	}

	return intro + "\n\n" + strings.Join(tags, " ")
}

// GenerateVariations returns up to count alternate slide-sets. The first is
// always the unmodified original labeled "Original"; with more than 2 slides
// a "Hook Variation" and a "CTA Variation" follow, each replacing exactly
// one slide's content. Slide ids, orders and types are never altered.
func (g *Generator) GenerateVariations(slides []core.Slide, count int, tone core.Tone) []core.Variation {
	var variations []core.Variation

	variations = append(variations, core.Variation{
		Slides:  copySlides(slides),
		Variant: "Original",
	})

	if count > 1 && len(slides) > 2 {
		hookVariation := copySlides(slides)
		hookVariation[0].Content = rewriteHook(hookVariation[0].Content, tone)
		variations = append(variations, core.Variation{
			Slides:  hookVariation,
			Variant: "Hook Variation",
		})
	}

	if count > 2 && len(slides) > 2 {
		ctaVariation := copySlides(slides)
		ctaVariation[len(ctaVariation)-1].Content = templates.CTAVariation(tone)
		variations = append(variations, core.Variation{
			Slides:  ctaVariation,
			Variant: "CTA Variation",
		})
	}

	if count < 0 {
		count = 0
	}
	if len(variations) > count {
		variations = variations[:count]
	}
	return variations
}

// rewriteHook swaps the leading title line of a hook slide for the tone
// prefix and keeps the rest of the content. A blank line following the
// dropped title line is dropped with it.
func rewriteHook(content string, tone core.Tone) string {
	lines := strings.Split(content, "\n")
	rest := lines
	if len(rest) > 0 {
		rest = rest[1:]
	}
	if len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	return templates.HookVariationPrefix(tone) + "\n\n" + strings.Join(rest, "\n")
}

// copySlides deep-copies a slide-set so variations never share suggestion
// slices with the original.
func copySlides(slides []core.Slide) []core.Slide {
	copied := make([]core.Slide, len(slides))
	for i, s := range slides {
		copied[i] = s
		if s.SuggestedEmojis != nil {
			copied[i].SuggestedEmojis = append([]core.EmojiSuggestion(nil), s.SuggestedEmojis...)
		}
	}
	return copied
}
