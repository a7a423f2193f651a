package expand

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"carousel/internal/core"
	"carousel/internal/logger"
	"carousel/internal/templates"
)

// ContentType classifies the shape of raw pasted input.
type ContentType string

const (
	TypeBullets   ContentType = "bullets"
	TypeParagraph ContentType = "paragraph"
	TypeTopic     ContentType = "topic"
	TypeThread    ContentType = "thread"
)

// Analysis is the result of classifying raw input.
type Analysis struct {
	IsComplete     bool
	NeedsExpansion bool
	ContentType    ContentType
	Items          []string
}

var (
	numberedMarker = regexp.MustCompile(`^\d+\.`)
	bulletStrip    = regexp.MustCompile(`^[•\-*]\s*`)
	numberedStrip  = regexp.MustCompile(`^\d+\.\s*`)

	hedgeTrailing = regexp.MustCompile(`(?i)\s+(i think|maybe|possibly|could be|might|perhaps|not sure|kinda|sorta|basically)\.?$`)
)

// hedgingPhrases mark a sentence as an unfinished thought.
var hedgingPhrases = []string{
	"i think", "maybe", "possibly", "could be", "might",
	"perhaps", "not sure", "kinda", "sorta", "basically",
}

// IsListItem reports whether a trimmed line carries a bullet or numeric
// list marker.
func IsListItem(line string) bool {
	return strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		numberedMarker.MatchString(line)
}

// StripListMarker removes a leading bullet or numeric marker from a line.
func StripListMarker(line string) string {
	line = bulletStrip.ReplaceAllString(line, "")
	return numberedStrip.ReplaceAllString(line, "")
}

// nonEmptyLines splits input into trimmed, non-empty lines.
func nonEmptyLines(input string) []string {
	var lines []string
	for _, l := range strings.Split(input, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// Classify inspects raw input and decides whether it is already complete
// enough to segment directly or needs expansion first.
func Classify(raw string) Analysis {
	lines := nonEmptyLines(raw)

	if len(lines) == 0 {
		return Analysis{IsComplete: false, NeedsExpansion: true, ContentType: TypeTopic, Items: []string{}}
	}

	hasBullets := false
	for _, l := range lines {
		if IsListItem(l) {
			hasBullets = true
			break
		}
	}

	if hasBullets {
		var bullets []string
		needsExpansion := false
		for _, l := range lines {
			if !IsListItem(l) {
				continue
			}
			item := StripListMarker(l)
			if utf8.RuneCountInString(item) < 30 {
				needsExpansion = true
			}
			bullets = append(bullets, item)
		}
		return Analysis{
			IsComplete:     !needsExpansion,
			NeedsExpansion: needsExpansion,
			ContentType:    TypeBullets,
			Items:          bullets,
		}
	}

	if len(lines) == 1 && utf8.RuneCountInString(lines[0]) < 100 {
		return Analysis{IsComplete: false, NeedsExpansion: true, ContentType: TypeTopic, Items: lines}
	}

	if len(lines) > 3 {
		allShort := true
		someLong := false
		for _, l := range lines {
			n := utf8.RuneCountInString(l)
			if n >= 200 {
				allShort = false
			}
			if n > 100 {
				someLong = true
			}
		}
		if allShort {
			return Analysis{IsComplete: someLong, NeedsExpansion: true, ContentType: TypeThread, Items: lines}
		}
	}

	total := utf8.RuneCountInString(raw)
	return Analysis{
		IsComplete:     total > 200,
		NeedsExpansion: total < 200,
		ContentType:    TypeParagraph,
		Items:          lines,
	}
}

// RemoteExpander is an optional text-generation backend. When configured,
// the Expander delegates to it and falls back to the local template rules
// on failure.
type RemoteExpander interface {
	ExpandContent(ctx context.Context, input string, tone core.Tone, platform core.Platform) (string, error)
}

// Expander rewrites terse or hedging input into fuller prose using
// tone/platform template tables. Template choice is uniformly random, so
// re-running expansion on identical input may yield different text; that is
// expected behavior. Pass a seeded rand to make it deterministic for tests.
type Expander struct {
	rng    *rand.Rand
	remote RemoteExpander
}

// Option configures an Expander.
type Option func(*Expander)

// WithRand supplies the random source used for template selection.
func WithRand(rng *rand.Rand) Option {
	return func(e *Expander) { e.rng = rng }
}

// WithRemote supplies a remote text-generation backend.
func WithRemote(remote RemoteExpander) Option {
	return func(e *Expander) { e.remote = remote }
}

// NewExpander builds an Expander. Without options it uses a time-seeded
// random source and local template expansion only.
func NewExpander(opts ...Option) *Expander {
	e := &Expander{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Expand rewrites each non-empty line of the input and rejoins the results
// with a blank line between them. Lines under 10 characters are replaced by
// a templated sentence; incomplete thoughts get a completion clause
// appended; everything else passes through unchanged.
func (e *Expander) Expand(ctx context.Context, input string, tone core.Tone, platform core.Platform) (string, error) {
	if e.remote != nil {
		expanded, err := e.remote.ExpandContent(ctx, input, tone, platform)
		if err == nil {
			return expanded, nil
		}
		logger.Warn("Remote expansion failed, using local templates", "error", err)
	}
	return e.expandLocal(input, tone, platform), nil
}

func (e *Expander) expandLocal(input string, tone core.Tone, platform core.Platform) string {
	lines := nonEmptyLines(input)
	if len(lines) == 0 {
		return input
	}

	expanded := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case utf8.RuneCountInString(line) < 10:
			expanded = append(expanded, e.expandSimpleIdea(line, tone, platform))
		case isIncomplete(line):
			expanded = append(expanded, e.completeThought(line, tone))
		default:
			expanded = append(expanded, line)
		}
	}

	return strings.Join(expanded, "\n\n")
}

// isIncomplete flags a line containing a hedging phrase, or one that is both
// short and lacking any detail connective.
func isIncomplete(text string) bool {
	textLower := strings.ToLower(text)
	for _, phrase := range hedgingPhrases {
		if strings.Contains(textLower, phrase) {
			return true
		}
	}
	isShort := utf8.RuneCountInString(text) < 50
	lacksDetail := !strings.Contains(text, "because") &&
		!strings.Contains(text, "for example") &&
		!strings.Contains(text, "such as")
	return isShort && lacksDetail
}

func (e *Expander) expandSimpleIdea(idea string, tone core.Tone, platform core.Platform) string {
	options := templates.Expansions(tone, platform)
	return templates.Fill(options[e.rng.Intn(len(options))], idea)
}

func (e *Expander) completeThought(text string, tone core.Tone) string {
	clean := hedgeTrailing.ReplaceAllString(text, "")
	endings := templates.Completions(tone)
	return clean + endings[e.rng.Intn(len(endings))]
}

// EnhanceBullets enriches bullet points shorter than 30 characters with a
// tone-specific context pattern; longer points pass through unchanged.
func (e *Expander) EnhanceBullets(points []string, tone core.Tone) []string {
	enhanced := make([]string, len(points))
	patterns := templates.BulletContexts(tone)
	for i, point := range points {
		if utf8.RuneCountInString(point) < 30 {
			enhanced[i] = templates.Fill(patterns[e.rng.Intn(len(patterns))], point)
		} else {
			enhanced[i] = point
		}
	}
	return enhanced
}
