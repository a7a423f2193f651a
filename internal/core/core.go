package core

import "time"

// SlideType identifies the role a slide plays within a carousel.
type SlideType string

const (
	SlideHook    SlideType = "hook"    // First slide, captures attention
	SlideContent SlideType = "content" // Body slides
	SlideCTA     SlideType = "cta"     // Final call-to-action slide
)

// Tone selects which copy template table is used throughout the pipeline.
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneInspirational Tone = "inspirational"
)

// Platform is the target social destination. It selects the output pixel
// dimensions and the template table column.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
)

// EmojiSuggestion pairs a candidate emoji with a human-readable reason.
type EmojiSuggestion struct {
	Emoji  string `json:"emoji"`
	Reason string `json:"reason"`
}

// Slide is one unit of carousel output.
type Slide struct {
	ID              string            `json:"id"`                         // Unique within a slide-set, stable across edits
	Content         string            `json:"content"`                    // Text body, may contain embedded line breaks
	Type            SlideType         `json:"type"`                       // Fixed at creation, never changes
	Order           int               `json:"order"`                      // 1-based position, dense and unique
	SuggestedEmojis []EmojiSuggestion `json:"suggested_emojis,omitempty"` // Up to 3, most relevant first
	SelectedEmoji   string            `json:"selected_emoji,omitempty"`   // Defaults to the top suggestion, user-overridable
}

// ParsedContent is the output of content segmentation.
type ParsedContent struct {
	Slides         []Slide  `json:"slides"`
	SuggestedTitle string   `json:"suggested_title"`
	Hashtags       []string `json:"hashtags"`
}

// Variation is an alternate rendering of the same slide-set with one slide's
// copy swapped, for A/B-style comparison. The first variation is always the
// unmodified original labeled "Original".
type Variation struct {
	Slides  []Slide `json:"slides"`
	Variant string  `json:"variant"`
}

// PostStatus is the lifecycle state of a persisted carousel post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
)

// Template holds the visual styling configuration applied when rendering a
// slide-set.
type Template struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category"` // minimal, professional, creative
	Fonts    TemplateFonts `json:"fonts"`
	Layout   string        `json:"layout"`  // centered, left-aligned, right-aligned, split
	Spacing  string        `json:"spacing"` // tight, comfortable, generous
}

// TemplateFonts names the heading and body font families for a Template.
type TemplateFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// ColorPreset is a named primary/secondary/accent color combination.
type ColorPreset struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// TemplateSettings bundles the visual choices stored alongside a post.
type TemplateSettings struct {
	Template Template    `json:"template"`
	Colors   ColorPreset `json:"colors"`
	Logo     string      `json:"logo"`
}

// CarouselPost is the persisted carousel entity owned by the post store.
type CarouselPost struct {
	ID               string           `json:"id,omitempty"`
	Title            string           `json:"title"`
	Platform         Platform         `json:"platform"`
	Status           PostStatus       `json:"status"`
	Slides           []Slide          `json:"slides_data"`
	Caption          string           `json:"caption"`
	Hashtags         []string         `json:"hashtags"`
	TemplateSettings TemplateSettings `json:"template_settings"`
	ScheduledFor     *time.Time       `json:"scheduled_for,omitempty"`
	PublishedAt      *time.Time       `json:"published_at,omitempty"`
	UserID           string           `json:"user_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at,omitempty"`
}

// Size is a pixel dimension pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// platformSizes is the size contract the render and export components depend on.
var platformSizes = map[Platform]Size{
	PlatformInstagram: {Width: 1080, Height: 1080},
	PlatformLinkedIn:  {Width: 1200, Height: 1200},
	PlatformTikTok:    {Width: 1080, Height: 1920},
}

// Size returns the output pixel dimensions for the platform. Unknown
// platforms fall back to the Instagram square, the default column used by
// every template table.
func (p Platform) Size() Size {
	if s, ok := platformSizes[p]; ok {
		return s
	}
	return platformSizes[PlatformInstagram]
}

// Valid reports whether the platform is one of the known destinations.
func (p Platform) Valid() bool {
	_, ok := platformSizes[p]
	return ok
}

// ParsePlatform normalizes a platform string, falling back to Instagram for
// unknown values.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformInstagram, PlatformLinkedIn, PlatformTikTok:
		return Platform(s)
	}
	return PlatformInstagram
}

// ParseTone normalizes a tone string, falling back to professional for
// unknown values.
func ParseTone(s string) Tone {
	switch Tone(s) {
	case ToneProfessional, ToneCasual, ToneInspirational:
		return Tone(s)
	}
	return ToneProfessional
}

// Tones lists every supported tone, in display order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneCasual, ToneInspirational}
}

// Platforms lists every supported platform, in display order.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformLinkedIn, PlatformTikTok}
}
