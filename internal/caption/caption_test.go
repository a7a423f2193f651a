package caption

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"carousel/internal/core"
	"carousel/internal/templates"
)

func seededGenerator(seed int64) *Generator {
	return NewGenerator(WithRand(rand.New(rand.NewSource(seed))))
}

func fiveSlides() []core.Slide {
	return []core.Slide{
		{ID: "1", Content: "Key Insight:\n\nMorning routines", Type: core.SlideHook, Order: 1,
			SuggestedEmojis: []core.EmojiSuggestion{{Emoji: "💡", Reason: "Matches idea context"}},
			SelectedEmoji:   "💡"},
		{ID: "2", Content: "Wake up at the same time every day", Type: core.SlideContent, Order: 2},
		{ID: "3", Content: "Plan the first hour the night before", Type: core.SlideContent, Order: 3},
		{ID: "4", Content: "Keep your phone out of the bedroom", Type: core.SlideContent, Order: 4},
		{ID: "5", Content: "Found this valuable?\n\nSave for reference", Type: core.SlideCTA, Order: 5},
	}
}

func TestGenerateCaption(t *testing.T) {
	got := seededGenerator(1).GenerateCaption("Morning routines", []string{"Lifestyle", "Tips"}, core.PlatformInstagram, core.ToneCasual)

	if !strings.Contains(got, "Morning routines") {
		t.Errorf("caption should embed the title, got %q", got)
	}
	if !strings.HasSuffix(got, "\n\n#Lifestyle #Tips") {
		t.Errorf("caption should end with space-joined hashtags, got %q", got)
	}

	intro := strings.TrimSuffix(got, "\n\n#Lifestyle #Tips")
	found := false
	for _, opt := range templates.CaptionIntros(core.ToneCasual, core.PlatformInstagram) {
		if intro == templates.Fill(opt, "Morning routines") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("caption intro %q does not match any template", intro)
	}
}

func TestGenerateCaptionNoHashtags(t *testing.T) {
	got := seededGenerator(1).GenerateCaption("A title", nil, core.PlatformLinkedIn, core.ToneProfessional)
	if !strings.Contains(got, "A title") {
		t.Errorf("caption should embed the title, got %q", got)
	}
	if strings.Contains(got, "#") {
		t.Errorf("caption without hashtags should carry no # tokens, got %q", got)
	}
}

func TestGenerateVariations(t *testing.T) {
	slides := fiveSlides()
	got := seededGenerator(1).GenerateVariations(slides, 3, core.ToneProfessional)

	if len(got) != 3 {
		t.Fatalf("expected 3 variations, got %d", len(got))
	}

	if got[0].Variant != "Original" {
		t.Errorf("first variation must be Original, got %q", got[0].Variant)
	}
	if !reflect.DeepEqual(got[0].Slides, slides) {
		t.Errorf("Original variation must match the input slide-set")
	}

	if got[1].Variant != "Hook Variation" {
		t.Errorf("second variation should be the hook rewrite, got %q", got[1].Variant)
	}
	wantHook := "Critical Alert:\n\nMorning routines"
	if got[1].Slides[0].Content != wantHook {
		t.Errorf("hook rewrite: expected %q, got %q", wantHook, got[1].Slides[0].Content)
	}
	for i := 1; i < len(slides); i++ {
		if got[1].Slides[i].Content != slides[i].Content {
			t.Errorf("hook variation altered slide %d", i+1)
		}
	}

	if got[2].Variant != "CTA Variation" {
		t.Errorf("third variation should be the CTA rewrite, got %q", got[2].Variant)
	}
	if got[2].Slides[4].Content != templates.CTAVariation(core.ToneProfessional) {
		t.Errorf("CTA rewrite: got %q", got[2].Slides[4].Content)
	}
	for i := 0; i < len(slides)-1; i++ {
		if got[2].Slides[i].Content != slides[i].Content {
			t.Errorf("CTA variation altered slide %d", i+1)
		}
	}

	// Ids, orders and types never change across variations.
	for _, v := range got {
		for i, s := range v.Slides {
			if s.ID != slides[i].ID || s.Order != slides[i].Order || s.Type != slides[i].Type {
				t.Errorf("%s: slide %d identity changed", v.Variant, i+1)
			}
		}
	}
}

func TestGenerateVariationsCounts(t *testing.T) {
	slides := fiveSlides()
	tests := []struct {
		name     string
		slides   []core.Slide
		count    int
		expected []string
	}{
		{"single", slides, 1, []string{"Original"}},
		{"two", slides, 2, []string{"Original", "Hook Variation"}},
		{"more than available", slides, 10, []string{"Original", "Hook Variation", "CTA Variation"}},
		{"zero", slides, 0, []string{}},
		{"negative", slides, -1, []string{}},
		{"too few slides", slides[:2], 3, []string{"Original"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seededGenerator(1).GenerateVariations(tt.slides, tt.count, core.ToneCasual)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d variations, got %d", len(tt.expected), len(got))
			}
			for i, v := range got {
				if v.Variant != tt.expected[i] {
					t.Errorf("variation %d: expected %q, got %q", i, tt.expected[i], v.Variant)
				}
			}
		})
	}
}

func TestGenerateVariationsDeepCopies(t *testing.T) {
	slides := fiveSlides()
	got := seededGenerator(1).GenerateVariations(slides, 3, core.ToneCasual)

	got[0].Slides[0].SuggestedEmojis[0].Emoji = "❌"
	if slides[0].SuggestedEmojis[0].Emoji != "💡" {
		t.Errorf("mutating a variation leaked into the original slide-set")
	}
}
