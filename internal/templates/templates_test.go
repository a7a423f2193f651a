package templates

import (
	"reflect"
	"strings"
	"testing"

	"carousel/internal/core"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name     string
		template string
		value    string
		expected string
	}{
		{"single placeholder", "Key Insight:\n\n%s", "Morning routines", "Key Insight:\n\nMorning routines"},
		{"no placeholder", "Save this post", "ignored", "Save this post"},
		{"percent in value survives", "Quick take: %s", "we grew 100% last year", "Quick take: we grew 100% last year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fill(tt.template, tt.value); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCopyTablesFullyPopulated(t *testing.T) {
	tables := []struct {
		name   string
		lookup func(core.Tone, core.Platform) []string
		count  int
	}{
		{"hooks", Hooks, 4},
		{"ctas", CTAs, 4},
		{"caption intros", CaptionIntros, 3},
		{"expansions", Expansions, 3},
	}

	for _, table := range tables {
		for _, tone := range core.Tones() {
			for _, platform := range core.Platforms() {
				options := table.lookup(tone, platform)
				if len(options) != table.count {
					t.Errorf("%s[%s][%s]: expected %d options, got %d", table.name, tone, platform, table.count, len(options))
				}
				for i, opt := range options {
					if opt == "" {
						t.Errorf("%s[%s][%s][%d] is empty", table.name, tone, platform, i)
					}
				}
			}
		}
	}
}

func TestHooksEmbedTitle(t *testing.T) {
	for _, tone := range core.Tones() {
		for _, platform := range core.Platforms() {
			for i, hook := range Hooks(tone, platform) {
				if !strings.Contains(hook, "%s") {
					t.Errorf("hooks[%s][%s][%d] misses the title placeholder", tone, platform, i)
				}
			}
		}
	}
}

func TestUnknownPlatformFallsBackToInstagram(t *testing.T) {
	unknown := core.Platform("youtube")
	for _, tone := range core.Tones() {
		if !reflect.DeepEqual(Hooks(tone, unknown), Hooks(tone, core.PlatformInstagram)) {
			t.Errorf("hooks[%s]: unknown platform should use the Instagram column", tone)
		}
		if !reflect.DeepEqual(CTAs(tone, unknown), CTAs(tone, core.PlatformInstagram)) {
			t.Errorf("ctas[%s]: unknown platform should use the Instagram column", tone)
		}
	}
}

func TestUnknownToneFallsBackToProfessional(t *testing.T) {
	unknown := core.Tone("sarcastic")
	if !reflect.DeepEqual(Hooks(unknown, core.PlatformLinkedIn), Hooks(core.ToneProfessional, core.PlatformLinkedIn)) {
		t.Error("unknown tone should use the professional row")
	}
	if Completions(unknown)[0] != Completions(core.ToneProfessional)[0] {
		t.Error("unknown tone completions should use the professional row")
	}
	if HookVariationPrefix(unknown) != HookVariationPrefix(core.ToneProfessional) {
		t.Error("unknown tone hook prefix should use the professional row")
	}
	if CTAVariation(unknown) != CTAVariation(core.ToneProfessional) {
		t.Error("unknown tone CTA variation should use the professional row")
	}
}

func TestCompletionsConcatenateCleanly(t *testing.T) {
	for _, tone := range core.Tones() {
		for i, clause := range Completions(tone) {
			if !strings.HasPrefix(clause, " ") {
				t.Errorf("completions[%s][%d] must start with a space for direct concatenation: %q", tone, i, clause)
			}
		}
	}
}

func TestVisualCatalog(t *testing.T) {
	if len(Catalog) == 0 {
		t.Fatal("empty template catalog")
	}
	seen := make(map[string]bool)
	for _, tmpl := range Catalog {
		if tmpl.ID == "" || tmpl.Name == "" {
			t.Errorf("template %+v missing id or name", tmpl)
		}
		if seen[tmpl.ID] {
			t.Errorf("duplicate template id %s", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}

	if got := ByID("modern-minimal"); got.ID != "modern-minimal" {
		t.Errorf("ByID lookup failed, got %s", got.ID)
	}
	if got := ByID("no-such-template"); got.ID != Default().ID {
		t.Errorf("unknown id should fall back to the default template, got %s", got.ID)
	}

	if got := ColorsByName("Sunset"); got.Name != "Sunset" {
		t.Errorf("ColorsByName lookup failed, got %s", got.Name)
	}
	if got := ColorsByName("no-such-preset"); got.Name != DefaultColors().Name {
		t.Errorf("unknown preset should fall back to the default colors, got %s", got.Name)
	}
}
