package core

import "testing"

func TestPlatformSize(t *testing.T) {
	tests := []struct {
		platform Platform
		width    int
		height   int
	}{
		{PlatformInstagram, 1080, 1080},
		{PlatformLinkedIn, 1200, 1200},
		{PlatformTikTok, 1080, 1920},
		// Unknown platforms fall back to the Instagram square.
		{Platform("youtube"), 1080, 1080},
		{Platform(""), 1080, 1080},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			size := tt.platform.Size()
			if size.Width != tt.width || size.Height != tt.height {
				t.Errorf("expected %dx%d, got %dx%d", tt.width, tt.height, size.Width, size.Height)
			}
		})
	}
}

func TestPlatformValid(t *testing.T) {
	for _, p := range Platforms() {
		if !p.Valid() {
			t.Errorf("platform %s should be valid", p)
		}
	}
	if Platform("youtube").Valid() {
		t.Error("unknown platform should not be valid")
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input    string
		expected Platform
	}{
		{"instagram", PlatformInstagram},
		{"linkedin", PlatformLinkedIn},
		{"tiktok", PlatformTikTok},
		{"twitter", PlatformInstagram},
		{"", PlatformInstagram},
	}
	for _, tt := range tests {
		if got := ParsePlatform(tt.input); got != tt.expected {
			t.Errorf("ParsePlatform(%q): expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		input    string
		expected Tone
	}{
		{"professional", ToneProfessional},
		{"casual", ToneCasual},
		{"inspirational", ToneInspirational},
		{"sarcastic", ToneProfessional},
		{"", ToneProfessional},
	}
	for _, tt := range tests {
		if got := ParseTone(tt.input); got != tt.expected {
			t.Errorf("ParseTone(%q): expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}
