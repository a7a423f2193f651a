package templates

import "carousel/internal/core"

// Catalog is the set of visual templates offered to the consumer. The first
// entry is the default.
var Catalog = []core.Template{
	{
		ID:       "modern-minimal",
		Name:     "Modern Minimal",
		Category: "minimal",
		Fonts:    core.TemplateFonts{Heading: "Inter", Body: "Inter"},
		Layout:   "centered",
		Spacing:  "comfortable",
	},
	{
		ID:       "bold-impact",
		Name:     "Bold Impact",
		Category: "creative",
		Fonts:    core.TemplateFonts{Heading: "Poppins", Body: "Inter"},
		Layout:   "left-aligned",
		Spacing:  "tight",
	},
	{
		ID:       "elegant-pro",
		Name:     "Elegant Professional",
		Category: "professional",
		Fonts:    core.TemplateFonts{Heading: "Playfair Display", Body: "Inter"},
		Layout:   "centered",
		Spacing:  "generous",
	},
	{
		ID:       "vibrant-energy",
		Name:     "Vibrant Energy",
		Category: "creative",
		Fonts:    core.TemplateFonts{Heading: "Montserrat", Body: "Inter"},
		Layout:   "split",
		Spacing:  "comfortable",
	},
	{
		ID:       "clean-corporate",
		Name:     "Clean Corporate",
		Category: "professional",
		Fonts:    core.TemplateFonts{Heading: "Roboto", Body: "Roboto"},
		Layout:   "left-aligned",
		Spacing:  "comfortable",
	},
}

// ColorPresets is the set of color combinations offered to the consumer. The
// first entry is the default.
var ColorPresets = []core.ColorPreset{
	{Name: "Classic", Primary: "#000000", Secondary: "#FFFFFF", Accent: "#3B82F6"},
	{Name: "Sunset", Primary: "#FF6B6B", Secondary: "#FFF5E1", Accent: "#FFB347"},
	{Name: "Ocean", Primary: "#0EA5E9", Secondary: "#F0F9FF", Accent: "#06B6D4"},
	{Name: "Forest", Primary: "#10B981", Secondary: "#F0FDF4", Accent: "#22C55E"},
	{Name: "Royal", Primary: "#1E293B", Secondary: "#F8FAFC", Accent: "#6366F1"},
	{Name: "Coral", Primary: "#F43F5E", Secondary: "#FFF1F2", Accent: "#FB7185"},
}

// Default returns the default visual template.
func Default() core.Template {
	return Catalog[0]
}

// DefaultColors returns the default color preset.
func DefaultColors() core.ColorPreset {
	return ColorPresets[0]
}

// ByID finds a visual template by id, falling back to the default.
func ByID(id string) core.Template {
	for _, t := range Catalog {
		if t.ID == id {
			return t
		}
	}
	return Default()
}

// ColorsByName finds a color preset by name, falling back to the default.
func ColorsByName(name string) core.ColorPreset {
	for _, c := range ColorPresets {
		if c.Name == name {
			return c
		}
	}
	return DefaultColors()
}
