package catalog

import (
	"regexp"
	"strings"
)

// ColorTable maps product display names to their selectable color options.
// Only cosmetic/tinted products have entries; everything else resolves to an
// empty list.
type ColorTable struct {
	colorsByName map[string][]string
}

// NewColorTable creates the built-in color table
func NewColorTable() *ColorTable {
	byName := make(map[string][]string, len(defaultColors))
	for name, colors := range defaultColors {
		byName[normalizeName(name)] = colors
	}
	return &ColorTable{colorsByName: byName}
}

// ColorsFor returns the ordered color names for a display name, or nil when
// the product is not tinted.
func (t *ColorTable) ColorsFor(displayName string) []string {
	return t.colorsByName[normalizeName(displayName)]
}

var nameSeparatorRegex = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeName(name string) string {
	cleaned := strings.ToLower(name)
	cleaned = nameSeparatorRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

var defaultColors = map[string][]string{
	"Colors": {
		"Pure Hazel", "Brilliant Blue", "Gemstone Green", "Honey",
		"Sterling Gray", "Brown", "Green", "Blue", "Amethyst", "True Sapphire",
	},
	"Colorblends": {
		"Amethyst", "Blue", "Brilliant Blue", "Brown", "Gray", "Green",
		"Honey", "Pure Hazel", "Sterling Gray", "True Sapphire", "Turquoise",
	},
	"Define 1-Day": {
		"Natural Shimmer", "Natural Sparkle", "Natural Shine", "Radiant Bright",
	},
}
