// Package icons holds the single-cell glyphs the control room draws in
// the sidebar and status lines, with an ASCII fallback for terminals that
// cannot render them.
package icons

import (
	"os"
	"strings"
)

// EnvIcons forces a set: "unicode" or "ascii".
const EnvIcons = "CONTROLROOM_ICONS"

// IconSet contains all icons used in the TUI. Every glyph is one cell wide.
type IconSet struct {
	// Navigation
	Pointer string
	Lock    string

	// Status
	Live string
	Dot  string

	// Sections, keyed by navigation id
	Sections map[string]string
}

// Section returns the glyph for a navigation section, or Dot.
func (i IconSet) Section(id string) string {
	if g, ok := i.Sections[id]; ok {
		return g
	}
	return i.Dot
}

// Unicode is the default icon set.
var Unicode = IconSet{
	Pointer: "▸",
	Lock:    "⊘",
	Live:    "●",
	Dot:     "·",
	Sections: map[string]string{
		"dashboard":     "▣",
		"ai":            "◎",
		"quantum":       "⊗",
		"os":            "▤",
		"neuromorphic":  "≋",
		"blockchain":    "⧉",
		"cybersecurity": "◈",
		"symbiosis":     "∞",
		"notebook":      "≡",
		"monitor":       "∿",
	},
}

// ASCII is a minimal fallback for terminals without Unicode
var ASCII = IconSet{
	Pointer: ">",
	Lock:    "x",
	Live:    "*",
	Dot:     ".",
	Sections: map[string]string{
		"dashboard":     "#",
		"ai":            "@",
		"quantum":       "Q",
		"os":            "K",
		"neuromorphic":  "N",
		"blockchain":    "B",
		"cybersecurity": "S",
		"symbiosis":     "&",
		"notebook":      "=",
		"monitor":       "~",
	},
}

// HasUnicode reports whether the locale or terminal suggests UTF-8 output.
func HasUnicode() bool {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if s := strings.ToLower(os.Getenv(v)); s != "" {
			return strings.Contains(s, "utf")
		}
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb" && term != "linux"
}

// Detect returns the icon set for the current terminal. EnvIcons wins
// over locale detection.
func Detect() IconSet {
	switch strings.ToLower(os.Getenv(EnvIcons)) {
	case "ascii":
		return ASCII
	case "unicode":
		return Unicode
	}
	if HasUnicode() {
		return Unicode
	}
	return ASCII
}
