package theme

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is a color palette. Backgrounds run Crust (darkest) through
// Surface2; text runs Text, Subtext, Overlay from bright to dim.
type Theme struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Crust    lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Surface2 lipgloss.Color

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Overlay lipgloss.Color

	Rosewater lipgloss.Color
	Flamingo  lipgloss.Color
	Pink      lipgloss.Color
	Mauve     lipgloss.Color
	Red       lipgloss.Color
	Maroon    lipgloss.Color
	Peach     lipgloss.Color
	Yellow    lipgloss.Color
	Green     lipgloss.Color
	Teal      lipgloss.Color
	Sky       lipgloss.Color
	Sapphire  lipgloss.Color
	Blue      lipgloss.Color
	Lavender  lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Critical marks critical priority and saturated gauges. Accent is
	// the console prompt and the focused window border.
	Critical lipgloss.Color
	Accent   lipgloss.Color
}

// CatppuccinMocha is the default dark palette.
var CatppuccinMocha = Theme{
	// Base colors
	Base:     lipgloss.Color("#1e1e2e"),
	Mantle:   lipgloss.Color("#181825"),
	Crust:    lipgloss.Color("#11111b"),
	Surface0: lipgloss.Color("#313244"),
	Surface1: lipgloss.Color("#45475a"),
	Surface2: lipgloss.Color("#585b70"),

	// Text colors
	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Overlay: lipgloss.Color("#6c7086"),

	// Accent colors
	Rosewater: lipgloss.Color("#f5e0dc"),
	Flamingo:  lipgloss.Color("#f2cdcd"),
	Pink:      lipgloss.Color("#f5c2e7"),
	Mauve:     lipgloss.Color("#cba6f7"),
	Red:       lipgloss.Color("#f38ba8"),
	Maroon:    lipgloss.Color("#eba0ac"),
	Peach:     lipgloss.Color("#fab387"),
	Yellow:    lipgloss.Color("#f9e2af"),
	Green:     lipgloss.Color("#a6e3a1"),
	Teal:      lipgloss.Color("#94e2d5"),
	Sky:       lipgloss.Color("#89dceb"),
	Sapphire:  lipgloss.Color("#74c7ec"),
	Blue:      lipgloss.Color("#89b4fa"),
	Lavender:  lipgloss.Color("#b4befe"),

	// Semantic colors
	Primary:   lipgloss.Color("#89b4fa"), // Blue
	Secondary: lipgloss.Color("#cba6f7"), // Mauve
	Success:   lipgloss.Color("#a6e3a1"), // Green
	Warning:   lipgloss.Color("#f9e2af"), // Yellow
	Error:     lipgloss.Color("#f38ba8"), // Red
	Info:      lipgloss.Color("#89dceb"), // Sky

	// Lab colors
	Critical: lipgloss.Color("#eba0ac"), // Maroon
	Accent:   lipgloss.Color("#94e2d5"), // Teal
}

// CatppuccinMacchiato is a softer dark palette.
var CatppuccinMacchiato = Theme{
	Base:     lipgloss.Color("#24273a"),
	Mantle:   lipgloss.Color("#1e2030"),
	Crust:    lipgloss.Color("#181926"),
	Surface0: lipgloss.Color("#363a4f"),
	Surface1: lipgloss.Color("#494d64"),
	Surface2: lipgloss.Color("#5b6078"),

	Text:    lipgloss.Color("#cad3f5"),
	Subtext: lipgloss.Color("#a5adcb"),
	Overlay: lipgloss.Color("#6e738d"),

	Rosewater: lipgloss.Color("#f4dbd6"),
	Flamingo:  lipgloss.Color("#f0c6c6"),
	Pink:      lipgloss.Color("#f5bde6"),
	Mauve:     lipgloss.Color("#c6a0f6"),
	Red:       lipgloss.Color("#ed8796"),
	Maroon:    lipgloss.Color("#ee99a0"),
	Peach:     lipgloss.Color("#f5a97f"),
	Yellow:    lipgloss.Color("#eed49f"),
	Green:     lipgloss.Color("#a6da95"),
	Teal:      lipgloss.Color("#8bd5ca"),
	Sky:       lipgloss.Color("#91d7e3"),
	Sapphire:  lipgloss.Color("#7dc4e4"),
	Blue:      lipgloss.Color("#8aadf4"),
	Lavender:  lipgloss.Color("#b7bdf8"),

	Primary:   lipgloss.Color("#8aadf4"),
	Secondary: lipgloss.Color("#c6a0f6"),
	Success:   lipgloss.Color("#a6da95"),
	Warning:   lipgloss.Color("#eed49f"),
	Error:     lipgloss.Color("#ed8796"),
	Info:      lipgloss.Color("#91d7e3"),

	Critical: lipgloss.Color("#ee99a0"),
	Accent:   lipgloss.Color("#8bd5ca"),
}

// CatppuccinLatte is chosen on light terminal backgrounds.
var CatppuccinLatte = Theme{
	Base:     lipgloss.Color("#eff1f5"),
	Mantle:   lipgloss.Color("#e6e9ef"),
	Crust:    lipgloss.Color("#dce0e8"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Surface2: lipgloss.Color("#acb0be"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Overlay: lipgloss.Color("#7c7f93"),

	Rosewater: lipgloss.Color("#dc8a78"),
	Flamingo:  lipgloss.Color("#dd7878"),
	Pink:      lipgloss.Color("#ea76cb"),
	Mauve:     lipgloss.Color("#8839ef"),
	Red:       lipgloss.Color("#d20f39"),
	Maroon:    lipgloss.Color("#e64553"),
	Peach:     lipgloss.Color("#fe640b"),
	Yellow:    lipgloss.Color("#df8e1d"),
	Green:     lipgloss.Color("#40a02b"),
	Teal:      lipgloss.Color("#179299"),
	Sky:       lipgloss.Color("#04a5e5"),
	Sapphire:  lipgloss.Color("#209fb5"),
	Blue:      lipgloss.Color("#1e66f5"),
	Lavender:  lipgloss.Color("#7287fd"),

	Primary:   lipgloss.Color("#1e66f5"),
	Secondary: lipgloss.Color("#8839ef"),
	Success:   lipgloss.Color("#40a02b"),
	Warning:   lipgloss.Color("#df8e1d"),
	Error:     lipgloss.Color("#d20f39"),
	Info:      lipgloss.Color("#04a5e5"),

	Critical: lipgloss.Color("#e64553"),
	Accent:   lipgloss.Color("#179299"),
}

// Plain leaves every color empty so the terminal defaults apply. It is
// selected by NO_COLOR.
var Plain = Theme{}

// Nord is the arctic blue palette.
var Nord = Theme{
	Base:     lipgloss.Color("#2e3440"),
	Mantle:   lipgloss.Color("#272c36"),
	Crust:    lipgloss.Color("#21262e"),
	Surface0: lipgloss.Color("#3b4252"),
	Surface1: lipgloss.Color("#434c5e"),
	Surface2: lipgloss.Color("#4c566a"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Overlay: lipgloss.Color("#7b88a1"),

	Rosewater: lipgloss.Color("#d8dee9"),
	Flamingo:  lipgloss.Color("#d08770"),
	Pink:      lipgloss.Color("#b48ead"),
	Mauve:     lipgloss.Color("#b48ead"),
	Red:       lipgloss.Color("#bf616a"),
	Maroon:    lipgloss.Color("#d08770"),
	Peach:     lipgloss.Color("#d08770"),
	Yellow:    lipgloss.Color("#ebcb8b"),
	Green:     lipgloss.Color("#a3be8c"),
	Teal:      lipgloss.Color("#8fbcbb"),
	Sky:       lipgloss.Color("#88c0d0"),
	Sapphire:  lipgloss.Color("#81a1c1"),
	Blue:      lipgloss.Color("#5e81ac"),
	Lavender:  lipgloss.Color("#b48ead"),

	Primary:   lipgloss.Color("#88c0d0"),
	Secondary: lipgloss.Color("#b48ead"),
	Success:   lipgloss.Color("#a3be8c"),
	Warning:   lipgloss.Color("#ebcb8b"),
	Error:     lipgloss.Color("#bf616a"),
	Info:      lipgloss.Color("#81a1c1"),

	Critical: lipgloss.Color("#d08770"),
	Accent:   lipgloss.Color("#8fbcbb"),
}

// Environment overrides.
const (
	EnvTheme   = "CONTROLROOM_THEME"
	EnvNoColor = "CONTROLROOM_NO_COLOR"
)

// NoColorEnabled reports whether color output is disabled. NO_COLOR
// (any value) disables color; CONTROLROOM_NO_COLOR forces it either way.
func NoColorEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvNoColor))) {
	case "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on":
		return true
	}
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// FromName resolves a theme name. Unknown names and "auto" detect the
// terminal background.
func FromName(name string) Theme {
	if NoColorEnabled() {
		return Plain
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "none", "no-color", "nocolor":
		return Plain
	case "mocha", "dark":
		return CatppuccinMocha
	case "macchiato":
		return CatppuccinMacchiato
	case "latte", "light":
		return CatppuccinLatte
	case "nord":
		return Nord
	default:
		return autoTheme()
	}
}

// Resolve picks the theme for a configured name. CONTROLROOM_THEME wins
// over the config value.
func Resolve(configured string) Theme {
	if env := os.Getenv(EnvTheme); env != "" {
		return FromName(env)
	}
	return FromName(configured)
}

// Current returns the theme selected by the environment alone.
func Current() Theme {
	return Resolve("")
}

// IsDark reports whether t is meant for a dark background.
func (t Theme) IsDark() bool {
	return t != CatppuccinLatte
}

// GlamourStyle names the glamour standard style matching t.
func (t Theme) GlamourStyle() string {
	switch {
	case t == Plain:
		return "notty"
	case t.IsDark():
		return "dark"
	default:
		return "light"
	}
}

// detectDarkBackground is a variable so tests can stub terminal detection.
var detectDarkBackground = func() bool {
	return termenv.NewOutput(os.Stdout).HasDarkBackground()
}

var (
	cachedAutoTheme Theme
	autoThemeOnce   sync.Once
)

func resetAutoTheme() {
	autoThemeOnce = sync.Once{}
	cachedAutoTheme = Theme{}
}

func autoTheme() Theme {
	autoThemeOnce.Do(func() {
		cachedAutoTheme = CatppuccinMocha
		defer func() {
			if recover() != nil {
				cachedAutoTheme = CatppuccinMocha
			}
		}()
		if !detectDarkBackground() {
			cachedAutoTheme = CatppuccinLatte
		}
	})
	return cachedAutoTheme
}

// Styles are the shared chrome styles: sidebar, header, footer and
// window frames. Panels style their own content.
type Styles struct {
	Strong  lipgloss.Style
	Muted   lipgloss.Style
	Dim     lipgloss.Style
	Brand   lipgloss.Style
	Live    lipgloss.Style
	Alert   lipgloss.Style
	Notice  lipgloss.Style
	Pointer lipgloss.Style

	Selected lipgloss.Style
	Blocked  lipgloss.Style
	Toggle   lipgloss.Style
	Rule     lipgloss.Style

	WindowTitle  lipgloss.Style
	WindowButton lipgloss.Style
	DockChip     lipgloss.Style
}

// NewStyles builds Styles from a theme.
func NewStyles(t Theme) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	s := Styles{
		Strong:  fg(t.Text).Bold(true),
		Muted:   fg(t.Subtext),
		Dim:     fg(t.Overlay),
		Brand:   fg(t.Primary).Bold(true),
		Live:    fg(t.Success),
		Alert:   fg(t.Error),
		Notice:  fg(t.Error).Bold(true),
		Pointer: fg(t.Primary),

		Selected: fg(t.Primary).Bold(true),
		Blocked:  fg(t.Overlay).Faint(true),
		Toggle:   fg(t.Accent).Bold(true),
		Rule:     fg(t.Surface1),

		WindowTitle:  fg(t.Text).Bold(true),
		WindowButton: fg(t.Overlay),
		DockChip:     fg(t.Text).Background(t.Surface1),
	}

	// Without color, selection and alarms must not depend on shading.
	if t == Plain {
		s.Selected = s.Selected.Underline(true)
		s.Notice = s.Notice.Underline(true)
		s.DockChip = lipgloss.NewStyle().Reverse(true)
	}
	return s
}

// Gradient returns steps colors cycling blue through pink.
func (t Theme) Gradient(steps int) []lipgloss.Color {
	colors := []lipgloss.Color{t.Blue, t.Sapphire, t.Lavender, t.Mauve, t.Pink}
	if steps <= len(colors) {
		return colors[:max(steps, 0)]
	}
	out := make([]lipgloss.Color, steps)
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}
