package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

func TestLevelColor(t *testing.T) {
	th := theme.CatppuccinMocha
	tests := []struct {
		level model.LogLevel
		want  string
	}{
		{model.LevelInfo, string(th.Info)},
		{model.LevelWarning, string(th.Warning)},
		{model.LevelError, string(th.Error)},
		{model.LevelCritical, string(th.Critical)},
	}
	for _, tt := range tests {
		if got := LevelColor(th, tt.level); string(got) != tt.want {
			t.Errorf("LevelColor(%s) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestPriorityAndStatusColor(t *testing.T) {
	th := theme.CatppuccinMocha
	if got := PriorityColor(th, model.PriorityCritical); got != th.Critical {
		t.Errorf("critical = %s", got)
	}
	if got := PriorityColor(th, model.PriorityLow); got != th.Green {
		t.Errorf("low = %s", got)
	}
	if got := StatusColor(th, model.ProjectCompleted); got != th.Blue {
		t.Errorf("completed = %s", got)
	}
	if got := StatusColor(th, model.ProjectArchived); got != th.Overlay {
		t.Errorf("archived = %s", got)
	}
}

func TestUsageColor(t *testing.T) {
	th := theme.CatppuccinMocha
	tests := []struct {
		pct  float64
		want string
	}{
		{45, string(th.Success)},
		{60, string(th.Success)},
		{60.1, string(th.Warning)},
		{80, string(th.Warning)},
		{85, string(th.Error)},
	}
	for _, tt := range tests {
		if got := UsageColor(th, tt.pct); string(got) != tt.want {
			t.Errorf("UsageColor(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestParseHexAndLerp(t *testing.T) {
	a := ParseHex("#000000")
	b := ParseHex("#ff8040")
	if b != (Color{255, 128, 64}) {
		t.Fatalf("ParseHex = %+v", b)
	}
	if got := Lerp(a, b, 0.5).Hex(); got != "#7f4020" {
		t.Errorf("Lerp midpoint = %s", got)
	}
	if got := ParseHex("blue"); got != (Color{}) {
		t.Errorf("ParseHex(blue) = %+v, want black", got)
	}
}

func TestGradientText(t *testing.T) {
	out := GradientText("LAB", "#ff0000", "#0000ff")
	if ansi.Strip(out) != "LAB" {
		t.Errorf("stripped gradient = %q", ansi.Strip(out))
	}
	if !strings.HasPrefix(out, "\x1b[38;2;255;0;0m") {
		t.Errorf("first rune should use the first stop: %q", out)
	}
	if got := GradientText("LAB", "", ""); got != "LAB" {
		t.Errorf("empty stops = %q, want plain text", got)
	}
}

func TestProgressBar(t *testing.T) {
	th := theme.Plain
	tests := []struct {
		pct   float64
		width int
		want  string
	}{
		{0.5, 10, "█████░░░░░"},
		{-1, 4, "░░░░"},
		{2, 4, "████"},
		{0.5, 0, ""},
	}
	for _, tt := range tests {
		if got := ansi.Strip(ProgressBar(th, tt.pct, tt.width)); got != tt.want {
			t.Errorf("ProgressBar(%v, %d) = %q, want %q", tt.pct, tt.width, got, tt.want)
		}
	}
	if got := ansi.StringWidth(ProgressBar(theme.CatppuccinMocha, 0.3, 12, "#89b4fa", "#a6e3a1")); got != 12 {
		t.Errorf("gradient bar width = %d", got)
	}
}
