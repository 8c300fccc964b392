package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"github.com/aetheronum/controlroom/internal/tui/theme"
)

func TestBoxRender(t *testing.T) {
	out := NewBox(theme.Plain).
		WithTitle("SYSTEM LOGS").
		WithContent("line one\nline two").
		WithSize(30, 6).
		Render()

	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("box height = %d, want 6\n%s", len(lines), ansi.Strip(out))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 30 {
			t.Errorf("line %d width = %d, want 30: %q", i, w, l)
		}
	}
	if !strings.Contains(lines[1], "SYSTEM LOGS") {
		t.Errorf("title row = %q", lines[1])
	}
	if !strings.Contains(lines[3], "line two") {
		t.Errorf("content row = %q", lines[3])
	}
}

func TestBoxInnerSize(t *testing.T) {
	b := NewBox(theme.Plain).WithTitle("X").WithSize(20, 10)
	if b.InnerWidth() != 16 || b.InnerHeight() != 7 {
		t.Errorf("inner = %dx%d, want 16x7", b.InnerWidth(), b.InnerHeight())
	}
	b.Title = ""
	if b.InnerHeight() != 8 {
		t.Errorf("untitled inner height = %d", b.InnerHeight())
	}
}

func TestFitToHeight(t *testing.T) {
	tests := []struct {
		content string
		h       int
		want    int
	}{
		{"", 3, 3},
		{"a\nb\nc\nd", 2, 2},
		{"a", 0, 1},
	}
	for _, tt := range tests {
		got := FitToHeight(tt.content, tt.h)
		if n := len(strings.Split(got, "\n")); n != tt.want {
			t.Errorf("FitToHeight(%q, %d) has %d lines, want %d", tt.content, tt.h, n, tt.want)
		}
	}
}

func TestGauge(t *testing.T) {
	out := ansi.Strip(Gauge{Label: "CPU Usage", Value: 50, Unit: "%", Width: 20, Severity: true}.Render(theme.Plain))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("gauge = %q", out)
	}
	if !strings.HasPrefix(lines[0], "CPU Usage") || !strings.HasSuffix(lines[0], "50.0%") {
		t.Errorf("label row = %q", lines[0])
	}
	if lines[1] != strings.Repeat("█", 10)+strings.Repeat("░", 10) {
		t.Errorf("bar = %q", lines[1])
	}
}

func TestRenderHelpBarDropsOverflow(t *testing.T) {
	hints := []KeyHint{{"t", "terminal"}, {"o", "window"}, {"q", "quit"}}
	full := ansi.Strip(RenderHelpBar(theme.Plain, hints, 0))
	for _, h := range hints {
		if !strings.Contains(full, h.Desc) {
			t.Errorf("unbounded bar missing %q: %q", h.Desc, full)
		}
	}

	narrow := ansi.Strip(RenderHelpBar(theme.Plain, hints, 14))
	if ansi.StringWidth(narrow) > 14 {
		t.Errorf("bar exceeds width: %q", narrow)
	}
	if strings.Contains(narrow, "quit") {
		t.Errorf("rightmost hint should be dropped: %q", narrow)
	}
}

func TestHints(t *testing.T) {
	on := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "terminal"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())
	got := Hints(on, off)
	if len(got) != 1 || got[0] != (KeyHint{"t", "terminal"}) {
		t.Errorf("Hints = %+v", got)
	}
}

func TestHelpOverlay(t *testing.T) {
	out := ansi.Strip(HelpOverlay(theme.Plain, "Keyboard Shortcuts", []HelpSection{
		{Title: "Windows", Hints: []KeyHint{{"ctrl+w", "close"}}},
		{Title: "Navigation", Hints: []KeyHint{{"tab", "focus"}}},
	}))
	for _, want := range []string{"Keyboard Shortcuts", "Windows", "ctrl+w", "close", "Navigation", "Esc to close"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}
