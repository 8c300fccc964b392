package wm

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/aetheronum/controlroom/internal/model"
)

// blockPainter fills each window with its title's first rune.
type blockPainter struct{}

func (blockPainter) Window(w model.WindowState, _ bool) string {
	row := strings.Repeat(w.Title[:1], w.Size.Width)
	rows := make([]string, w.Size.Height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (blockPainter) Chip(c Chip) string { return c.Label }

func win(id string, x, y, w, h int, z int64) model.WindowState {
	return model.WindowState{
		ID:       id,
		Title:    id,
		Position: model.Position{X: x, Y: y},
		Size:     model.Size{Width: w, Height: h},
		ZIndex:   z,
	}
}

func TestComposeHighestStackPaintsLast(t *testing.T) {
	windows := []model.WindowState{
		win("B", 2, 1, 4, 2, 20),
		win("A", 0, 0, 4, 2, 10),
	}
	got := Compose("", windows, 8, 4, blockPainter{})
	want := strings.Join([]string{
		"AAAA    ",
		"AABBBB  ",
		"  BBBB  ",
		"        ",
	}, "\n")
	if got != want {
		t.Errorf("Compose =\n%s\nwant\n%s", got, want)
	}
}

func TestComposeClipsOffscreenWindows(t *testing.T) {
	windows := []model.WindowState{win("X", -2, -1, 4, 3, 1)}
	got := Compose(".....\n.....\n.....", windows, 5, 3, blockPainter{})
	want := strings.Join([]string{
		"XX...",
		"XX...",
		".....",
	}, "\n")
	if got != want {
		t.Errorf("Compose =\n%s\nwant\n%s", got, want)
	}

	windows = []model.WindowState{win("Y", 3, 0, 6, 1, 1)}
	got = Compose("", windows, 5, 1, blockPainter{})
	if got != "   YY" {
		t.Errorf("right clip = %q", got)
	}
}

func TestComposeSkipsMinimizedAndDrawsDock(t *testing.T) {
	hidden := win("Hidden", 0, 0, 6, 2, 5)
	hidden.IsMinimized = true
	got := Compose("", []model.WindowState{hidden}, 20, 3, blockPainter{})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if strings.Contains(lines[0], "H") {
		t.Error("minimized window was painted")
	}
	if !strings.HasPrefix(lines[2], " [ Hidden ]") {
		t.Errorf("dock row = %q", lines[2])
	}
}

func TestComposeOutputSize(t *testing.T) {
	got := Compose("a very long background line that overflows\nshort", nil, 10, 4, blockPainter{})
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}

func TestFrameWindowDimensions(t *testing.T) {
	f := Frame{Content: func(_ model.WindowState, _, _ int) string { return "line one\nline two" }}
	w := win("Neural Network Monitor", 0, 0, 24, 7, 1)
	out := f.Window(w, true)
	lines := strings.Split(out, "\n")
	if len(lines) != w.Size.Height {
		t.Fatalf("height = %d, want %d", len(lines), w.Size.Height)
	}
	for i, l := range lines {
		if got := ansi.StringWidth(l); got != w.Size.Width {
			t.Errorf("row %d width = %d, want %d", i, got, w.Size.Width)
		}
	}
	if !strings.Contains(lines[1], "[_][x]") {
		t.Errorf("title row %q lacks buttons", lines[1])
	}
}

func TestHitTestAreas(t *testing.T) {
	windows := []model.WindowState{
		win("low", 0, 0, 20, 6, 1),
		win("high", 10, 2, 20, 6, 2),
	}
	tests := []struct {
		name string
		x, y int
		want Hit
	}{
		{"low header", 2, 0, Hit{ID: "low", Area: AreaHeader}},
		{"low body", 2, 4, Hit{ID: "low", Area: AreaBody}},
		{"overlap goes to high", 12, 2, Hit{ID: "high", Area: AreaHeader}},
		{"overlap body", 12, 4, Hit{ID: "high", Area: AreaBody}},
		{"high minimize", 10 + 20 - 1 - buttonsWidth, 3, Hit{ID: "high", Area: AreaMinimize}},
		{"high close", 10 + 20 - 1 - buttonWidth, 3, Hit{ID: "high", Area: AreaClose}},
		{"empty", 40, 0, Hit{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(windows, 30, tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDockChipsLayout(t *testing.T) {
	a := win("A", 0, 0, 20, 6, 1)
	b := win("Beta", 0, 0, 20, 6, 2)
	c := win("C", 0, 0, 20, 6, 3)
	a.IsMinimized, c.IsMinimized = true, true

	chips := DockChips([]model.WindowState{a, b, c}, 10)
	if len(chips) != 2 {
		t.Fatalf("got %d chips, want 2", len(chips))
	}
	if chips[0].X != 1 || chips[0].Y != 9 || chips[0].Label != "[ A ]" {
		t.Errorf("first chip = %+v", chips[0])
	}
	if chips[1].X != chips[0].X+chips[0].Width+1 {
		t.Errorf("second chip X = %d", chips[1].X)
	}
}
