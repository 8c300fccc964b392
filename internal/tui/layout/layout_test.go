package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTierForWidth(t *testing.T) {
	tests := []struct {
		width int
		want  Tier
	}{
		{0, TierNarrow},
		{79, TierNarrow},
		{80, TierSplit},
		{119, TierSplit},
		{120, TierWide},
		{159, TierWide},
		{160, TierUltra},
		{400, TierUltra},
	}
	for _, tt := range tests {
		if got := TierForWidth(tt.width); got != tt.want {
			t.Errorf("TierForWidth(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestSidebarWidth(t *testing.T) {
	if got := SidebarWidth(TierNarrow); got != 6 {
		t.Errorf("narrow sidebar = %d", got)
	}
	if SidebarWidth(TierUltra) <= SidebarWidth(TierSplit) {
		t.Error("wider tiers should not shrink the sidebar")
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		total, n, gap int
		want          []int
	}{
		{100, 2, 2, []int{49, 49}},
		{101, 2, 2, []int{49, 50}},
		{10, 4, 1, []int{1, 1, 1, 4}},
		{2, 3, 5, []int{1, 1, 1}},
	}
	for _, tt := range tests {
		got := Columns(tt.total, tt.n, tt.gap)
		if len(got) != len(tt.want) {
			t.Fatalf("Columns(%d,%d,%d) = %v", tt.total, tt.n, tt.gap, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Columns(%d,%d,%d) = %v, want %v", tt.total, tt.n, tt.gap, got, tt.want)
				break
			}
		}
	}
	if Columns(10, 0, 1) != nil {
		t.Error("zero columns should be nil")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in     string
		max    int
		suffix string
		want   string
	}{
		{"quantum", 10, "…", "quantum"},
		{"quantum", 5, "…", "quan…"},
		{"quantum", 2, "...", "qu"},
		{"量子计算机", 3, "…", "量子…"},
		{"x", 0, "…", ""},
	}
	for _, tt := range tests {
		if got := TruncateRunes(tt.in, tt.max, tt.suffix); got != tt.want {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	if got := Truncate("量子计算机", 5); got != "量子…" {
		t.Errorf("Truncate wide = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("neural architecture search", 10)
	if len(lines) < 3 {
		t.Fatalf("Wrap = %q", lines)
	}
	for _, l := range lines {
		if len(strings.TrimSpace(l)) > 12 {
			t.Errorf("line too long: %q", l)
		}
	}
}

func TestClipKeepsEscapes(t *testing.T) {
	styled := "\x1b[31mquantum entanglement\x1b[0m"
	got := Clip(styled, 8)
	if w := ansi.StringWidth(got); w != 8 {
		t.Errorf("Clip width = %d, want 8 (%q)", w, got)
	}
	if !strings.HasPrefix(got, "\x1b[31m") {
		t.Errorf("Clip dropped the leading escape: %q", got)
	}
	if got := Clip(styled, 0); got != "" {
		t.Errorf("Clip(0) = %q", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
	}{
		{"ab", 5},
		{"\x1b[1mbold\x1b[0m", 10},
		{"a much longer string", 6},
	}
	for _, tt := range tests {
		if got := ansi.StringWidth(Fit(tt.in, tt.width)); got != tt.width {
			t.Errorf("Fit(%q, %d) width = %d", tt.in, tt.width, got)
		}
	}
}
