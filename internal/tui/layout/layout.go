// Package layout holds width tiers and text fitting helpers shared by the
// control room views.
package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Width thresholds. Below CompactThreshold the sidebar collapses to
// section initials; at WideThreshold dashboards switch to two columns.
const (
	CompactThreshold = 80
	SplitThreshold   = 120
	WideThreshold    = 160
)

// Tier describes the current width bucket.
type Tier int

const (
	TierNarrow Tier = iota
	TierSplit
	TierWide
	TierUltra
)

// TierForWidth maps a terminal width to a tier.
func TierForWidth(width int) Tier {
	switch {
	case width >= WideThreshold:
		return TierUltra
	case width >= SplitThreshold:
		return TierWide
	case width >= CompactThreshold:
		return TierSplit
	default:
		return TierNarrow
	}
}

// SidebarWidth is the navigation column width for a tier.
func SidebarWidth(tier Tier) int {
	switch tier {
	case TierNarrow:
		return 6
	case TierSplit:
		return 22
	default:
		return 28
	}
}

// Columns splits total into n columns separated by gap cells. The last
// column absorbs the remainder.
func Columns(total, n, gap int) []int {
	if n <= 0 {
		return nil
	}
	avail := total - gap*(n-1)
	if avail < n {
		avail = n
	}
	cols := make([]int, n)
	each := avail / n
	for i := range cols {
		cols[i] = each
	}
	cols[n-1] += avail - each*n
	return cols
}

// TruncateRunes trims s to max runes, appending suffix when it cuts.
func TruncateRunes(s string, max int, suffix string) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	sr := []rune(suffix)
	if max < len(sr) {
		return string(runes[:max])
	}
	return string(runes[:max-len(sr)]) + suffix
}

// Truncate trims s to max display cells with an ellipsis. Wide glyphs
// count as two cells.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(s, max, "…")
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Wrap word-wraps s at width and splits it into lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	return strings.Split(wordwrap.String(s, width), "\n")
}

// Clip truncates a styled string to width cells, keeping escape sequences
// intact.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// Fit clips a styled string to width cells and pads it with spaces to
// exactly width.
func Fit(s string, width int) string {
	s = Clip(s, width)
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
