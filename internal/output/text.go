package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table prints left-aligned columns under a header and a dashed rule.
// Widths are measured in terminal cells.
type Table struct {
	w      io.Writer
	header []string
	rows   [][]string
	widths []int
}

// NewTable starts a table with the given column headers.
func NewTable(w io.Writer, header ...string) *Table {
	t := &Table{w: w, header: header, widths: make([]int, len(header))}
	t.measure(header)
	return t
}

// AddRow appends a row. Cells beyond the header are ignored.
func (t *Table) AddRow(cells ...string) {
	t.measure(cells)
	t.rows = append(t.rows, cells)
}

func (t *Table) measure(cells []string) {
	for i := 0; i < len(cells) && i < len(t.widths); i++ {
		t.widths[i] = max(t.widths[i], runewidth.StringWidth(cells[i]))
	}
}

// Render writes the table.
func (t *Table) Render() {
	rule := make([]string, len(t.widths))
	for i, n := range t.widths {
		rule[i] = strings.Repeat("-", n)
	}
	t.line(t.header)
	t.line(rule)
	for _, r := range t.rows {
		t.line(r)
	}
}

func (t *Table) line(cells []string) {
	padded := make([]string, len(t.widths))
	for i, n := range t.widths {
		if i < len(cells) {
			padded[i] = runewidth.FillRight(cells[i], n)
		} else {
			padded[i] = strings.Repeat(" ", n)
		}
	}
	fmt.Fprintln(t.w, strings.TrimRight("  "+strings.Join(padded, "  "), " "))
}

// Pluralize picks singular for a count of one.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// CountStr renders "3 people" or "1 person".
func CountStr(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(count, singular, plural))
}
