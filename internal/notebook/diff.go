package notebook

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStats counts changed lines between two revisions of a note.
type DiffStats struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

func (s DiffStats) String() string {
	return fmt.Sprintf("(+%d -%d)", s.Added, s.Removed)
}

// Compare runs a line-mode diff of before against after.
func Compare(before, after string) DiffStats {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var s DiffStats
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			s.Removed += countLines(d.Text)
		}
	}
	return s
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
