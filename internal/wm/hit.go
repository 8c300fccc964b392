package wm

import (
	"sort"

	"github.com/charmbracelet/x/ansi"

	"github.com/aetheronum/controlroom/internal/model"
)

// Window frame geometry. The header spans the top border row and the title
// row beneath it; the two buttons sit at the right end of the title row.
const (
	MinWidth  = 16
	MinHeight = 5

	headerRows   = 2
	buttonWidth  = 3
	buttonsWidth = 2 * buttonWidth
)

// Area names the part of the screen a pointer event landed on.
type Area int

const (
	AreaNone Area = iota
	AreaHeader
	AreaBody
	AreaMinimize
	AreaClose
	AreaDockChip
)

func (a Area) String() string {
	switch a {
	case AreaHeader:
		return "header"
	case AreaBody:
		return "body"
	case AreaMinimize:
		return "minimize"
	case AreaClose:
		return "close"
	case AreaDockChip:
		return "dock"
	default:
		return "none"
	}
}

// Hit is the result of a hit test.
type Hit struct {
	ID   string
	Area Area
}

// Chip is the dock entry of a minimized window.
type Chip struct {
	ID    string
	Label string
	X, Y  int
	Width int
}

// DockChips lays out minimized windows as title chips along the bottom-left
// corner of a screen height rows tall.
func DockChips(windows []model.WindowState, height int) []Chip {
	var chips []Chip
	x := 1
	y := height - 1
	if y < 0 {
		y = 0
	}
	for _, w := range windows {
		if !w.IsMinimized {
			continue
		}
		label := "[ " + w.Title + " ]"
		width := ansi.StringWidth(label)
		chips = append(chips, Chip{ID: w.ID, Label: label, X: x, Y: y, Width: width})
		x += width + 1
	}
	return chips
}

// Stacked returns the visible windows ordered bottom to top. Ties keep
// their insertion order.
func Stacked(windows []model.WindowState) []model.WindowState {
	visible := make([]model.WindowState, 0, len(windows))
	for _, w := range windows {
		if !w.IsMinimized {
			visible = append(visible, w)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].ZIndex < visible[j].ZIndex
	})
	return visible
}

// HitTest finds what lies under cell (x, y). The dock is checked first
// because it paints above every window.
func HitTest(windows []model.WindowState, height, x, y int) Hit {
	for _, c := range DockChips(windows, height) {
		if y == c.Y && x >= c.X && x < c.X+c.Width {
			return Hit{ID: c.ID, Area: AreaDockChip}
		}
	}

	stack := Stacked(windows)
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		if !w.Contains(x, y) {
			continue
		}
		return Hit{ID: w.ID, Area: areaWithin(w, x, y)}
	}
	return Hit{}
}

func areaWithin(w model.WindowState, x, y int) Area {
	row := y - w.Position.Y
	if row >= headerRows {
		return AreaBody
	}
	if row == 1 {
		start := w.Position.X + w.Size.Width - 1 - buttonsWidth
		switch {
		case x >= start && x < start+buttonWidth:
			return AreaMinimize
		case x >= start+buttonWidth && x < start+buttonsWidth:
			return AreaClose
		}
	}
	return AreaHeader
}
