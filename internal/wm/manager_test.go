package wm

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	s := store.New(store.InitialState(nil))
	m := New(s)
	t.Cleanup(m.Teardown)
	return m, s
}

func mustWindow(t *testing.T, s *store.Store, id string) model.WindowState {
	t.Helper()
	w, ok := s.State().Window(id)
	if !ok {
		t.Fatalf("window %s not found", id)
	}
	return w
}

func TestOpenEnforcesMinimumSize(t *testing.T) {
	m, s := newTestManager(t)
	id := m.Open("Tiny", "monitor", model.Position{}, model.Size{Width: 2, Height: 1})
	w := mustWindow(t, s, id)
	if w.Size.Width != MinWidth || w.Size.Height != MinHeight {
		t.Errorf("size = %+v, want %dx%d", w.Size, MinWidth, MinHeight)
	}
	if w.ZIndex == 0 {
		t.Error("opened window has no stacking index")
	}
}

func TestDragByDeltaIsExactAndUnclamped(t *testing.T) {
	tests := []struct {
		name   string
		start  model.Position
		grab   model.Position // offset inside the header
		dx, dy int
	}{
		{"right and down", model.Position{X: 10, Y: 5}, model.Position{X: 3, Y: 0}, 7, 4},
		{"off screen left and up", model.Position{X: 2, Y: 1}, model.Position{X: 5, Y: 1}, -40, -20},
		{"no movement", model.Position{X: 0, Y: 0}, model.Position{X: 1, Y: 0}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s := newTestManager(t)
			id := m.Open("Monitor", "monitor", tt.start, model.Size{Width: 30, Height: 10})

			px, py := tt.start.X+tt.grab.X, tt.start.Y+tt.grab.Y
			if !m.PointerDown(id, px, py) {
				t.Fatal("PointerDown refused")
			}
			if got := m.Interaction(id); got != Dragging {
				t.Fatalf("Interaction = %v, want dragging", got)
			}
			m.PointerMove(px+tt.dx/2, py+tt.dy/2)
			m.PointerMove(px+tt.dx, py+tt.dy)
			m.PointerUp()

			w := mustWindow(t, s, id)
			want := model.Position{X: tt.start.X + tt.dx, Y: tt.start.Y + tt.dy}
			if w.Position != want {
				t.Errorf("Position = %+v, want %+v", w.Position, want)
			}
			if got := m.Interaction(id); got != Idle {
				t.Errorf("Interaction after PointerUp = %v, want idle", got)
			}
		})
	}
}

func TestMoveWithoutDragIsIgnored(t *testing.T) {
	m, s := newTestManager(t)
	id := m.Open("Monitor", "monitor", model.Position{X: 4, Y: 4}, model.Size{Width: 20, Height: 6})
	m.PointerMove(50, 50)
	if w := mustWindow(t, s, id); w.Position != (model.Position{X: 4, Y: 4}) {
		t.Errorf("Position = %+v, window moved without a drag", w.Position)
	}
}

func TestFocusRaisesAboveSiblings(t *testing.T) {
	m, s := newTestManager(t)
	a := m.Open("A", "terminal", model.Position{}, model.Size{Width: 20, Height: 6})
	b := m.Open("B", "notebook", model.Position{}, model.Size{Width: 20, Height: 6})

	if mustWindow(t, s, b).ZIndex <= mustWindow(t, s, a).ZIndex {
		t.Fatal("later window should start on top")
	}

	prev := mustWindow(t, s, b).ZIndex
	m.PointerDown(a, 1, 0)
	m.PointerUp()

	za := mustWindow(t, s, a).ZIndex
	if za <= prev {
		t.Errorf("focused window z=%d not above sibling z=%d", za, prev)
	}
	if top, _ := m.Topmost(); top.ID != a {
		t.Errorf("Topmost = %s, want %s", top.ID, a)
	}
}

func TestStackingStrictlyIncreasesWithFrozenClock(t *testing.T) {
	frozen := time.Unix(0, 1000)
	clock := &Clock{now: func() time.Time { return frozen }}
	s := store.New(store.InitialState(nil))
	m := New(s, WithClock(clock))
	defer m.Teardown()

	id := m.Open("A", "monitor", model.Position{}, model.Size{Width: 20, Height: 6})
	last := mustWindow(t, s, id).ZIndex
	for i := 0; i < 5; i++ {
		m.Focus(id)
		z := mustWindow(t, s, id).ZIndex
		if z <= last {
			t.Fatalf("focus %d: z=%d not greater than %d", i, z, last)
		}
		last = z
	}
}

func TestClockObserve(t *testing.T) {
	c := &Clock{now: func() time.Time { return time.Unix(0, 5) }}
	c.Observe(100)
	if got := c.Next(); got != 101 {
		t.Errorf("Next = %d, want 101", got)
	}
}

func TestCaptureReleasedOnEveryExitPath(t *testing.T) {
	t.Run("pointer up", func(t *testing.T) {
		m, _ := newTestManager(t)
		id := m.Open("A", "monitor", model.Position{}, model.Size{Width: 20, Height: 6})
		m.PointerDown(id, 1, 0)
		if owner, ok := m.Captured(); !ok || owner != id {
			t.Fatalf("Captured = %q,%v", owner, ok)
		}
		m.PointerUp()
		if _, ok := m.Captured(); ok {
			t.Error("capture leaked after PointerUp")
		}
	})

	t.Run("close while dragging", func(t *testing.T) {
		m, _ := newTestManager(t)
		id := m.Open("A", "monitor", model.Position{}, model.Size{Width: 20, Height: 6})
		m.PointerDown(id, 1, 0)
		m.Close(id)
		if _, ok := m.Captured(); ok {
			t.Error("capture leaked after Close")
		}
	})

	t.Run("logout while dragging", func(t *testing.T) {
		m, s := newTestManager(t)
		id := m.Open("A", "monitor", model.Position{}, model.Size{Width: 20, Height: 6})
		m.PointerDown(id, 1, 0)
		s.Dispatch(store.Logout{})
		if _, ok := m.Captured(); ok {
			t.Error("capture leaked after the window was torn down")
		}
		if got := m.Interaction(id); got != Idle {
			t.Errorf("Interaction = %v, want idle", got)
		}
	})

	t.Run("teardown", func(t *testing.T) {
		s := store.New(store.InitialState(nil))
		m := New(s)
		id := m.Open("A", "monitor", model.Position{}, model.Size{Width: 20, Height: 6})
		m.PointerDown(id, 1, 0)
		m.Teardown()
		if _, ok := m.Captured(); ok {
			t.Error("capture leaked after Teardown")
		}
		if s.SubscriberCount() != 0 {
			t.Errorf("SubscriberCount = %d after Teardown", s.SubscriberCount())
		}
	})
}

func TestCaptureReacquireInvalidatesOldRelease(t *testing.T) {
	var c Capture
	releaseA := c.Acquire("a")
	releaseB := c.Acquire("b")
	releaseA()
	if owner, ok := c.Active(); !ok || owner != "b" {
		t.Errorf("stale release dropped the new grab: %q,%v", owner, ok)
	}
	releaseB()
	releaseB()
	if _, ok := c.Active(); ok {
		t.Error("grab still held")
	}
}

func TestMinimizeRestorePreservesGeometry(t *testing.T) {
	m, s := newTestManager(t)
	id := m.Open("A", "monitor", model.Position{X: 7, Y: 3}, model.Size{Width: 24, Height: 8})
	before := mustWindow(t, s, id)

	m.ToggleMinimize(id)
	if !mustWindow(t, s, id).IsMinimized {
		t.Fatal("window not minimized")
	}
	if m.PointerDown(id, 8, 3) {
		t.Error("minimized window accepted a drag")
	}

	m.ToggleMinimize(id)
	after := mustWindow(t, s, id)
	if after != before {
		t.Errorf("restored = %+v, want %+v", after, before)
	}
}

func TestCloseIsTerminal(t *testing.T) {
	m, s := newTestManager(t)
	id := m.Open("A", "monitor", model.Position{}, model.Size{Width: 20, Height: 6})
	m.Close(id)
	if _, ok := s.State().Window(id); ok {
		t.Fatal("window survived Close")
	}
	if m.PointerDown(id, 0, 0) {
		t.Error("closed window accepted a drag")
	}
	m.ToggleMinimize(id)
	m.Focus(id)
	if len(s.State().Windows) != 0 {
		t.Error("operations on a closed window resurrected it")
	}
}

func TestNudge(t *testing.T) {
	m, s := newTestManager(t)
	id := m.Open("A", "monitor", model.Position{X: 1, Y: 1}, model.Size{Width: 20, Height: 6})
	m.Nudge(id, -3, 2)
	if w := mustWindow(t, s, id); w.Position != (model.Position{X: -2, Y: 3}) {
		t.Errorf("Position = %+v", w.Position)
	}
	if _, ok := m.Captured(); ok {
		t.Error("Nudge leaked the pointer grab")
	}
}

func TestHandleMouseDragSequence(t *testing.T) {
	m, s := newTestManager(t)
	id := m.Open("Monitor", "monitor", model.Position{X: 10, Y: 2}, model.Size{Width: 30, Height: 10})

	press := tea.MouseMsg{X: 12, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !m.HandleMouse(press, 40) {
		t.Fatal("header press not consumed")
	}
	// Motion far outside the window still reaches it while captured.
	m.HandleMouse(tea.MouseMsg{X: 70, Y: 30, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 40)
	m.HandleMouse(tea.MouseMsg{X: 70, Y: 30, Action: tea.MouseActionRelease}, 40)

	if w := mustWindow(t, s, id); w.Position != (model.Position{X: 68, Y: 30}) {
		t.Errorf("Position = %+v, want {68 30}", w.Position)
	}
	if _, ok := m.Captured(); ok {
		t.Error("capture leaked after release")
	}
}

func TestHandleMouseButtons(t *testing.T) {
	m, s := newTestManager(t)
	id := m.Open("Monitor", "monitor", model.Position{X: 0, Y: 0}, model.Size{Width: 20, Height: 6})

	// Title row is y=1; buttons occupy the last six inner cells.
	minX := 20 - 1 - buttonsWidth
	m.HandleMouse(tea.MouseMsg{X: minX, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 30)
	if !mustWindow(t, s, id).IsMinimized {
		t.Fatal("minimize button did not minimize")
	}

	chips := DockChips(s.State().Windows, 30)
	if len(chips) != 1 {
		t.Fatalf("dock has %d chips, want 1", len(chips))
	}
	m.HandleMouse(tea.MouseMsg{X: chips[0].X, Y: chips[0].Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 30)
	if mustWindow(t, s, id).IsMinimized {
		t.Fatal("dock chip did not restore")
	}

	m.HandleMouse(tea.MouseMsg{X: minX + buttonWidth, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 30)
	if _, ok := s.State().Window(id); ok {
		t.Error("close button did not close")
	}
}

func TestHandleMouseMissFallsThrough(t *testing.T) {
	m, _ := newTestManager(t)
	m.Open("Monitor", "monitor", model.Position{X: 10, Y: 10}, model.Size{Width: 20, Height: 6})
	if m.HandleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 40) {
		t.Error("click outside every window was consumed")
	}
}
