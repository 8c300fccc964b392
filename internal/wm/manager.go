// Package wm implements the floating window manager: drag interaction,
// stacking order, minimize/restore through the dock, and compositing.
//
// Window records live in the store. The manager keeps only transient
// interaction state and expresses every change as a dispatched action.
package wm

import (
	"github.com/google/uuid"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/store"
)

// Store is the slice of the state container the manager needs.
type Store interface {
	State() store.State
	Dispatch(actions ...store.Action)
	Subscribe(fn store.Observer) store.UnsubscribeFunc
}

// Interaction is the per-window pointer state.
type Interaction int

const (
	Idle Interaction = iota
	Dragging
	// Resizing is reserved. Nothing triggers it yet.
	Resizing
)

func (i Interaction) String() string {
	switch i {
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "idle"
	}
}

type session struct {
	id      string
	state   Interaction
	offset  model.Position
	release func()
}

// Manager drives window interactions against a Store.
type Manager struct {
	store   Store
	clock   *Clock
	capture Capture
	active  *session
	unsub   store.UnsubscribeFunc
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the stacking clock.
func WithClock(c *Clock) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

// New creates a manager bound to s. The manager watches the store so that
// a window vanishing mid-drag (closed elsewhere, or torn down by logout)
// releases the pointer grab.
func New(s Store, opts ...Option) *Manager {
	m := &Manager{store: s, clock: NewClock()}
	for _, opt := range opts {
		opt(m)
	}
	m.unsub = s.Subscribe(func(_ store.Action, st store.State) {
		if m.active == nil {
			return
		}
		if _, ok := st.Window(m.active.id); !ok {
			m.endInteraction()
		}
	})
	return m
}

// Open adds a window on top of the stack and returns its id.
func (m *Manager) Open(title, component string, pos model.Position, size model.Size) string {
	if size.Width < MinWidth {
		size.Width = MinWidth
	}
	if size.Height < MinHeight {
		size.Height = MinHeight
	}
	m.clock.Observe(m.store.State().TopZ())
	id := "win-" + uuid.NewString()
	m.store.Dispatch(store.AddWindow{Window: model.WindowState{
		ID:        id,
		Title:     title,
		Component: component,
		Position:  pos,
		Size:      size,
		ZIndex:    m.clock.Next(),
	}})
	return id
}

// Focus raises the window above all of its siblings.
func (m *Manager) Focus(id string) {
	st := m.store.State()
	if _, ok := st.Window(id); !ok {
		return
	}
	m.clock.Observe(st.TopZ())
	z := m.clock.Next()
	m.store.Dispatch(store.UpdateWindow{ID: id, Patch: model.WindowPatch{ZIndex: &z}})
}

// PointerDown starts dragging window id from cell (x, y). It raises the
// window and grabs the pointer. It reports false when the window does not
// exist or is minimized.
func (m *Manager) PointerDown(id string, x, y int) bool {
	w, ok := m.store.State().Window(id)
	if !ok || w.IsMinimized {
		return false
	}
	m.endInteraction()

	m.active = &session{
		id:     id,
		state:  Dragging,
		offset: model.Position{X: x - w.Position.X, Y: y - w.Position.Y},
	}
	m.active.release = m.capture.Acquire(id)
	m.Focus(id)
	return true
}

// PointerMove repositions the dragged window so the grab point follows the
// pointer. Positions are not clamped.
func (m *Manager) PointerMove(x, y int) {
	if m.active == nil || m.active.state != Dragging {
		return
	}
	pos := model.Position{X: x - m.active.offset.X, Y: y - m.active.offset.Y}
	m.store.Dispatch(store.UpdateWindow{ID: m.active.id, Patch: model.WindowPatch{Position: &pos}})
}

// PointerUp ends the current interaction, keeping the last position.
func (m *Manager) PointerUp() {
	m.endInteraction()
}

// ToggleMinimize flips a window between normal and minimized. Geometry and
// stacking index are left untouched so restoring puts it back as it was.
func (m *Manager) ToggleMinimize(id string) {
	w, ok := m.store.State().Window(id)
	if !ok {
		return
	}
	if m.active != nil && m.active.id == id {
		m.endInteraction()
	}
	minimized := !w.IsMinimized
	m.store.Dispatch(store.UpdateWindow{ID: id, Patch: model.WindowPatch{IsMinimized: &minimized}})
}

// Close removes the window record.
func (m *Manager) Close(id string) {
	if m.active != nil && m.active.id == id {
		m.endInteraction()
	}
	m.store.Dispatch(store.RemoveWindow{ID: id})
}

// Nudge moves a window by (dx, dy) through the same down/move/up sequence a
// pointer drag uses.
func (m *Manager) Nudge(id string, dx, dy int) {
	w, ok := m.store.State().Window(id)
	if !ok || w.IsMinimized {
		return
	}
	x, y := w.Position.X, w.Position.Y
	if !m.PointerDown(id, x, y) {
		return
	}
	m.PointerMove(x+dx, y+dy)
	m.PointerUp()
}

// Interaction reports the pointer state of window id.
func (m *Manager) Interaction(id string) Interaction {
	if m.active != nil && m.active.id == id {
		return m.active.state
	}
	return Idle
}

// Captured returns the window holding the pointer grab.
func (m *Manager) Captured() (string, bool) {
	return m.capture.Active()
}

// Topmost returns the highest stacked window, minimized or not.
func (m *Manager) Topmost() (model.WindowState, bool) {
	var top model.WindowState
	found := false
	for _, w := range m.store.State().Windows {
		if !found || w.ZIndex > top.ZIndex {
			top, found = w, true
		}
	}
	return top, found
}

// Teardown releases any pointer grab and detaches from the store. The
// manager must not be used afterwards.
func (m *Manager) Teardown() {
	m.endInteraction()
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

func (m *Manager) endInteraction() {
	if m.active == nil {
		return
	}
	if m.active.release != nil {
		m.active.release()
	}
	m.active = nil
}
