// Package panels holds the control room's section views and the terminal
// drawer. Each is a bubbletea model sized and focused by the root model.
package panels

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aetheronum/controlroom/internal/config"
	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/sim"
	"github.com/aetheronum/controlroom/internal/store"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// Keybinding is a panel-specific shortcut shown in the help footer.
type Keybinding struct {
	Key         key.Binding
	Description string
}

// PanelConfig describes a panel.
type PanelConfig struct {
	// ID matches the navigation view the panel renders.
	ID    string
	Title string

	MinWidth  int
	MinHeight int
}

// Panel is a section view.
type Panel interface {
	tea.Model

	SetSize(width, height int)
	Focus()
	Blur()
	Config() PanelConfig
	Keybindings() []Keybinding

	// Mount runs when the panel becomes the visible section and returns
	// the commands that start its timers. Unmount stops them.
	Mount() tea.Cmd
	Unmount()
}

// TextCapturer is implemented by panels that are currently taking text
// input. While it reports true, global single-key shortcuts are suppressed.
type TextCapturer interface {
	CapturingText() bool
}

// Env is what panels share with the root model.
type Env struct {
	Store *store.Store
	Sched *sim.Scheduler
	Rand  *rand.Rand
	Theme theme.Theme
	Ticks config.TicksConfig
	// Seed is the project list the dashboard re-applies on mount.
	Seed []model.Project
	Now  func() time.Time
}

// UserName is the signed-in user's name, or "".
func (e *Env) UserName() string {
	if u := e.Store.State().User; u != nil {
		return u.Name
	}
	return ""
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// PanelBase provides the bookkeeping every panel shares.
type PanelBase struct {
	config  PanelConfig
	width   int
	height  int
	focused bool
}

// NewPanelBase creates a PanelBase with cfg.
func NewPanelBase(cfg PanelConfig) PanelBase {
	return PanelBase{config: cfg}
}

// SetSize implements Panel.
func (b *PanelBase) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Focus implements Panel.
func (b *PanelBase) Focus() { b.focused = true }

// Blur implements Panel.
func (b *PanelBase) Blur() { b.focused = false }

// Config implements Panel.
func (b *PanelBase) Config() PanelConfig { return b.config }

// Keybindings implements Panel with no shortcuts.
func (b *PanelBase) Keybindings() []Keybinding { return nil }

// Mount implements Panel with no timers.
func (b *PanelBase) Mount() tea.Cmd { return nil }

// Unmount implements Panel.
func (b *PanelBase) Unmount() {}

// IsFocused reports whether the panel has keyboard focus.
func (b *PanelBase) IsFocused() bool { return b.focused }

// Width is the panel width.
func (b *PanelBase) Width() int { return b.width }

// Height is the panel height.
func (b *PanelBase) Height() int { return b.height }
