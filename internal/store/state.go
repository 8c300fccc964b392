// Package store holds the single authoritative application state and the
// reduction that advances it.
package store

import "github.com/aetheronum/controlroom/internal/model"

// Buffer caps. Oldest entries are evicted first.
const (
	MaxLogs            = 1000
	MaxTerminalHistory = 100
)

// State is one immutable snapshot of the application. Slices held by a
// snapshot are never written after the snapshot is published.
type State struct {
	User              *model.User
	IsAuthenticated   bool
	Projects          []model.Project
	Logs              []model.LogEntry
	Notes             []model.Note
	Metrics           model.SystemMetrics
	Windows           []model.WindowState
	TerminalHistory   []model.TerminalCommand
	ActiveConnections int
}

// InitialState returns the state a session starts with. Projects are the
// seed list the dashboard later re-applies with UpdateProject.
func InitialState(projects []model.Project) State {
	return State{
		Projects: append([]model.Project(nil), projects...),
		Metrics:  model.DefaultMetrics(),
	}
}

// Window returns the window with id.
func (s State) Window(id string) (model.WindowState, bool) {
	for _, w := range s.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return model.WindowState{}, false
}

// Note returns the note with id.
func (s State) Note(id string) (model.Note, bool) {
	for _, n := range s.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Note{}, false
}

// TopZ returns the highest stacking index among the windows, or 0.
func (s State) TopZ() int64 {
	var top int64
	for _, w := range s.Windows {
		if w.ZIndex > top {
			top = w.ZIndex
		}
	}
	return top
}
