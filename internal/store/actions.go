package store

import "github.com/aetheronum/controlroom/internal/model"

// Action is a request to change the application state. The set is closed:
// only the types in this file implement it.
type Action interface {
	// ActionType returns the action's wire-style name, e.g. "ADD_LOG".
	ActionType() string
	isAction()
}

// Login authenticates a user.
type Login struct{ User model.User }

// Logout ends the session and tears down every floating window.
type Logout struct{}

// AddLog prepends a log entry.
type AddLog struct{ Entry model.LogEntry }

// UpdateMetrics merges a partial metrics snapshot.
type UpdateMetrics struct{ Patch model.MetricsPatch }

// AddNote inserts a note at the front of the list.
type AddNote struct{ Note model.Note }

// UpdateNote merges a partial note into the note with ID.
type UpdateNote struct {
	ID    string
	Patch model.NotePatch
}

// AddWindow appends a window record.
type AddWindow struct{ Window model.WindowState }

// UpdateWindow merges a partial window into the window with ID.
type UpdateWindow struct {
	ID    string
	Patch model.WindowPatch
}

// RemoveWindow drops the window with ID.
type RemoveWindow struct{ ID string }

// AddTerminalCommand prepends an executed terminal line.
type AddTerminalCommand struct{ Command model.TerminalCommand }

// UpdateProject merges a partial project into the project with ID.
type UpdateProject struct {
	ID    string
	Patch model.ProjectPatch
}

func (Login) ActionType() string              { return "LOGIN" }
func (Logout) ActionType() string             { return "LOGOUT" }
func (AddLog) ActionType() string             { return "ADD_LOG" }
func (UpdateMetrics) ActionType() string      { return "UPDATE_METRICS" }
func (AddNote) ActionType() string            { return "ADD_NOTE" }
func (UpdateNote) ActionType() string         { return "UPDATE_NOTE" }
func (AddWindow) ActionType() string          { return "ADD_WINDOW" }
func (UpdateWindow) ActionType() string       { return "UPDATE_WINDOW" }
func (RemoveWindow) ActionType() string       { return "REMOVE_WINDOW" }
func (AddTerminalCommand) ActionType() string { return "ADD_TERMINAL_COMMAND" }
func (UpdateProject) ActionType() string      { return "UPDATE_PROJECT" }

func (Login) isAction()              {}
func (Logout) isAction()             {}
func (AddLog) isAction()             {}
func (UpdateMetrics) isAction()      {}
func (AddNote) isAction()            {}
func (UpdateNote) isAction()         {}
func (AddWindow) isAction()          {}
func (UpdateWindow) isAction()       {}
func (RemoveWindow) isAction()       {}
func (AddTerminalCommand) isAction() {}
func (UpdateProject) isAction()      {}
