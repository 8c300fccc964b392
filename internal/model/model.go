// Package model defines the records shared by the store, the window manager
// and the TUI panels.
package model

import "time"

// LabType identifies the research lab a note or project belongs to.
type LabType string

const (
	LabAI            LabType = "ai"
	LabQuantum       LabType = "quantum"
	LabOS            LabType = "os"
	LabNeuromorphic  LabType = "neuromorphic"
	LabBlockchain    LabType = "blockchain"
	LabCybersecurity LabType = "cybersecurity"
	LabSymbiosis     LabType = "symbiosis"
)

// Clearance bounds.
const (
	MinClearance = 1
	MaxClearance = 5
)

// User is the authenticated researcher. It is created at login and never
// mutated afterwards.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ClearanceLevel int       `json:"clearance_level"`
	Department     string    `json:"department"`
	LastLogin      time.Time `json:"last_login"`
}

// LogLevel is the severity of a LogEntry.
type LogLevel string

const (
	LevelInfo     LogLevel = "info"
	LevelWarning  LogLevel = "warning"
	LevelError    LogLevel = "error"
	LevelCritical LogLevel = "critical"
)

// LogEntry is one line of the system log stream.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	User      string    `json:"user,omitempty"`
}

// Note is a research note.
type Note struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Tags     []string  `json:"tags"`
	Lab      LabType   `json:"lab"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`

	// LinkedNotes is reserved; nothing populates it yet.
	LinkedNotes []string `json:"linked_notes"`
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// Priority ranks projects.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// TimelineEntry is a project history record.
type TimelineEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Details   string    `json:"details"`
}

// Project is a tracked research project.
type Project struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Status     ProjectStatus `json:"status"`
	Progress   int           `json:"progress"`
	Priority   Priority      `json:"priority"`
	AssignedTo []string      `json:"assigned_to"`
	Deadline   time.Time     `json:"deadline"`
	Lab        LabType       `json:"lab"`

	// Timeline is reserved; nothing populates it yet.
	Timeline []TimelineEntry `json:"timeline"`
}

// SystemMetrics is the singleton telemetry snapshot.
type SystemMetrics struct {
	CPU              float64 `json:"cpu"`
	Memory           float64 `json:"memory"`
	Network          float64 `json:"network"`
	Uptime           string  `json:"uptime"`
	ActiveUsers      int     `json:"active_users"`
	RunningProcesses int     `json:"running_processes"`
}

// DefaultMetrics is the telemetry snapshot a fresh session starts with.
func DefaultMetrics() SystemMetrics {
	return SystemMetrics{
		CPU:              45,
		Memory:           67,
		Network:          23,
		Uptime:           "47d 12h 34m",
		ActiveUsers:      8,
		RunningProcesses: 234,
	}
}

// Position is a window origin in terminal cells. Negative values are legal:
// windows may be dragged partly off screen.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a window extent in terminal cells, border included.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WindowState is the geometry and stacking record of one floating window.
type WindowState struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Component   string   `json:"component"`
	Position    Position `json:"position"`
	Size        Size     `json:"size"`
	IsMinimized bool     `json:"is_minimized"`
	ZIndex      int64    `json:"z_index"`
}

// Contains reports whether the cell (x, y) lies inside the window frame.
func (w WindowState) Contains(x, y int) bool {
	return x >= w.Position.X && x < w.Position.X+w.Size.Width &&
		y >= w.Position.Y && y < w.Position.Y+w.Size.Height
}

// TerminalCommand is one executed terminal line.
type TerminalCommand struct {
	Command   string    `json:"command"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}
