// Package nav defines the navigable sections of the control room and the
// clearance each one requires.
package nav

import (
	"errors"
	"fmt"

	"github.com/aetheronum/controlroom/internal/model"
)

var (
	// ErrUnknownSection is returned for a section id that does not exist.
	ErrUnknownSection = errors.New("unknown section")
	// ErrInsufficientClearance is returned when the user may not enter a section.
	ErrInsufficientClearance = errors.New("insufficient clearance")
)

// Section ids.
const (
	Dashboard     = "dashboard"
	AI            = "ai"
	Quantum       = "quantum"
	OS            = "os"
	Neuromorphic  = "neuromorphic"
	Blockchain    = "blockchain"
	Cybersecurity = "cybersecurity"
	Symbiosis     = "symbiosis"
	Notebook      = "notebook"
	Monitor       = "monitor"
)

// Section is one sidebar entry.
type Section struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Clearance int    `json:"clearance"`
}

var sections = []Section{
	{Dashboard, "Command Dashboard", 1},
	{AI, "AI Laboratory", 2},
	{Quantum, "Quantum Computing", 3},
	{OS, "OS Kernel Lab", 2},
	{Neuromorphic, "Neuromorphic Lab", 4},
	{Blockchain, "Blockchain Research", 2},
	{Cybersecurity, "Cybersecurity Lab", 3},
	{Symbiosis, "Human-AI Symbiosis", 5},
	{Notebook, "Research Notes", 1},
	{Monitor, "System Monitor", 1},
}

// Sections returns the sidebar entries in display order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// Lookup finds a section by id.
func Lookup(id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Allows reports whether a user with the given clearance may enter s.
func (s Section) Allows(clearance int) bool {
	return clearance >= s.Clearance
}

// View names the panel that renders s. Sections without a dedicated panel
// fall back to the command dashboard.
func (s Section) View() string {
	switch s.ID {
	case AI, Quantum, OS, Notebook:
		return s.ID
	default:
		return Dashboard
	}
}

// CanAccess reports whether user may enter section id. A nil user may
// enter nothing.
func CanAccess(user *model.User, id string) bool {
	s, ok := Lookup(id)
	return ok && user != nil && s.Allows(user.ClearanceLevel)
}

// Navigator tracks the active section.
type Navigator struct {
	active string
}

// NewNavigator starts on the command dashboard.
func NewNavigator() *Navigator {
	return &Navigator{active: Dashboard}
}

// Active returns the active section.
func (n *Navigator) Active() Section {
	s, _ := Lookup(n.active)
	return s
}

// Navigate makes id the active section. A blocked or unknown section leaves
// the active section unchanged.
func (n *Navigator) Navigate(user *model.User, id string) error {
	s, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("navigate to %q: %w", id, ErrUnknownSection)
	}
	if user == nil || !s.Allows(user.ClearanceLevel) {
		return fmt.Errorf("navigate to %s (requires CL-%d): %w", s.Label, s.Clearance, ErrInsufficientClearance)
	}
	n.active = s.ID
	return nil
}

// Reset returns to the command dashboard.
func (n *Navigator) Reset() {
	n.active = Dashboard
}
