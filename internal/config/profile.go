package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aetheronum/controlroom/internal/model"
)

// ErrInvalidProfile is returned when a lab profile fails validation.
var ErrInvalidProfile = errors.New("invalid lab profile")

// Profile is the lab roster and project seed.
type Profile struct {
	Personnel []Person        `yaml:"personnel"`
	Projects  []ProjectRecord `yaml:"projects"`
}

// Person is a roster entry.
type Person struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Clearance  int    `yaml:"clearance"`
	Department string `yaml:"department"`
}

// ProjectRecord is a project as written in the profile.
type ProjectRecord struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Status     string   `yaml:"status"`
	Progress   int      `yaml:"progress"`
	Priority   string   `yaml:"priority"`
	AssignedTo []string `yaml:"assigned_to"`
	Deadline   string   `yaml:"deadline"` // YYYY-MM-DD
	Lab        string   `yaml:"lab"`
}

// DefaultProfile is the built-in lab: four researchers and three projects.
func DefaultProfile() *Profile {
	return &Profile{
		Personnel: []Person{
			{ID: "1", Name: "Dr. Sarah Chen", Clearance: 5, Department: "AI Research"},
			{ID: "2", Name: "Marcus Rodriguez", Clearance: 4, Department: "Quantum Computing"},
			{ID: "3", Name: "Elena Volkov", Clearance: 3, Department: "Cybersecurity"},
			{ID: "4", Name: "James Wright", Clearance: 2, Department: "OS Development"},
		},
		Projects: []ProjectRecord{
			{
				ID: "1", Name: "Neural Architecture Search v2.3", Status: "active", Progress: 67,
				Priority: "high", AssignedTo: []string{"Dr. Chen", "Marcus R."}, Deadline: "2025-02-15", Lab: "ai",
			},
			{
				ID: "2", Name: "Quantum Error Correction Protocol", Status: "active", Progress: 43,
				Priority: "critical", AssignedTo: []string{"Elena V.", "James W."}, Deadline: "2025-01-30", Lab: "quantum",
			},
			{
				ID: "3", Name: "Neuromorphic Spike Processing", Status: "paused", Progress: 89,
				Priority: "medium", AssignedTo: []string{"Dr. Chen"}, Deadline: "2025-03-01", Lab: "neuromorphic",
			},
		},
	}
}

// LoadProfile reads and validates the YAML profile at path. An empty path
// yields DefaultProfile. Sections left empty in the file fall back to the
// built-in ones.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return DefaultProfile(), nil
	}
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	def := DefaultProfile()
	if len(p.Personnel) == 0 {
		p.Personnel = def.Personnel
	}
	if len(p.Projects) == 0 {
		p.Projects = def.Projects
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks ids, names, clearances and enum fields.
func (p *Profile) Validate() error {
	seen := make(map[string]bool)
	for i, person := range p.Personnel {
		switch {
		case strings.TrimSpace(person.ID) == "":
			return fmt.Errorf("%w: personnel[%d]: empty id", ErrInvalidProfile, i)
		case strings.TrimSpace(person.Name) == "":
			return fmt.Errorf("%w: personnel[%d]: empty name", ErrInvalidProfile, i)
		case person.Clearance < model.MinClearance || person.Clearance > model.MaxClearance:
			return fmt.Errorf("%w: personnel %s: clearance %d outside %d-%d",
				ErrInvalidProfile, person.ID, person.Clearance, model.MinClearance, model.MaxClearance)
		case seen[person.ID]:
			return fmt.Errorf("%w: duplicate personnel id %s", ErrInvalidProfile, person.ID)
		}
		seen[person.ID] = true
	}

	seen = make(map[string]bool)
	for i, pr := range p.Projects {
		switch {
		case strings.TrimSpace(pr.ID) == "":
			return fmt.Errorf("%w: projects[%d]: empty id", ErrInvalidProfile, i)
		case strings.TrimSpace(pr.Name) == "":
			return fmt.Errorf("%w: projects[%d]: empty name", ErrInvalidProfile, i)
		case seen[pr.ID]:
			return fmt.Errorf("%w: duplicate project id %s", ErrInvalidProfile, pr.ID)
		case pr.Progress < 0 || pr.Progress > 100:
			return fmt.Errorf("%w: project %s: progress %d outside 0-100", ErrInvalidProfile, pr.ID, pr.Progress)
		}
		if _, err := pr.toModel(); err != nil {
			return fmt.Errorf("%w: project %s: %v", ErrInvalidProfile, pr.ID, err)
		}
		seen[pr.ID] = true
	}
	return nil
}

// Users converts the roster. LastLogin is stamped with now.
func (p *Profile) Users(now time.Time) []model.User {
	users := make([]model.User, 0, len(p.Personnel))
	for _, person := range p.Personnel {
		users = append(users, model.User{
			ID:             person.ID,
			Name:           person.Name,
			ClearanceLevel: person.Clearance,
			Department:     person.Department,
			LastLogin:      now,
		})
	}
	return users
}

// ProjectSeed converts the project list. The profile must be valid.
func (p *Profile) ProjectSeed() []model.Project {
	projects := make([]model.Project, 0, len(p.Projects))
	for _, pr := range p.Projects {
		m, _ := pr.toModel()
		projects = append(projects, m)
	}
	return projects
}

func (pr ProjectRecord) toModel() (model.Project, error) {
	status := model.ProjectStatus(strings.ToLower(pr.Status))
	switch status {
	case "":
		status = model.ProjectActive
	case model.ProjectActive, model.ProjectPaused, model.ProjectCompleted, model.ProjectArchived:
	default:
		return model.Project{}, fmt.Errorf("unknown status %q", pr.Status)
	}

	priority := model.Priority(strings.ToLower(pr.Priority))
	switch priority {
	case "":
		priority = model.PriorityMedium
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityCritical:
	default:
		return model.Project{}, fmt.Errorf("unknown priority %q", pr.Priority)
	}

	var deadline time.Time
	if pr.Deadline != "" {
		d, err := time.Parse(time.DateOnly, pr.Deadline)
		if err != nil {
			return model.Project{}, fmt.Errorf("deadline: %w", err)
		}
		deadline = d
	}

	lab := model.LabType(strings.ToLower(pr.Lab))
	if lab == "" {
		lab = model.LabAI
	}

	return model.Project{
		ID:         pr.ID,
		Name:       pr.Name,
		Status:     status,
		Progress:   pr.Progress,
		Priority:   priority,
		AssignedTo: append([]string{}, pr.AssignedTo...),
		Deadline:   deadline,
		Lab:        lab,
		Timeline:   []model.TimelineEntry{},
	}, nil
}

// expandHome resolves a leading "~/" against the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
