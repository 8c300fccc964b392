package model

import "time"

// Patches express partial updates. A nil field leaves the target unchanged,
// which gives the shallow-merge semantics the store relies on.

// MetricsPatch is a partial SystemMetrics.
type MetricsPatch struct {
	CPU              *float64
	Memory           *float64
	Network          *float64
	Uptime           *string
	ActiveUsers      *int
	RunningProcesses *int
}

// Apply merges p into m.
func (m SystemMetrics) Apply(p MetricsPatch) SystemMetrics {
	if p.CPU != nil {
		m.CPU = *p.CPU
	}
	if p.Memory != nil {
		m.Memory = *p.Memory
	}
	if p.Network != nil {
		m.Network = *p.Network
	}
	if p.Uptime != nil {
		m.Uptime = *p.Uptime
	}
	if p.ActiveUsers != nil {
		m.ActiveUsers = *p.ActiveUsers
	}
	if p.RunningProcesses != nil {
		m.RunningProcesses = *p.RunningProcesses
	}
	return m
}

// NotePatch is a partial Note. ID and Created are immutable.
type NotePatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	Lab      *LabType
	Modified *time.Time
}

// Apply merges p into n.
func (n Note) Apply(p NotePatch) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Tags != nil {
		n.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Lab != nil {
		n.Lab = *p.Lab
	}
	if p.Modified != nil {
		n.Modified = *p.Modified
	}
	return n
}

// WindowPatch is a partial WindowState. ID is immutable.
type WindowPatch struct {
	Title       *string
	Component   *string
	Position    *Position
	Size        *Size
	IsMinimized *bool
	ZIndex      *int64
}

// Apply merges p into w.
func (w WindowState) Apply(p WindowPatch) WindowState {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Component != nil {
		w.Component = *p.Component
	}
	if p.Position != nil {
		w.Position = *p.Position
	}
	if p.Size != nil {
		w.Size = *p.Size
	}
	if p.IsMinimized != nil {
		w.IsMinimized = *p.IsMinimized
	}
	if p.ZIndex != nil {
		w.ZIndex = *p.ZIndex
	}
	return w
}

// ProjectPatch is a partial Project. ID is immutable.
type ProjectPatch struct {
	Name       *string
	Status     *ProjectStatus
	Progress   *int
	Priority   *Priority
	AssignedTo *[]string
	Deadline   *time.Time
	Lab        *LabType
	Timeline   *[]TimelineEntry
}

// Apply merges p into pr.
func (pr Project) Apply(p ProjectPatch) Project {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Progress != nil {
		pr.Progress = *p.Progress
	}
	if p.Priority != nil {
		pr.Priority = *p.Priority
	}
	if p.AssignedTo != nil {
		pr.AssignedTo = append([]string(nil), (*p.AssignedTo)...)
	}
	if p.Deadline != nil {
		pr.Deadline = *p.Deadline
	}
	if p.Lab != nil {
		pr.Lab = *p.Lab
	}
	if p.Timeline != nil {
		pr.Timeline = append([]TimelineEntry(nil), (*p.Timeline)...)
	}
	return pr
}

// FullPatch returns a patch that overwrites every mutable field of pr.
func (pr Project) FullPatch() ProjectPatch {
	assigned := append([]string(nil), pr.AssignedTo...)
	timeline := append([]TimelineEntry(nil), pr.Timeline...)
	return ProjectPatch{
		Name:       &pr.Name,
		Status:     &pr.Status,
		Progress:   &pr.Progress,
		Priority:   &pr.Priority,
		AssignedTo: &assigned,
		Deadline:   &pr.Deadline,
		Lab:        &pr.Lab,
		Timeline:   &timeline,
	}
}

// Ptr returns a pointer to v. Handy for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}
