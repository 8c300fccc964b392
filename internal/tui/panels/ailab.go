package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/sim"
	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

type aiLabKeys struct {
	Toggle    key.Binding
	PrevModel key.Binding
	NextModel key.Binding
}

var defaultAILabKeys = aiLabKeys{
	Toggle:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("p", "pause/resume")),
	PrevModel: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev model")),
	NextModel: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next model")),
}

// resource is a static utilisation reading on the AI cluster.
type resource struct {
	label string
	value float64
}

var aiResources = []resource{
	{"GPU Memory", 87},
	{"GPU Utilization", 92},
	{"Network I/O", 34},
}

// AILab is the artificial intelligence lab: the training pipeline, model
// registry, datasets and cluster utilisation. The training run advances one
// epoch per training tick while it is running and the lab is mounted.
type AILab struct {
	PanelBase
	env      *Env
	keys     aiLabKeys
	training sim.Training
	models   []sim.ModelInfo
	selected int
}

// NewAILab creates the AI lab panel.
func NewAILab(env *Env) *AILab {
	return &AILab{
		PanelBase: NewPanelBase(PanelConfig{ID: "ai", Title: "ARTIFICIAL INTELLIGENCE LAB", MinWidth: 40, MinHeight: 12}),
		env:       env,
		keys:      defaultAILabKeys,
		training:  sim.NewTraining(),
		models:    sim.Models(),
	}
}

// Init implements tea.Model.
func (a *AILab) Init() tea.Cmd { return nil }

// Mount resumes the training timer if the run is active.
func (a *AILab) Mount() tea.Cmd {
	if !a.training.Running() {
		return nil
	}
	return a.env.Sched.Start(sim.TaskTraining, a.env.Ticks.TrainingInterval())
}

// Unmount stops the training timer. The run keeps its state.
func (a *AILab) Unmount() {
	a.env.Sched.Cancel(sim.TaskTraining)
}

// Training returns the current run.
func (a *AILab) Training() sim.Training { return a.training }

// Selected returns the model shown in the pipeline.
func (a *AILab) Selected() sim.ModelInfo { return a.models[a.selected] }

// Update implements tea.Model.
func (a *AILab) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sim.TickMsg:
		if msg.Task == sim.TaskTraining && a.training.Running() {
			a.training.Step(a.env.Rand)
		}
	case tea.KeyMsg:
		if !a.IsFocused() {
			return a, nil
		}
		switch {
		case key.Matches(msg, a.keys.Toggle):
			a.training.Toggle()
			if a.training.Running() {
				return a, a.env.Sched.Start(sim.TaskTraining, a.env.Ticks.TrainingInterval())
			}
			a.env.Sched.Cancel(sim.TaskTraining)
		case key.Matches(msg, a.keys.PrevModel):
			a.selected = (a.selected + len(a.models) - 1) % len(a.models)
		case key.Matches(msg, a.keys.NextModel):
			a.selected = (a.selected + 1) % len(a.models)
		}
	}
	return a, nil
}

// Keybindings implements Panel.
func (a *AILab) Keybindings() []Keybinding {
	return []Keybinding{
		{Key: a.keys.Toggle, Description: "Pause or resume training"},
		{Key: a.keys.PrevModel, Description: "Previous model"},
		{Key: a.keys.NextModel, Description: "Next model"},
	}
}

// View implements tea.Model.
func (a *AILab) View() string {
	t := a.env.Theme
	w, h := a.Width(), a.Height()
	if w <= 0 || h <= 0 {
		return ""
	}

	lines := []string{titleBar(t, "ARTIFICIAL INTELLIGENCE LAB", "NODE: AI-CLUSTER-07 | GPU: 8x A100", w), ""}

	pipelineH := 10
	sideH := 10
	var top string
	if layout.TierForWidth(w) == layout.TierNarrow {
		top = lipgloss.JoinVertical(lipgloss.Left,
			box(t, "TRAINING PIPELINE", a.pipeline(t, inner(w)), w, pipelineH, a.IsFocused()),
			box(t, "RESOURCE USAGE", a.resources(t, inner(w)), w, sideH, false),
		)
	} else {
		cols := layout.Columns(w, 3, 1)
		left := cols[0] + cols[1] + 1
		top = row(
			box(t, "TRAINING PIPELINE", a.pipeline(t, inner(left)), left, pipelineH, a.IsFocused()),
			box(t, "RESOURCE USAGE", a.resources(t, inner(cols[2])), cols[2], sideH, false),
		)
	}
	lines = append(lines, top)

	rest := h - lipgloss.Height(strings.Join(lines, "\n"))
	if rest >= 5 {
		cols := layout.Columns(w, 2, 1)
		lines = append(lines, row(
			box(t, "MODEL REGISTRY", a.registry(t, inner(cols[0])), cols[0], rest, false),
			box(t, "DATASETS", a.datasets(t, inner(cols[1])), cols[1], rest, false),
		))
	}
	return components.FitToHeight(strings.Join(lines, "\n"), h)
}

func (a *AILab) pipeline(t theme.Theme, width int) string {
	m := a.models[a.selected]
	sel := lipgloss.NewStyle().Foreground(t.Overlay).Render("‹ ") +
		lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(m.Name) +
		lipgloss.NewStyle().Foreground(t.Overlay).Render(" ›")

	statusColor := t.Warning
	if a.training.Running() {
		statusColor = t.Success
	}
	stats := []struct {
		label, value string
		color        lipgloss.Color
	}{
		{"STATUS", strings.ToUpper(string(a.training.Status)), statusColor},
		{"EPOCH", fmt.Sprintf("%d/%d", a.training.Epoch, sim.TotalEpochs), t.Blue},
		{"LOSS", fmt.Sprintf("%.4f", a.training.Loss), t.Mauve},
		{"ACCURACY", fmt.Sprintf("%.1f%%", sim.ModelAccuracy), t.Teal},
	}
	cols := layout.Columns(width, len(stats), 1)
	cells := make([]string, len(stats))
	for i, s := range stats {
		cells[i] = lipgloss.NewStyle().Width(cols[i]).Render(
			lipgloss.NewStyle().Foreground(t.Overlay).Render(s.label) + "\n" +
				lipgloss.NewStyle().Foreground(s.color).Bold(true).Render(s.value))
	}

	g := components.Gauge{Label: "Training Progress", Value: a.training.Progress() * 100, Unit: "%", Width: width}
	return strings.Join([]string{sel, "", row(cells...), "", g.Render(t)}, "\n")
}

func (a *AILab) resources(t theme.Theme, width int) string {
	parts := make([]string, len(aiResources))
	for i, r := range aiResources {
		parts[i] = components.Gauge{Label: r.label, Value: r.value, Unit: "%", Width: width, Severity: true}.Render(t)
	}
	return strings.Join(parts, "\n")
}

func (a *AILab) registry(t theme.Theme, width int) string {
	lines := make([]string, 0, 2*len(a.models))
	for i, m := range a.models {
		name := m.Name
		style := lipgloss.NewStyle().Foreground(t.Text)
		if i == a.selected {
			style = style.Bold(true).Foreground(t.Primary)
			name = "▸ " + name
		}
		badge := lipgloss.NewStyle().Foreground(modelStatusColor(t, m.Status)).Render(strings.ToUpper(m.Status))
		lines = append(lines,
			spread(style.Render(name), badge, width),
			lipgloss.NewStyle().Foreground(t.Overlay).Render(fmt.Sprintf("  Accuracy: %.1f%%", m.Accuracy)),
		)
	}
	return strings.Join(lines, "\n")
}

func (a *AILab) datasets(t theme.Theme, width int) string {
	sets := sim.Datasets()
	lines := make([]string, 0, 2*len(sets))
	for _, d := range sets {
		badge := lipgloss.NewStyle().Foreground(modelStatusColor(t, d.Status)).Render(strings.ToUpper(d.Status))
		lines = append(lines,
			spread(lipgloss.NewStyle().Foreground(t.Text).Render(d.Name), badge, width),
			lipgloss.NewStyle().Foreground(t.Overlay).Render(fmt.Sprintf("  Size: %s  Samples: %s", d.Size, d.Samples)),
		)
	}
	return strings.Join(lines, "\n")
}

func modelStatusColor(t theme.Theme, status string) lipgloss.Color {
	switch status {
	case "training", "active":
		return t.Success
	case "processing", "paused":
		return t.Warning
	case "completed", "complete":
		return t.Blue
	default:
		return t.Overlay
	}
}

var _ Panel = (*AILab)(nil)
