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

type quantumKeys struct {
	Gate   key.Binding
	Run    key.Binding
	Clear  key.Binding
	Grow   key.Binding
	Shrink key.Binding
}

var defaultQuantumKeys = quantumKeys{
	Gate:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-0", "add gate")),
	Run:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run circuit")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Grow:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add qubit")),
	Shrink: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "remove qubit")),
}

// quantumResults is the canned recent-results feed.
var quantumResults = [][2]string{
	{"12:34:56", "Bell state prepared"},
	{"12:34:23", "GHZ state measured"},
	{"12:33:45", "Teleportation success"},
	{"12:33:12", "Error corrected"},
}

// QuantumLab is the quantum computing lab: a gate-sequence builder, a
// sampled view of the qubit register and the device's figures of merit.
type QuantumLab struct {
	PanelBase
	env     *Env
	keys    quantumKeys
	circuit sim.Circuit
	qubits  []sim.Qubit
}

// NewQuantumLab creates the quantum lab panel.
func NewQuantumLab(env *Env) *QuantumLab {
	return &QuantumLab{
		PanelBase: NewPanelBase(PanelConfig{ID: "quantum", Title: "QUANTUM COMPUTING LAB", MinWidth: 40, MinHeight: 12}),
		env:       env,
		keys:      defaultQuantumKeys,
		circuit:   sim.NewCircuit(),
	}
}

// Init implements tea.Model.
func (q *QuantumLab) Init() tea.Cmd { return nil }

// Mount takes a fresh register sample.
func (q *QuantumLab) Mount() tea.Cmd {
	q.resample()
	return nil
}

// Circuit returns the working circuit.
func (q *QuantumLab) Circuit() sim.Circuit { return q.circuit }

// Qubits returns the current register sample.
func (q *QuantumLab) Qubits() []sim.Qubit { return q.qubits }

func (q *QuantumLab) resample() {
	q.qubits = sim.SampleQubits(q.env.Rand, q.circuit.Qubits)
}

// Update implements tea.Model.
func (q *QuantumLab) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !q.IsFocused() {
		return q, nil
	}
	switch {
	case key.Matches(km, q.keys.Gate):
		idx := int(km.Runes[0]-'0') - 1
		if idx < 0 {
			idx = 9
		}
		if idx < len(sim.Gates) {
			q.circuit.Add(sim.Gates[idx])
		}
	case key.Matches(km, q.keys.Run):
		q.circuit.Run(q.env.Rand)
		q.resample()
	case key.Matches(km, q.keys.Clear):
		q.circuit.Clear()
	case key.Matches(km, q.keys.Grow):
		q.circuit.Resize(q.circuit.Qubits + 1)
		q.resample()
	case key.Matches(km, q.keys.Shrink):
		q.circuit.Resize(q.circuit.Qubits - 1)
		q.resample()
	}
	return q, nil
}

// Keybindings implements Panel.
func (q *QuantumLab) Keybindings() []Keybinding {
	return []Keybinding{
		{Key: q.keys.Gate, Description: "Append gate (1=H … 0=RZ)"},
		{Key: q.keys.Run, Description: "Run circuit"},
		{Key: q.keys.Clear, Description: "Clear circuit"},
		{Key: q.keys.Grow, Description: "Add qubit"},
		{Key: q.keys.Shrink, Description: "Remove qubit"},
	}
}

// View implements tea.Model.
func (q *QuantumLab) View() string {
	t := q.env.Theme
	w, h := q.Width(), q.Height()
	if w <= 0 || h <= 0 {
		return ""
	}

	meta := fmt.Sprintf("QPU: IBM-Q-07 | QUBITS: %d | TEMP: 15mK", q.circuit.Qubits)
	lines := []string{titleBar(t, "QUANTUM COMPUTING LAB", meta, w), ""}

	cols := layout.Columns(w, 3, 1)
	left := cols[0] + cols[1] + 1
	topH := 9
	if layout.TierForWidth(w) == layout.TierNarrow {
		lines = append(lines,
			box(t, "QUANTUM CIRCUIT BUILDER", q.builder(t, inner(w)), w, topH, q.IsFocused()),
			box(t, "SYSTEM PARAMETERS", q.parameters(t, inner(w)), w, topH, false),
		)
	} else {
		lines = append(lines, row(
			box(t, "QUANTUM CIRCUIT BUILDER", q.builder(t, inner(left)), left, topH, q.IsFocused()),
			box(t, "SYSTEM PARAMETERS", q.parameters(t, inner(cols[2])), cols[2], topH, false),
		))
	}

	rest := h - lipgloss.Height(strings.Join(lines, "\n"))
	if rest >= 5 {
		if layout.TierForWidth(w) == layout.TierNarrow {
			lines = append(lines, box(t, "QUBIT STATE MONITOR", q.register(t, inner(w), rest-3), w, rest, false))
		} else {
			lines = append(lines, row(
				box(t, "QUBIT STATE MONITOR", q.register(t, inner(left), rest-3), left, rest, false),
				box(t, "ERROR CORRECTION", q.correction(t, inner(cols[2])), cols[2], rest, false),
			))
		}
	}
	return components.FitToHeight(strings.Join(lines, "\n"), h)
}

func (q *QuantumLab) builder(t theme.Theme, width int) string {
	palette := make([]string, len(sim.Gates))
	for i, g := range sim.Gates {
		n := (i + 1) % 10
		palette[i] = lipgloss.NewStyle().Foreground(t.Overlay).Render(fmt.Sprintf("%d", n)) +
			lipgloss.NewStyle().Foreground(t.Mauve).Bold(true).Render(g)
	}

	seq := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true).Render("No gates added")
	if len(q.circuit.Gates) > 0 {
		seq = lipgloss.NewStyle().Foreground(t.Accent).Render(strings.Join(q.circuit.Gates, " → "))
	}

	stats := fmt.Sprintf("COHERENCE TIME %.1f μs   FIDELITY %.2f%%   GATES %d",
		q.circuit.Coherence, q.circuit.Fidelity, len(q.circuit.Gates))

	return strings.Join([]string{
		strings.Join(layout.Wrap(strings.Join(palette, " "), width), "\n"),
		"",
		lipgloss.NewStyle().Foreground(t.Subtext).Render("Circuit Sequence:"),
		layout.Clip(seq, width),
		"",
		lipgloss.NewStyle().Foreground(t.Text).Render(layout.Truncate(stats, width)),
	}, "\n")
}

func (q *QuantumLab) parameters(t theme.Theme, width int) string {
	return strings.Join([]string{
		field(t, "Temperature", "15.2 mK", width, t.Blue),
		field(t, "Error Rate", "0.23%", width, t.Warning),
		field(t, "Calibration", "OPTIMAL", width, t.Success),
		field(t, "Coherence", fmt.Sprintf("%.1f μs", q.circuit.Coherence), width, t.Teal),
		field(t, "Fidelity", fmt.Sprintf("%.2f%%", q.circuit.Fidelity), width, t.Mauve),
	}, "\n")
}

// register lays the qubit sample out in as many columns as fit.
func (q *QuantumLab) register(t theme.Theme, width, height int) string {
	if len(q.qubits) == 0 || height <= 0 {
		return ""
	}
	const cell = 22
	ncols := max(width/cell, 1)
	nrows := min((len(q.qubits)+ncols-1)/ncols, height)

	lines := make([]string, nrows)
	for r := range nrows {
		var b strings.Builder
		for c := range ncols {
			i := c*nrows + r
			if i >= len(q.qubits) {
				break
			}
			b.WriteString(layout.Fit(qubitCell(t, q.qubits[i]), cell))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func qubitCell(t theme.Theme, qb sim.Qubit) string {
	state := lipgloss.NewStyle().Foreground(t.Blue)
	if qb.One {
		state = state.Foreground(t.Peach)
	}
	s := lipgloss.NewStyle().Foreground(t.Subtext).Render(fmt.Sprintf("Q%-2d", qb.ID)) + " " +
		state.Render(qb.Ket()) + " " +
		lipgloss.NewStyle().Foreground(t.Text).Render(fmt.Sprintf("%3.0f%%", qb.Probability*100))
	if qb.Entangled >= 0 {
		s += " " + lipgloss.NewStyle().Foreground(t.Pink).Render(fmt.Sprintf("⟷Q%d", qb.Entangled))
	}
	return s
}

func (q *QuantumLab) correction(t theme.Theme, width int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render("Surface Code"),
		field(t, "Logical Qubits", "4", width, ""),
		field(t, "Distance", "3", width, ""),
		field(t, "Stabilizer Check", "All syndromes stable", width, t.Success),
		field(t, "Correction Rate", "94% success", width, t.Success),
		"",
		lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render("RECENT RESULTS"),
	}
	for _, r := range quantumResults {
		lines = append(lines, layout.Clip(
			lipgloss.NewStyle().Foreground(t.Overlay).Render(r[0])+" "+r[1], width))
	}
	return strings.Join(lines, "\n")
}

var _ Panel = (*QuantumLab)(nil)
