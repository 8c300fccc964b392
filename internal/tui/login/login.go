// Package login is the control room's access screen: personnel selection,
// a passcode gate and a simulated biometric scan.
package login

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/sim"
	"github.com/aetheronum/controlroom/internal/store"
	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/styles"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// LogModule tags authentication log entries.
const LogModule = "AUTH"

// Version is shown in the footer.
const Version = "2.47.3"

// Dispatcher receives the actions a successful login produces.
type Dispatcher interface {
	Dispatch(actions ...store.Action)
}

// Step is a stage of the login flow.
type Step int

const (
	StepSelect Step = iota
	StepPasscode
	StepBiometric
	StepScanning
)

func (s Step) String() string {
	switch s {
	case StepSelect:
		return "select"
	case StepPasscode:
		return "passcode"
	case StepBiometric:
		return "biometric"
	case StepScanning:
		return "scanning"
	default:
		return "unknown"
	}
}

// AuthenticatedMsg is emitted once the scan completes and the user has been
// logged in.
type AuthenticatedMsg struct {
	User model.User
}

type scanDoneMsg struct {
	gen uint64
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

var defaultKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// Options configures a login screen.
type Options struct {
	Users       []model.User
	MinPasscode int
	ScanDelay   time.Duration
	Node        string
	Theme       theme.Theme
	Now         func() time.Time
}

// Model is the login screen.
type Model struct {
	opts     Options
	store    Dispatcher
	keys     keyMap
	step     Step
	cursor   int
	passcode textinput.Model
	spinner  spinner.Model
	gen      uint64
	width    int
	height   int
}

// New creates the login screen. Successful logins are dispatched to d.
func New(d Dispatcher, opts Options) *Model {
	if opts.MinPasscode <= 0 {
		opts.MinPasscode = 6
	}
	if opts.ScanDelay <= 0 {
		opts.ScanDelay = 2 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	pc := textinput.New()
	pc.Placeholder = fmt.Sprintf("Enter %d+ digit passcode", opts.MinPasscode)
	pc.EchoMode = textinput.EchoPassword
	pc.EchoCharacter = '•'
	pc.Prompt = "▸ "
	pc.CharLimit = 64
	pc.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		opts:     opts,
		store:    d,
		keys:     defaultKeys,
		passcode: pc,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Step returns the current stage.
func (m *Model) Step() Step { return m.step }

// Selected returns the highlighted user.
func (m *Model) Selected() (model.User, bool) {
	if m.cursor < 0 || m.cursor >= len(m.opts.Users) {
		return model.User{}, false
	}
	return m.opts.Users[m.cursor], true
}

// SetSize records the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// SetTheme switches the palette.
func (m *Model) SetTheme(t theme.Theme) {
	m.opts.Theme = t
}

// Reset returns to personnel selection and clears the passcode. Any scan
// in flight is abandoned.
func (m *Model) Reset() {
	m.gen++
	m.step = StepSelect
	m.passcode.Reset()
	m.passcode.Blur()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case scanDoneMsg:
		if msg.gen != m.gen || m.step != StepScanning {
			return m, nil
		}
		return m, m.authenticate()

	case spinner.TickMsg:
		if m.step != StepScanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Back) {
		m.back()
		return nil
	}

	switch m.step {
	case StepSelect:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(m.opts.Users)-1)
		case key.Matches(msg, m.keys.Select):
			if _, ok := m.Selected(); ok {
				m.step = StepPasscode
				m.passcode.Reset()
				return m.passcode.Focus()
			}
		}

	case StepPasscode:
		if msg.Type == tea.KeyEnter {
			if !m.passcodeReady() {
				return nil
			}
			m.passcode.Blur()
			m.step = StepBiometric
			return nil
		}
		var cmd tea.Cmd
		m.passcode, cmd = m.passcode.Update(msg)
		return cmd

	case StepBiometric:
		if key.Matches(msg, m.keys.Select) {
			return m.startScan()
		}
	}
	return nil
}

func (m *Model) back() {
	switch m.step {
	case StepPasscode:
		m.passcode.Reset()
		m.passcode.Blur()
		m.step = StepSelect
	case StepBiometric:
		m.step = StepPasscode
		m.passcode.Focus()
	case StepScanning:
		m.gen++
		m.step = StepBiometric
	}
}

func (m *Model) startScan() tea.Cmd {
	m.step = StepScanning
	m.gen++
	gen := m.gen
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(m.opts.ScanDelay, func(time.Time) tea.Msg { return scanDoneMsg{gen: gen} }),
	)
}

func (m *Model) authenticate() tea.Cmd {
	user, ok := m.Selected()
	if !ok {
		m.Reset()
		return nil
	}
	now := m.opts.Now()
	user.LastLogin = now
	m.store.Dispatch(
		store.Login{User: user},
		store.AddLog{Entry: sim.Event(LogModule, fmt.Sprintf("User %s authenticated successfully", user.Name), user.Name, now)},
	)
	m.Reset()
	return func() tea.Msg { return AuthenticatedMsg{User: user} }
}

// View implements tea.Model.
func (m *Model) View() string {
	t := m.opts.Theme
	const cardWidth = 56
	w := min(cardWidth, max(m.width-2, 24))

	title := styles.GradientText("AETHERONUM RESEARCH LAB", string(t.Primary), string(t.Accent))
	sub := lipgloss.NewStyle().Foreground(t.Overlay).Render("CLASSIFIED SYSTEM ACCESS")

	var body string
	switch m.step {
	case StepSelect, StepPasscode:
		body = m.selectView(t, w-4)
	default:
		body = m.biometricView(t)
	}

	footer := lipgloss.NewStyle().Foreground(t.Overlay).Render(
		fmt.Sprintf("SYSTEM VERSION %s | NODE: %s | SECURE CONNECTION", Version, m.opts.Node))

	content := strings.Join([]string{
		lipgloss.PlaceHorizontal(w-4, lipgloss.Center, lipgloss.NewStyle().Bold(true).Render(title)),
		lipgloss.PlaceHorizontal(w-4, lipgloss.Center, sub),
		"",
		body,
		"",
		components.Divider(t, w-4),
		lipgloss.PlaceHorizontal(w-4, lipgloss.Center, footer),
	}, "\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Surface2).
		Padding(0, 1).
		Width(w - 2).
		Render(content)

	if m.width <= 0 || m.height <= 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m *Model) selectView(t theme.Theme, width int) string {
	label := lipgloss.NewStyle().Foreground(t.Subtext).Bold(true)
	lines := []string{label.Render("SELECT RESEARCH PERSONNEL")}
	for i, u := range m.opts.Users {
		marker := "  "
		name := lipgloss.NewStyle().Foreground(t.Text)
		if i == m.cursor {
			marker = lipgloss.NewStyle().Foreground(t.Primary).Render("▸ ")
			name = name.Bold(true).Foreground(t.Primary)
		}
		cl := lipgloss.NewStyle().Foreground(clearanceColor(t, u.ClearanceLevel)).Render(fmt.Sprintf("CL-%d", u.ClearanceLevel))
		left := marker + name.Render(u.Name) + lipgloss.NewStyle().Foreground(t.Overlay).Render("  "+u.Department)
		gap := max(width-lipgloss.Width(left)-lipgloss.Width(cl), 1)
		lines = append(lines, left+strings.Repeat(" ", gap)+cl)
	}

	if m.step == StepPasscode {
		hint := lipgloss.NewStyle().Foreground(t.Overlay)
		if m.passcodeReady() {
			hint = hint.Foreground(t.Success)
		}
		lines = append(lines,
			"",
			label.Render("SECURITY PASSCODE"),
			m.passcode.View(),
			hint.Render("[enter] PROCEED TO BIOMETRIC SCAN"),
		)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) biometricView(t theme.Theme) string {
	scanning := m.step == StepScanning
	icon := lipgloss.NewStyle().Foreground(t.Overlay).Render("◎")
	status := "Place finger on scanner"
	action := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("[enter] INITIATE SCAN")
	if scanning {
		icon = lipgloss.NewStyle().Foreground(t.Success).Render("◉")
		status = "Scanning in progress..."
		action = m.spinner.View() + " " + lipgloss.NewStyle().Foreground(t.Success).Render("Authenticating...")
	}
	return strings.Join([]string{
		icon,
		lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render("BIOMETRIC VERIFICATION"),
		lipgloss.NewStyle().Foreground(t.Subtext).Render(status),
		"",
		action,
	}, "\n")
}

func clearanceColor(t theme.Theme, level int) lipgloss.Color {
	switch {
	case level >= 5:
		return t.Critical
	case level >= 4:
		return t.Peach
	case level >= 3:
		return t.Yellow
	default:
		return t.Green
	}
}

// Help lists the keys for the current step.
func (m *Model) Help() []components.KeyHint {
	switch m.step {
	case StepSelect:
		return components.Hints(m.keys.Up, m.keys.Down, m.keys.Select)
	case StepPasscode:
		return []components.KeyHint{{Key: "enter", Desc: "continue"}, {Key: "esc", Desc: "back"}}
	case StepBiometric:
		return []components.KeyHint{{Key: "enter", Desc: "scan"}, {Key: "esc", Desc: "back"}}
	default:
		return []components.KeyHint{{Key: "esc", Desc: "cancel"}}
	}
}

// passcodeReady reports whether the passcode has the minimum number of
// characters. Multi-byte characters count once.
func (m *Model) passcodeReady() bool {
	return utf8.RuneCountInString(m.passcode.Value()) >= m.opts.MinPasscode
}
