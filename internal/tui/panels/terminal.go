package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aetheronum/controlroom/internal/terminal"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

type terminalKeys struct {
	Submit key.Binding
	Prev   key.Binding
	Next   key.Binding
	PageUp key.Binding
	PageDn key.Binding
}

var defaultTerminalKeys = terminalKeys{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
	Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
	PageUp: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDn: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
}

// Terminal is the secure terminal drawer. Its console outlives the drawer
// being shown or hidden and is replaced on Reset.
type Terminal struct {
	PanelBase
	env     *Env
	keys    terminalKeys
	console *terminal.Console
	input   textinput.Model
	scroll  viewport.Model
}

// NewTerminal creates the terminal drawer with a fresh console.
func NewTerminal(env *Env) *Terminal {
	in := textinput.New()
	in.Prompt = "$ "
	in.Placeholder = "Enter command..."
	in.CharLimit = 256

	tm := &Terminal{
		PanelBase: NewPanelBase(PanelConfig{ID: "terminal", Title: "SECURE TERMINAL", MinWidth: 30, MinHeight: 5}),
		env:       env,
		keys:      defaultTerminalKeys,
		console:   terminal.NewConsole(),
		input:     in,
		scroll:    viewport.New(0, 0),
	}
	tm.sync()
	return tm
}

// Init implements tea.Model.
func (tm *Terminal) Init() tea.Cmd { return nil }

// Reset discards scrollback and recall.
func (tm *Terminal) Reset() {
	tm.console = terminal.NewConsole()
	tm.input.Reset()
	tm.sync()
}

// Lines returns the console scrollback.
func (tm *Terminal) Lines() []string { return tm.console.Lines() }

// CapturingText implements TextCapturer.
func (tm *Terminal) CapturingText() bool { return tm.IsFocused() }

// Focus implements Panel.
func (tm *Terminal) Focus() {
	tm.PanelBase.Focus()
	tm.input.Focus()
}

// Blur implements Panel.
func (tm *Terminal) Blur() {
	tm.PanelBase.Blur()
	tm.input.Blur()
}

// SetSize implements Panel.
func (tm *Terminal) SetSize(width, height int) {
	tm.PanelBase.SetSize(width, height)
	tm.input.Width = max(width-8, 4)
	// Border and title take 3 rows, the divider and input line 2 more.
	tm.scroll.Width = max(width-4, 1)
	tm.scroll.Height = max(height-5, 1)
	tm.sync()
}

// sync reloads the scrollback, wrapped to the drawer width.
func (tm *Terminal) sync() {
	var lines []string
	for _, l := range tm.console.Lines() {
		if l == "" || tm.scroll.Width <= 0 {
			lines = append(lines, l)
			continue
		}
		lines = append(lines, layout.Wrap(l, tm.scroll.Width)...)
	}
	tm.scroll.SetContent(strings.Join(lines, "\n"))
	tm.scroll.GotoBottom()
}

// Update implements tea.Model.
func (tm *Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !tm.IsFocused() {
		return tm, nil
	}
	switch {
	case key.Matches(km, tm.keys.Submit):
		res, ok := tm.console.Submit(tm.input.Value(), tm.env.UserName())
		tm.input.Reset()
		if ok {
			tm.env.Store.Dispatch(res.Actions()...)
			tm.sync()
		}
		return tm, nil
	case key.Matches(km, tm.keys.Prev):
		if line, ok := tm.console.Previous(); ok {
			tm.input.SetValue(line)
			tm.input.CursorEnd()
		}
		return tm, nil
	case key.Matches(km, tm.keys.Next):
		if line, ok := tm.console.Next(); ok {
			tm.input.SetValue(line)
			tm.input.CursorEnd()
		}
		return tm, nil
	case key.Matches(km, tm.keys.PageUp):
		tm.scroll.HalfViewUp()
		return tm, nil
	case key.Matches(km, tm.keys.PageDn):
		tm.scroll.HalfViewDown()
		return tm, nil
	}
	var cmd tea.Cmd
	tm.input, cmd = tm.input.Update(km)
	return tm, cmd
}

// Keybindings implements Panel.
func (tm *Terminal) Keybindings() []Keybinding {
	return []Keybinding{
		{Key: tm.keys.Submit, Description: "Run command"},
		{Key: tm.keys.Prev, Description: "Previous command"},
		{Key: tm.keys.Next, Description: "Next command"},
		{Key: tm.keys.PageUp, Description: "Scroll output"},
	}
}

// View implements tea.Model.
func (tm *Terminal) View() string {
	t := tm.env.Theme
	w, h := tm.Width(), tm.Height()
	if w <= 0 || h <= 0 {
		return ""
	}
	tm.input.PromptStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	tm.input.TextStyle = lipgloss.NewStyle().Foreground(t.Text)

	body := strings.Join([]string{
		colorScrollback(t, tm.scroll.View()),
		lipgloss.NewStyle().Foreground(t.Surface1).Render(strings.Repeat("─", max(w-4, 0))),
		tm.input.View(),
	}, "\n")
	return box(t, "SECURE TERMINAL", body, w, h, tm.IsFocused())
}

// colorScrollback highlights echoed commands and the banner.
func colorScrollback(t theme.Theme, view string) string {
	lines := strings.Split(view, "\n")
	for i, l := range lines {
		trimmed := strings.TrimRight(l, " ")
		switch {
		case strings.HasPrefix(trimmed, "$ "):
			lines[i] = lipgloss.NewStyle().Foreground(t.Accent).Render(trimmed)
		case trimmed == terminal.BannerTitle:
			lines[i] = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(trimmed)
		case strings.HasPrefix(trimmed, "Command not found"):
			lines[i] = lipgloss.NewStyle().Foreground(t.Error).Render(trimmed)
		default:
			lines[i] = lipgloss.NewStyle().Foreground(t.Green).Render(trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

var (
	_ Panel        = (*Terminal)(nil)
	_ TextCapturer = (*Terminal)(nil)
)
