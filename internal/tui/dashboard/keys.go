package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the root model's global keybindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Terminal key.Binding
	Window   key.Binding
	Close    key.Binding
	Minimize key.Binding
	Nudge    [4]key.Binding // up, down, left, right
	Help     key.Binding
	Logout   key.Binding
	Back     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
	Sections [10]key.Binding
}

var dashKeys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open section")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus back")),
	Terminal: key.NewBinding(key.WithKeys("t", "f2"), key.WithHelp("t", "terminal")),
	Window:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open window")),
	Close:    key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close window")),
	Minimize: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "minimize window")),
	Nudge: [4]key.Binding{
		key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "move window up")),
		key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "move window down")),
		key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "move window left")),
		key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "move window right")),
	},
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Logout: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQ: key.NewBinding(key.WithKeys("ctrl+c")),
	Sections: [10]key.Binding{
		key.NewBinding(key.WithKeys("1")),
		key.NewBinding(key.WithKeys("2")),
		key.NewBinding(key.WithKeys("3")),
		key.NewBinding(key.WithKeys("4")),
		key.NewBinding(key.WithKeys("5")),
		key.NewBinding(key.WithKeys("6")),
		key.NewBinding(key.WithKeys("7")),
		key.NewBinding(key.WithKeys("8")),
		key.NewBinding(key.WithKeys("9")),
		key.NewBinding(key.WithKeys("0")),
	},
}

// nudgeDelta maps the Nudge bindings to cell offsets.
var nudgeDelta = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
