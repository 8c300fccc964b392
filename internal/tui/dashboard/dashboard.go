// Package dashboard is the control room's root bubbletea model. It gates
// everything behind the login screen, then lays out the sidebar, header,
// active section, terminal drawer and floating window layer.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aetheronum/controlroom/internal/config"
	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/nav"
	"github.com/aetheronum/controlroom/internal/sim"
	"github.com/aetheronum/controlroom/internal/store"
	"github.com/aetheronum/controlroom/internal/tui/icons"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/login"
	"github.com/aetheronum/controlroom/internal/tui/panels"
	"github.com/aetheronum/controlroom/internal/tui/theme"
	"github.com/aetheronum/controlroom/internal/wm"
)

// NoticeDuration is how long a footer notice stays up.
const NoticeDuration = 3 * time.Second

// ConfigReloadedMsg carries a config file that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Focus is the area receiving keys.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusContent
	FocusTerminal
)

func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "sidebar"
	case FocusContent:
		return "content"
	case FocusTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Options configures the root model.
type Options struct {
	Config  *config.Config
	Profile *config.Profile
	// Theme overrides the configured theme name when set.
	Theme  string
	Logger *slog.Logger
	Rand   *rand.Rand
	Now    func() time.Time
}

// Model is the root model.
type Model struct {
	cfg       *config.Config
	themeName string
	logger    *slog.Logger

	env   *panels.Env
	store *store.Store
	sched *sim.Scheduler
	wm    *wm.Manager
	nav   *nav.Navigator
	login *login.Model

	panels  map[string]panels.Panel
	current panels.Panel
	term    *panels.Terminal

	termOpen  bool
	focus     Focus
	cursor    int
	showHelp  bool
	session   string
	widgetSeq int

	notice    string
	noticeGen uint64

	width  int
	height int
	keys   KeyMap
	icons  icons.IconSet
}

// New builds the root model. Nil options fall back to the built-in config
// and lab profile.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	applyEnvOverrides(cfg)
	profile := opts.Profile
	if profile == nil {
		profile = config.DefaultProfile()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = cfg.Theme
	}
	th := theme.Resolve(themeName)

	seed := profile.ProjectSeed()
	st := store.New(store.InitialState(seed), store.WithLogger(logger))
	env := &panels.Env{
		Store: st,
		Sched: sim.NewScheduler(),
		Rand:  rng,
		Theme: th,
		Ticks: cfg.Ticks,
		Seed:  seed,
		Now:   now,
	}

	m := &Model{
		cfg:       cfg,
		themeName: opts.Theme,
		logger:    logger,
		env:       env,
		store:     st,
		sched:     env.Sched,
		wm:        wm.New(st),
		nav:       nav.NewNavigator(),
		term:      panels.NewTerminal(env),
		keys:      dashKeys,
		icons:     icons.Detect(),
		width:     80,
		height:    24,
	}
	m.login = login.New(st, login.Options{
		Users:       profile.Users(now()),
		MinPasscode: cfg.Login.MinPasscode,
		ScanDelay:   cfg.Ticks.ScanDelay(),
		Node:        cfg.Node,
		Theme:       th,
		Now:         now,
	})
	m.panels = map[string]panels.Panel{}
	for _, p := range []panels.Panel{
		panels.NewDashboard(env),
		panels.NewAILab(env),
		panels.NewQuantumLab(env),
		panels.NewOSLab(env),
		panels.NewNotebook(env),
	} {
		m.panels[p.Config().ID] = p
	}
	return m
}

// Store exposes the application state.
func (m *Model) Store() *store.Store { return m.store }

// Focused returns the area receiving keys.
func (m *Model) Focused() Focus { return m.focus }

// Section returns the active section.
func (m *Model) Section() nav.Section { return m.nav.Active() }

// TerminalOpen reports whether the terminal drawer is shown.
func (m *Model) TerminalOpen() bool { return m.termOpen }

// Notice returns the footer notice, if any.
func (m *Model) Notice() string { return m.notice }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Aetheronum Research Lab")
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.login.SetSize(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case sim.TickMsg:
		next, ok := m.sched.Accept(msg)
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		if m.current != nil {
			_, cmd = m.current.Update(msg)
		}
		return m, tea.Batch(next, cmd)

	case noticeExpiredMsg:
		if msg.gen == m.noticeGen {
			m.notice = ""
		}
		return m, nil

	case login.AuthenticatedMsg:
		return m, m.enter(msg.User)
	}

	if !m.store.State().IsAuthenticated {
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.ForceQ) {
			return m, m.quit()
		}
		_, cmd := m.login.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Everything else (cursor blink, spinner frames) goes to whoever has
	// focus.
	return m, m.forward(msg)
}

// enter starts a session for user.
func (m *Model) enter(user model.User) tea.Cmd {
	m.session = fmt.Sprintf("%06d", m.env.Now().UnixMilli()%1_000_000)
	m.nav.Reset()
	m.cursor = 0
	m.showHelp = false
	m.termOpen = false
	m.logger.Info("session started", "user", user.Name, "clearance", user.ClearanceLevel)
	cmd := m.mount(m.nav.Active().View())
	m.setFocus(FocusContent)
	return cmd
}

// mount makes view the visible panel, stopping the previous one's timers.
func (m *Model) mount(view string) tea.Cmd {
	next, ok := m.panels[view]
	if !ok {
		next = m.panels[nav.Dashboard]
	}
	if next == m.current {
		return nil
	}
	if m.current != nil {
		m.current.Blur()
		m.current.Unmount()
	}
	m.current = next
	m.resize()
	if m.focus == FocusContent {
		m.current.Focus()
	}
	return m.current.Mount()
}

// navigate switches sections, posting a notice when access is refused.
func (m *Model) navigate(id string) tea.Cmd {
	if err := m.nav.Navigate(m.store.State().User, id); err != nil {
		if errors.Is(err, nav.ErrInsufficientClearance) {
			s, _ := nav.Lookup(id)
			return m.flash(fmt.Sprintf("ACCESS DENIED: %s requires CL-%d", s.Label, s.Clearance))
		}
		m.logger.Warn("navigation failed", "section", id, "error", err)
		return nil
	}
	for i, s := range nav.Sections() {
		if s.ID == id {
			m.cursor = i
		}
	}
	return m.mount(m.nav.Active().View())
}

func (m *Model) setFocus(f Focus) {
	if f == FocusTerminal && !m.termOpen {
		f = FocusSidebar
	}
	m.focus = f
	if m.current != nil {
		m.current.Blur()
	}
	m.term.Blur()
	switch f {
	case FocusContent:
		if m.current != nil {
			m.current.Focus()
		}
	case FocusTerminal:
		m.term.Focus()
	}
}

func (m *Model) cycleFocus(delta int) {
	order := []Focus{FocusSidebar, FocusContent}
	if m.termOpen {
		order = append(order, FocusTerminal)
	}
	i := 0
	for j, f := range order {
		if f == m.focus {
			i = j
		}
	}
	m.setFocus(order[(i+delta+len(order))%len(order)])
}

func (m *Model) toggleTerminal() {
	m.termOpen = !m.termOpen
	m.resize()
	if m.termOpen {
		m.setFocus(FocusTerminal)
	} else if m.focus == FocusTerminal {
		m.setFocus(FocusContent)
	}
}

// capturing reports whether the focused area is taking text input.
func (m *Model) capturing() bool {
	var target any
	switch m.focus {
	case FocusTerminal:
		target = m.term
	case FocusContent:
		target = m.current
	}
	tc, ok := target.(panels.TextCapturer)
	return ok && tc.CapturingText()
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusTerminal:
		_, cmd = m.term.Update(msg)
	case FocusContent:
		if m.current != nil {
			_, cmd = m.current.Update(msg)
		}
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQ) {
		return m.quit()
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.showHelp = false
		}
		return nil
	}

	if m.capturing() {
		if m.focus == FocusTerminal {
			switch {
			case msg.Type == tea.KeyF2:
				m.toggleTerminal()
				return nil
			case key.Matches(msg, m.keys.Next, m.keys.Prev):
				m.cycleFocus(1)
				return nil
			case key.Matches(msg, m.keys.Back):
				m.setFocus(FocusContent)
				return nil
			}
		}
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
		return nil
	case key.Matches(msg, m.keys.Terminal):
		m.toggleTerminal()
		return nil
	case key.Matches(msg, m.keys.Window):
		m.openWidget()
		return nil
	case key.Matches(msg, m.keys.Close):
		if w, ok := m.wm.Topmost(); ok {
			m.wm.Close(w.ID)
		}
		return nil
	case key.Matches(msg, m.keys.Minimize):
		if w, ok := m.wm.Topmost(); ok {
			m.wm.ToggleMinimize(w.ID)
		}
		return nil
	case key.Matches(msg, m.keys.Logout):
		return m.logout()
	}
	for i, b := range m.keys.Nudge {
		if key.Matches(msg, b) {
			if w, ok := m.wm.Topmost(); ok {
				m.wm.Nudge(w.ID, nudgeDelta[i][0], nudgeDelta[i][1])
			}
			return nil
		}
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.forward(msg)
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	sections := nav.Sections()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(sections)-1)
	case key.Matches(msg, m.keys.Enter):
		return m.navigate(sections[m.cursor].ID)
	default:
		for i, b := range m.keys.Sections {
			if key.Matches(msg, b) && i < len(sections) {
				m.cursor = i
				return m.navigate(sections[i].ID)
			}
		}
	}
	return nil
}

// openWidget opens the next floating window kind, cascading positions.
func (m *Model) openWidget() {
	kinds := panels.Widgets()
	w := kinds[m.widgetSeq%len(kinds)]
	step := m.widgetSeq % 8
	m.widgetSeq++

	x := m.sidebarWidth() + 4 + 3*step
	y := headerHeight + 1 + step
	m.wm.Open(w.Title, w.Component, model.Position{X: x, Y: y}, w.Size)
}

func (m *Model) logout() tea.Cmd {
	st := m.store.State()
	if st.User == nil {
		return nil
	}
	name := st.User.Name
	if m.current != nil {
		m.current.Blur()
		m.current.Unmount()
		m.current = nil
	}
	m.sched.CancelAll()
	m.store.Dispatch(
		store.Logout{},
		store.AddLog{Entry: sim.Event(login.LogModule, fmt.Sprintf("User %s logged out", name), name, m.env.Now())},
	)
	m.term.Reset()
	m.term.Blur()
	m.termOpen = false
	m.showHelp = false
	m.nav.Reset()
	m.login.Reset()
	m.focus = FocusSidebar
	m.logger.Info("session ended", "user", name)
	return nil
}

// quit stops every timer, releases any pointer grab and closes the store.
func (m *Model) quit() tea.Cmd {
	m.sched.CancelAll()
	if m.current != nil {
		m.current.Unmount()
	}
	m.wm.Teardown()
	m.store.Close()
	return tea.Quit
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	applyEnvOverrides(cfg)
	m.cfg = cfg
	name := m.themeName
	if name == "" {
		name = cfg.Theme
	}
	th := theme.Resolve(name)
	m.env.Theme = th
	m.env.Ticks = cfg.Ticks
	m.login.SetTheme(th)
	m.sched.SetInterval(sim.TaskMetrics, cfg.Ticks.MetricsInterval())
	m.sched.SetInterval(sim.TaskLogs, cfg.Ticks.LogsInterval())
	m.sched.SetInterval(sim.TaskTraining, cfg.Ticks.TrainingInterval())
	m.logger.Info("config applied", "theme", name, "node", cfg.Node)
}

// resize hands the current geometry to the visible panels.
func (m *Model) resize() {
	w, contentH, drawerH := m.regions()
	if m.current != nil {
		m.current.SetSize(w, contentH)
	}
	m.term.SetSize(w, drawerH)
}

func (m *Model) sidebarWidth() int {
	return layout.SidebarWidth(layout.TierForWidth(m.width))
}

// regions returns the main column width and the heights of the section
// and terminal drawer areas.
func (m *Model) regions() (width, content, drawer int) {
	width = max(m.width-m.sidebarWidth(), 1)
	avail := max(m.height-headerHeight-footerHeight, 1)
	if m.termOpen {
		drawer = min(max(avail/3, 6), 14)
		if drawer >= avail {
			drawer = avail / 2
		}
	}
	return width, max(avail-drawer, 1), drawer
}
