package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/notebook"
	"github.com/aetheronum/controlroom/internal/store"
	"github.com/aetheronum/controlroom/internal/tui/components"
	"github.com/aetheronum/controlroom/internal/tui/layout"
	"github.com/aetheronum/controlroom/internal/tui/theme"
)

// snippetLen is how much note content the list shows.
const snippetLen = 100

type notebookMode int

const (
	modeBrowse notebookMode = iota
	modeSearch
	modeNew
	modeEdit
)

type notebookKeys struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	New    key.Binding
	Edit   key.Binding
	Save   key.Binding
	Switch key.Binding
	Cancel key.Binding
	Submit key.Binding
	PageUp key.Binding
	PageDn key.Binding
}

var defaultNotebookKeys = notebookKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
	Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "content/tags")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	PageUp: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll preview")),
	PageDn: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll preview")),
}

// Notebook is the research notes section: a searchable note list on the
// left and the selected note's preview or editor on the right.
type Notebook struct {
	PanelBase
	env  *Env
	keys notebookKeys
	mode notebookMode

	selected string

	search  textinput.Model
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model
	// onContent is true when the editor, not the tag field, has focus.
	onContent bool
	preview viewport.Model

	renderer *notebook.Renderer
	style    string
}

// NewNotebook creates the notebook panel.
func NewNotebook(env *Env) *Notebook {
	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = "Search notes..."

	title := textinput.New()
	title.Prompt = "+ "
	title.Placeholder = "New note title..."

	tags := textinput.New()
	tags.Prompt = "# "
	tags.Placeholder = "ai, quantum, research..."

	content := textarea.New()
	content.Placeholder = "Write your research notes here..."
	content.ShowLineNumbers = false
	content.CharLimit = 0

	return &Notebook{
		PanelBase: NewPanelBase(PanelConfig{ID: "notebook", Title: "RESEARCH NOTES", MinWidth: 50, MinHeight: 12}),
		env:       env,
		keys:      defaultNotebookKeys,
		search:    search,
		title:     title,
		tags:      tags,
		content:   content,
		preview:   viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (n *Notebook) Init() tea.Cmd { return nil }

// CapturingText implements TextCapturer.
func (n *Notebook) CapturingText() bool { return n.IsFocused() && n.mode != modeBrowse }

// Editing reports whether the editor is open.
func (n *Notebook) Editing() bool { return n.mode == modeEdit }

// SelectedID returns the selected note id, or "".
func (n *Notebook) SelectedID() string { return n.selected }

// Visible returns the notes matching the current search.
func (n *Notebook) Visible() []model.Note {
	return notebook.Filter(n.env.Store.State().Notes, n.search.Value())
}

// Unmount drops any unsaved edit and closes text inputs.
func (n *Notebook) Unmount() {
	n.setMode(modeBrowse)
}

// SetSize implements Panel.
func (n *Notebook) SetSize(width, height int) {
	n.PanelBase.SetSize(width, height)
	_, right := n.columns()
	n.search.Width = max(n.listWidth()-6, 4)
	n.title.Width = n.search.Width
	n.tags.Width = max(inner(right)-4, 4)
	n.content.SetWidth(inner(right))
	// Detail rows: border and title take 3, the meta header 2; the
	// editor also shows the tag field and a spacer, the preview a tag line.
	n.content.SetHeight(max(height-7, 1))
	n.preview.Width = inner(right)
	n.preview.Height = max(height-6, 1)
	n.refreshPreview()
}

func (n *Notebook) columns() (int, int) {
	w := n.Width()
	left := min(max(w/3, 28), w/2)
	return left, max(w-left-1, 1)
}

func (n *Notebook) listWidth() int {
	left, _ := n.columns()
	return inner(left)
}

func (n *Notebook) setMode(m notebookMode) {
	n.search.Blur()
	n.title.Blur()
	n.tags.Blur()
	n.content.Blur()
	n.mode = m
}

// Update implements tea.Model.
func (n *Notebook) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !n.IsFocused() {
		return n, nil
	}
	switch n.mode {
	case modeSearch:
		return n, n.updateSearch(km)
	case modeNew:
		return n, n.updateNew(km)
	case modeEdit:
		return n, n.updateEdit(km)
	default:
		return n, n.updateBrowse(km)
	}
}

func (n *Notebook) updateBrowse(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, n.keys.Up):
		n.move(-1)
	case key.Matches(km, n.keys.Down):
		n.move(1)
	case key.Matches(km, n.keys.Search):
		n.setMode(modeSearch)
		return n.search.Focus()
	case key.Matches(km, n.keys.New):
		n.setMode(modeNew)
		return n.title.Focus()
	case key.Matches(km, n.keys.Edit):
		if note, ok := n.env.Store.State().Note(n.selected); ok {
			return n.startEditing(note)
		}
	case key.Matches(km, n.keys.Cancel):
		n.search.Reset()
	case key.Matches(km, n.keys.PageUp):
		n.preview.HalfViewUp()
	case key.Matches(km, n.keys.PageDn):
		n.preview.HalfViewDown()
	}
	return nil
}

func (n *Notebook) updateSearch(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, n.keys.Cancel):
		n.search.Reset()
		n.setMode(modeBrowse)
		return nil
	case key.Matches(km, n.keys.Submit):
		n.setMode(modeBrowse)
		if vis := n.Visible(); len(vis) > 0 && n.indexOf(vis, n.selected) < 0 {
			n.selectNote(vis[0].ID)
		}
		return nil
	}
	var cmd tea.Cmd
	n.search, cmd = n.search.Update(km)
	return cmd
}

func (n *Notebook) updateNew(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, n.keys.Cancel):
		n.title.Reset()
		n.setMode(modeBrowse)
		return nil
	case key.Matches(km, n.keys.Submit):
		note, ok := notebook.NewNote(n.title.Value(), n.env.now(), uuid.NewString())
		if !ok {
			return nil
		}
		n.env.Store.Dispatch(store.AddNote{Note: note})
		n.title.Reset()
		return n.startEditing(note)
	}
	var cmd tea.Cmd
	n.title, cmd = n.title.Update(km)
	return cmd
}

func (n *Notebook) updateEdit(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, n.keys.Cancel):
		n.setMode(modeBrowse)
		n.refreshPreview()
		return nil
	case key.Matches(km, n.keys.Save):
		n.save()
		return nil
	case key.Matches(km, n.keys.Switch):
		n.onContent = !n.onContent
		if n.onContent {
			n.tags.Blur()
			return n.content.Focus()
		}
		n.content.Blur()
		return n.tags.Focus()
	}
	var cmd tea.Cmd
	if n.onContent {
		n.content, cmd = n.content.Update(km)
	} else {
		n.tags, cmd = n.tags.Update(km)
	}
	return cmd
}

func (n *Notebook) startEditing(note model.Note) tea.Cmd {
	n.selectNote(note.ID)
	n.setMode(modeEdit)
	n.content.SetValue(note.Content)
	n.tags.SetValue(notebook.JoinTags(note.Tags))
	n.onContent = true
	return n.content.Focus()
}

func (n *Notebook) save() {
	note, ok := n.env.Store.State().Note(n.selected)
	if !ok {
		n.setMode(modeBrowse)
		return
	}
	edit := notebook.Edit{Note: note, Content: n.content.Value(), Tags: n.tags.Value()}
	n.env.Store.Dispatch(notebook.Save(edit, n.env.UserName(), n.env.now(), uuid.NewString)...)
	n.setMode(modeBrowse)
	n.refreshPreview()
}

func (n *Notebook) move(delta int) {
	vis := n.Visible()
	if len(vis) == 0 {
		return
	}
	i := n.indexOf(vis, n.selected)
	if i < 0 {
		i = 0
	} else {
		i = max(0, min(len(vis)-1, i+delta))
	}
	n.selectNote(vis[i].ID)
}

func (n *Notebook) indexOf(notes []model.Note, id string) int {
	for i, note := range notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}

func (n *Notebook) selectNote(id string) {
	if id != n.selected {
		n.preview.GotoTop()
	}
	n.selected = id
	n.refreshPreview()
}

func (n *Notebook) refreshPreview() {
	note, ok := n.env.Store.State().Note(n.selected)
	if !ok {
		n.preview.SetContent("")
		return
	}
	style := n.env.Theme.GlamourStyle()
	if n.renderer == nil || style != n.style {
		n.renderer = notebook.NewRenderer(style)
		n.style = style
	}
	n.preview.SetContent(n.renderer.Render(note.Content, max(n.preview.Width, 10)))
}

// Keybindings implements Panel.
func (n *Notebook) Keybindings() []Keybinding {
	if n.mode == modeEdit {
		return []Keybinding{
			{Key: n.keys.Save, Description: "Save note"},
			{Key: n.keys.Switch, Description: "Switch between content and tags"},
			{Key: n.keys.Cancel, Description: "Discard changes"},
		}
	}
	return []Keybinding{
		{Key: n.keys.Up, Description: "Previous note"},
		{Key: n.keys.Down, Description: "Next note"},
		{Key: n.keys.Search, Description: "Search notes"},
		{Key: n.keys.New, Description: "Create a note"},
		{Key: n.keys.Edit, Description: "Edit selected note"},
		{Key: n.keys.PageDn, Description: "Scroll preview"},
	}
}

// View implements tea.Model.
func (n *Notebook) View() string {
	t := n.env.Theme
	w, h := n.Width(), n.Height()
	if w <= 0 || h <= 0 {
		return ""
	}
	left, right := n.columns()
	return components.FitToHeight(row(
		box(t, "RESEARCH NOTES", n.listView(t, inner(left), h-3), left, h, n.IsFocused() && n.mode != modeEdit),
		n.detailView(t, right, h),
	), h)
}

func (n *Notebook) listView(t theme.Theme, width, height int) string {
	lines := []string{n.search.View(), n.title.View(), components.Divider(t, width)}

	vis := n.Visible()
	if len(vis) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Overlay).Render("No notes found"))
		return strings.Join(lines, "\n")
	}

	const itemH = 4
	room := max((height-len(lines))/itemH, 1)
	cur := max(n.indexOf(vis, n.selected), 0)
	start := max(0, min(cur-room+1, len(vis)-room))
	for i := start; i < min(len(vis), start+room); i++ {
		lines = append(lines, noteItem(t, vis[i], vis[i].ID == n.selected, width)...)
	}
	return strings.Join(lines, "\n")
}

func noteItem(t theme.Theme, note model.Note, selected bool, width int) []string {
	marker := "  "
	title := lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	if selected {
		marker = lipgloss.NewStyle().Foreground(t.Primary).Render("▸ ")
		title = title.Foreground(t.Primary)
	}

	tags := make([]string, len(note.Tags))
	for i, tag := range note.Tags {
		tags[i] = "#" + tag
	}
	meta := lipgloss.NewStyle().Foreground(t.Accent).Render(strings.Join(tags, " "))

	return []string{
		marker + title.Render(layout.Truncate(note.Title, width-2)),
		"  " + lipgloss.NewStyle().Foreground(t.Subtext).Render(layout.Truncate(Snippet(note.Content), width-2)),
		"  " + spread(layout.Clip(meta, width/2), lipgloss.NewStyle().Foreground(t.Overlay).Render(note.Modified.Format(time.DateOnly)), width-2),
		"",
	}
}

// Snippet is the list preview of note content: markdown markers dropped,
// whitespace collapsed, at most snippetLen runes.
func Snippet(content string) string {
	clean := strings.NewReplacer("#", "", "*", "", "`", "").Replace(content)
	clean = strings.Join(strings.Fields(clean), " ")
	return layout.TruncateRunes(clean, snippetLen, "...")
}

func (n *Notebook) detailView(t theme.Theme, width, height int) string {
	note, ok := n.env.Store.State().Note(n.selected)
	if !ok {
		empty := lipgloss.NewStyle().Foreground(t.Overlay).Render(
			"No Note Selected\n\nSelect a note from the list or press n to create one.")
		return box(t, "", lipgloss.Place(inner(width), max(height-3, 1), lipgloss.Center, lipgloss.Center, empty), width, height, false)
	}

	head := fmt.Sprintf("Created: %s | Modified: %s | %s",
		note.Created.Format(time.DateOnly), note.Modified.Format(time.DateOnly), strings.ToUpper(string(note.Lab)))
	action := "[e] EDIT"
	if n.mode == modeEdit {
		action = "[ctrl+s] SAVE"
	}
	lines := []string{
		spread(lipgloss.NewStyle().Foreground(t.Overlay).Render(head),
			lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(action), inner(width)),
		components.Divider(t, inner(width)),
	}

	if n.mode == modeEdit {
		lines = append(lines, n.tags.View(), "", n.content.View())
	} else {
		if len(note.Tags) > 0 {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.Accent).Render(layout.Truncate("# "+notebook.JoinTags(note.Tags), inner(width))))
		}
		lines = append(lines, n.preview.View())
	}
	return box(t, note.Title, strings.Join(lines, "\n"), width, height, n.IsFocused() && n.mode == modeEdit)
}

var (
	_ Panel        = (*Notebook)(nil)
	_ TextCapturer = (*Notebook)(nil)
)
