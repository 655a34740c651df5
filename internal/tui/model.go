// Package tui is the interactive presenter: a Bubble Tea list bound to a
// store. Every intent (add, edit, delete) is a store call; the list is
// redrawn in full from the store's render signal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

const DefaultStatusTimeout = 3 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// clearStatusMsg fires once the status display window is over. seq ties it
// to the status it was scheduled for.
type clearStatusMsg struct{ seq int }

type keyMap struct {
	add, edit, del, quit key.Binding
}

var keys = keyMap{
	add:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	edit: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	del:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type Model struct {
	store   *store.Store
	view    *Renderer
	timeout time.Duration
	st      styles

	list  list.Model
	input textinput.Model
	mode  mode

	targetID string // todo being edited or deleted

	status    string
	statusOK  bool
	statusSeq int
}

// New builds the model. view must be the renderer st was constructed with.
func New(st *store.Store, view *Renderer, statusTimeout time.Duration) Model {
	if statusTimeout <= 0 {
		statusTimeout = DefaultStatusTimeout
	}
	sty := newStyles(ui.Current())
	todos := st.Todos()
	l := list.New(toItems(todos), itemDelegate{st: sty}, 0, 0)
	l.Title = sty.header(todos)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = sty.title
	l.Styles.HelpStyle = sty.help
	l.Styles.PaginationStyle = sty.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	extra := func() []key.Binding { return []key.Binding{keys.add, keys.edit, keys.del} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		store:   st,
		view:    view,
		timeout: statusTimeout,
		st:      sty,
		list:    l,
		input:   ti,
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(st *store.Store, view *Renderer, statusTimeout time.Duration) error {
	_, err := tea.NewProgram(New(st, view, statusTimeout), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-7)
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
		if m.list.FilterState() != list.Filtering {
			if next, cmd, handled := m.updateBrowse(msg); handled {
				return next, cmd
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit, true
	case key.Matches(msg, keys.add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Placeholder = "New todo title..."
		cmd := m.input.Focus()
		return m, cmd, true
	case key.Matches(msg, keys.edit):
		it, ok := m.list.SelectedItem().(listItem)
		if !ok {
			return m, nil, true
		}
		m.mode = modeEdit
		m.targetID = it.todo.ID
		m.input.SetValue(it.todo.Title)
		m.input.CursorEnd()
		m.input.Placeholder = "Edit todo title..."
		cmd := m.input.Focus()
		return m, cmd, true
	case key.Matches(msg, keys.del):
		it, ok := m.list.SelectedItem().(listItem)
		if !ok {
			return m, nil, true
		}
		m.mode = modeConfirmDelete
		m.targetID = it.todo.ID
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		if m.mode == modeAdd {
			m.store.Add(title)
		} else {
			m.store.Edit(m.targetID, title)
		}
		m = m.leaveInput()
		return m.afterOp()
	case tea.KeyEsc:
		return m.leaveInput(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) leaveInput() Model {
	m.mode = modeBrowse
	m.targetID = ""
	m.input.SetValue("")
	m.input.Blur()
	return m
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.store.Delete(m.targetID)
		m.mode = modeBrowse
		m.targetID = ""
		return m.afterOp()
	case "n", "N", "esc":
		m.mode = modeBrowse
		m.targetID = ""
	}
	return m, nil
}

// afterOp pulls the redraw the store signalled and shows its status until
// the timeout clears it.
func (m Model) afterOp() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if items, todos, ok := m.view.take(); ok {
		cmds = append(cmds, m.list.SetItems(items))
		m.list.Title = m.st.header(todos)
	}
	st := m.store.Status()
	m.status = st.Message
	m.statusOK = st.OK()
	m.statusSeq++
	seq := m.statusSeq
	cmds = append(cmds, tea.Tick(m.timeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	}))
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	content := m.list.View()
	switch m.mode {
	case modeAdd, modeEdit:
		title := "Add todo"
		if m.mode == modeEdit {
			title = "Edit todo"
		}
		content += "\n" + m.st.frame.Render(title+"\n"+m.input.View())
	case modeConfirmDelete:
		name := m.targetID
		if t, ok := m.store.Find(m.targetID); ok {
			name = t.Title
		}
		content += "\n" + m.st.errorText.Render(fmt.Sprintf("Delete %q? (y/n)", name))
	}
	if m.status != "" {
		style := m.st.errorText
		if m.statusOK {
			style = m.st.success
		}
		content += "\n" + style.Render(m.status)
	}
	return m.st.frame.Render(content)
}
