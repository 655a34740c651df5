package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts a todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

func toItems(todos []model.Todo) []list.Item {
	out := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		out = append(out, listItem{todo: t})
	}
	return out
}

// Renderer receives the store's redraw signal and holds the rebuilt list
// until the model picks it up in Update.
type Renderer struct {
	items []list.Item
	todos []model.Todo
	dirty bool
}

func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) Render(todos []model.Todo) {
	r.todos = todos
	r.items = toItems(todos)
	r.dirty = true
}

// take returns the pending redraw, if any.
func (r *Renderer) take() ([]list.Item, []model.Todo, bool) {
	if !r.dirty {
		return nil, nil, false
	}
	r.dirty = false
	return r.items, r.todos, true
}

// itemDelegate renders one todo per line.
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.todo.Title
	if it.todo.IsCompleted {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, text, d.st.muted.Render(ui.ShortID(it.todo.ID)))
}

func (s styles) header(todos []model.Todo) string {
	d, p := ui.Stats(todos)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		s.title.Render("Todos"),
		s.success.Render(s.symDone), d,
		s.pending.Render(s.symPending), p,
		s.accent.Render("Total"), len(todos),
	)
}
