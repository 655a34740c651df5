package ui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/Makepad-fr/tada/internal/model"
)

const maxTitleWidth = 80

// Stats counts completed and pending todos.
func Stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.IsCompleted {
			done++
		} else {
			pending++
		}
	}
	return
}

// TodoLines formats todos one per line: 1-based index, box, title, short id.
func TodoLines(todos []model.Todo) []string {
	t := Current()
	if len(todos) == 0 {
		return []string{C(t.Muted, "no todos yet")}
	}
	out := make([]string, 0, len(todos))
	for i, td := range todos {
		box, color := t.BoxUnchecked, t.Muted
		if td.IsCompleted {
			box, color = t.BoxChecked, t.Success
		}
		title := runewidth.Truncate(td.Title, maxTitleWidth, "...")
		out = append(out, fmt.Sprintf("%s %s %s %s",
			Dim(fmt.Sprintf("%2d.", i+1)), C(color, box), title, Dim(ShortID(td.ID))))
	}
	return out
}

// ShortID keeps the first 8 characters of an id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ListPanel is the full `ls` view: header, progress, items.
func ListPanel(todos []model.Todo) []string {
	t := Current()
	d, p := Stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), d,
		C(t.Pending, t.SymUnchecked), p,
		C(t.Accent, "Total"), len(todos),
	)
	lines := []string{header, C(t.Muted, ProgressBar(d, d+p, 28)), ""}
	lines = append(lines, TodoLines(todos)...)
	return lines
}
