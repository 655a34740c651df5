package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/slot"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options carry the wiring chosen by main.
type Options struct {
	Slot          slot.Slot
	Key           string        // slot key, store.DefaultKey when empty
	StatusTimeout time.Duration // how long the TUI shows a status
}

// Run dispatches subcommands and returns an exit code
// (0 ok, 1 storage failure, 2 usage or rejected operation).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(opt)

	case "ui":
		return doInteractive(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: todo add <title...>")
			return 2
		}
		return doAdd(opt, strings.Join(a, " "))

	case "edit":
		if len(a) < 2 {
			ui.Fail("usage: todo edit <index|id> <title...>")
			return 2
		}
		return doEdit(opt, a[0], strings.Join(a[1:], " "))

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: todo rm <index|id>")
			return 2
		}
		return doRemove(opt, a[0])
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `todo - a tiny persistent todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  add <title...>              Add a todo (title can be multiple words)
  ls                          List todos
  edit <index|id> <title...>  Rename a todo
  rm <index|id>               Remove a todo
  ui                          Interactive list (a add, e edit, d delete, q quit)

<index> is 1-based as shown by ls; <id> may be shortened to a unique prefix.

Examples:
  todo add "Buy milk"
  todo ls
  todo edit 1 Buy oat milk
  todo rm 3
`)
}

// -------------- subcommand impls ----------------

// openStore builds the store with the list panel as its renderer, so every
// mutation redraws the list before the status line is printed.
func openStore(opt Options) *store.Store {
	return store.New(opt.Slot,
		store.WithKey(opt.Key),
		store.WithRenderer(store.RenderFunc(func(todos []model.Todo) {
			ui.Panel(ui.ListPanel(todos))
		})),
	)
}

func doList(opt Options) int {
	st := store.New(opt.Slot, store.WithKey(opt.Key))
	lines := ui.ListPanel(st.Todos())
	lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doInteractive(opt Options) int {
	view := tui.NewRenderer()
	st := store.New(opt.Slot, store.WithKey(opt.Key), store.WithRenderer(view))
	if err := tui.Run(st, view, opt.StatusTimeout); err != nil {
		ui.Fail("ui: " + err.Error())
		return 1
	}
	return 0
}

func doAdd(opt Options, title string) int {
	st := openStore(opt)
	st.Add(strings.TrimSpace(title))
	return report(st.Status())
}

func doEdit(opt Options, ref, title string) int {
	st := openStore(opt)
	id, code := resolve(st.Todos(), ref)
	if code != 0 {
		return code
	}
	st.Edit(id, strings.TrimSpace(title))
	return report(st.Status())
}

func doRemove(opt Options, ref string) int {
	st := openStore(opt)
	id, code := resolve(st.Todos(), ref)
	if code != 0 {
		return code
	}
	st.Delete(id)
	return report(st.Status())
}

func report(s store.Status) int {
	switch {
	case s.OK():
		ui.OK(s.Message)
		return 0
	case s.Kind == store.KindPersistenceFailure:
		ui.Fail(s.Message + " (" + s.Err.Error() + ")")
		return 1
	default:
		ui.Fail(s.Message)
		return 2
	}
}

// resolve maps a 1-based index, a full id or a unique id prefix to an id.
// A number outside the index range is tried as an id prefix before it is
// rejected, since short ids can be all digits. Any other unmatched ref is
// passed through for the store to judge.
func resolve(todos []model.Todo, ref string) (string, int) {
	n, err := strconv.Atoi(ref)
	isIndex := err == nil
	if isIndex && n >= 1 && n <= len(todos) {
		return todos[n-1].ID, 0
	}
	var match string
	for _, t := range todos {
		if t.ID == ref {
			return ref, 0
		}
		if strings.HasPrefix(t.ID, ref) {
			if match != "" {
				ui.Fail("ambiguous id prefix: " + ref)
				return "", 2
			}
			match = t.ID
		}
	}
	if match != "" {
		return match, 0
	}
	if isIndex {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(todos), n))
		fmt.Fprintln(ui.Err, ui.C(ui.Current().Muted, "Hint: run `todo ls` to see valid indexes"))
		return "", 2
	}
	return ref, 0
}
