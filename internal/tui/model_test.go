package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/slot"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

func newTestModel(t *testing.T, titles ...string) (Model, *store.Store) {
	t.Helper()
	n := 0
	view := NewRenderer()
	st := store.New(slot.NewMemory(),
		store.WithRenderer(view),
		store.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	for _, title := range titles {
		st.Add(title)
	}
	m := New(st, view, time.Second)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, st
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = next.(Model).Update(msg)
	}
	return next.(Model)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestAdd_ThroughInput(t *testing.T) {
	m, st := newTestModel(t)

	m = send(t, m, runes("a"))
	if m.mode != modeAdd {
		t.Fatalf("expected add mode, got %v", m.mode)
	}
	m = send(t, m, runes("  Buy milk "), enter)

	if m.mode != modeBrowse {
		t.Fatal("expected browse mode after enter")
	}
	todos := st.Todos()
	if len(todos) != 1 || todos[0].Title != "Buy milk" {
		t.Fatalf("store: %+v", todos)
	}
	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("list not refreshed: %d items", got)
	}
	if m.status != "Todo added successfully!" || !m.statusOK {
		t.Fatalf("status: %q ok=%v", m.status, m.statusOK)
	}
}

func TestAdd_BlankInputReportsStatus(t *testing.T) {
	m, st := newTestModel(t)
	m = send(t, m, runes("a"), runes("   "), enter)
	if len(st.Todos()) != 0 {
		t.Fatal("blank todo stored")
	}
	if m.status != "Please enter a valid todo!" || m.statusOK {
		t.Fatalf("status: %q ok=%v", m.status, m.statusOK)
	}
}

func TestAdd_EscCancels(t *testing.T) {
	m, st := newTestModel(t)
	m = send(t, m, runes("a"), runes("Buy milk"), esc)
	if m.mode != modeBrowse || len(st.Todos()) != 0 {
		t.Fatalf("esc should cancel: mode=%v todos=%+v", m.mode, st.Todos())
	}
}

func TestAdd_Duplicate(t *testing.T) {
	m, st := newTestModel(t, "Milk")
	m = send(t, m, runes("a"), runes("Milk"), enter)
	if len(st.Todos()) != 1 {
		t.Fatal("duplicate stored")
	}
	if m.status != "Todo already exists" {
		t.Fatalf("status: %q", m.status)
	}
}

func TestEdit_SelectedTodo(t *testing.T) {
	m, st := newTestModel(t, "Buy milk", "Walk dog")

	m = send(t, m, down, runes("e"))
	if m.mode != modeEdit || m.targetID != "id-2" {
		t.Fatalf("edit target: mode=%v id=%q", m.mode, m.targetID)
	}
	if m.input.Value() != "Walk dog" {
		t.Fatalf("input prefilled with %q", m.input.Value())
	}
	m.input.SetValue("Walk cat")
	m = send(t, m, enter)

	if got := st.Todos()[1].Title; got != "Walk cat" {
		t.Fatalf("title: %q", got)
	}
	if m.status != "Todo updated successfully!" {
		t.Fatalf("status: %q", m.status)
	}
	if it := m.list.Items()[1].(listItem); it.todo.Title != "Walk cat" {
		t.Fatalf("list not refreshed: %+v", it.todo)
	}
}

func TestDelete_AsksForConfirmation(t *testing.T) {
	m, st := newTestModel(t, "A", "B")

	m = send(t, m, runes("d"))
	if m.mode != modeConfirmDelete {
		t.Fatalf("expected confirm mode, got %v", m.mode)
	}
	if !strings.Contains(m.View(), `Delete "A"? (y/n)`) {
		t.Fatal("confirmation prompt not shown")
	}
	m = send(t, m, runes("n"))
	if len(st.Todos()) != 2 {
		t.Fatal("n must not delete")
	}

	m = send(t, m, runes("d"), runes("y"))
	todos := st.Todos()
	if len(todos) != 1 || todos[0].Title != "B" {
		t.Fatalf("after delete: %+v", todos)
	}
	if m.status != "Todo deleted successfully!" {
		t.Fatalf("status: %q", m.status)
	}
	if len(m.list.Items()) != 1 {
		t.Fatal("list not refreshed")
	}
}

func TestEditAndDelete_EmptyListIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("e"))
	if m.mode != modeBrowse {
		t.Fatal("edit on empty list should stay in browse mode")
	}
	m = send(t, m, runes("d"))
	if m.mode != modeBrowse {
		t.Fatal("delete on empty list should stay in browse mode")
	}
}

func TestStatus_ClearedOnlyByLatestTick(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter)
	first := m.statusSeq
	m = send(t, m, runes("a"), runes("A"), enter)
	if m.status != "Todo already exists" {
		t.Fatalf("status: %q", m.status)
	}

	m = send(t, m, clearStatusMsg{seq: first})
	if m.status == "" {
		t.Fatal("stale tick cleared a newer status")
	}
	m = send(t, m, clearStatusMsg{seq: m.statusSeq})
	if m.status != "" {
		t.Fatalf("status not cleared: %q", m.status)
	}
}

func TestAfterOp_SchedulesClear(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"))
	_, cmd := m.Update(enter)
	if cmd == nil {
		t.Fatal("expected commands after an operation")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestView_FollowsTheme(t *testing.T) {
	ui.SetTheme("mono")
	defer ui.SetTheme("classic")

	m, _ := newTestModel(t, "A")
	v := m.View()
	if !strings.Contains(v, "[ ] A") {
		t.Fatalf("mono box missing:\n%s", v)
	}
	if !strings.Contains(v, "+-") || strings.Contains(v, "╭") {
		t.Fatalf("mono frame should be ASCII:\n%s", v)
	}

	ui.SetTheme("classic")
	m, _ = newTestModel(t, "A")
	if v := m.View(); !strings.Contains(v, "☐ A") || !strings.Contains(v, "╭") {
		t.Fatalf("classic rendering:\n%s", v)
	}
}
