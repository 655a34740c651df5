package slot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Makepad-fr/tada/internal/slot"
)

func TestFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := slot.NewFile(dir)

	if err := s.Set("todos", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get("todos")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("got %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "todos.json")); err != nil {
		t.Fatalf("expected todos.json on disk: %v", err)
	}
}

func TestFile_GetMissing_ReturnsErrNotFound(t *testing.T) {
	s := slot.NewFile(t.TempDir())
	if _, err := s.Get("todos"); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFile_SetCreatesDirAndLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := slot.NewFile(dir)

	if err := s.Set("todos", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("todos", []byte(`["second"]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "todos.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected dir contents: %v", names)
	}
	got, _ := s.Get("todos")
	if string(got) != `["second"]` {
		t.Fatalf("overwrite not visible, got %q", got)
	}
}

func TestMemory_CopiesValues(t *testing.T) {
	m := slot.NewMemory()
	if _, err := m.Get("todos"); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	v := []byte("abc")
	if err := m.Set("todos", v); err != nil {
		t.Fatalf("set: %v", err)
	}
	v[0] = 'x'
	got, _ := m.Get("todos")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
}
