// Package store owns the ordered todo list and keeps it in sync with a
// persistent slot. Every failure is reported through the last Status; no
// operation returns an error or panics.
//
// A Store is meant for a single writer and does no locking.
package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/slot"
)

// DefaultKey is the slot key the list is stored under.
const DefaultKey = "todos"

// Renderer is told to redraw after every operation.
type Renderer interface {
	Render(todos []model.Todo)
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(todos []model.Todo)

func (f RenderFunc) Render(todos []model.Todo) { f(todos) }

type Option func(*Store)

// WithKey overrides the slot key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(s *Store) { s.renderer = r }
}

// WithIDGenerator replaces the random UUID source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

type Store struct {
	slot     slot.Slot
	key      string
	renderer Renderer
	newID    func() string

	todos  []model.Todo
	status Status
}

// New loads the list from sl. A missing, unreadable or malformed value
// yields an empty list.
func New(sl slot.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  sl,
		key:   DefaultKey,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.todos = s.load()
	return s
}

func (s *Store) load() []model.Todo {
	b, err := s.slot.Get(s.key)
	if err != nil {
		return []model.Todo{}
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil || todos == nil {
		return []model.Todo{}
	}
	return todos
}

func (s *Store) save() error {
	b, err := json.MarshalIndent(s.todos, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.slot.Set(s.key, b); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Add appends a new todo unless the title is blank or already taken.
// The title is stored as given; callers trim.
func (s *Store) Add(title string) {
	defer s.render()
	if strings.TrimSpace(title) == "" {
		s.status = Status{Kind: KindEmptyInput, Message: MsgEmptyAdd, Err: ErrEmptyTitle}
		return
	}
	if slices.ContainsFunc(s.todos, func(t model.Todo) bool { return t.Title == title }) {
		s.status = Status{Kind: KindDuplicateTitle, Message: MsgDuplicate, Err: ErrDuplicateTitle}
		return
	}
	s.commit(append(slices.Clone(s.todos), model.Todo{
		ID:    s.newID(),
		Title: title,
	}), Status{Kind: KindAdded, Message: MsgAdded})
}

// Edit renames the todo with the given id. The new title is not checked
// against the other titles.
func (s *Store) Edit(id, newTitle string) {
	defer s.render()
	if strings.TrimSpace(newTitle) == "" {
		s.status = Status{Kind: KindEmptyInput, Message: MsgEmptyEdit, Err: ErrEmptyTitle}
		return
	}
	i := slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
	if i == -1 {
		s.status = Status{Kind: KindNotFound, Message: MsgNotFound, Err: fmt.Errorf("%w: %s", ErrNotFound, id)}
		return
	}
	next := slices.Clone(s.todos)
	next[i].Title = newTitle
	s.commit(next, Status{Kind: KindUpdated, Message: MsgUpdated})
}

// Delete removes the todo with the given id. An unknown id leaves the list
// unchanged and still reports success.
func (s *Store) Delete(id string) {
	defer s.render()
	next := slices.DeleteFunc(slices.Clone(s.todos), func(t model.Todo) bool { return t.ID == id })
	s.commit(next, Status{Kind: KindDeleted, Message: MsgDeleted})
}

// commit swaps in next and persists it. On a failed write the previous list
// is restored so memory never drifts from the slot.
func (s *Store) commit(next []model.Todo, ok Status) {
	prev := s.todos
	s.todos = next
	if err := s.save(); err != nil {
		s.todos = prev
		s.status = Status{Kind: KindPersistenceFailure, Message: MsgPersistFailed, Err: err}
		return
	}
	s.status = ok
}

func (s *Store) render() {
	if s.renderer != nil {
		s.renderer.Render(s.Todos())
	}
}

// Todos returns a copy of the list in insertion order.
func (s *Store) Todos() []model.Todo {
	return slices.Clone(s.todos)
}

// Find returns the todo with the given id.
func (s *Store) Find(id string) (model.Todo, bool) {
	i := slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
	if i == -1 {
		return model.Todo{}, false
	}
	return s.todos[i], true
}

func (s *Store) Status() Status { return s.status }

// StatusMessage is the text of the last status, empty before any operation.
func (s *Store) StatusMessage() string { return s.status.Message }
