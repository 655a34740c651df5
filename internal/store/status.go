package store

import "errors"

// Kind classifies the outcome of the last store operation.
type Kind int

const (
	KindNone Kind = iota
	KindAdded
	KindUpdated
	KindDeleted
	KindDuplicateTitle
	KindNotFound
	KindEmptyInput
	KindPersistenceFailure
)

var (
	ErrDuplicateTitle = errors.New("todo already exists")
	ErrNotFound       = errors.New("todo not found")
	ErrEmptyTitle     = errors.New("empty title")
	ErrPersist        = errors.New("persist todos")
)

const (
	MsgAdded         = "Todo added successfully!"
	MsgUpdated       = "Todo updated successfully!"
	MsgDeleted       = "Todo deleted successfully!"
	MsgDuplicate     = "Todo already exists"
	MsgNotFound      = "Todo not found!"
	MsgEmptyAdd      = "Please enter a valid todo!"
	MsgEmptyEdit     = "Title cannot be empty!"
	MsgPersistFailed = "Failed to save todos!"
)

// Status is the outcome of the last operation. Err is nil for successful
// operations and wraps one of the sentinel errors otherwise.
type Status struct {
	Kind    Kind
	Message string
	Err     error
}

// OK reports whether the operation changed (or was allowed to change) the list.
func (s Status) OK() bool {
	switch s.Kind {
	case KindAdded, KindUpdated, KindDeleted:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAdded:
		return "added"
	case KindUpdated:
		return "updated"
	case KindDeleted:
		return "deleted"
	case KindDuplicateTitle:
		return "duplicate-title"
	case KindNotFound:
		return "not-found"
	case KindEmptyInput:
		return "empty-input"
	case KindPersistenceFailure:
		return "persistence-failure"
	}
	return "unknown"
}
