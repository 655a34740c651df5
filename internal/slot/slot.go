// Package slot holds the flat key-value storage the todo list is persisted
// into. A slot maps a fixed key to one opaque value; writes replace the
// whole value.
package slot

import "errors"

// ErrNotFound is returned by Get when nothing was ever stored under the key.
var ErrNotFound = errors.New("slot: key not found")

// Slot is a synchronous key-value primitive supplied by the host.
type Slot interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
