// Package storage keeps one ordered collection of records per resource.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrWrite wraps failures to persist a collection. The in-memory result of
	// the update is still valid; only durability was lost.
	ErrWrite = errors.New("storage write failed")

	// ErrUnreadable means stored data exists but could not be fully read.
	// Update refuses to run rather than overwrite it.
	ErrUnreadable = errors.New("storage unreadable")

	// ErrConflict reports a duplicate record id.
	ErrConflict = errors.New("data conflict")
)

// Collection is the whole-collection contract shared by the file, memory and
// Postgres backends.
type Collection[T any] interface {
	// Load returns the stored records in storage order. Unreadable or corrupt
	// data is logged and skipped.
	Load(ctx context.Context) []T

	// Update runs fn over the current records and persists its result. Calls
	// on the same collection are serialized. If fn fails nothing is written
	// and its error is returned. If the stored data cannot be read fn is not
	// called.
	Update(ctx context.Context, fn func([]T) ([]T, error)) error

	PingContext(ctx context.Context) error
}
