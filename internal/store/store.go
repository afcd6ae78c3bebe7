// Package store defines the backend-agnostic interface for task-list persistence.
package store

import (
	"context"

	"todocsv/internal/todo"
)

// Store loads and saves whole row sets, keyed by file path.
// Commands never touch the filesystem directly; every load/transform/save
// sequence goes through this interface.
type Store interface {
	// Exists reports whether a row set is stored at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Load returns the rows stored at path in stored order.
	// Returns a todo.ErrNotFound error if nothing is stored there and a
	// todo.ErrSchemaMismatch error if the stored header is wrong.
	Load(ctx context.Context, path string) ([]todo.Row, error)

	// Save replaces the row set at path. Readers never observe a partial write.
	Save(ctx context.Context, path string, rows []todo.Row) error

	// Remove deletes the row set at path. Removing a missing path is not an error.
	Remove(ctx context.Context, path string) error
}
