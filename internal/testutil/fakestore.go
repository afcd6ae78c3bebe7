// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todocsv/internal/todo"
)

// FakeStore is an in-memory implementation of store.Store for testing.
type FakeStore struct {
	mu    sync.RWMutex
	files map[string][]todo.Row // path -> rows

	// Saves counts successful Save calls per path.
	Saves map[string]int

	// Error injection for testing
	ExistsErr error
	LoadErr   error
	SaveErr   error
	RemoveErr error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		files: make(map[string][]todo.Row),
		Saves: make(map[string]int),
	}
}

// Put stores rows at path without counting a save.
func (f *FakeStore) Put(path string, rows []todo.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = cloneRows(rows)
}

// Rows returns a copy of the rows at path and whether the path exists.
func (f *FakeStore) Rows(path string) ([]todo.Row, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	rows, ok := f.files[path]
	if !ok {
		return nil, false
	}
	return cloneRows(rows), true
}

// Exists implements store.Store.
func (f *FakeStore) Exists(ctx context.Context, path string) (bool, error) {
	if f.ExistsErr != nil {
		return false, f.ExistsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.files[path]
	return ok, nil
}

// Load implements store.Store.
func (f *FakeStore) Load(ctx context.Context, path string) ([]todo.Row, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	rows, ok := f.files[path]
	if !ok {
		return nil, todo.Errorf(todo.CodeNotFound, "CSV not found: %s", path)
	}
	return cloneRows(rows), nil
}

// Save implements store.Store.
func (f *FakeStore) Save(ctx context.Context, path string, rows []todo.Row) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = cloneRows(rows)
	f.Saves[path]++
	return nil
}

// Remove implements store.Store.
func (f *FakeStore) Remove(ctx context.Context, path string) error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	return nil
}

func cloneRows(rows []todo.Row) []todo.Row {
	out := make([]todo.Row, len(rows))
	copy(out, rows)
	return out
}
