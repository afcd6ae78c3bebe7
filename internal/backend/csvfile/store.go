// Package csvfile implements store.Store on top of one CSV file per task list.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"todocsv/internal/config"
	"todocsv/internal/todo"
)

// DefaultFileMode is used for files that do not exist yet.
const DefaultFileMode fs.FileMode = 0o644

// Store implements store.Store with CSV files on the local filesystem.
type Store struct {
	log *slog.Logger
}

// New creates a CSV store that logs through cfg.Logger.
func New(cfg *config.Config) *Store {
	return &Store{log: cfg.Log().With("store", "csvfile")}
}

// Exists implements store.Store.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// Load implements store.Store.
func (s *Store) Load(ctx context.Context, path string) ([]todo.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, todo.Errorf(todo.CodeNotFound, "CSV not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := decode(f, path)
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded rows", "path", path, "rows", len(rows))
	return rows, nil
}

func decode(r io.Reader, path string) ([]todo.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, todo.Errorf(todo.CodeSchemaMismatch,
			"unexpected CSV header in %s: none (expected %q)", path, todo.Header)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !slices.Equal(header, todo.Header) {
		return nil, todo.Errorf(todo.CodeSchemaMismatch,
			"unexpected CSV header in %s: %q (expected %q)", path, header, todo.Header)
	}

	rows := []todo.Row{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, todo.RowFromRecord(rec))
	}
	return rows, nil
}

// Save implements store.Store. The rows are written to a temporary file in
// the target's directory, which is then renamed over the target. On any
// failure the temporary file is removed and the target is left untouched.
func (s *Store) Save(ctx context.Context, path string, rows []todo.Row) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	mode := DefaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	cw := &countingWriter{w: tmp}
	if err = encode(cw, rows); err != nil {
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	s.log.Debug("saved rows", "path", path, "rows", len(rows), "bytes", cw.n)
	return nil
}

func encode(w io.Writer, rows []todo.Row) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(todo.Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Remove implements store.Store.
func (s *Store) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	s.log.Debug("removed file", "path", path)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
