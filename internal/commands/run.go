package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"todocsv/internal/config"
	"todocsv/internal/exitcode"
	"todocsv/internal/project"
	"todocsv/internal/store"
	"todocsv/internal/todo"
)

var errFileRequired = errors.New("--file is required")

// fail prints err and maps it to an exit code.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	if todo.IsDomain(err) {
		return exitcode.DomainError
	}
	return exitcode.IOError
}

func usageError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UsageError
}

func ok(cfg *config.Config, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// resolveFile makes the --file value absolute.
func resolveFile(file string) (string, error) {
	if strings.TrimSpace(file) == "" {
		return "", errFileRequired
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", file, err)
	}
	return abs, nil
}

// resolveTitlePath derives the CSV path for title under the project root.
// root falls back to the configured root, then to the enclosing git
// worktree, then to the working directory.
func resolveTitlePath(cfg *config.Config, root, title string) (string, error) {
	if root == "" {
		root = cfg.Root
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	dir, err := project.Root(root, wd)
	if err != nil {
		return "", err
	}
	return project.FilePath(dir, title), nil
}

// load reads an existing list and applies the ordering policy.
func load(ctx context.Context, st store.Store, path string) ([]todo.Row, error) {
	exists, err := st.Exists(ctx, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, todo.Errorf(todo.CodeNotFound, "CSV not found: %s", path)
	}
	rows, err := st.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return todo.Order(rows), nil
}

// collectItems merges --item values and positional arguments. Labels are
// trimmed; blank ones are kept so ids follow argument positions.
func collectItems(flagged, args []string) []string {
	items := make([]string, 0, len(flagged)+len(args))
	for _, s := range append(append([]string{}, flagged...), args...) {
		items = append(items, strings.TrimSpace(s))
	}
	return items
}

func now(clock todo.Clock) time.Time {
	if clock == nil {
		clock = todo.SystemClock
	}
	return clock()
}
