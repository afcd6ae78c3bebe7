package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"todocsv/internal/config"
	"todocsv/internal/exitcode"
	"todocsv/internal/store"
	"todocsv/internal/todo"
)

var errItemsRequired = errors.New("at least one item required")

func init() {
	Register(&CreateCmd{})
	Register(&AppendCmd{})
}

// CreateCmd implements the create command.
type CreateCmd struct {
	file     string
	title    string
	root     string
	items    []string
	force    bool
	noActive bool
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return []string{"init"} }
func (c *CreateCmd) Synopsis() string  { return "Create a task list" }
func (c *CreateCmd) Usage() string {
	return "todocsv create (--file <path> | --title <title> [--root <dir>]) [--force] [--no-active] [--item <label>]... [<label>...]"
}
func (c *CreateCmd) NeedsStore() bool { return true }

func (c *CreateCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	fs.StringVarP(&c.title, "title", "t", "", "derive the file name from a title")
	fs.StringVar(&c.root, "root", "", "project root for --title")
	fs.StringArrayVarP(&c.items, "item", "i", nil, "item label (repeatable)")
	fs.BoolVar(&c.force, "force", false, "overwrite an existing file")
	fs.BoolVar(&c.noActive, "no-active", false, "leave every item PENDING")
}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	items := collectItems(c.items, args)

	var path string
	var err error
	switch {
	case c.file != "":
		path, err = resolveFile(c.file)
	case c.title != "":
		path, err = resolveTitlePath(cfg, c.root, c.title)
	default:
		return usageError(errOut, errors.New("--file or --title is required"))
	}
	if err != nil {
		return fail(errOut, err)
	}

	exists, err := st.Exists(ctx, path)
	if err != nil {
		return fail(errOut, err)
	}
	if exists && !c.force {
		return fail(errOut, todo.Errorf(todo.CodeAlreadyExists, "refusing to overwrite existing file: %s", path))
	}

	rows := todo.New(items, c.noActive)
	if err := st.Save(ctx, path, rows); err != nil {
		return fail(errOut, err)
	}
	cfg.Log().Debug("created list", "path", path, "rows", len(rows), "overwrote", exists)

	fmt.Fprintln(out, path)
	return exitcode.Success
}

// AppendCmd implements the append command.
type AppendCmd struct {
	file  string
	items []string
}

func (c *AppendCmd) Name() string      { return "append" }
func (c *AppendCmd) Aliases() []string { return []string{"add"} }
func (c *AppendCmd) Synopsis() string  { return "Append PENDING items to a list" }
func (c *AppendCmd) Usage() string {
	return "todocsv append --file <path> [--item <label>]... [<label>...]"
}
func (c *AppendCmd) NeedsStore() bool { return true }

func (c *AppendCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	fs.StringArrayVarP(&c.items, "item", "i", nil, "item label (repeatable)")
}

func (c *AppendCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}
	items := collectItems(c.items, args)
	if len(items) == 0 {
		return usageError(errOut, errItemsRequired)
	}

	rows, err := load(ctx, st, path)
	if err != nil {
		return fail(errOut, err)
	}
	rows = todo.Append(rows, items)
	if err := st.Save(ctx, path, rows); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
