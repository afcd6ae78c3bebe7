package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"todocsv/internal/config"
	"todocsv/internal/exitcode"
	"todocsv/internal/output"
	"todocsv/internal/store"
	"todocsv/internal/todo"
)

func init() {
	Register(&StatusCmd{})
	Register(&CleanupCmd{})
}

// StatusCmd implements the status command. It never writes.
type StatusCmd struct {
	file    string
	verbose bool
}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return nil }
func (c *StatusCmd) Synopsis() string  { return "Summarize progress" }
func (c *StatusCmd) Usage() string     { return "todocsv status --file <path> [--verbose]" }
func (c *StatusCmd) NeedsStore() bool  { return true }

func (c *StatusCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "list every item")
}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}

	rows, err := load(ctx, st, path)
	if err != nil {
		return fail(errOut, err)
	}
	output.FormatSummary(out, todo.Summarize(rows))
	if c.verbose {
		for _, r := range rows {
			output.FormatRow(out, r)
		}
	}
	return exitcode.Success
}

// CleanupCmd implements the cleanup command.
type CleanupCmd struct {
	file string
}

func (c *CleanupCmd) Name() string      { return "cleanup" }
func (c *CleanupCmd) Aliases() []string { return nil }
func (c *CleanupCmd) Synopsis() string  { return "Delete a list once every item is COMPLETE" }
func (c *CleanupCmd) Usage() string     { return "todocsv cleanup --file <path>" }
func (c *CleanupCmd) NeedsStore() bool  { return true }

func (c *CleanupCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
}

func (c *CleanupCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}

	exists, err := st.Exists(ctx, path)
	if err != nil {
		return fail(errOut, err)
	}
	if !exists {
		cfg.Log().Debug("nothing to clean up", "path", path)
		return ok(cfg, out)
	}

	rows, err := st.Load(ctx, path)
	if err != nil {
		return fail(errOut, err)
	}
	if err := todo.CheckCleanup(rows); err != nil {
		return fail(errOut, err)
	}
	if err := st.Remove(ctx, path); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
