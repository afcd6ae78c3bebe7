package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"todocsv/internal/config"
	"todocsv/internal/store"
	"todocsv/internal/todo"
)

func init() {
	Register(&StartCmd{})
	Register(&CompleteCmd{})
	Register(&RevertCmd{})
	Register(&AdvanceCmd{})
}

// StartCmd implements the start command.
type StartCmd struct {
	file  string
	id    optionalInt
	notes optionalString
	force bool
}

func (c *StartCmd) Name() string      { return "start" }
func (c *StartCmd) Aliases() []string { return nil }
func (c *StartCmd) Synopsis() string  { return "Make one item the ACTIVE item" }
func (c *StartCmd) Usage() string {
	return "todocsv start --file <path> --id <n> [--notes <text>] [--force]"
}
func (c *StartCmd) NeedsStore() bool { return true }

func (c *StartCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	idFlag(fs, &c.id)
	notesFlag(fs, &c.notes)
	fs.BoolVar(&c.force, "force", false, "restart a COMPLETE item")
}

func (c *StartCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}
	id, err := parseID(c.id, args)
	if err != nil {
		return usageError(errOut, err)
	}

	rows, err := load(ctx, st, path)
	if err != nil {
		return fail(errOut, err)
	}
	rows, changed, err := todo.Start(rows, id, c.notes.Ptr(), c.force)
	if err != nil {
		return fail(errOut, err)
	}
	if changed {
		if err := st.Save(ctx, path, rows); err != nil {
			return fail(errOut, err)
		}
	}
	cfg.Log().Debug("start", "id", id, "changed", changed)
	return ok(cfg, out)
}

// CompleteCmd implements the complete command.
type CompleteCmd struct {
	file  string
	id    optionalInt
	notes optionalString
	force bool
	clock todo.Clock
}

// SetClock sets the time source (for testing).
func (c *CompleteCmd) SetClock(clock todo.Clock) {
	c.clock = clock
}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark the ACTIVE item COMPLETE" }
func (c *CompleteCmd) Usage() string {
	return "todocsv complete --file <path> --id <n> [--notes <text>] [--force]"
}
func (c *CompleteCmd) NeedsStore() bool { return true }

func (c *CompleteCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	idFlag(fs, &c.id)
	notesFlag(fs, &c.notes)
	fs.BoolVar(&c.force, "force", false, "complete an item that is not ACTIVE")
}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}
	id, err := parseID(c.id, args)
	if err != nil {
		return usageError(errOut, err)
	}

	rows, err := load(ctx, st, path)
	if err != nil {
		return fail(errOut, err)
	}
	rows, err = todo.Complete(rows, id, c.notes.Ptr(), c.force, now(c.clock))
	if err != nil {
		return fail(errOut, err)
	}
	if err := st.Save(ctx, path, rows); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}

// RevertCmd implements the revert command.
type RevertCmd struct {
	file  string
	id    optionalInt
	notes optionalString
}

func (c *RevertCmd) Name() string      { return "revert" }
func (c *RevertCmd) Aliases() []string { return []string{"todo"} }
func (c *RevertCmd) Synopsis() string  { return "Put an item back to PENDING" }
func (c *RevertCmd) Usage() string {
	return "todocsv revert --file <path> --id <n> [--notes <text>]"
}
func (c *RevertCmd) NeedsStore() bool { return true }

func (c *RevertCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	idFlag(fs, &c.id)
	notesFlag(fs, &c.notes)
}

func (c *RevertCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}
	id, err := parseID(c.id, args)
	if err != nil {
		return usageError(errOut, err)
	}

	rows, err := load(ctx, st, path)
	if err != nil {
		return fail(errOut, err)
	}
	rows, err = todo.Revert(rows, id, c.notes.Ptr())
	if err != nil {
		return fail(errOut, err)
	}
	if err := st.Save(ctx, path, rows); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}

// AdvanceCmd implements the advance command.
type AdvanceCmd struct {
	file  string
	notes optionalString
	clock todo.Clock
}

// SetClock sets the time source (for testing).
func (c *AdvanceCmd) SetClock(clock todo.Clock) {
	c.clock = clock
}

func (c *AdvanceCmd) Name() string      { return "advance" }
func (c *AdvanceCmd) Aliases() []string { return nil }
func (c *AdvanceCmd) Synopsis() string  { return "Complete the ACTIVE item and start the next one" }
func (c *AdvanceCmd) Usage() string     { return "todocsv advance --file <path> [--notes <text>]" }
func (c *AdvanceCmd) NeedsStore() bool  { return true }

func (c *AdvanceCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	notesFlag(fs, &c.notes)
}

func (c *AdvanceCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}

	rows, err := load(ctx, st, path)
	if err != nil {
		return fail(errOut, err)
	}
	rows, err = todo.Advance(rows, c.notes.Ptr(), now(c.clock))
	if err != nil {
		return fail(errOut, err)
	}
	if err := st.Save(ctx, path, rows); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
