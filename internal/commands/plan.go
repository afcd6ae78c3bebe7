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
	Register(&PlanCmd{})
}

// PlanCmd implements the plan-export command.
type PlanCmd struct {
	file        string
	explanation string
	normalize   bool
}

func (c *PlanCmd) Name() string      { return "plan-export" }
func (c *PlanCmd) Aliases() []string { return []string{"plan"} }
func (c *PlanCmd) Synopsis() string  { return "Print the list as a JSON plan" }
func (c *PlanCmd) Usage() string {
	return "todocsv plan-export --file <path> [--explanation <text>] [--normalize]"
}
func (c *PlanCmd) NeedsStore() bool { return true }

func (c *PlanCmd) RegisterFlags(fs *pflag.FlagSet) {
	fileFlag(fs, &c.file)
	fs.StringVarP(&c.explanation, "explanation", "e", "", "explanation field of the plan")
	fs.BoolVar(&c.normalize, "normalize", false, "persist the single-ACTIVE normalization")
}

func (c *PlanCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	path, err := resolveFile(c.file)
	if err != nil {
		return usageError(errOut, err)
	}

	rows, err := load(ctx, st, path)
	if err != nil {
		return fail(errOut, err)
	}
	rows, changed := todo.Enforce(rows, c.normalize)
	if c.normalize && changed {
		if err := st.Save(ctx, path, rows); err != nil {
			return fail(errOut, err)
		}
	}
	cfg.Log().Debug("plan export", "normalize", c.normalize, "changed", changed)

	if err := output.WritePlan(out, todo.Project(rows, c.explanation)); err != nil {
		return fail(errOut, err)
	}
	return exitcode.Success
}
