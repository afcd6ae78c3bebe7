package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"todocsv/internal/config"
	"todocsv/internal/exitcode"
	"todocsv/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todocsv help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todocsv create [common flags] (--file <path> | --title <title> [--root <dir>])
                 [--force] [--no-active] [--item <label>]... [<label>...]
  todocsv append [common flags] --file <path> [--item <label>]... [<label>...]
  todocsv start [common flags] --file <path> --id <n> [--notes <text>] [--force]
  todocsv complete [common flags] --file <path> --id <n> [--notes <text>] [--force]
  todocsv revert [common flags] --file <path> --id <n> [--notes <text>]
  todocsv advance [common flags] --file <path> [--notes <text>]
  todocsv plan-export [common flags] --file <path> [--explanation <text>] [--normalize]
  todocsv status [common flags] --file <path> [--verbose]
  todocsv cleanup [common flags] --file <path>
  todocsv path [common flags] --title <title> [--root <dir>]
  todocsv help
  todocsv version

Aliases: init=create, add=append, done=complete, todo=revert, plan=plan-export

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
