package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"todocsv/internal/config"
	"todocsv/internal/exitcode"
	"todocsv/internal/store"
)

func init() {
	Register(&PathCmd{})
}

// PathCmd prints the file path create --title would use.
type PathCmd struct {
	title string
	root  string
}

func (c *PathCmd) Name() string      { return "path" }
func (c *PathCmd) Aliases() []string { return nil }
func (c *PathCmd) Synopsis() string  { return "Print the CSV path for a title" }
func (c *PathCmd) Usage() string     { return "todocsv path --title <title> [--root <dir>]" }
func (c *PathCmd) NeedsStore() bool  { return false }

func (c *PathCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.title, "title", "t", "", "list title")
	fs.StringVar(&c.root, "root", "", "project root")
}

func (c *PathCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	title := c.title
	if title == "" {
		title = strings.Join(args, " ")
	}
	if strings.TrimSpace(title) == "" {
		return usageError(errOut, errors.New("--title is required"))
	}

	path, err := resolveTitlePath(cfg, c.root, title)
	if err != nil {
		return fail(errOut, err)
	}
	fmt.Fprintln(out, path)
	return exitcode.Success
}
