// Package version implements the version subcommand of the CLI.
package version

import (
	"github.com/matforge/recordlists-go/internal/cmd/base"
	build "github.com/matforge/recordlists-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the client version"
}

func (c *Command) Help() string {
	return `Usage: recordlists version

  Prints the version of this client.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(build.Version)
	return 0
}
