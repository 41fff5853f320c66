// Package lists implements the record list subcommands of the CLI.
package lists

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/guid"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage record lists"
}

func (c *Command) Help() string {
	return `Usage: recordlists lists <subcommand> [options] [args]

  This command groups subcommands for working with record lists: browsing,
  creating, editing, searching and moving them through the publication
  lifecycle.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// parseListIdentifier parses a positional list identifier argument.
func parseListIdentifier(arg string) (guid.GUID, error) {
	identifier, err := guid.Parse(arg)
	if err != nil {
		return guid.GUID{}, fmt.Errorf("invalid list identifier: %v", err)
	}
	return identifier, nil
}
