// Package items implements the record list item subcommands of the CLI.
package items

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with the items of a record list"
}

func (c *Command) Help() string {
	return `Usage: recordlists items <subcommand> [options] <list-identifier>

  This command groups subcommands for reading and editing the items of a
  record list, and for checking which items resolve to records you can
  reach on the server.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// listArg parses the positional list identifier shared by the item
// subcommands.
func listArg(c *base.Command, f *base.FlagSet) (recordlists.RecordList, bool) {
	if len(f.Args()) != 1 {
		c.UI.Error("exactly one list identifier is required")
		return recordlists.RecordList{}, false
	}
	identifier, err := guid.Parse(f.Args()[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("invalid list identifier: %v", err))
		return recordlists.RecordList{}, false
	}
	return recordlists.RecordList{Identifier: identifier}, true
}
