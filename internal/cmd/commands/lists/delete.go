package lists

import (
	"flag"
	"fmt"
	"strings"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type DeleteCommand struct {
	*base.Command

	flagProfile string
	flagForce   bool
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a record list"
}

func (c *DeleteCommand) Help() string {
	return `Usage: recordlists lists delete <identifier>

  Deletes a record list. Asks for confirmation unless -force is given.` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.BoolVar(&c.flagForce, "force", false, "Delete without asking for confirmation.")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(f.Args()) != 1 {
		c.UI.Error("exactly one list identifier is required")
		return 1
	}
	identifier, err := parseListIdentifier(f.Args()[0])
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if !c.flagForce {
		answer, err := c.UI.Ask(fmt.Sprintf("Delete record list %s? Only 'yes' proceeds:", identifier))
		if err != nil || strings.TrimSpace(answer) != "yes" {
			c.UI.Info("Aborted")
			return 1
		}
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := c.Client(ctx, c.flagProfile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting: %v", err))
		return 1
	}

	if err := client.DeleteList(ctx, recordlists.RecordList{Identifier: identifier}); err != nil {
		c.UI.Error(fmt.Sprintf("error deleting record list: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Deleted record list %s", identifier))
	return 0
}
