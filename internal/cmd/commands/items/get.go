package items

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
)

type GetCommand struct {
	*base.Command

	flagProfile string
}

func (c *GetCommand) Synopsis() string {
	return "Show the items of a record list"
}

func (c *GetCommand) Help() string {
	return `Usage: recordlists items get <list-identifier>

  Shows every item of a record list.` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	return f
}

func (c *GetCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	list, ok := listArg(c.Command, f)
	if !ok {
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := c.Client(ctx, c.flagProfile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting: %v", err))
		return 1
	}

	items, err := client.GetListItems(ctx, list)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching items: %v", err))
		return 1
	}

	base.RenderItems(c.UI, items)
	return 0
}
