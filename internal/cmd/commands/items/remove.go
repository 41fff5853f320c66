package items

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
)

type RemoveCommand struct {
	*base.Command

	flagProfile string
	flagFile    string
}

func (c *RemoveCommand) Synopsis() string {
	return "Remove items from a record list"
}

func (c *RemoveCommand) Help() string {
	return `Usage: recordlists items remove -file=<path> <list-identifier>

  Removes the items described in a YAML batch file from a record list and
  shows the list's items afterwards. Removal matches on database, record
  history and pinned version; table entries in the file are ignored. Items
  not present in the list are skipped silently.

  The batch file format is the same as for "items add".` + c.Flags().Help()
}

func (c *RemoveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("remove", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.StringVar(&c.flagFile, "file", "", "Path to the YAML batch file naming the items.")
	return f
}

func (c *RemoveCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagFile == "" {
		c.UI.Error("a batch file must be given with -file")
		return 1
	}
	list, ok := listArg(c.Command, f)
	if !ok {
		return 1
	}

	items, err := base.LoadItemsFile(c.FS, c.flagFile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading %s: %v", c.flagFile, err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := c.Client(ctx, c.flagProfile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting: %v", err))
		return 1
	}

	result, err := client.RemoveItemsFromList(ctx, list, items)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error removing items: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Removed %d item(s); the list now holds:", len(items)))
	base.RenderItems(c.UI, result)
	return 0
}
