package items

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
)

type AddCommand struct {
	*base.Command

	flagProfile string
	flagFile    string
}

func (c *AddCommand) Synopsis() string {
	return "Add items to a record list"
}

func (c *AddCommand) Help() string {
	return `Usage: recordlists items add -file=<path> <list-identifier>

  Adds the items described in a YAML batch file to a record list and shows
  the list's items afterwards. Every item in the file must name a database,
  a table and a record history GUID; record_version may pin a version.

  Batch file format:

    items:
      - database: 0d3cbb17-2672-4c63-8035-ca41ae7944f7
        table: 81dff531-0254-4fbe-9621-174b10aaee3d
        record_history: 36177a6c-c542-4f61-a43c-3dd40065def3
        record_version: 2` + c.Flags().Help()
}

func (c *AddCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.StringVar(&c.flagFile, "file", "", "Path to the YAML batch file naming the items.")
	return f
}

func (c *AddCommand) Run(args []string) int {
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

	result, err := client.AddItemsToList(ctx, list, items)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error adding items: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Added %d item(s); the list now holds:", len(items)))
	base.RenderItems(c.UI, result)
	return 0
}
