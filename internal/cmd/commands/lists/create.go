package lists

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type CreateCommand struct {
	*base.Command

	flagProfile     string
	flagName        string
	flagDescription string
	flagNotes       string
	flagItemsFile   string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a new record list"
}

func (c *CreateCommand) Help() string {
	return `Usage: recordlists lists create -name <name>

  Creates a new record list, optionally seeded with items from a YAML batch
  file (see 'recordlists items add' for the format).` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.StringVar(&c.flagName, "name", "", "(Required) Name of the new list.")
	f.StringVar(&c.flagDescription, "description", "", "Description of the new list.")
	f.StringVar(&c.flagNotes, "notes", "", "Notes on the new list.")
	f.StringVar(&c.flagItemsFile, "items", "", "YAML batch file with items to seed the list with.")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagName == "" {
		c.UI.Error("name flag is required")
		return 1
	}

	req := recordlists.CreateListRequest{Name: c.flagName}
	if c.flagDescription != "" {
		req.Description = recordlists.String(c.flagDescription)
	}
	if c.flagNotes != "" {
		req.Notes = recordlists.String(c.flagNotes)
	}
	if c.flagItemsFile != "" {
		items, err := base.LoadItemsFile(c.FS, c.flagItemsFile)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		req.Items = items
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := c.Client(ctx, c.flagProfile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting: %v", err))
		return 1
	}

	list, err := client.CreateList(ctx, req)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating record list: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Created record list %q", list.Name))
	c.UI.Output(list.Identifier.String())
	return 0
}
