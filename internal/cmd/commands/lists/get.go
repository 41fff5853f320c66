package lists

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type GetCommand struct {
	*base.Command

	flagProfile string
	flagItems   bool
}

func (c *GetCommand) Synopsis() string {
	return "Show one record list in detail"
}

func (c *GetCommand) Help() string {
	return `Usage: recordlists lists get <identifier>

  Shows the properties of a single record list.` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.BoolVar(&c.flagItems, "items", false, "Also show the list's items.")
	return f
}

func (c *GetCommand) Run(args []string) int {
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

	ctx, cancel := c.Context()
	defer cancel()

	client, err := c.Client(ctx, c.flagProfile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting: %v", err))
		return 1
	}

	list, err := client.GetList(ctx, identifier)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching record list: %v", err))
		return 1
	}

	c.printDetails(list)

	if c.flagItems {
		items, err := client.GetListItems(ctx, *list)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching items: %v", err))
			return 1
		}
		c.UI.Output("")
		base.RenderItems(c.UI, items)
	}
	return 0
}

func (c *GetCommand) printDetails(list *recordlists.RecordList) {
	out := func(key, value string) {
		c.UI.Output(fmt.Sprintf("%-22s %s", key+":", value))
	}

	out("Identifier", list.Identifier.String())
	out("Name", list.Name)
	if list.Description != nil {
		out("Description", *list.Description)
	}
	if list.Notes != nil {
		out("Notes", *list.Notes)
	}
	out("State", listState(*list))
	out("Internal use", fmt.Sprintf("%t", list.InternalUse))
	out("Created", fmt.Sprintf("%s by %s", base.FormatTime(list.CreatedTimestamp), base.Dash(list.CreatedUser.DisplayName)))
	out("Modified", fmt.Sprintf("%s by %s", base.FormatTime(list.LastModifiedTimestamp), base.Dash(list.LastModifiedUser.DisplayName)))
	if list.PublishedTimestamp != nil {
		by := "-"
		if list.PublishedUser != nil {
			by = list.PublishedUser.DisplayName
		}
		out("Published", fmt.Sprintf("%s by %s", base.FormatTime(*list.PublishedTimestamp), by))
	}
	if !list.ParentRecordListIdentifier.IsZero() {
		out("Revision of", list.ParentRecordListIdentifier.String())
	}
}
