package lists

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type UpdateCommand struct {
	*base.Command

	flagProfile          string
	flagName             string
	flagDescription      string
	flagClearDescription bool
	flagNotes            string
	flagClearNotes       bool
}

func (c *UpdateCommand) Synopsis() string {
	return "Change the properties of a record list"
}

func (c *UpdateCommand) Help() string {
	return `Usage: recordlists lists update <identifier>

  Updates the name, description or notes of a record list. Only the flags
  given are changed; -clear-description and -clear-notes remove the
  property. The name can be replaced but not cleared.` + c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("update", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.StringVar(&c.flagName, "name", "", "New name of the list.")
	f.StringVar(&c.flagDescription, "description", "", "New description of the list.")
	f.BoolVar(&c.flagClearDescription, "clear-description", false, "Remove the description.")
	f.StringVar(&c.flagNotes, "notes", "", "New notes on the list.")
	f.BoolVar(&c.flagClearNotes, "clear-notes", false, "Remove the notes.")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
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

	props, err := c.properties()
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

	updated, err := client.UpdateList(ctx, recordlists.RecordList{Identifier: identifier}, props)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error updating record list: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Updated record list %q", updated.Name))
	return 0
}

func (c *UpdateCommand) properties() (recordlists.UpdateListProperties, error) {
	var props recordlists.UpdateListProperties

	if c.flagName != "" {
		props.Name = recordlists.Set(c.flagName)
	}
	switch {
	case c.flagDescription != "" && c.flagClearDescription:
		return props, fmt.Errorf("description and clear-description are mutually exclusive")
	case c.flagDescription != "":
		props.Description = recordlists.Set(c.flagDescription)
	case c.flagClearDescription:
		props.Description = recordlists.Null[string]()
	}
	switch {
	case c.flagNotes != "" && c.flagClearNotes:
		return props, fmt.Errorf("notes and clear-notes are mutually exclusive")
	case c.flagNotes != "":
		props.Notes = recordlists.Set(c.flagNotes)
	case c.flagClearNotes:
		props.Notes = recordlists.Null[string]()
	}

	return props, nil
}
