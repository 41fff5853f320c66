package lists

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type ListCommand struct {
	*base.Command

	flagProfile string
}

func (c *ListCommand) Synopsis() string {
	return "Show all record lists visible to you"
}

func (c *ListCommand) Help() string {
	return `Usage: recordlists lists list

  Shows every record list the current user can see.` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	return f
}

func (c *ListCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := c.Client(ctx, c.flagProfile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting: %v", err))
		return 1
	}

	lists, err := client.GetAllLists(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching record lists: %v", err))
		return 1
	}

	if len(lists) == 0 {
		c.UI.Info("No record lists found")
		return 0
	}

	rows := make([][]string, 0, len(lists))
	for _, list := range lists {
		rows = append(rows, listRow(list))
	}
	base.RenderTable(c.UI, listHeaders, rows)
	return 0
}

var listHeaders = []string{"IDENTIFIER", "NAME", "STATE", "MODIFIED", "MODIFIED BY"}

func listRow(list recordlists.RecordList) []string {
	return []string{
		list.Identifier.String(),
		list.Name,
		listState(list),
		base.FormatTime(list.LastModifiedTimestamp),
		base.Dash(list.LastModifiedUser.DisplayName),
	}
}

// listState condenses the lifecycle flags into one display word.
func listState(list recordlists.RecordList) string {
	switch {
	case list.AwaitingApproval:
		return "awaiting-approval"
	case list.Published:
		return "published"
	case list.IsRevision:
		return "revision"
	default:
		return "unpublished"
	}
}
