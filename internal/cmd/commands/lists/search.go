package lists

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type SearchCommand struct {
	*base.Command

	flagProfile      string
	flagNameContains string
	flagRole         string
	flagPublished    string
	flagAwaiting     string
	flagInternal     string
	flagRevision     string
	flagEditable     string
	flagDatabases    base.StringSlice
	flagTables       base.StringSlice
	flagRecords      base.StringSlice
	flagItems        bool
}

func (c *SearchCommand) Synopsis() string {
	return "Search for record lists"
}

func (c *SearchCommand) Help() string {
	return `Usage: recordlists lists search [options]

  Searches for record lists. All given filters must match. The boolean
  filters take true or false; leaving one unset means it is not part of the
  filter.` + c.Flags().Help()
}

func (c *SearchCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("search", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.StringVar(&c.flagNameContains, "name-contains", "", "Match lists whose name contains this string.")
	f.StringVar(&c.flagRole, "role", "",
		"Match lists on which you hold this role (none, owner, subscriber, curator, administrator).")
	f.StringVar(&c.flagPublished, "published", "", "Match on the published state (true/false).")
	f.StringVar(&c.flagAwaiting, "awaiting-approval", "", "Match on the awaiting-approval state (true/false).")
	f.StringVar(&c.flagInternal, "internal-use", "", "Match on the internal-use marker (true/false).")
	f.StringVar(&c.flagRevision, "revision", "", "Match on whether the list is a revision (true/false).")
	f.StringVar(&c.flagEditable, "editable", "", "Match lists you may add items to or remove items from (true/false).")
	f.Var(&c.flagDatabases, "in-database", "Match lists containing records in this database GUID. Repeatable.")
	f.Var(&c.flagTables, "in-table", "Match lists containing records in this table GUID. Repeatable.")
	f.Var(&c.flagRecords, "record", "Match lists containing this record history GUID. Repeatable.")
	f.BoolVar(&c.flagItems, "items", false, "Also show each matching list's items.")
	return f
}

func (c *SearchCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	criterion, err := c.criterion()
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

	results, err := client.SearchForLists(ctx, criterion, c.flagItems)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error searching record lists: %v", err))
		return 1
	}

	if len(results) == 0 {
		c.UI.Info("No matching record lists")
		return 0
	}

	if !c.flagItems {
		rows := make([][]string, 0, len(results))
		for _, result := range results {
			rows = append(rows, listRow(result.List))
		}
		base.RenderTable(c.UI, listHeaders, rows)
		return 0
	}

	for i, result := range results {
		if i > 0 {
			c.UI.Output("")
		}
		c.UI.Output(fmt.Sprintf("%s  (%s)", result.List.Name, result.List.Identifier))
		base.RenderItems(c.UI, result.Items)
	}
	return 0
}

func (c *SearchCommand) criterion() (*recordlists.SearchCriterion, error) {
	criterion := &recordlists.SearchCriterion{}

	if c.flagNameContains != "" {
		criterion.NameContains = recordlists.String(c.flagNameContains)
	}
	if c.flagRole != "" {
		role, err := parseRole(c.flagRole)
		if err != nil {
			return nil, err
		}
		criterion.UserRole = recordlists.Role(role)
	}

	for _, boolFlag := range []struct {
		name   string
		value  string
		target **bool
	}{
		{"published", c.flagPublished, &criterion.IsPublished},
		{"awaiting-approval", c.flagAwaiting, &criterion.IsAwaitingApproval},
		{"internal-use", c.flagInternal, &criterion.IsInternalUse},
		{"revision", c.flagRevision, &criterion.IsRevision},
		{"editable", c.flagEditable, &criterion.UserCanAddOrRemoveItems},
	} {
		if boolFlag.value == "" {
			continue
		}
		parsed, err := strconv.ParseBool(boolFlag.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: want true or false", boolFlag.name, boolFlag.value)
		}
		*boolFlag.target = recordlists.Bool(parsed)
	}

	var err error
	if criterion.ContainsRecordsInDatabases, err = parseGUIDs("in-database", c.flagDatabases); err != nil {
		return nil, err
	}
	if criterion.ContainsRecordsInTables, err = parseGUIDs("in-table", c.flagTables); err != nil {
		return nil, err
	}
	if criterion.ContainsRecords, err = parseGUIDs("record", c.flagRecords); err != nil {
		return nil, err
	}

	return criterion, nil
}

// parseRole maps a CLI role name onto the wire enum, e.g. "owner" to Owner.
func parseRole(value string) (recordlists.UserRole, error) {
	role := recordlists.UserRole(strcase.ToCamel(value))
	switch role {
	case recordlists.UserRoleNone,
		recordlists.UserRoleOwner,
		recordlists.UserRoleSubscriber,
		recordlists.UserRoleCurator,
		recordlists.UserRoleAdministrator:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q: want none, owner, subscriber, curator or administrator", value)
}

func parseGUIDs(flagName string, values []string) ([]guid.GUID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	guids := make([]guid.GUID, 0, len(values))
	for _, value := range values {
		g, err := guid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %v", flagName, err)
		}
		guids = append(guids, g)
	}
	return guids, nil
}
