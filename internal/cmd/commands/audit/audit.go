// Package audit implements the audit log subcommand of the CLI.
package audit

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/iancoleman/strcase"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type Command struct {
	*base.Command

	flagProfile  string
	flagLists    base.StringSlice
	flagActions  base.StringSlice
	flagSince    string
	flagUntil    string
	flagPageSize int
	flagLimit    int
}

func (c *Command) Synopsis() string {
	return "Show the audit trail of record list activity"
}

func (c *Command) Help() string {
	return `Usage: recordlists audit [options]

  Shows the audit trail of record list activity. List and action filters
  are applied by the server; time filters are applied to the entries as
  they stream in. Entries are fetched page by page, so a -limit stops the
  fetching early.

  Actions are named in kebab case, for example list-published, item-added
  or user-subscribed.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("audit", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.Var(&c.flagLists, "list", "Only show entries for this record list GUID. Repeatable.")
	f.Var(&c.flagActions, "action", "Only show entries recording this action. Repeatable.")
	f.StringVar(&c.flagSince, "since", "", "Only show entries at or after this time.")
	f.StringVar(&c.flagUntil, "until", "", "Only show entries before this time.")
	f.IntVar(&c.flagPageSize, "page-size", 0, "Entries to fetch per request. 0 selects the default.")
	f.IntVar(&c.flagLimit, "limit", 0, "Stop after this many matching entries. 0 shows all.")
	return f
}

func (c *Command) Run(args []string) int {
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
	window, err := parseWindow(c.flagSince, c.flagUntil)
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

	page := client.SearchAuditLogPaged(criterion, c.flagPageSize)

	var rows [][]string
	for page.Scan(ctx) {
		entry := page.Item()
		if !window.contains(entry.Timestamp) {
			continue
		}
		rows = append(rows, entryRow(entry))
		if c.flagLimit > 0 && len(rows) >= c.flagLimit {
			break
		}
	}
	if err := page.Err(); err != nil {
		c.UI.Error(fmt.Sprintf("error fetching audit log: %v", err))
		return 1
	}

	if len(rows) == 0 {
		c.UI.Info("No matching audit log entries")
		return 0
	}
	base.RenderTable(c.UI, entryHeaders, rows)
	return 0
}

func (c *Command) criterion() (recordlists.AuditLogSearchCriterion, error) {
	var criterion recordlists.AuditLogSearchCriterion

	for _, value := range c.flagLists {
		g, err := guid.Parse(value)
		if err != nil {
			return criterion, fmt.Errorf("invalid list value: %v", err)
		}
		criterion.FilterRecordListIdentifiers = append(criterion.FilterRecordListIdentifiers, g)
	}
	for _, value := range c.flagActions {
		action, err := parseAction(value)
		if err != nil {
			return criterion, err
		}
		criterion.FilterActions = append(criterion.FilterActions, action)
	}
	return criterion, nil
}

// parseAction maps a kebab-case CLI action name onto the wire enum, e.g.
// "list-published" to ListPublished.
func parseAction(value string) (recordlists.AuditLogAction, error) {
	action := recordlists.AuditLogAction(strcase.ToCamel(value))
	for _, known := range recordlists.AuditLogActions() {
		if action == known {
			return action, nil
		}
	}
	return "", fmt.Errorf("unknown action %q: want one of %s", value, strings.Join(actionNames(), ", "))
}

func actionNames() []string {
	actions := recordlists.AuditLogActions()
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, strcase.ToKebab(string(action)))
	}
	sort.Strings(names)
	return names
}

// window is a half-open time range [since, until). Zero bounds are
// unconstrained.
type window struct {
	since time.Time
	until time.Time
}

func parseWindow(since, until string) (window, error) {
	var w window
	var err error
	if since != "" {
		if w.since, err = dateparse.ParseAny(since); err != nil {
			return w, fmt.Errorf("invalid since value %q: %v", since, err)
		}
	}
	if until != "" {
		if w.until, err = dateparse.ParseAny(until); err != nil {
			return w, fmt.Errorf("invalid until value %q: %v", until, err)
		}
	}
	if !w.since.IsZero() && !w.until.IsZero() && w.until.Before(w.since) {
		return w, fmt.Errorf("until %s is before since %s", until, since)
	}
	return w, nil
}

func (w window) contains(t time.Time) bool {
	if !w.since.IsZero() && t.Before(w.since) {
		return false
	}
	if !w.until.IsZero() && !t.Before(w.until) {
		return false
	}
	return true
}

var entryHeaders = []string{"TIME", "LIST", "ACTION", "USER", "SUBJECT"}

func entryRow(entry recordlists.AuditLogItem) []string {
	return []string{
		base.FormatTime(entry.Timestamp),
		entry.ListIdentifier.String(),
		strcase.ToKebab(string(entry.Action)),
		base.Dash(entry.InitiatingUser.DisplayName),
		entrySubject(entry),
	}
}

// entrySubject names what the entry acted on, beyond the list itself.
func entrySubject(entry recordlists.AuditLogItem) string {
	switch {
	case entry.ListItemAffected != nil:
		return fmt.Sprintf("record %s", entry.ListItemAffected.RecordHistoryGUID)
	case entry.UserOrGroupAffected != nil:
		return base.Dash(entry.UserOrGroupAffected.DisplayName)
	default:
		return "-"
	}
}
