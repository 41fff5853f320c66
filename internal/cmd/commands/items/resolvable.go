package items

import (
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

type ResolvableCommand struct {
	*base.Command

	flagProfile  string
	flagInternal bool
	flagParallel int
}

func (c *ResolvableCommand) Synopsis() string {
	return "Show which items of a record list resolve to reachable records"
}

func (c *ResolvableCommand) Help() string {
	return `Usage: recordlists items resolvable [options] <list-identifier>

  Checks each item of a record list against the server and shows the ones
  that resolve to a record you can reach, in list order. An item can fail
  to resolve because the record was deleted, because you lack permission to
  see it, or because its database is not mounted.` + c.Flags().Help()
}

func (c *ResolvableCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("resolvable", flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	f.BoolVar(&c.flagInternal, "include-internal-use", false,
		"Also consider databases marked for internal use only.")
	f.IntVar(&c.flagParallel, "parallel", 0,
		"Number of items to check concurrently. Values below 2 check sequentially.")
	return f
}

func (c *ResolvableCommand) Run(args []string) int {
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

	opts := recordlists.ResolveOptions{
		IncludeInternalUse: c.flagInternal,
		MaxParallel:        c.flagParallel,
	}
	resolvable, err := client.GetResolvableItems(ctx, items, opts)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error resolving items: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("%d of %d item(s) resolvable", len(resolvable), len(items)))
	if len(resolvable) > 0 {
		base.RenderItems(c.UI, resolvable)
	}
	return 0
}
