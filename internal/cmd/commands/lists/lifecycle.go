package lists

import (
	"context"
	"flag"
	"fmt"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

// LifecycleAction describes one of the state transitions a record list can
// go through. The transitions share their CLI shape, so they share one
// command implementation.
type LifecycleAction struct {
	name     string
	synopsis string
	describe string
	done     string
	call     func(*recordlists.Client, context.Context, recordlists.RecordList) (*recordlists.RecordList, error)
}

var (
	LifecycleCopy = LifecycleAction{
		name:     "copy",
		synopsis: "Copy a record list",
		describe: "Creates an unpublished copy of a record list and prints the copy's identifier.",
		done:     "Copied record list to %s",
		call:     (*recordlists.Client).CopyList,
	}
	LifecycleRevise = LifecycleAction{
		name:     "revise",
		synopsis: "Create an editable revision of a published record list",
		describe: "Creates a revision of a published list and prints the revision's identifier.",
		done:     "Created revision %s",
		call:     (*recordlists.Client).ReviseList,
	}
	LifecycleRequestApproval = LifecycleAction{
		name:     "request-approval",
		synopsis: "Request approval for publishing or withdrawing a record list",
		describe: "Marks the list as awaiting approval: for publication when it is unpublished,\n  for withdrawal when it is published.",
		done:     "Record list %s is awaiting approval",
		call:     (*recordlists.Client).RequestListApproval,
	}
	LifecycleCancelApproval = LifecycleAction{
		name:     "cancel-approval",
		synopsis: "Withdraw a pending approval request",
		describe: "Takes the list out of the awaiting-approval state.",
		done:     "Cancelled the approval request for record list %s",
		call:     (*recordlists.Client).CancelListApprovalRequest,
	}
	LifecyclePublish = LifecycleAction{
		name:     "publish",
		synopsis: "Publish a record list awaiting approval",
		describe: "Publishes a list that is awaiting approval for publication.",
		done:     "Published record list %s",
		call:     (*recordlists.Client).PublishList,
	}
	LifecycleUnpublish = LifecycleAction{
		name:     "unpublish",
		synopsis: "Withdraw a published record list awaiting approval",
		describe: "Withdraws a published list that is awaiting approval for withdrawal.",
		done:     "Unpublished record list %s",
		call:     (*recordlists.Client).UnpublishList,
	}
)

type LifecycleCommand struct {
	*base.Command

	action      LifecycleAction
	flagProfile string
}

func NewLifecycleCommand(b *base.Command, action LifecycleAction) *LifecycleCommand {
	return &LifecycleCommand{Command: b, action: action}
}

func (c *LifecycleCommand) Synopsis() string {
	return c.action.synopsis
}

func (c *LifecycleCommand) Help() string {
	return fmt.Sprintf(`Usage: recordlists lists %s <identifier>

  %s`, c.action.name, c.action.describe) + c.Flags().Help()
}

func (c *LifecycleCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(c.action.name, flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	return f
}

func (c *LifecycleCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	list, ok := oneListArg(c.Command, f)
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

	updated, err := c.action.call(client, ctx, list)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error running %s: %v", c.action.name, err))
		return 1
	}

	c.UI.Info(fmt.Sprintf(c.action.done, updated.Identifier))
	return 0
}

type SubscribeCommand struct {
	*base.Command

	// Remove turns the command into its unsubscribe counterpart.
	Remove bool

	flagProfile string
}

func (c *SubscribeCommand) name() string {
	if c.Remove {
		return "unsubscribe"
	}
	return "subscribe"
}

func (c *SubscribeCommand) Synopsis() string {
	if c.Remove {
		return "Unsubscribe from a record list"
	}
	return "Subscribe to a record list"
}

func (c *SubscribeCommand) Help() string {
	verb := "Subscribes you to"
	if c.Remove {
		verb = "Removes your subscription to"
	}
	return fmt.Sprintf(`Usage: recordlists lists %s <identifier>

  %s a record list.`, c.name(), verb) + c.Flags().Help()
}

func (c *SubscribeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(c.name(), flag.ExitOnError))
	f.ProfileVar(&c.flagProfile)
	return f
}

func (c *SubscribeCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	list, ok := oneListArg(c.Command, f)
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

	if c.Remove {
		err = client.UnsubscribeFromList(ctx, list)
	} else {
		err = client.SubscribeToList(ctx, list)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error running %s: %v", c.name(), err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Done: %s %s", c.name(), list.Identifier))
	return 0
}

// oneListArg parses the single positional list identifier shared by the
// lifecycle commands.
func oneListArg(c *base.Command, f *base.FlagSet) (recordlists.RecordList, bool) {
	if len(f.Args()) != 1 {
		c.UI.Error("exactly one list identifier is required")
		return recordlists.RecordList{}, false
	}
	identifier, err := parseListIdentifier(f.Args()[0])
	if err != nil {
		c.UI.Error(err.Error())
		return recordlists.RecordList{}, false
	}
	return recordlists.RecordList{Identifier: identifier}, true
}
