package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/matforge/recordlists-go/internal/cmd/base"
	"github.com/matforge/recordlists-go/internal/cmd/commands/audit"
	"github.com/matforge/recordlists-go/internal/cmd/commands/items"
	"github.com/matforge/recordlists-go/internal/cmd/commands/lists"
	versioncmd "github.com/matforge/recordlists-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
	}

	Commands = map[string]cli.CommandFactory{
		"lists": func() (cli.Command, error) {
			return &lists.Command{Command: baseCommand}, nil
		},
		"lists list": func() (cli.Command, error) {
			return &lists.ListCommand{Command: baseCommand}, nil
		},
		"lists get": func() (cli.Command, error) {
			return &lists.GetCommand{Command: baseCommand}, nil
		},
		"lists create": func() (cli.Command, error) {
			return &lists.CreateCommand{Command: baseCommand}, nil
		},
		"lists update": func() (cli.Command, error) {
			return &lists.UpdateCommand{Command: baseCommand}, nil
		},
		"lists delete": func() (cli.Command, error) {
			return &lists.DeleteCommand{Command: baseCommand}, nil
		},
		"lists search": func() (cli.Command, error) {
			return &lists.SearchCommand{Command: baseCommand}, nil
		},
		"lists copy": func() (cli.Command, error) {
			return lists.NewLifecycleCommand(baseCommand, lists.LifecycleCopy), nil
		},
		"lists revise": func() (cli.Command, error) {
			return lists.NewLifecycleCommand(baseCommand, lists.LifecycleRevise), nil
		},
		"lists request-approval": func() (cli.Command, error) {
			return lists.NewLifecycleCommand(baseCommand, lists.LifecycleRequestApproval), nil
		},
		"lists cancel-approval": func() (cli.Command, error) {
			return lists.NewLifecycleCommand(baseCommand, lists.LifecycleCancelApproval), nil
		},
		"lists publish": func() (cli.Command, error) {
			return lists.NewLifecycleCommand(baseCommand, lists.LifecyclePublish), nil
		},
		"lists unpublish": func() (cli.Command, error) {
			return lists.NewLifecycleCommand(baseCommand, lists.LifecycleUnpublish), nil
		},
		"lists subscribe": func() (cli.Command, error) {
			return &lists.SubscribeCommand{Command: baseCommand}, nil
		},
		"lists unsubscribe": func() (cli.Command, error) {
			return &lists.SubscribeCommand{Command: baseCommand, Remove: true}, nil
		},
		"items": func() (cli.Command, error) {
			return &items.Command{Command: baseCommand}, nil
		},
		"items get": func() (cli.Command, error) {
			return &items.GetCommand{Command: baseCommand}, nil
		},
		"items add": func() (cli.Command, error) {
			return &items.AddCommand{Command: baseCommand}, nil
		},
		"items remove": func() (cli.Command, error) {
			return &items.RemoveCommand{Command: baseCommand}, nil
		},
		"items resolvable": func() (cli.Command, error) {
			return &items.ResolvableCommand{Command: baseCommand}, nil
		},
		"audit": func() (cli.Command, error) {
			return &audit.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
