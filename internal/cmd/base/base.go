// Package base carries the dependencies and helpers shared by every CLI
// command: the UI, the logger, the filesystem abstraction and the profile
// driven connection to the server.
package base

import (
	"bytes"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/matforge/recordlists-go/pkg/recordlists"
)

// Command carries the dependencies every CLI command needs.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// FS abstracts file access for profile and batch files so tests can
	// run against an in-memory filesystem.
	FS afero.Fs
}

// Context returns a context that is cancelled on SIGINT or SIGTERM.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Client connects to the server configured by the profile and environment.
func (c *Command) Client(ctx context.Context, profilePath string) (*recordlists.Client, error) {
	cfg, err := resolveConfig(c.FS, profilePath)
	if err != nil {
		return nil, err
	}
	cfg.Logger = c.Log
	return recordlists.Connect(ctx, cfg)
}

// FlagSet wraps flag.FlagSet with help rendering for command Help() text.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	fs.Usage = func() {}
	return &FlagSet{FlagSet: fs}
}

// Help renders the flags as an options block.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n\n" + buf.String()
}

// ProfileVar registers the profile flag shared by every command.
func (f *FlagSet) ProfileVar(target *string) {
	f.StringVar(target, "profile", "",
		"Path to an HCL profile file. Defaults to ~/"+DefaultProfileName+" when present.")
}

// StringSlice is a repeatable string flag.
type StringSlice []string

func (s *StringSlice) String() string {
	return ""
}

func (s *StringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}
