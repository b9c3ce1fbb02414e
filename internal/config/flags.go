package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Process arguments consumed by context determination.
const (
	FlagApp     = "app"
	FlagAppPath = "appPath"
)

// parseFlags reads --app and --appPath from args. Every other argument is
// ignored, so args may be the full command line of the host program.
//
// Flags:
//
//	--app     name of the application to run
//	--appPath directory holding the applications
func parseFlags(args []string) (*ResolutionContext, error) {
	var app, appPath string

	fs := newFlagSet()
	fs.StringVar(&app, FlagApp, "", "Application name")
	fs.StringVar(&appPath, FlagAppPath, "", "Application base directory")

	if err := parse(fs, args); err != nil {
		return nil, fmt.Errorf("error parsing resolver flags: %w", err)
	}

	return &ResolutionContext{
		App:        app,
		AppBaseDir: appPath,
	}, nil
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

func parse(fs *pflag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}
