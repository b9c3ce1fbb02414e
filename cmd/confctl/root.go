package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-config-resolver/configuration"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

var (
	buildInfo = models.NewAppBuildInfo("", "", "")
	log       = logger.Nop()
)

var rootFlags struct {
	app        string
	appPath    string
	env        string
	root       string
	configDirs []string
	hooks      []string
	logLevel   string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confctl",
	Short: "Resolve and inspect layered application configuration",
	Long: `Resolve and inspect layered application configuration.

Configuration files (HCL modules, YAML and JSON) are collected from the
built-in dirs (build/config, dist/config, config), the application config
dir and extra dirs, then merged into one tree.

Flags override the environment variables CONFIG_APP, CONFIG_APP_PATH,
CONFIG_DIRS, APP_ENV and CONFIG_ROOT.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logger.NewConsoleLogger("confctl", cmd.ErrOrStderr())
		if err := log.SetLevel(rootFlags.logLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", rootFlags.logLevel, err)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.app, "app", "", "application name (CONFIG_APP)")
	flags.StringVar(&rootFlags.appPath, "appPath", "", "applications base dir (CONFIG_APP_PATH)")
	flags.StringVar(&rootFlags.env, "env", "", "environment, e.g. development or production (APP_ENV)")
	flags.StringVar(&rootFlags.root, "root", "", "project root dir (CONFIG_ROOT)")
	flags.StringSliceVar(&rootFlags.configDirs, "config-dir", nil, "extra config dir, highest priority (CONFIG_DIRS)")
	flags.StringSliceVar(&rootFlags.hooks, "hook", nil, "register a no-op configure hook under this name")
	flags.StringVar(&rootFlags.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
}

// noopHook lets modules that call hook() resolve outside their application.
var noopHook = models.ConfigureFunc(func(models.Tree) error { return nil })

func newConfiguration() *configuration.Configuration {
	opts := []configuration.Option{
		configuration.WithApp(rootFlags.app),
		configuration.WithAppBaseDir(rootFlags.appPath),
		configuration.WithEnvironment(rootFlags.env),
		configuration.WithRootDir(rootFlags.root),
		configuration.WithArgs([]string{}),
		configuration.WithLogger(log),
	}
	if len(rootFlags.configDirs) > 0 {
		opts = append(opts, configuration.WithCustomDirs(rootFlags.configDirs...))
	}
	for _, name := range rootFlags.hooks {
		opts = append(opts, configuration.WithHook(name, noopHook))
	}
	return configuration.New(opts...)
}

func resolveConfiguration(ctx context.Context) (*configuration.Configuration, error) {
	c := newConfiguration()
	if err := c.Resolve(ctx); err != nil {
		return nil, fmt.Errorf("failed to resolve configuration: %w", err)
	}
	return c, nil
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
