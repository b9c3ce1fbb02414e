package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/internal/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the merged configuration every time it changes",
	Long: `Watch the config search dirs and resolve the configuration again
whenever a file changes. The tree is printed when its content differs from
the previous resolution.

Example:
  confctl --env development watch -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return watchConfiguration(ctx, cmd, output, debounce)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringP("output", "o", outputJSON, "Output format (json or yaml)")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before a change is handled")
}

func watchConfiguration(ctx context.Context, cmd *cobra.Command, output string, debounce time.Duration) error {
	out := cmd.OutOrStdout()

	c, err := resolveConfiguration(ctx)
	if err != nil {
		return err
	}
	tree := c.Tree()
	rendered, err := formatTree(tree, output)
	if err != nil {
		return err
	}
	fingerprint := utils.Fingerprint(tree)
	_, _ = out.Write(rendered)

	w, err := watch.New(c.Dirs(), debounce, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d dirs for configuration changes\n", len(w.Dirs()))

	return w.Run(ctx, func(ctx context.Context) {
		c, err := resolveConfiguration(ctx)
		if err != nil {
			log.Error().Err(err).Msg("configuration reload failed")
			return
		}
		tree := c.Tree()
		next := utils.Fingerprint(tree)
		if next == fingerprint {
			log.Debug().Msg("configuration unchanged")
			return
		}
		fingerprint = next

		rendered, err := formatTree(tree, output)
		if err != nil {
			log.Error().Err(err).Msg("failed to render configuration")
			return
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "[%s] Configuration changed\n", time.Now().Format(time.RFC3339))
		_, _ = out.Write(rendered)
	})
}
