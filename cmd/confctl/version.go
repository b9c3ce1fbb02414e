package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-config-resolver/models"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information and the configured app version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, buildInfo.String())

		c, err := resolveConfiguration(cmd.Context())
		if err != nil {
			log.Debug().Err(err).Msg("app version not available")
			return
		}
		if version, ok := models.AppVersionFrom(c.Tree()); ok {
			fmt.Fprintf(out, "App version: %s\n", version)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
