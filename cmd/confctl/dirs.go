package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dirsCmd represents the dirs command
var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List the config search dirs, lowest priority first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveConfiguration(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, dir := range c.Dirs() {
			if dirExists(dir) {
				fmt.Fprintln(out, dir)
			} else {
				fmt.Fprintf(out, "%s (missing)\n", dir)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirsCmd)
}
