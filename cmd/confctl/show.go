package main

import (
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merged configuration tree",
	Long: `Show the merged configuration tree.

Example:
  confctl show
  confctl --app billing --env production show --output yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		c, err := resolveConfiguration(cmd.Context())
		if err != nil {
			return err
		}

		out, err := formatTree(c.Tree(), output)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("output", "o", outputJSON, "Output format (json or yaml)")
}
