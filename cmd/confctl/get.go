package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errPathNotFound = errors.New("path not found")

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print one configuration value",
	Long: `Print one configuration value.

The path is dot separated; array elements are addressed by index.
Strings are printed verbatim, other values as JSON.

Example:
  confctl get db.host
  confctl get servers.0.port`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveConfiguration(cmd.Context())
		if err != nil {
			return err
		}

		v, ok := c.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", errPathNotFound, args[0])
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
		return err
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
