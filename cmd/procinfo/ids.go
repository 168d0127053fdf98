//go:build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// idsCmd prints the raw id list
var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Print the id of every process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := newManager().GetProcessIDs(machine())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idsCmd)
}
