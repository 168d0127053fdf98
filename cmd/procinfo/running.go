//go:build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runningCmd = &cobra.Command{
	Use:   "running <pid>",
	Short: "Print whether a process exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := parsePID(args[0])
		if err != nil {
			return err
		}
		running, err := newManager().IsProcessRunning(pid, machine())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), running)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runningCmd)
}
