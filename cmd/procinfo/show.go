//go:build linux

package main

import (
	"errors"
	"fmt"

	"procinfo/table"

	"github.com/spf13/cobra"
)

var errNoSuchProcess = errors.New("no such process")

// showCmd prints one process and its threads
var showCmd = &cobra.Command{
	Use:   "show <pid>",
	Short: "Show a process and its threads",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := parsePID(args[0])
		if err != nil {
			return err
		}

		info, found, err := newManager().GetProcessInfo(pid, machine())
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %d", errNoSuchProcess, pid)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Process %d (%s)\n", info.PID, info.Name)
		fmt.Fprintf(out, "  Parent:        %d\n", info.ParentPID)
		fmt.Fprintf(out, "  State:         %c\n", info.State)
		fmt.Fprintf(out, "  Base priority: %d\n", info.BasePriority)
		fmt.Fprintf(out, "  Session:       %d\n", info.SessionID)
		fmt.Fprintf(out, "  Virtual:       %s\n", humanBytes(info.VirtualBytes))
		fmt.Fprintf(out, "  Working set:   %s\n", humanBytes(info.WorkingSet))
		fmt.Fprintf(out, "  Private:       %s\n", humanBytes(info.PrivateBytes))
		fmt.Fprintf(out, "  Peak virtual:  %s\n", humanBytes(info.VirtualBytesPeak))
		fmt.Fprintln(out)

		tbl := table.NewTable(
			table.ColumnSpec{Header: "TID", AlignRight: true},
			table.ColumnSpec{Header: "PRI", AlignRight: true},
			table.ColumnSpec{Header: "STATE", FormatFunc: formatter(stateColor)},
			table.ColumnSpec{Header: "WAIT"},
			table.ColumnSpec{Header: "START"},
		)
		for _, th := range info.Threads {
			tbl.AddRow(
				itoa(th.TID),
				itoa(th.CurrentPriority),
				th.State.String(),
				th.WaitReason.String(),
				fmt.Sprintf("0x%x", th.StartAddress),
			)
		}
		return tbl.Render(out)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
