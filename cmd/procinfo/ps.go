//go:build linux

package main

import (
	"procinfo/process"
	"procinfo/process_linux"
	"procinfo/table"

	"github.com/spf13/cobra"
)

// psCmd lists every process
var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List every process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		infos, err := snapshot(newManager(), limit)
		if err != nil {
			return err
		}

		tbl := table.NewTable(
			table.ColumnSpec{Header: "PID", AlignRight: true},
			table.ColumnSpec{Header: "PPID", AlignRight: true},
			table.ColumnSpec{Header: "S"},
			table.ColumnSpec{Header: "PRI", AlignRight: true},
			table.ColumnSpec{Header: "SESSION", AlignRight: true},
			table.ColumnSpec{Header: "VIRT", AlignRight: true},
			table.ColumnSpec{Header: "RSS", AlignRight: true},
			table.ColumnSpec{Header: "THR", AlignRight: true},
			table.ColumnSpec{Header: "NAME"},
		)
		for _, info := range infos {
			tbl.AddRow(
				itoa(info.PID),
				itoa(info.ParentPID),
				string(info.State),
				itoa(info.BasePriority),
				itoa(info.SessionID),
				humanBytes(info.VirtualBytes),
				humanBytes(info.WorkingSet),
				itoa(len(info.Threads)),
				info.Name,
			)
		}
		return tbl.Render(cmd.OutOrStdout())
	},
}

// snapshot reads every process, or only the first limit ids when limit > 0
func snapshot(m *process_linux.LinuxProcessManager, limit int) ([]process.ProcessInfo, error) {
	if limit <= 0 {
		return m.GetProcessInfos(machine())
	}

	ids, err := m.GetProcessIDs(machine())
	if err != nil {
		return nil, err
	}
	ids = ids[:min(limit, len(ids))]

	infos := make([]process.ProcessInfo, 0, len(ids))
	for _, pid := range ids {
		info, found, err := m.GetProcessInfo(pid, machine())
		if err != nil {
			return nil, err
		}
		if found {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

func init() {
	psCmd.Flags().Int("limit", 0, "inspect at most this many processes (0 means all)")
	rootCmd.AddCommand(psCmd)
}
