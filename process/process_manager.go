package process

import "os"

// ProcessManager defines read-only queries against the process table.
// Every call takes a fresh snapshot; nothing is cached between calls.
type ProcessManager interface {
	// IsProcessRunning reports whether a process record currently exists.
	// The answer is advisory: the process may exit right after the check.
	IsProcessRunning(pid ProcessID, machineName string) (bool, error)

	// GetProcessInfo returns a snapshot of one process. found is false when
	// the process does not exist or exited while it was being read.
	GetProcessInfo(pid ProcessID, machineName string) (info ProcessInfo, found bool, err error)

	// GetProcessInfos returns a snapshot of every process, skipping any that
	// exit while the table is being read.
	GetProcessInfos(machineName string) ([]ProcessInfo, error)

	// GetProcessIDs returns the ids of all processes. Some may have exited by
	// the time the caller looks at them.
	GetProcessIDs(machineName string) ([]ProcessID, error)

	// GetProcessIDFromHandle returns the id of the process behind a handle
	GetProcessIDFromHandle(handle *os.Process) ProcessID

	// GetModuleInfos returns the modules loaded into a process
	GetModuleInfos(pid ProcessID) ([]ModuleInfo, error)

	// IsRemoteMachine reports whether machineName names another host
	IsRemoteMachine(machineName string) bool
}
