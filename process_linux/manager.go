//go:build linux

package process_linux

import (
	"fmt"
	"os"

	"procinfo/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

var _ process.ProcessManager = (*LinuxProcessManager)(nil)

// LinuxProcessManager implements the process.ProcessManager interface by
// reading procfs. It holds only configuration and is safe for concurrent use.
type LinuxProcessManager struct {
	root     string
	layout   StatLayout
	pageSize int64
	hostname func() (string, error)
	strict   bool
	log      *logger.Logger
}

// Option configures a LinuxProcessManager
type Option func(*LinuxProcessManager)

// WithRoot reads process records from root instead of /proc
func WithRoot(root string) Option {
	return func(m *LinuxProcessManager) {
		m.root = root
	}
}

// WithStatLayout overrides the stat record field positions
func WithStatLayout(layout StatLayout) Option {
	return func(m *LinuxProcessManager) {
		m.layout = layout
	}
}

// WithPageSize sets the size in bytes of one resident page
func WithPageSize(size int64) Option {
	return func(m *LinuxProcessManager) {
		m.pageSize = size
	}
}

// WithHostname replaces the source of the local host name
func WithHostname(fn func() (string, error)) Option {
	return func(m *LinuxProcessManager) {
		m.hostname = fn
	}
}

// WithStrictStates makes an unknown thread state character an error instead
// of a debug message.
func WithStrictStates(strict bool) Option {
	return func(m *LinuxProcessManager) {
		m.strict = strict
	}
}

// WithLogger replaces the manager's default procfs logger
func WithLogger(log *logger.Logger) Option {
	return func(m *LinuxProcessManager) {
		m.log = log
	}
}

// NewProcessManager creates a LinuxProcessManager reading /proc unless
// configured otherwise.
func NewProcessManager(opts ...Option) *LinuxProcessManager {
	m := &LinuxProcessManager{
		root:     DefaultRoot,
		layout:   DefaultStatLayout,
		hostname: hostname,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.pageSize <= 0 {
		m.pageSize = pageSize()
	}
	if m.log == nil {
		m.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "procfs"))
	}
	return m
}

// Root returns the procfs mount point the manager reads from
func (m *LinuxProcessManager) Root() string {
	return m.root
}

// IsRemoteMachine reports whether machineName names a host other than this
// one. "." and the local host name are local.
func (m *LinuxProcessManager) IsRemoteMachine(machineName string) bool {
	if machineName == process.LocalMachine {
		return false
	}
	local, err := m.hostname()
	if err != nil {
		m.log.Warn("Failed to read local host name: ", err)
		return true
	}
	return machineName != local
}

// IsProcessRunning reports whether the stat record of pid exists right now
func (m *LinuxProcessManager) IsProcessRunning(pid process.ProcessID, machineName string) (bool, error) {
	if err := m.checkMachine(machineName); err != nil {
		return false, err
	}
	if err := checkPID(pid); err != nil {
		return false, err
	}

	path := statPath(m.root, pid)
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case isVanished(err):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

// GetProcessInfo returns a snapshot of pid and its threads
func (m *LinuxProcessManager) GetProcessInfo(pid process.ProcessID, machineName string) (process.ProcessInfo, bool, error) {
	if err := m.checkMachine(machineName); err != nil {
		return process.ProcessInfo{}, false, err
	}
	if err := checkPID(pid); err != nil {
		return process.ProcessInfo{}, false, err
	}
	return m.buildProcessInfo(pid)
}

// GetProcessInfos returns a snapshot of every process in the table
func (m *LinuxProcessManager) GetProcessInfos(machineName string) ([]process.ProcessInfo, error) {
	if err := m.checkMachine(machineName); err != nil {
		return nil, err
	}

	pids, err := collectIDs(m.root)
	if err != nil {
		return nil, err
	}

	infos := make([]process.ProcessInfo, 0, len(pids))
	vanished := 0
	for _, pid := range pids {
		info, found, err := m.buildProcessInfo(pid)
		if err != nil {
			return nil, err
		}
		if !found {
			vanished++
			continue
		}
		infos = append(infos, info)
	}

	m.log.Debugln("Snapshot complete,", len(infos), "processes,", vanished, "exited during scan")
	return infos, nil
}

// GetProcessIDs lists the ids of all processes
func (m *LinuxProcessManager) GetProcessIDs(machineName string) ([]process.ProcessID, error) {
	if err := m.checkMachine(machineName); err != nil {
		return nil, err
	}
	return collectIDs(m.root)
}

// GetProcessIDFromHandle returns the pid wrapped by handle, which must not be nil
func (m *LinuxProcessManager) GetProcessIDFromHandle(handle *os.Process) process.ProcessID {
	return process.ProcessID(handle.Pid)
}

// GetModuleInfos always returns an empty list: module enumeration is not
// implemented on Linux, and that is not an error.
func (m *LinuxProcessManager) GetModuleInfos(pid process.ProcessID) ([]process.ModuleInfo, error) {
	return []process.ModuleInfo{}, nil
}

func (m *LinuxProcessManager) checkMachine(machineName string) error {
	if m.IsRemoteMachine(machineName) {
		return fmt.Errorf("%w: %q", process.ErrPlatformNotSupported, machineName)
	}
	return nil
}

func checkPID(pid process.ProcessID) error {
	if pid < 0 {
		return fmt.Errorf("%w: %d", process.ErrInvalidProcessID, pid)
	}
	return nil
}
