//go:build linux

package process_linux

import (
	"path/filepath"
	"strconv"

	"procinfo/process"
)

// DefaultRoot is where the kernel mounts procfs.
const DefaultRoot = "/proc"

// StatLayout maps the stat record fields the parser reads to their 1-based
// position in the record, as documented in proc(5). Field 1 is the pid and
// field 2 the parenthesised command name; every other field is counted as if
// the command name contained no spaces.
type StatLayout struct {
	State      int
	PPID       int
	Session    int
	Priority   int
	Nice       int
	VSize      int
	RSS        int
	StartStack int
}

// DefaultStatLayout is the layout of /proc/<pid>/stat since Linux 2.6.
var DefaultStatLayout = StatLayout{
	State:      3,
	PPID:       4,
	Session:    6,
	Priority:   18,
	Nice:       19,
	VSize:      23,
	RSS:        24,
	StartStack: 28,
}

// maxField returns the highest field number the layout refers to
func (l StatLayout) maxField() int {
	m := 0
	for _, f := range []int{l.State, l.PPID, l.Session, l.Priority, l.Nice, l.VSize, l.RSS, l.StartStack} {
		m = max(m, f)
	}
	return m
}

func processDir(root string, pid process.ProcessID) string {
	return filepath.Join(root, strconv.Itoa(int(pid)))
}

func statPath(root string, pid process.ProcessID) string {
	return filepath.Join(processDir(root, pid), "stat")
}

func taskDir(root string, pid process.ProcessID) string {
	return filepath.Join(processDir(root, pid), "task")
}

func threadStatPath(root string, pid, tid process.ProcessID) string {
	return filepath.Join(taskDir(root, pid), strconv.Itoa(int(tid)), "stat")
}
