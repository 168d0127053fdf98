//go:build linux

package process_linux

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// statFields is the number of fields in a Linux 3.5+ stat record
const statFields = 52

type statRecord struct {
	pid        int
	comm       string
	state      byte
	ppid       int
	session    int
	nice       int
	vsize      uint64
	rss        int64
	startStack uint64
}

// line renders r in the proc(5) layout, zero-filling fields it does not set
func (r statRecord) line() string {
	tail := make([]string, statFields-2)
	for i := range tail {
		tail[i] = "0"
	}
	set := func(field int, v string) { tail[field-firstTailField] = v }

	state := r.state
	if state == 0 {
		state = 'S'
	}
	set(DefaultStatLayout.State, string(state))
	set(DefaultStatLayout.PPID, strconv.Itoa(r.ppid))
	set(DefaultStatLayout.Session, strconv.Itoa(r.session))
	set(DefaultStatLayout.Priority, strconv.Itoa(20+r.nice))
	set(DefaultStatLayout.Nice, strconv.Itoa(r.nice))
	set(DefaultStatLayout.VSize, strconv.FormatUint(r.vsize, 10))
	set(DefaultStatLayout.RSS, strconv.FormatInt(r.rss, 10))
	set(DefaultStatLayout.StartStack, strconv.FormatUint(r.startStack, 10))

	return strconv.Itoa(r.pid) + " (" + r.comm + ") " + strings.Join(tail, " ") + "\n"
}

// fakeProc is a synthetic procfs tree under a temporary directory
type fakeProc struct {
	t    *testing.T
	root string
}

func newFakeProc(t *testing.T) *fakeProc {
	t.Helper()
	return &fakeProc{t: t, root: t.TempDir()}
}

func (f *fakeProc) write(rel string, content string) {
	f.t.Helper()
	path := filepath.Join(f.root, rel)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(f.t, os.WriteFile(path, []byte(content), 0o644))
}

func (f *fakeProc) mkdir(rel string) {
	f.t.Helper()
	require.NoError(f.t, os.MkdirAll(filepath.Join(f.root, rel), 0o755))
}

// addProcess writes the process record and one task record per thread.
// The thread-group leader is not added implicitly.
func (f *fakeProc) addProcess(r statRecord, threads ...statRecord) {
	f.t.Helper()
	pid := strconv.Itoa(r.pid)
	f.write(filepath.Join(pid, "stat"), r.line())
	f.mkdir(filepath.Join(pid, "task"))
	for _, th := range threads {
		f.write(filepath.Join(pid, "task", strconv.Itoa(th.pid), "stat"), th.line())
	}
}

func (f *fakeProc) manager(opts ...Option) *LinuxProcessManager {
	base := []Option{
		WithRoot(f.root),
		WithPageSize(4096),
		WithHostname(func() (string, error) { return "testhost", nil }),
	}
	return NewProcessManager(append(base, opts...)...)
}
