//go:build linux

package process_linux

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"procinfo/process"
)

// Stat holds the fields of a /proc/<pid>/stat or /proc/<pid>/task/<tid>/stat
// record that the descriptor builder needs.
type Stat struct {
	PID        process.ProcessID
	Comm       string
	State      byte
	PPID       process.ProcessID
	Session    int
	Priority   int64
	Nice       int64
	VSize      uint64 // bytes
	RSS        int64  // pages
	StartStack uint64
}

// ParseStat parses a single stat record.
//
// The command name is wrapped in parentheses and may itself contain spaces,
// digits and parentheses, so it runs from the first '(' to the last ')'.
// Everything after it is split on whitespace and read by position.
func ParseStat(data []byte, layout StatLayout) (Stat, error) {
	var st Stat

	open := bytes.IndexByte(data, '(')
	last := bytes.LastIndexByte(data, ')')
	if open < 0 || last < open {
		return st, fmt.Errorf("%w: no command name in %q", process.ErrMalformedRecord, data)
	}

	pid, err := strconv.ParseUint(string(bytes.TrimSpace(data[:open])), 10, 31)
	if err != nil {
		return st, fmt.Errorf("%w: bad pid: %v", process.ErrMalformedRecord, err)
	}
	st.PID = process.ProcessID(pid)
	st.Comm = string(data[open+1 : last])

	tok := newStatTokenizer(data[last+1:])
	if need := layout.maxField(); tok.count() < need {
		return st, fmt.Errorf("%w: %d fields, want at least %d", process.ErrMalformedRecord, tok.count(), need)
	}

	state := tok.field(layout.State)
	if len(state) != 1 {
		return st, fmt.Errorf("%w: bad state %q", process.ErrMalformedRecord, state)
	}
	st.State = state[0]
	st.PPID = process.ProcessID(tok.signed(layout.PPID))
	st.Session = int(tok.signed(layout.Session))
	st.Priority = tok.signed(layout.Priority)
	st.Nice = tok.signed(layout.Nice)
	st.VSize = tok.unsigned(layout.VSize)
	st.RSS = tok.signed(layout.RSS)
	st.StartStack = tok.unsigned(layout.StartStack)

	if tok.err != nil {
		return st, tok.err
	}
	return st, nil
}

// statTokenizer reads the positional fields that follow the command name.
// The first conversion error is kept and later reads return zero.
type statTokenizer struct {
	fields [][]byte
	err    error
}

// firstTailField is the record field number of the first token after ')'
const firstTailField = 3

func newStatTokenizer(tail []byte) *statTokenizer {
	return &statTokenizer{fields: bytes.Fields(tail)}
}

// count returns the highest record field number available
func (t *statTokenizer) count() int {
	return len(t.fields) + firstTailField - 1
}

func (t *statTokenizer) field(n int) string {
	i := n - firstTailField
	if i < 0 || i >= len(t.fields) {
		t.fail(fmt.Errorf("%w: field %d out of range", process.ErrMalformedRecord, n))
		return ""
	}
	return string(t.fields[i])
}

func (t *statTokenizer) signed(n int) int64 {
	s := t.field(n)
	if t.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.fail(fmt.Errorf("%w: field %d: %v", process.ErrMalformedRecord, n, err))
		return 0
	}
	return v
}

func (t *statTokenizer) unsigned(n int) uint64 {
	s := t.field(n)
	if t.err != nil {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		t.fail(fmt.Errorf("%w: field %d: %v", process.ErrMalformedRecord, n, err))
		return 0
	}
	return v
}

func (t *statTokenizer) fail(err error) {
	if t.err == nil {
		t.err = err
	}
}

// ReadStat reads and parses the stat record at path. A record that no longer
// exists yields an error wrapping process.ErrRecordNotFound.
func ReadStat(path string, layout StatLayout) (Stat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if isVanished(err) {
			return Stat{}, fmt.Errorf("%w: %s", process.ErrRecordNotFound, path)
		}
		return Stat{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	st, err := ParseStat(data, layout)
	if err != nil {
		return Stat{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return st, nil
}

// isVanished reports whether err means the process or thread is gone.
// Reading the records of a task that is being reaped can fail with ESRCH
// instead of ENOENT.
func isVanished(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, errProcessGone)
}
