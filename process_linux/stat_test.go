//go:build linux

package process_linux

import (
	"path/filepath"
	"testing"

	"procinfo/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStat_Basic(t *testing.T) {
	rec := statRecord{pid: 1234, comm: "bash", state: 'R', ppid: 1, session: 1234, nice: -5, vsize: 8192000, rss: 300, startStack: 140737488346112}

	st, err := ParseStat([]byte(rec.line()), DefaultStatLayout)
	require.NoError(t, err)

	assert.Equal(t, process.ProcessID(1234), st.PID)
	assert.Equal(t, "bash", st.Comm)
	assert.Equal(t, byte('R'), st.State)
	assert.Equal(t, process.ProcessID(1), st.PPID)
	assert.Equal(t, 1234, st.Session)
	assert.Equal(t, int64(-5), st.Nice)
	assert.Equal(t, int64(15), st.Priority)
	assert.Equal(t, uint64(8192000), st.VSize)
	assert.Equal(t, int64(300), st.RSS)
	assert.Equal(t, uint64(140737488346112), st.StartStack)
}

func TestParseStat_CommWithCloseParen(t *testing.T) {
	rec := statRecord{pid: 123, comm: "my weird ) name", state: 'R'}

	st, err := ParseStat([]byte(rec.line()), DefaultStatLayout)
	require.NoError(t, err)

	assert.Equal(t, "my weird ) name", st.Comm)
	assert.Equal(t, byte('R'), st.State)
}

func TestParseStat_CommLooksLikeFields(t *testing.T) {
	rec := statRecord{pid: 7, comm: ") S 1 2 (", state: 'Z', session: 9}

	st, err := ParseStat([]byte(rec.line()), DefaultStatLayout)
	require.NoError(t, err)

	assert.Equal(t, ") S 1 2 (", st.Comm)
	assert.Equal(t, byte('Z'), st.State)
	assert.Equal(t, 9, st.Session)
}

func TestParseStat_EmptyComm(t *testing.T) {
	rec := statRecord{pid: 2, comm: ""}

	st, err := ParseStat([]byte(rec.line()), DefaultStatLayout)
	require.NoError(t, err)
	assert.Equal(t, "", st.Comm)
}

func TestParseStat_Malformed(t *testing.T) {
	valid := statRecord{pid: 1, comm: "init"}.line()

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no parens", "1 init S 0 1 1"},
		{"close before open", "1 )init( S 0 1 1"},
		{"bad pid", "x" + valid},
		{"truncated", "1 (init) S 0 1 1 0"},
		{"bad number", "1 (init) S zero" + valid[len("1 (init) S 0"):]},
		{"long state", "1 (init) SS" + valid[len("1 (init) S"):]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStat([]byte(tt.data), DefaultStatLayout)
			require.Error(t, err)
			assert.ErrorIs(t, err, process.ErrMalformedRecord)
		})
	}
}

func TestParseStat_CustomLayout(t *testing.T) {
	layout := StatLayout{State: 3, PPID: 4, Session: 5, Priority: 6, Nice: 7, VSize: 9, RSS: 10, StartStack: 11}

	st, err := ParseStat([]byte("5 (tiny) D 4 3 2 -1 1 4096 2 999"), layout)
	require.NoError(t, err)

	assert.Equal(t, byte('D'), st.State)
	assert.Equal(t, process.ProcessID(4), st.PPID)
	assert.Equal(t, 3, st.Session)
	assert.Equal(t, int64(-1), st.Nice)
	assert.Equal(t, uint64(4096), st.VSize)
	assert.Equal(t, int64(2), st.RSS)
	assert.Equal(t, uint64(999), st.StartStack)
}

func TestReadStat_NotFound(t *testing.T) {
	_, err := ReadStat(filepath.Join(t.TempDir(), "42", "stat"), DefaultStatLayout)
	require.Error(t, err)
	assert.ErrorIs(t, err, process.ErrRecordNotFound)
}

func TestReadStat_MalformedIsNotNotFound(t *testing.T) {
	fp := newFakeProc(t)
	fp.write("9/stat", "garbage\n")

	_, err := ReadStat(filepath.Join(fp.root, "9", "stat"), DefaultStatLayout)
	require.Error(t, err)
	assert.ErrorIs(t, err, process.ErrMalformedRecord)
	assert.NotErrorIs(t, err, process.ErrRecordNotFound)
}
