//go:build linux

package process_linux

import (
	"testing"

	"procinfo/process"

	"github.com/stretchr/testify/assert"
)

func TestThreadStateFromCode(t *testing.T) {
	tests := []struct {
		code byte
		want process.ThreadState
		ok   bool
	}{
		{'R', process.ThreadRunning, true},
		{'S', process.ThreadWait, true},
		{'D', process.ThreadWait, true},
		{'T', process.ThreadWait, true},
		{'Z', process.ThreadTerminated, true},
		{'W', process.ThreadTransition, true},
		{'Q', process.ThreadUnknown, false},
		{'I', process.ThreadUnknown, false},
		{'r', process.ThreadUnknown, false},
		{0, process.ThreadUnknown, false},
	}

	for _, tt := range tests {
		got, ok := ThreadStateFromCode(tt.code)
		assert.Equal(t, tt.want, got, "code %q", tt.code)
		assert.Equal(t, tt.ok, ok, "code %q", tt.code)
	}
}

func TestThreadStateFromCode_Total(t *testing.T) {
	for c := 0; c < 256; c++ {
		assert.NotPanics(t, func() { ThreadStateFromCode(byte(c)) })
	}
}

func TestThreadState_String(t *testing.T) {
	assert.Equal(t, "Running", process.ThreadRunning.String())
	assert.Equal(t, "Terminated", process.ThreadTerminated.String())
	assert.Equal(t, "Unknown", process.ThreadUnknown.String())
	assert.Equal(t, "ThreadState(42)", process.ThreadState(42).String())
}
