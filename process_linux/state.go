//go:build linux

package process_linux

import "procinfo/process"

// ThreadStateFromCode translates the state character of a stat record. ok is
// false for characters outside the table, which signals a record format this
// package does not know about.
func ThreadStateFromCode(c byte) (state process.ThreadState, ok bool) {
	switch c {
	case 'R':
		return process.ThreadRunning, true
	case 'S', 'D', 'T':
		return process.ThreadWait, true
	case 'Z':
		return process.ThreadTerminated, true
	case 'W':
		return process.ThreadTransition, true
	default:
		return process.ThreadUnknown, false
	}
}
