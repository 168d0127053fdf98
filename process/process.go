// Package process provides platform-neutral types and interfaces for
// inspecting the process table of the local machine.
package process

import "errors"

var (
	// ErrPlatformNotSupported is returned when an operation targets a machine
	// other than the local one.
	ErrPlatformNotSupported = errors.New("operation not supported for this target")

	// ErrRecordNotFound is returned when a process or thread record vanished
	// between discovery and read. It is an expected outcome, not a failure.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMalformedRecord is returned when a kernel record does not match the
	// layout the parser expects.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnexpectedState is returned in strict mode for a state character
	// outside the translation table.
	ErrUnexpectedState = errors.New("unexpected state character")

	// ErrInvalidProcessID is returned for a negative process id.
	ErrInvalidProcessID = errors.New("invalid process id")
)
