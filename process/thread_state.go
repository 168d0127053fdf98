package process

import "fmt"

// ThreadState is the scheduling state of a thread.
type ThreadState int

const (
	ThreadUnknown    ThreadState = iota // State could not be determined
	ThreadRunning                       // Running or runnable
	ThreadWait                          // Sleeping, in disk wait or stopped
	ThreadTerminated                    // Exited, waiting to be reaped
	ThreadTransition                    // Paging
)

func (s ThreadState) String() string {
	switch s {
	case ThreadUnknown:
		return "Unknown"
	case ThreadRunning:
		return "Running"
	case ThreadWait:
		return "Wait"
	case ThreadTerminated:
		return "Terminated"
	case ThreadTransition:
		return "Transition"
	default:
		return fmt.Sprintf("ThreadState(%d)", int(s))
	}
}

// ThreadWaitReason explains why a thread in the Wait state is waiting.
type ThreadWaitReason int

const (
	WaitReasonUnknown ThreadWaitReason = iota
)

func (r ThreadWaitReason) String() string {
	if r == WaitReasonUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("ThreadWaitReason(%d)", int(r))
}
