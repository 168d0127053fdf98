package process

// ProcessID represents a unique identifier for a process or thread.
// Ids are unique at a point in time and may be reused after exit.
type ProcessID int

// LocalMachine is the machine name that always refers to the local host.
const LocalMachine = "."

// Unsupported marks a counter this platform cannot supply. It is never a real
// measurement, so callers can tell "not available" apart from a genuine zero.
const Unsupported int64 = -1

// Supported reports whether a counter holds a real value.
func Supported(v int64) bool {
	return v != Unsupported
}

// ProcessInfo is a snapshot of a single process taken from the kernel's
// process table. It owns its Threads slice and is not updated after it is
// returned.
type ProcessInfo struct {
	PID          ProcessID // Process ID
	ParentPID    ProcessID // Parent Process ID
	Name         string    // Command name, truncated by the kernel
	State        byte      // Raw kernel state character (R, S, D, Z, ...)
	BasePriority int       // Kernel nice value
	VirtualBytes int64     // Virtual memory size in bytes
	WorkingSet   int64     // Resident set size in bytes
	SessionID    int       // Session ID
	HandleCount  int       // Always 0, handles are not a Linux concept

	// Counters below are set to Unsupported on Linux.
	PoolPagedBytes    int64
	PoolNonPagedBytes int64
	PrivateBytes      int64
	VirtualBytesPeak  int64
	WorkingSetPeak    int64
	PageFileBytes     int64
	PageFileBytesPeak int64

	Threads []ThreadInfo
}

// ThreadInfo is a snapshot of one thread of a process.
type ThreadInfo struct {
	PID             ProcessID        // Owning process
	TID             ProcessID        // Thread ID
	BasePriority    int              // Copied from the owning process
	CurrentPriority int              // Thread nice value
	StartAddress    uintptr          // Start of stack as reported by the kernel, not dereferenceable
	State           ThreadState      // Translated from the kernel state character
	WaitReason      ThreadWaitReason // Always WaitReasonUnknown on Linux
}

// ModuleInfo describes a module loaded into a process.
type ModuleInfo struct {
	Name        string
	Path        string
	BaseAddress uintptr
	EntryPoint  uintptr
	Size        int64
}
