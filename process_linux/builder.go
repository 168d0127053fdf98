//go:build linux

package process_linux

import (
	"errors"
	"fmt"

	"procinfo/process"
)

// buildProcessInfo reads the stat record of pid and of each of its threads.
// found is false when the process record is gone. Threads that exit while
// they are being read are left out.
func (m *LinuxProcessManager) buildProcessInfo(pid process.ProcessID) (process.ProcessInfo, bool, error) {
	st, err := ReadStat(statPath(m.root, pid), m.layout)
	if errors.Is(err, process.ErrRecordNotFound) {
		m.log.Debugln("Process", pid, "exited before it could be read")
		return process.ProcessInfo{}, false, nil
	}
	if err != nil {
		return process.ProcessInfo{}, false, err
	}

	info := process.ProcessInfo{
		PID:          pid,
		ParentPID:    st.PPID,
		Name:         st.Comm,
		State:        st.State,
		BasePriority: int(st.Nice),
		VirtualBytes: int64(st.VSize),
		WorkingSet:   st.RSS * m.pageSize,
		SessionID:    st.Session,
		HandleCount:  0,

		// procfs has no equivalent for these
		PoolPagedBytes:    process.Unsupported,
		PoolNonPagedBytes: process.Unsupported,
		PrivateBytes:      process.Unsupported,
		VirtualBytesPeak:  process.Unsupported,
		WorkingSetPeak:    process.Unsupported,
		PageFileBytes:     process.Unsupported,
		PageFileBytesPeak: process.Unsupported,
	}

	info.Threads, err = m.buildThreads(pid, info.BasePriority)
	if err != nil {
		return process.ProcessInfo{}, false, err
	}
	return info, true, nil
}

// buildThreads reads every thread under /proc/<pid>/task. A missing task
// directory means the process exited after its own record was read, which
// leaves it with no threads.
func (m *LinuxProcessManager) buildThreads(pid process.ProcessID, basePriority int) ([]process.ThreadInfo, error) {
	threads := []process.ThreadInfo{}

	for tid, err := range EnumerateIDs(taskDir(m.root, pid)) {
		if err != nil {
			if isVanished(err) {
				m.log.Debugln("Task directory of process", pid, "is gone")
				return threads, nil
			}
			return nil, err
		}

		st, err := ReadStat(threadStatPath(m.root, pid, tid), m.layout)
		if errors.Is(err, process.ErrRecordNotFound) {
			m.log.Debugln("Thread", tid, "of process", pid, "exited before it could be read")
			continue
		}
		if err != nil {
			return nil, err
		}

		state, err := m.threadState(st.State, pid, tid)
		if err != nil {
			return nil, err
		}

		threads = append(threads, process.ThreadInfo{
			PID:             pid,
			TID:             tid,
			BasePriority:    basePriority,
			CurrentPriority: int(st.Nice),
			StartAddress:    uintptr(st.StartStack),
			State:           state,
			WaitReason:      process.WaitReasonUnknown,
		})
	}

	return threads, nil
}

// threadState translates a state character. An unknown character means the
// record layout is not what the parser expects: it is an error in strict
// mode and a debug message otherwise, since newer kernels report states
// (I, P, X) the table does not cover.
func (m *LinuxProcessManager) threadState(code byte, pid, tid process.ProcessID) (process.ThreadState, error) {
	state, ok := ThreadStateFromCode(code)
	if ok {
		return state, nil
	}
	if m.strict {
		return state, fmt.Errorf("%w: %q for thread %d of process %d", process.ErrUnexpectedState, code, tid, pid)
	}
	m.log.Debugln("Unexpected state character", string(code), "for thread", tid, "of process", pid)
	return state, nil
}
