//go:build linux

package process_linux

import (
	"golang.org/x/sys/unix"
)

// errProcessGone is what the kernel returns for reads against a task that is
// being torn down.
var errProcessGone error = unix.ESRCH

// hostname returns the node name, the same value gethostname(2) reports.
func hostname() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Nodename[:]), nil
}

func pageSize() int64 {
	return int64(unix.Getpagesize())
}
