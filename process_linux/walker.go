//go:build linux

package process_linux

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"procinfo/process"
)

// readDirBatch bounds how many entries are read from a directory at a time
const readDirBatch = 256

// ParseID parses a procfs directory name as a process or thread id. Only
// names made entirely of decimal digits are accepted: signs, whitespace and
// trailing characters are rejected.
func ParseID(name string) (process.ProcessID, bool) {
	// ParseUint rejects signs and whitespace, unlike Atoi which accepts "+1"
	v, err := strconv.ParseUint(name, 10, 31)
	if err != nil {
		return 0, false
	}
	return process.ProcessID(v), true
}

// EnumerateIDs lazily yields the id of every numerically named subdirectory
// of dir, in the order the directory listing returns them. Other entries are
// skipped. If dir cannot be opened or read, the error is yielded once and
// the sequence ends; it wraps os.ErrNotExist when dir is gone.
func EnumerateIDs(dir string) iter.Seq2[process.ProcessID, error] {
	return func(yield func(process.ProcessID, error) bool) {
		f, err := os.Open(dir)
		if err != nil {
			yield(0, fmt.Errorf("failed to open %s: %w", dir, err))
			return
		}
		defer f.Close()

		for {
			entries, err := f.ReadDir(readDirBatch)
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				id, ok := ParseID(entry.Name())
				if !ok {
					// self, thread-self, sys, ...
					continue
				}
				if !yield(id, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, fmt.Errorf("failed to read %s: %w", dir, err))
				return
			}
		}
	}
}

// collectIDs drains EnumerateIDs into a slice
func collectIDs(dir string) ([]process.ProcessID, error) {
	var ids []process.ProcessID
	for id, err := range EnumerateIDs(dir) {
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
