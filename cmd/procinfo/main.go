//go:build linux

// Command procinfo prints snapshots of the local process table.
package main

func main() {
	Execute()
}
