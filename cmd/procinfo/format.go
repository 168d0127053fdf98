//go:build linux

package main

import (
	"fmt"
	"strconv"

	"procinfo/process"
	"procinfo/table"

	"github.com/spf13/viper"
)

const (
	_ = 1 << (iota * 10)
	kib
	mib
	gib
)

// humanBytes formats a byte count, or "n/a" for counters the platform does not supply
func humanBytes(v int64) string {
	switch {
	case !process.Supported(v):
		return "n/a"
	case v < kib:
		return fmt.Sprintf("%dB", v)
	case v < mib:
		return fmt.Sprintf("%.1fK", float64(v)/kib)
	case v < gib:
		return fmt.Sprintf("%.1fM", float64(v)/mib)
	default:
		return fmt.Sprintf("%.1fG", float64(v)/gib)
	}
}

func itoa[T ~int | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// stateColor colours a thread state name
func stateColor(s string) string {
	switch s {
	case process.ThreadRunning.String():
		return table.ColorGreen(s)
	case process.ThreadTerminated.String():
		return table.ColorRed(s)
	case process.ThreadTransition.String():
		return table.ColorYellow(s)
	case process.ThreadUnknown.String():
		return table.ColorGray(s)
	default:
		return s
	}
}

func formatter(fn table.FormatFunc) table.FormatFunc {
	if viper.GetBool("no-color") {
		return nil
	}
	return fn
}
