//go:build !windows

package config

import (
	"os"
	"syscall"
)

// processAlive reports whether the PID refers to a live process, using the
// kill -0 probe.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
