//go:build windows

package config

import "golang.org/x/sys/windows"

const stillActive = 259

// processAlive reports whether the PID refers to a live process. Signal(0)
// does not work on Windows, so the exit code is queried directly.
func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == stillActive
}
