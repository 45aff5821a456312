//go:build windows

package win32

import (
	"path/filepath"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tintbar-io/tintbar/internal/engine"
)

// enumVisitor carries the current EnumTopLevelWindows closure; the Win32
// enumeration callback cannot capture one itself. Single-threaded access
// only.
var enumVisitor func(engine.Window) bool

var enumCallback = syscall.NewCallback(func(hwnd, _ uintptr) uintptr {
	if enumVisitor != nil && !enumVisitor(engine.Window(hwnd)) {
		return 0
	}
	return 1
})

// EnumTopLevelWindows visits every top-level window in z-order.
func (p *Platform) EnumTopLevelWindows(visit func(w engine.Window) bool) {
	enumVisitor = visit
	procEnumWindows.Call(enumCallback, 0)
	enumVisitor = nil
}

// WindowMetadata collects everything the classifier needs to know about one
// window. A window that disappears mid-query reports ok=false. The process
// image query dominates the cost of the whole lookup, so it is deferred
// behind the ExeName closure and only runs when a caller asks.
func (p *Platform) WindowMetadata(w engine.Window) (engine.WindowMetadata, bool) {
	if alive, _, _ := procIsWindow.Call(uintptr(w)); alive == 0 {
		return engine.WindowMetadata{}, false
	}

	visible, _, _ := procIsWindowVisible.Call(uintptr(w))
	zoomed, _, _ := procIsZoomed.Call(uintptr(w))

	onDesktop := true
	if p.virtualDesktops != nil {
		onDesktop = p.virtualDesktops.isWindowOnCurrentDesktop(uintptr(w))
	}

	return engine.WindowMetadata{
		Class:            windowClass(w),
		Title:            windowTitle(w),
		Visible:          visible != 0,
		Maximized:        zoomed != 0,
		Cloaked:          windowCloaked(w),
		OnCurrentDesktop: onDesktop,
		ExeName:          sync.OnceValue(func() string { return windowExeName(w) }),
	}, true
}

// StartMenuWindow reports the Start menu's core window while the launcher is
// open. The primary taskbar stands in for monitor attribution when the core
// window cannot be found.
func (p *Platform) StartMenuWindow() (engine.Window, bool) {
	if p.appVisibility == nil || !p.appVisibility.isLauncherVisible() {
		return 0, false
	}
	if hwnd := findWindow("Windows.UI.Core.CoreWindow", "Start"); hwnd != 0 {
		return engine.Window(hwnd), true
	}
	if hwnd := findWindow("Shell_TrayWnd", ""); hwnd != 0 {
		return engine.Window(hwnd), true
	}
	return 0, false
}

func windowClass(w engine.Window) string {
	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(uintptr(w), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func windowTitle(w engine.Window) string {
	var buf [512]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(w), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func windowExeName(w engine.Window) string {
	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(w), uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return ""
	}

	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		// Protected processes refuse the query. Their windows still match
		// by class and title, so resolve to an empty name.
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return filepath.Base(windows.UTF16ToString(buf[:size]))
}

// windowCloaked reports DWM cloaking, which covers suspended UWP shells and
// windows parked on other virtual desktops.
func windowCloaked(w engine.Window) bool {
	var cloaked uint32
	ret, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(w),
		dwmwaCloaked,
		uintptr(unsafe.Pointer(&cloaked)),
		unsafe.Sizeof(cloaked),
	)
	return ret == 0 && cloaked != 0
}
