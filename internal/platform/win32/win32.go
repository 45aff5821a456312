//go:build windows

// Package win32 implements the engine's platform interface against the
// Windows shell. Everything here must run on the one OS thread that owns the
// message window and the COM apartment.
package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")
	ntdll  = windows.NewLazySystemDLL("ntdll.dll")

	procCreateWindowExW                = user32.NewProc("CreateWindowExW")
	procDefWindowProcW                 = user32.NewProc("DefWindowProcW")
	procDestroyWindow                  = user32.NewProc("DestroyWindow")
	procDispatchMessageW               = user32.NewProc("DispatchMessageW")
	procEnumWindows                    = user32.NewProc("EnumWindows")
	procFindWindowW                    = user32.NewProc("FindWindowW")
	procFindWindowExW                  = user32.NewProc("FindWindowExW")
	procGetClassNameW                  = user32.NewProc("GetClassNameW")
	procGetWindowTextW                 = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId       = user32.NewProc("GetWindowThreadProcessId")
	procIsWindow                       = user32.NewProc("IsWindow")
	procIsWindowVisible                = user32.NewProc("IsWindowVisible")
	procIsZoomed                       = user32.NewProc("IsZoomed")
	procMonitorFromWindow              = user32.NewProc("MonitorFromWindow")
	procPeekMessageW                   = user32.NewProc("PeekMessageW")
	procPostMessageW                   = user32.NewProc("PostMessageW")
	procRegisterClassExW               = user32.NewProc("RegisterClassExW")
	procRegisterWindowMessageW         = user32.NewProc("RegisterWindowMessageW")
	procSendNotifyMessageW             = user32.NewProc("SendNotifyMessageW")
	procSetWinEventHook                = user32.NewProc("SetWinEventHook")
	procSetWindowCompositionAttribute  = user32.NewProc("SetWindowCompositionAttribute")
	procShowWindow                     = user32.NewProc("ShowWindow")
	procTranslateMessage               = user32.NewProc("TranslateMessage")
	procUnhookWinEvent                 = user32.NewProc("UnhookWinEvent")

	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")
	procRtlGetVersion         = ntdll.NewProc("RtlGetVersion")
)

const (
	wmClose         = 0x0010
	wmThemeChanged  = 0x031A
	wmDisplayChange = 0x007E
	wmLButtonUp     = 0x0202

	pmRemove      = 1
	hwndBroadcast = 0xFFFF

	swHide       = 0
	swShowNormal = 1

	monitorDefaultToPrimary = 1

	dwmwaCloaked = 14

	// SetWindowCompositionAttribute attribute and accent states.
	wcaAccentPolicy = 19

	accentEnableGradient            = 1
	accentEnableTransparentGradient = 2
	accentEnableBlurBehind          = 3
	accentEnableAcrylicBlurBehind   = 4

	accentFlagAllBorders = 2

	// Aero peek begins and ends.
	eventSystemPeekStart = 0x0021
	eventSystemPeekEnd   = 0x0022
	winEventOutOfContext = 0

	// First build whose compositor accepts the acrylic accent state.
	minFluentBuild = 17063
)

type accentPolicy struct {
	AccentState uint32
	Flags       uint32
	Color       uint32 // ABGR
	AnimationID uint32
}

type windowCompositionAttributeData struct {
	Attribute uint32
	Data      uintptr
	SizeOf    uintptr
}

type point struct {
	X int32
	Y int32
}

type message struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

type osVersionInfoW struct {
	OSVersionInfoSize uint32
	MajorVersion      uint32
	MinorVersion      uint32
	BuildNumber       uint32
	PlatformID        uint32
	CSDVersion        [128]uint16
}

// hostBuildNumber asks ntdll directly; the documented GetVersionEx lies to
// unmanifested processes.
func hostBuildNumber() uint32 {
	var info osVersionInfoW
	info.OSVersionInfoSize = uint32(unsafe.Sizeof(info))
	procRtlGetVersion.Call(uintptr(unsafe.Pointer(&info)))
	return info.BuildNumber
}
