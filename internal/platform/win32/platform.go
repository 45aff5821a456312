//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tintbar-io/tintbar/internal/engine"
)

// Platform is the live shell binding. Exactly one may exist per process; the
// window procedure and event hook callbacks route through a package-level
// pointer because they cannot carry a closure.
type Platform struct {
	msgWindow       uintptr
	eventHook       uintptr
	taskbarCreated  uint32
	newInstance     uint32
	build           uint32
	accentSupported bool
	cb              engine.Callbacks
	virtualDesktops *virtualDesktopManager
	appVisibility   *appVisibility
}

var active *Platform

// New binds to the shell. The calling goroutine must be locked to its OS
// thread for the lifetime of the platform; the message window, the event
// hook, and the COM apartment are all bound to it.
func New() (*Platform, error) {
	if active != nil {
		return nil, fmt.Errorf("win32: platform already initialized")
	}

	p := &Platform{
		build: hostBuildNumber(),
		// The composition attribute export is undocumented and absent on
		// legacy hosts; probe it once instead of letting Call panic.
		accentSupported: procSetWindowCompositionAttribute.Find() == nil,
	}
	if err := p.initCOM(); err != nil {
		return nil, err
	}
	if err := p.initMessageWindow(); err != nil {
		p.releaseCOM()
		return nil, err
	}
	p.initEventHook()

	active = p
	return p, nil
}

// Close tears down the message window, the event hook, and the COM objects.
func (p *Platform) Close() {
	if p.eventHook != 0 {
		procUnhookWinEvent.Call(p.eventHook)
		p.eventHook = 0
	}
	if p.msgWindow != 0 {
		procDestroyWindow.Call(p.msgWindow)
		p.msgWindow = 0
	}
	p.releaseCOM()
	if active == p {
		active = nil
	}
}

// Subscribe registers the shell event callbacks.
func (p *Platform) Subscribe(cb engine.Callbacks) {
	p.cb = cb
}

// FindPrimaryTaskbar locates Shell_TrayWnd.
func (p *Platform) FindPrimaryTaskbar() (engine.TaskbarRef, bool) {
	hwnd := findWindow("Shell_TrayWnd", "")
	if hwnd == 0 {
		return engine.TaskbarRef{}, false
	}
	return engine.TaskbarRef{
		Window:  engine.Window(hwnd),
		Monitor: p.MonitorOf(engine.Window(hwnd)),
	}, true
}

// SecondaryTaskbars walks every Shell_SecondaryTrayWnd.
func (p *Platform) SecondaryTaskbars() []engine.TaskbarRef {
	var refs []engine.TaskbarRef
	var hwnd uintptr
	for {
		hwnd = findWindowEx(0, hwnd, "Shell_SecondaryTrayWnd", "")
		if hwnd == 0 {
			return refs
		}
		refs = append(refs, engine.TaskbarRef{
			Window:  engine.Window(hwnd),
			Monitor: p.MonitorOf(engine.Window(hwnd)),
		})
	}
}

// MonitorOf maps a window to its monitor, defaulting to the primary.
func (p *Platform) MonitorOf(w engine.Window) engine.MonitorID {
	monitor, _, _ := procMonitorFromWindow.Call(uintptr(w), monitorDefaultToPrimary)
	return engine.MonitorID(monitor)
}

// ApplyAccent submits one accent policy to the compositor. Hosts without the
// composition attribute export keep their stock taskbars.
func (p *Platform) ApplyAccent(taskbar engine.Window, kind engine.AccentKind, argb uint32) {
	if !p.accentSupported {
		return
	}

	var state uint32
	switch kind {
	case engine.AccentOpaque:
		state = accentEnableGradient
	case engine.AccentClear:
		state = accentEnableTransparentGradient
	case engine.AccentBlur:
		state = accentEnableBlurBehind
	case engine.AccentFluent:
		state = accentEnableAcrylicBlurBehind
	default:
		return
	}

	policy := accentPolicy{
		AccentState: state,
		Flags:       accentFlagAllBorders,
		Color:       engine.EncodeAccentColor(kind, argb),
	}
	data := windowCompositionAttributeData{
		Attribute: wcaAccentPolicy,
		Data:      uintptr(unsafe.Pointer(&policy)),
		SizeOf:    unsafe.Sizeof(policy),
	}
	procSetWindowCompositionAttribute.Call(uintptr(taskbar), uintptr(unsafe.Pointer(&data)))
}

// SendThemeReset tells a taskbar to repaint itself with shell defaults.
func (p *Platform) SendThemeReset(taskbar engine.Window) {
	procSendNotifyMessageW.Call(uintptr(taskbar), wmThemeChanged, 0, 0)
}

// SetPeekButtonVisible shows or hides the show-desktop sliver on the primary
// taskbar.
func (p *Platform) SetPeekButtonVisible(visible bool) {
	taskbar := findWindow("Shell_TrayWnd", "")
	if taskbar == 0 {
		return
	}
	tray := findWindowEx(taskbar, 0, "TrayNotifyWnd", "")
	if tray == 0 {
		return
	}
	peek := findWindowEx(tray, 0, "TrayShowDesktopButtonWClass", "")
	if peek == 0 {
		return
	}
	overflow := findWindowEx(tray, 0, "Button", "")

	applyPeekButton(visible, peek, overflow,
		func(hwnd, cmd uintptr) { procShowWindow.Call(hwnd, cmd) },
		func(hwnd uintptr) { procPostMessageW.Call(hwnd, wmLButtonUp, 0, 0) })
}

// applyPeekButton flips the button, then clicks the notification overflow
// button twice. The tray does not relayout the notification area on its own
// in either direction; the synthetic clicks force it to.
func applyPeekButton(visible bool, peek, overflow uintptr, show func(hwnd, cmd uintptr), click func(hwnd uintptr)) {
	cmd := uintptr(swHide)
	if visible {
		cmd = swShowNormal
	}
	show(peek, cmd)
	if overflow != 0 {
		click(overflow)
		click(overflow)
	}
}

// FluentAvailable reports whether the compositor accepts the acrylic state.
func (p *Platform) FluentAvailable() bool {
	return p.build >= minFluentBuild
}

func findWindow(class, title string) uintptr {
	hwnd, _, _ := procFindWindowW.Call(utf16Arg(class), utf16Arg(title))
	return hwnd
}

func findWindowEx(parent, after uintptr, class, title string) uintptr {
	hwnd, _, _ := procFindWindowExW.Call(parent, after, utf16Arg(class), utf16Arg(title))
	return hwnd
}

// utf16Arg converts a string for a Call argument; an empty string becomes a
// NULL pointer rather than an empty wide string.
func utf16Arg(s string) uintptr {
	if s == "" {
		return 0
	}
	ptr, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return 0
	}
	return uintptr(unsafe.Pointer(ptr))
}
