//go:build windows

package win32

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

var (
	clsidVirtualDesktopManager = ole.NewGUID("{AA509086-5CA9-4C25-8F95-589D3C07B48A}")
	iidVirtualDesktopManager   = ole.NewGUID("{A5CD92FF-29BE-454C-8D04-D82879FB3F1B}")

	clsidAppVisibility = ole.NewGUID("{7E5FE3D9-985F-4908-91F9-EE19F9FD1514}")
	iidAppVisibility   = ole.NewGUID("{2246EA2D-CAEA-4444-A3C4-6DE827E44313}")
)

// virtualDesktopManager wraps the shell's IVirtualDesktopManager.
type virtualDesktopManager struct {
	ole.IUnknown
}

type virtualDesktopManagerVtbl struct {
	ole.IUnknownVtbl
	IsWindowOnCurrentVirtualDesktop uintptr
	GetWindowDesktopID              uintptr
	MoveWindowToDesktop             uintptr
}

func (v *virtualDesktopManager) vtbl() *virtualDesktopManagerVtbl {
	return (*virtualDesktopManagerVtbl)(unsafe.Pointer(v.RawVTable))
}

// isWindowOnCurrentDesktop reports desktop membership. Failures count as
// member so a COM hiccup never hides a window from classification.
func (v *virtualDesktopManager) isWindowOnCurrentDesktop(hwnd uintptr) bool {
	var onDesktop int32
	hr, _, _ := syscall.SyscallN(
		v.vtbl().IsWindowOnCurrentVirtualDesktop,
		uintptr(unsafe.Pointer(v)),
		hwnd,
		uintptr(unsafe.Pointer(&onDesktop)),
	)
	if hr != 0 {
		return true
	}
	return onDesktop != 0
}

// appVisibility wraps the shell's IAppVisibility.
type appVisibility struct {
	ole.IUnknown
}

type appVisibilityVtbl struct {
	ole.IUnknownVtbl
	GetAppVisibilityOnMonitor uintptr
	IsLauncherVisible         uintptr
	Advise                    uintptr
	Unadvise                  uintptr
}

func (a *appVisibility) vtbl() *appVisibilityVtbl {
	return (*appVisibilityVtbl)(unsafe.Pointer(a.RawVTable))
}

// isLauncherVisible reports whether the Start menu is open.
func (a *appVisibility) isLauncherVisible() bool {
	var visible int32
	hr, _, _ := syscall.SyscallN(
		a.vtbl().IsLauncherVisible,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&visible)),
	)
	return hr == 0 && visible != 0
}

// initCOM enters a single-threaded apartment and instantiates the two shell
// services. IAppVisibility is optional: it only exists on hosts with a modern
// Start menu, and without it the Start override is simply inert.
func (p *Platform) initCOM() error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		oleErr, ok := err.(*ole.OleError)
		if !ok || (oleErr.Code() != uintptr(hrSFalse)) {
			return fmt.Errorf("failed to initialize COM: %w", err)
		}
	}

	unknown, err := ole.CreateInstance(clsidVirtualDesktopManager, iidVirtualDesktopManager)
	if err != nil {
		ole.CoUninitialize()
		return fmt.Errorf("failed to create virtual desktop manager: %w", err)
	}
	p.virtualDesktops = (*virtualDesktopManager)(unsafe.Pointer(unknown))

	if unknown, err := ole.CreateInstance(clsidAppVisibility, iidAppVisibility); err == nil {
		p.appVisibility = (*appVisibility)(unsafe.Pointer(unknown))
	}
	return nil
}

func (p *Platform) releaseCOM() {
	if p.appVisibility != nil {
		p.appVisibility.Release()
		p.appVisibility = nil
	}
	if p.virtualDesktops != nil {
		p.virtualDesktops.Release()
		p.virtualDesktops = nil
	}
	ole.CoUninitialize()
}

// hrSFalse is returned when the apartment was already initialized; that is
// not a failure.
const hrSFalse = 0x00000001
