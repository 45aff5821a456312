//go:build windows

package win32

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	messageClassName  = "Tintbar.MessageWindow"
	messageWindowName = "tintbard"

	// Broadcast by a starting instance so the running one can hand over.
	newInstanceMessageName = "Tintbar.NewInstance"

	// Broadcast by Explorer when it (re)creates the taskbar.
	taskbarCreatedMessageName = "TaskbarCreated"
)

var wndProcCallback = syscall.NewCallback(func(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	if active != nil {
		if handled := active.handleMessage(msg); handled {
			return 0
		}
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, uintptr(msg), wparam, lparam)
	return ret
})

var eventHookCallback = syscall.NewCallback(func(hook uintptr, event uint32, hwnd uintptr, objectID, childID int32, thread, time uint32) uintptr {
	if active == nil {
		return 0
	}
	switch event {
	case eventSystemPeekStart:
		if active.cb.PeekStarted != nil {
			active.cb.PeekStarted()
		}
	case eventSystemPeekEnd:
		if active.cb.PeekEnded != nil {
			active.cb.PeekEnded()
		}
	}
	return 0
})

func (p *Platform) handleMessage(msg uint32) bool {
	switch msg {
	case wmClose:
		if p.cb.CloseRequested != nil {
			p.cb.CloseRequested()
		}
		return true
	case wmDisplayChange:
		if p.cb.DisplayChange != nil {
			p.cb.DisplayChange()
		}
		return true
	case p.taskbarCreated:
		if p.cb.ShellRestarted != nil {
			p.cb.ShellRestarted()
		}
		return true
	case p.newInstance:
		if p.cb.NewInstance != nil {
			p.cb.NewInstance()
		}
		return true
	}
	return false
}

// initMessageWindow registers the hidden window that receives shell
// broadcasts. The window must exist before active is published, so messages
// arriving during setup fall through to DefWindowProc.
func (p *Platform) initMessageWindow() error {
	p.taskbarCreated = registerWindowMessage(taskbarCreatedMessageName)
	p.newInstance = registerWindowMessage(newInstanceMessageName)
	if p.taskbarCreated == 0 || p.newInstance == 0 {
		return fmt.Errorf("failed to register window messages")
	}

	var instance windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &instance); err != nil {
		return fmt.Errorf("failed to get module handle: %w", err)
	}

	className, err := windows.UTF16PtrFromString(messageClassName)
	if err != nil {
		return err
	}
	wc := wndClassExW{
		WndProc:   wndProcCallback,
		Instance:  instance,
		ClassName: className,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))
	if atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return fmt.Errorf("failed to register window class: %w", callErr)
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		utf16Arg(messageWindowName),
		0, 0, 0, 0, 0,
		0, 0,
		uintptr(instance),
		0,
	)
	if hwnd == 0 {
		return fmt.Errorf("failed to create message window: %w", callErr)
	}
	p.msgWindow = hwnd
	return nil
}

// initEventHook listens for aero peek transitions. Hook failure is tolerated;
// the peek-active reset just never fires.
func (p *Platform) initEventHook() {
	hook, _, _ := procSetWinEventHook.Call(
		eventSystemPeekStart,
		eventSystemPeekEnd,
		0,
		eventHookCallback,
		0, 0,
		winEventOutOfContext,
	)
	p.eventHook = hook
}

// PumpMessage drains at most one queued message. It reports whether one was
// processed so callers can drain bursts before ticking.
func (p *Platform) PumpMessage() bool {
	var m message
	got, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
	if got == 0 {
		return false
	}
	procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	return true
}

// NotifyRunningInstance broadcasts the hand-over message to any running
// instance. Callable before New.
func NotifyRunningInstance() {
	msg := registerWindowMessage(newInstanceMessageName)
	if msg == 0 {
		return
	}
	procSendNotifyMessageW.Call(hwndBroadcast, uintptr(msg), 0, 0)
}

func registerWindowMessage(name string) uint32 {
	msg, _, _ := procRegisterWindowMessageW.Call(utf16Arg(name))
	return uint32(msg)
}
