// Package engine implements the per-monitor taskbar state engine: a
// single-threaded tick loop that classifies each monitor's taskbar into a
// visual state and applies the matching composition accent through the
// shell's window-accent interface.
package engine

// Window is an opaque handle to a top-level window owned by the host shell.
// The zero value is not a valid window.
type Window uintptr

// MonitorID identifies a physical display output. Values are stable while
// the display topology is unchanged.
type MonitorID uintptr

// TaskbarRef is a taskbar window bound to the monitor it was discovered on.
type TaskbarRef struct {
	Window  Window
	Monitor MonitorID
}

// WindowMetadata describes a top-level window at the moment of the query.
type WindowMetadata struct {
	Class            string
	Title            string
	Visible          bool
	Maximized        bool
	Cloaked          bool
	OnCurrentDesktop bool

	// ExeName resolves the owning process image basename (original case) on
	// first call and memoizes the result. Resolving the process image is the
	// most expensive metadata query, so implementations defer it until the
	// cheaper blacklist rules have missed. nil behaves like an empty name;
	// a refused query resolves to "" and the window stays classifiable by
	// class and title.
	ExeName func() string
}

// Callbacks are fired by the platform from inside PumpMessage, on the
// goroutine that drives the tick loop. They must only publish state; the
// loop consumes it on the next tick.
type Callbacks struct {
	PeekStarted    func()
	PeekEnded      func()
	DisplayChange  func()
	ShellRestarted func()
	NewInstance    func()
	CloseRequested func()
}

// Platform is the capability surface over the host desktop shell. The
// engine holds no handles of its own; everything it knows about the desktop
// comes through here.
type Platform interface {
	// FindPrimaryTaskbar locates the shell's primary taskbar window.
	FindPrimaryTaskbar() (TaskbarRef, bool)

	// SecondaryTaskbars returns the taskbars of secondary monitors.
	SecondaryTaskbars() []TaskbarRef

	// MonitorOf returns the monitor containing the window.
	MonitorOf(w Window) MonitorID

	// WindowMetadata queries a window. ok is false when the window has gone
	// away; callers treat that as a non-trigger for the current tick.
	WindowMetadata(w Window) (meta WindowMetadata, ok bool)

	// EnumTopLevelWindows calls visit for every top-level window in z-order
	// until visit returns false.
	EnumTopLevelWindows(visit func(w Window) bool)

	// StartMenuWindow returns the Start menu window if it is currently
	// visible.
	StartMenuWindow() (Window, bool)

	// SendThemeReset posts the shell's theme-changed message to the
	// taskbar, making it reload the default appearance.
	SendThemeReset(taskbar Window)

	// ApplyAccent submits an accent policy for the taskbar. The color is
	// ARGB; implementations pass EncodeAccentColor's ABGR result to the
	// shell and silently do nothing when the accent entry point is
	// unavailable.
	ApplyAccent(taskbar Window, kind AccentKind, argb uint32)

	// SetPeekButtonVisible shows or hides the show-desktop button inside
	// the primary taskbar's notification area, then nudges the overflow
	// button so the shell commits the change. Missing buttons are skipped.
	SetPeekButtonVisible(visible bool)

	// FluentAvailable reports whether the host build supports the
	// acrylic-like fluent accent.
	FluentAvailable() bool

	// Subscribe registers the callbacks delivered through PumpMessage.
	Subscribe(cb Callbacks)

	// PumpMessage dispatches at most one queued platform message and
	// reports whether one was present.
	PumpMessage() bool
}
