//go:build !windows

// Package win32 implements the engine's platform interface against the
// Windows shell. On other operating systems only the type checks compile;
// New always fails.
package win32

import (
	"errors"

	"github.com/tintbar-io/tintbar/internal/engine"
)

// ErrUnsupported is returned by New on non-Windows hosts.
var ErrUnsupported = errors.New("win32: taskbar control requires Windows")

// Platform is a stub; no instance can be constructed.
type Platform struct{}

// New always fails off Windows.
func New() (*Platform, error) {
	return nil, ErrUnsupported
}

// Close is a no-op.
func (p *Platform) Close() {}

// NotifyRunningInstance is a no-op.
func NotifyRunningInstance() {}

func (p *Platform) FindPrimaryTaskbar() (engine.TaskbarRef, bool) {
	return engine.TaskbarRef{}, false
}

func (p *Platform) SecondaryTaskbars() []engine.TaskbarRef { return nil }

func (p *Platform) MonitorOf(engine.Window) engine.MonitorID { return 0 }

func (p *Platform) WindowMetadata(engine.Window) (engine.WindowMetadata, bool) {
	return engine.WindowMetadata{}, false
}

func (p *Platform) EnumTopLevelWindows(func(engine.Window) bool) {}

func (p *Platform) StartMenuWindow() (engine.Window, bool) { return 0, false }

func (p *Platform) SendThemeReset(engine.Window) {}

func (p *Platform) ApplyAccent(engine.Window, engine.AccentKind, uint32) {}

func (p *Platform) SetPeekButtonVisible(bool) {}

func (p *Platform) FluentAvailable() bool { return false }

func (p *Platform) Subscribe(engine.Callbacks) {}

func (p *Platform) PumpMessage() bool { return false }
