package engine

// PeekCoordinator suppresses redundant show-desktop button toggles. The
// primary taskbar identity is part of the cache key so that a shell restart
// (new handle, same desired visibility) still reissues the call.
type PeekCoordinator struct {
	applied bool
	visible bool
	taskbar Window
}

// NewPeekCoordinator returns a coordinator that issues its first call
// unconditionally.
func NewPeekCoordinator() *PeekCoordinator {
	return &PeekCoordinator{}
}

// Apply shows or hides the peek button when the desired state differs from
// the last issued call.
func (pc *PeekCoordinator) Apply(p Platform, visible bool, primary Window) {
	if pc.applied && pc.visible == visible && pc.taskbar == primary {
		return
	}
	p.SetPeekButtonVisible(visible)
	pc.applied = true
	pc.visible = visible
	pc.taskbar = primary
}
