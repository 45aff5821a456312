package engine

// VisualState classifies what a taskbar should look like this tick.
type VisualState int

const (
	// StateNormal applies the configured default appearance.
	StateNormal VisualState = iota
	// StateWindowMaximised marks a maximised window on the taskbar's
	// monitor; the dynamic appearance applies.
	StateWindowMaximised
	// StateStartMenuOpen keeps the shell default so the taskbar matches the
	// opened Start menu.
	StateStartMenuOpen
)

func (s VisualState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateWindowMaximised:
		return "window-maximised"
	case StateStartMenuOpen:
		return "start-menu-open"
	default:
		return "unknown"
	}
}

// Taskbar pairs a discovered taskbar window with its current visual state.
// The registry owns the entry; only State is ever mutated in place.
type Taskbar struct {
	Ref   TaskbarRef
	State VisualState
}

// Registry maps monitors to their taskbars. It is rebuilt wholesale on
// display changes and shell restarts so stale handles never linger.
type Registry struct {
	taskbars   map[MonitorID]*Taskbar
	primary    TaskbarRef
	hasPrimary bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{taskbars: make(map[MonitorID]*Taskbar)}
}

// Rebuild replaces the whole mapping with freshly discovered taskbars, all
// starting in StateNormal. An empty result is not an error: the loop spins
// harmlessly until a shell restart repopulates it.
func (r *Registry) Rebuild(p Platform) {
	r.taskbars = make(map[MonitorID]*Taskbar)
	r.primary = TaskbarRef{}
	r.hasPrimary = false

	if primary, ok := p.FindPrimaryTaskbar(); ok {
		r.primary = primary
		r.hasPrimary = true
		r.taskbars[primary.Monitor] = &Taskbar{Ref: primary}
	}

	for _, ref := range p.SecondaryTaskbars() {
		r.taskbars[ref.Monitor] = &Taskbar{Ref: ref}
	}
}

// Primary returns the primary taskbar, if one was discovered.
func (r *Registry) Primary() (TaskbarRef, bool) {
	return r.primary, r.hasPrimary
}

// Lookup returns the taskbar entry for the monitor.
func (r *Registry) Lookup(m MonitorID) (*Taskbar, bool) {
	tb, ok := r.taskbars[m]
	return tb, ok
}

// ForEach visits every registered taskbar.
func (r *Registry) ForEach(fn func(tb *Taskbar)) {
	for _, tb := range r.taskbars {
		fn(tb)
	}
}

// ResetStates puts every taskbar back to StateNormal.
func (r *Registry) ResetStates() {
	for _, tb := range r.taskbars {
		tb.State = StateNormal
	}
}

// Len reports how many taskbars are registered.
func (r *Registry) Len() int {
	return len(r.taskbars)
}
