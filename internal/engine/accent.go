package engine

// AccentSpec is the concrete accent policy derived from a visual state.
type AccentSpec struct {
	Kind  AccentKind
	Color uint32 // ARGB; ignored for AccentNormal
}

// SpecFor translates a visual state into the accent to request. Fluent
// demotion happens later, in Applier, because it depends on the host's
// capabilities.
func SpecFor(state VisualState, cfg Config) AccentSpec {
	switch state {
	case StateStartMenuOpen:
		return AccentSpec{Kind: AccentNormal}
	case StateWindowMaximised:
		return AccentSpec{Kind: cfg.DynamicAppearance, Color: cfg.DynamicColor}
	default:
		return AccentSpec{Kind: cfg.TaskbarAppearance, Color: cfg.TaskbarColor}
	}
}

// EncodeAccentColor converts a caller-supplied ARGB color into the ABGR
// order the shell accent API expects. A zero fluent alpha is promoted to 1;
// the shell rejects fully transparent acrylic.
func EncodeAccentColor(kind AccentKind, argb uint32) uint32 {
	abgr := (argb & 0xFF00FF00) | ((argb & 0x00FF0000) >> 16) | ((argb & 0x000000FF) << 16)
	if kind == AccentFluent && abgr>>24 == 0 {
		abgr |= 0x01000000
	}
	return abgr
}

// Applier submits accent policies idempotently. It memoizes the last applied
// kind per taskbar so the theme-reset message goes out only on the
// transition edge into AccentNormal; resending it every tick measurably
// raises shell CPU usage.
type Applier struct {
	lastKind map[Window]AccentKind
}

// NewApplier returns an applier with an empty memo.
func NewApplier() *Applier {
	return &Applier{lastKind: make(map[Window]AccentKind)}
}

// Apply walks the registry and submits each taskbar's accent.
func (a *Applier) Apply(cfg Config, p Platform, reg *Registry) {
	reg.ForEach(func(tb *Taskbar) {
		a.apply(p, tb.Ref.Window, SpecFor(tb.State, cfg))
	})
}

// RestoreDefaults returns every taskbar to the shell default appearance.
// Used on clean shutdown.
func (a *Applier) RestoreDefaults(p Platform, reg *Registry) {
	reg.ForEach(func(tb *Taskbar) {
		a.apply(p, tb.Ref.Window, AccentSpec{Kind: AccentNormal})
	})
}

func (a *Applier) apply(p Platform, taskbar Window, spec AccentSpec) {
	kind := spec.Kind
	if kind == AccentFluent && !p.FluentAvailable() {
		kind = AccentBlur
	}

	if kind == AccentNormal {
		if last, known := a.lastKind[taskbar]; !known || last != AccentNormal {
			p.SendThemeReset(taskbar)
		}
		a.lastKind[taskbar] = AccentNormal
		return
	}

	p.ApplyAccent(taskbar, kind, spec.Color)
	a.lastKind[taskbar] = kind
}
