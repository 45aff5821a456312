package engine

// Classifier assigns each taskbar a visual state and decides whether the
// show-desktop button should be visible. Full passes run only every
// FullClassifyTicks ticks because window enumeration dominates the engine's
// cost; in between, previously computed states are held and the applier
// simply re-emits them.
type Classifier struct {
	ticksSinceFull int
	forceFull      bool
	shouldShowPeek bool
}

// NewClassifier returns a classifier whose first tick runs a full pass.
func NewClassifier() *Classifier {
	return &Classifier{forceFull: true}
}

// ForceFullPass makes the next tick reclassify regardless of cadence.
func (c *Classifier) ForceFullPass() {
	c.forceFull = true
}

// ShouldShowPeek returns the peek-button decision from the last full pass.
func (c *Classifier) ShouldShowPeek() bool {
	return c.shouldShowPeek
}

// Tick advances the cadence counter and, when due, reclassifies every
// taskbar. It reports whether a full pass ran.
func (c *Classifier) Tick(cfg Config, p Platform, reg *Registry, m *Matcher, peekActive bool) bool {
	cadence := cfg.FullClassifyTicks
	if cadence <= 0 {
		cadence = DefaultFullClassifyTicks
	}

	c.ticksSinceFull++
	if !c.forceFull && c.ticksSinceFull < cadence {
		return false
	}
	c.ticksSinceFull = 0
	c.forceFull = false

	c.classify(cfg, p, reg, m, peekActive)
	return true
}

// classify implements the precedence order
// StartMenuOpen > peek-active reset > WindowMaximised > Normal.
func (c *Classifier) classify(cfg Config, p Platform, reg *Registry, m *Matcher, peekActive bool) {
	c.shouldShowPeek = cfg.PeekMode == PeekAlwaysShow
	reg.ResetStates()

	if cfg.DynamicWSEnabled || cfg.PeekMode == PeekDynamic {
		primary, hasPrimary := reg.Primary()
		p.EnumTopLevelWindows(func(w Window) bool {
			meta, ok := p.WindowMetadata(w)
			if !ok {
				return true
			}
			// Cloaked is checked before desktop membership: the membership
			// query is undefined for windows outside the current desktop.
			if !meta.Visible || !meta.Maximized || meta.Cloaked {
				return true
			}
			if m.IsBlacklisted(w, meta) || !meta.OnCurrentDesktop {
				return true
			}

			tb, ok := reg.Lookup(p.MonitorOf(w))
			if !ok {
				return true
			}
			if cfg.DynamicWSEnabled {
				tb.State = StateWindowMaximised
			}
			if cfg.PeekMode == PeekDynamic && hasPrimary && tb.Ref.Window == primary.Window {
				c.shouldShowPeek = true
			}
			return true
		})
	}

	// The peek-active reset runs before the Start override so that
	// StateStartMenuOpen outranks it.
	if cfg.DynamicWSEnabled && cfg.NormalWhenPeekActive && peekActive {
		reg.ResetStates()
	}

	if cfg.DynamicStartEnabled {
		if start, ok := p.StartMenuWindow(); ok {
			if tb, ok := reg.Lookup(p.MonitorOf(start)); ok {
				tb.State = StateStartMenuOpen
			}
		}
	}
}
