package engine

import "time"

// AccentKind selects the composition style requested from the shell.
type AccentKind int

const (
	// AccentNormal leaves the taskbar with the shell's default appearance.
	AccentNormal AccentKind = iota
	// AccentOpaque paints a solid color.
	AccentOpaque
	// AccentClear makes the taskbar fully transparent.
	AccentClear
	// AccentBlur applies a gaussian translucency.
	AccentBlur
	// AccentFluent applies the acrylic-like style; only honored when the
	// host advertises support, otherwise demoted to AccentBlur.
	AccentFluent
)

func (k AccentKind) String() string {
	switch k {
	case AccentNormal:
		return "normal"
	case AccentOpaque:
		return "opaque"
	case AccentClear:
		return "clear"
	case AccentBlur:
		return "blur"
	case AccentFluent:
		return "fluent"
	default:
		return "unknown"
	}
}

// PeekMode controls the show-desktop button next to the clock.
type PeekMode int

const (
	// PeekAlwaysShow keeps the button visible.
	PeekAlwaysShow PeekMode = iota
	// PeekAlwaysHide keeps the button hidden.
	PeekAlwaysHide
	// PeekDynamic shows the button only while a maximised window sits on
	// the primary taskbar's monitor.
	PeekDynamic
)

// ExitReason reports why the loop stopped.
type ExitReason int

const (
	// ExitSaveAndQuit is a user-requested exit; settings should be saved.
	ExitSaveAndQuit ExitReason = iota
	// ExitDiscardAndQuit is a user-requested exit without saving.
	ExitDiscardAndQuit
	// ExitSuperseded means a newer instance is taking over; the desktop is
	// handed off as-is, without restoring defaults.
	ExitSuperseded
)

// Blacklist holds the parsed dynamic-window exclusion rules. Class and
// executable matches are exact; titles match by substring. Executable names
// are stored lower-cased.
type Blacklist struct {
	Classes         map[string]struct{}
	TitleSubstrings []string
	ExeNamesLower   map[string]struct{}
}

// DefaultFullClassifyTicks is the fallback full-classification cadence when
// the configuration leaves it unset.
const DefaultFullClassifyTicks = 10

// Config is the immutable per-tick snapshot of everything the engine
// consumes. The engine never mutates it; reloads swap in a whole new value.
type Config struct {
	TaskbarAppearance AccentKind
	TaskbarColor      uint32 // ARGB

	DynamicWSEnabled  bool
	DynamicAppearance AccentKind
	DynamicColor      uint32 // ARGB

	DynamicStartEnabled bool

	PeekMode             PeekMode
	NormalWhenPeekActive bool

	SleepInterval     time.Duration
	CacheHitMax       int
	FullClassifyTicks int
	Verbose           bool

	Blacklist Blacklist
}
