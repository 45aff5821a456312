// Package tray implements the system tray icon and menu for the daemon.
package tray

// Snapshot is the current daemon state the menu reflects.
type Snapshot struct {
	TaskbarAccent       string
	DynamicEnabled      bool
	DynamicAccent       string
	DynamicStartEnabled bool
	NormalOnPeek        bool
	PeekMode            string
	Verbose             bool
	AutostartEnabled    bool
	FluentAvailable     bool
}

// Controller is the daemon surface the tray drives. Implementations must be
// safe to call from the tray's goroutines.
type Controller interface {
	Snapshot() Snapshot

	SetTaskbarAccent(name string)
	SetDynamicEnabled(enabled bool)
	SetDynamicAccent(name string)
	SetDynamicStartEnabled(enabled bool)
	SetNormalOnPeek(enabled bool)
	SetPeekMode(name string)
	SetVerbose(enabled bool)
	SetAutostart(enabled bool) error

	ReloadSettings()
	ReloadBlacklist()
	ClearBlacklistCache()
	OpenConfigDir()

	// Quit shuts the daemon down, optionally persisting tray edits first.
	Quit(save bool)
}
