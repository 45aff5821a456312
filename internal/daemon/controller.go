package daemon

import (
	"log"
	"os/exec"
	"runtime"
	"strings"

	"github.com/tintbar-io/tintbar/internal/autostart"
	"github.com/tintbar-io/tintbar/internal/config"
	"github.com/tintbar-io/tintbar/internal/daemon/tray"
	"github.com/tintbar-io/tintbar/internal/engine"
)

// The daemon itself is the tray's controller.

// Snapshot reports the state the tray menu displays.
func (d *Daemon) Snapshot() tray.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	enabled, err := autostart.Enabled()
	if err != nil {
		enabled = false
	}
	return tray.Snapshot{
		TaskbarAccent:       strings.ToLower(strings.TrimSpace(d.settings.Taskbar.Accent)),
		DynamicEnabled:      d.settings.DynamicWS.Enabled,
		DynamicAccent:       strings.ToLower(strings.TrimSpace(d.settings.DynamicWS.Appearance.Accent)),
		DynamicStartEnabled: d.settings.DynamicStart.Enabled,
		NormalOnPeek:        d.settings.DynamicWS.NormalOnPeek,
		PeekMode:            strings.ToLower(strings.TrimSpace(d.settings.Peek)),
		Verbose:             d.settings.Verbose,
		AutostartEnabled:    enabled,
		FluentAvailable:     d.fluent,
	}
}

// SetTaskbarAccent switches the resting appearance.
func (d *Daemon) SetTaskbarAccent(name string) {
	d.mu.Lock()
	d.settings.Taskbar.Accent = name
	d.mu.Unlock()
	d.pushConfig()
}

// SetDynamicEnabled toggles the maximised-window override.
func (d *Daemon) SetDynamicEnabled(enabled bool) {
	d.mu.Lock()
	d.settings.DynamicWS.Enabled = enabled
	d.mu.Unlock()
	d.pushConfig()
}

// SetDynamicAccent switches the appearance used while a window is maximised.
func (d *Daemon) SetDynamicAccent(name string) {
	d.mu.Lock()
	d.settings.DynamicWS.Appearance.Accent = name
	d.mu.Unlock()
	d.pushConfig()
}

// SetNormalOnPeek toggles dropping dynamic accents during aero peek.
func (d *Daemon) SetNormalOnPeek(enabled bool) {
	d.mu.Lock()
	d.settings.DynamicWS.NormalOnPeek = enabled
	d.mu.Unlock()
	d.pushConfig()
}

// SetDynamicStartEnabled toggles the Start-menu override.
func (d *Daemon) SetDynamicStartEnabled(enabled bool) {
	d.mu.Lock()
	d.settings.DynamicStart.Enabled = enabled
	d.mu.Unlock()
	d.pushConfig()
}

// SetPeekMode switches the show-desktop button policy.
func (d *Daemon) SetPeekMode(name string) {
	d.mu.Lock()
	d.settings.Peek = name
	d.mu.Unlock()
	d.pushConfig()
}

// SetVerbose toggles per-window classification logging.
func (d *Daemon) SetVerbose(enabled bool) {
	d.mu.Lock()
	d.settings.Verbose = enabled
	d.mu.Unlock()
	d.pushConfig()
}

// SetAutostart registers or removes the login launch entry.
func (d *Daemon) SetAutostart(enabled bool) error {
	if enabled {
		return autostart.Enable()
	}
	return autostart.Disable()
}

// ReloadSettings re-reads settings.yaml from disk, dropping tray edits made
// since the last save.
func (d *Daemon) ReloadSettings() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Printf("Failed to reload settings: %v", err)
		return
	}
	d.mu.Lock()
	d.settings = settings
	d.mu.Unlock()
	d.pushConfig()
	tray.Refresh()
}

// ReloadBlacklist re-reads exclude.conf from disk.
func (d *Daemon) ReloadBlacklist() {
	blacklist, err := config.LoadBlacklist()
	if err != nil {
		log.Printf("Failed to reload exclusions: %v", err)
		return
	}
	d.mu.Lock()
	d.blacklist = blacklist
	d.mu.Unlock()
	d.pushConfig()
}

// ClearBlacklistCache drops cached per-window verdicts.
func (d *Daemon) ClearBlacklistCache() {
	d.mu.Lock()
	loop := d.loop
	d.mu.Unlock()
	if loop != nil {
		loop.ClearBlacklistCache()
	}
}

// OpenConfigDir opens ~/.tintbar in the platform file manager. Colors have
// no native picker; users edit settings.yaml directly.
func (d *Daemon) OpenConfigDir() {
	dir, err := config.GlobalDir()
	if err != nil {
		log.Printf("Failed to resolve config dir: %v", err)
		return
	}

	var opener string
	switch runtime.GOOS {
	case "windows":
		opener = "explorer"
	case "darwin":
		opener = "open"
	default:
		opener = "xdg-open"
	}
	if err := exec.Command(opener, dir).Start(); err != nil {
		log.Printf("Failed to open %s: %v", dir, err)
	}
}

// Quit stops the engine loop; the daemon unwinds once it returns.
func (d *Daemon) Quit(save bool) {
	d.mu.Lock()
	loop := d.loop
	d.mu.Unlock()
	if loop == nil {
		tray.Quit()
		return
	}

	reason := engine.ExitSaveAndQuit
	if !save {
		reason = engine.ExitDiscardAndQuit
	}
	loop.Stop(reason)
}
