package tray

import (
	"log"

	"github.com/getlantern/systray"
)

var (
	controller Controller
	onStart    func()
	onExit     func()

	accentItems    map[string]*systray.MenuItem
	dynAccentItems map[string]*systray.MenuItem
	peekItems      map[string]*systray.MenuItem
	dynamicItem    *systray.MenuItem
	startItem      *systray.MenuItem
	peekResetItem  *systray.MenuItem
	verboseItem    *systray.MenuItem
	loginItem      *systray.MenuItem
	exitItem       *systray.MenuItem
	exitDiscItem   *systray.MenuItem
)

var accentOrder = []struct {
	name  string
	title string
}{
	{"normal", "Normal"},
	{"opaque", "Opaque"},
	{"clear", "Clear"},
	{"blur", "Blur"},
	{"fluent", "Fluent"},
}

var peekOrder = []struct {
	name  string
	title string
}{
	{"show", "Always show"},
	{"hide", "Always hide"},
	{"dynamic", "Dynamic"},
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (start the engine here).
// onExitFn is called when the tray exits (cleanup here).
func Run(c Controller, onStartFn, onExitFn func()) {
	controller = c
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip("Tintbar")

	header := systray.AddMenuItem("Tintbar", "")
	header.Disable()
	systray.AddSeparator()

	snap := controller.Snapshot()

	accentItems = make(map[string]*systray.MenuItem, len(accentOrder))
	for _, accent := range accentOrder {
		if accent.name == "fluent" && !snap.FluentAvailable {
			continue
		}
		name := accent.name
		item := systray.AddMenuItemCheckbox(accent.title, "Taskbar appearance", false)
		accentItems[name] = item
		onClick(item, func() {
			controller.SetTaskbarAccent(name)
			Refresh()
		})
	}
	systray.AddSeparator()

	dynamicItem = systray.AddMenuItemCheckbox("Dynamic windows", "Restyle when a window is maximised", false)
	onClick(dynamicItem, func() {
		controller.SetDynamicEnabled(!controller.Snapshot().DynamicEnabled)
		Refresh()
	})

	dynMenu := systray.AddMenuItem("Dynamic appearance", "Accent while a window is maximised")
	dynAccentItems = make(map[string]*systray.MenuItem, len(accentOrder))
	for _, accent := range accentOrder {
		if accent.name == "fluent" && !snap.FluentAvailable {
			continue
		}
		name := accent.name
		item := dynMenu.AddSubMenuItemCheckbox(accent.title, "", false)
		dynAccentItems[name] = item
		onClick(item, func() {
			controller.SetDynamicAccent(name)
			Refresh()
		})
	}

	peekResetItem = systray.AddMenuItemCheckbox("Normal while peeking", "Drop dynamic accents during aero peek", false)
	onClick(peekResetItem, func() {
		controller.SetNormalOnPeek(!controller.Snapshot().NormalOnPeek)
		Refresh()
	})
	startItem = systray.AddMenuItemCheckbox("Dynamic Start menu", "Shell default while Start is open", false)
	onClick(startItem, func() {
		controller.SetDynamicStartEnabled(!controller.Snapshot().DynamicStartEnabled)
		Refresh()
	})
	systray.AddSeparator()

	peekItems = make(map[string]*systray.MenuItem, len(peekOrder))
	for _, peek := range peekOrder {
		name := peek.name
		item := systray.AddMenuItemCheckbox(peek.title, "Show desktop button", false)
		peekItems[name] = item
		onClick(item, func() {
			controller.SetPeekMode(name)
			Refresh()
		})
	}
	systray.AddSeparator()

	reloadSettings := systray.AddMenuItem("Reload settings", "Re-read settings.yaml")
	onClick(reloadSettings, controller.ReloadSettings)
	reloadBlacklist := systray.AddMenuItem("Reload exclusions", "Re-read exclude.conf")
	onClick(reloadBlacklist, controller.ReloadBlacklist)
	clearCache := systray.AddMenuItem("Clear exclusion cache", "Forget cached window verdicts")
	onClick(clearCache, controller.ClearBlacklistCache)
	openConfig := systray.AddMenuItem("Open config folder", "Edit settings.yaml and exclude.conf")
	onClick(openConfig, controller.OpenConfigDir)

	verboseItem = systray.AddMenuItemCheckbox("Verbose logging", "", false)
	onClick(verboseItem, func() {
		controller.SetVerbose(!controller.Snapshot().Verbose)
		Refresh()
	})
	loginItem = systray.AddMenuItemCheckbox("Start at login", "", false)
	onClick(loginItem, func() {
		if err := controller.SetAutostart(!controller.Snapshot().AutostartEnabled); err != nil {
			log.Printf("[tray] autostart: %v", err)
		}
		Refresh()
	})
	systray.AddSeparator()

	exitItem = systray.AddMenuItem("Exit", "Save settings and quit")
	onClick(exitItem, func() { controller.Quit(true) })
	exitDiscItem = systray.AddMenuItem("Exit without saving", "")
	onClick(exitDiscItem, func() { controller.Quit(false) })

	Refresh()

	if onStart != nil {
		onStart()
	}
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

// Refresh re-syncs every check mark with the controller's state. A no-op
// until the menu exists (or in foreground mode, where it never will).
func Refresh() {
	if controller == nil || dynamicItem == nil {
		return
	}
	snap := controller.Snapshot()

	for name, item := range accentItems {
		setChecked(item, name == snap.TaskbarAccent)
	}
	for name, item := range dynAccentItems {
		setChecked(item, name == snap.DynamicAccent)
	}
	for name, item := range peekItems {
		setChecked(item, name == snap.PeekMode)
	}
	setChecked(dynamicItem, snap.DynamicEnabled)
	setChecked(peekResetItem, snap.NormalOnPeek)
	setChecked(startItem, snap.DynamicStartEnabled)
	setChecked(verboseItem, snap.Verbose)
	setChecked(loginItem, snap.AutostartEnabled)
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// onClick runs fn every time the item is clicked.
func onClick(item *systray.MenuItem, fn func()) {
	go func() {
		for range item.ClickedCh {
			fn()
		}
	}()
}
