// Package daemon wires the engine, the tray, and the config watcher into the
// resident tintbard process.
package daemon

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/tintbar-io/tintbar/internal/config"
	"github.com/tintbar-io/tintbar/internal/daemon/tray"
	"github.com/tintbar-io/tintbar/internal/daemon/watcher"
	"github.com/tintbar-io/tintbar/internal/engine"
	"github.com/tintbar-io/tintbar/internal/models"
	"github.com/tintbar-io/tintbar/internal/platform/win32"
)

// handOverTimeout bounds how long a starting instance waits for a running
// one to exit after being asked to.
const handOverTimeout = 5 * time.Second

// Daemon owns the mutable daemon state. The engine loop runs on its own
// locked OS thread; the tray and watcher goroutines reach it through Invoke.
type Daemon struct {
	mu        sync.Mutex
	settings  *models.Settings
	blacklist engine.Blacklist
	loop      *engine.Loop
	fluent    bool

	watch  *watcher.Watcher
	done   chan engine.ExitReason
	reason engine.ExitReason
}

// Run starts the daemon and blocks until it exits.
func Run(foreground bool) error {
	log.SetPrefix("[tintbard] ")
	log.SetFlags(log.Ldate | log.Ltime)

	if err := config.EnsureDefaultFiles(); err != nil {
		return fmt.Errorf("failed to seed config files: %w", err)
	}
	if f, err := config.OpenLogFile(); err == nil {
		log.SetOutput(io.MultiWriter(os.Stderr, f))
		defer f.Close()
	} else {
		log.Printf("File logging disabled: %v", err)
	}

	if err := handOverRunningInstance(); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	blacklist, err := config.LoadBlacklist()
	if err != nil {
		return fmt.Errorf("failed to load exclusions: %w", err)
	}

	d := &Daemon{
		settings:  settings,
		blacklist: blacklist,
		done:      make(chan engine.ExitReason, 1),
	}

	if foreground {
		log.Println("Running in foreground mode (no system tray)")
		return d.runForeground()
	}
	log.Println("Running in background mode (with system tray)")
	return d.runWithTray()
}

// handOverRunningInstance asks an already-running daemon to exit and waits
// for it to do so.
func handOverRunningInstance() error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}
	if !running {
		return nil
	}

	log.Printf("Instance already running (PID %d), requesting hand-over", info.PID)
	win32.NotifyRunningInstance()

	deadline := time.Now().Add(handOverTimeout)
	for time.Now().Before(deadline) {
		time.Sleep(100 * time.Millisecond)
		if running, _, _ = config.IsDaemonRunning(); !running {
			return nil
		}
	}
	return fmt.Errorf("instance PID %d did not exit within %v", info.PID, handOverTimeout)
}

// runForeground runs the daemon without a system tray, blocking on signals.
func (d *Daemon) runForeground() error {
	if err := d.startEngine(); err != nil {
		return err
	}
	if err := d.startWatcher(); err != nil {
		log.Printf("Config watching disabled: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down...", sig)
		d.loop.Stop(engine.ExitSaveAndQuit)
	}()

	d.reason = <-d.done
	d.finalize()
	fmt.Println("Daemon stopped")
	return nil
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine.
func (d *Daemon) runWithTray() error {
	var startErr error

	onStart := func() {
		if err := d.startEngine(); err != nil {
			startErr = err
			log.Printf("Failed to start engine: %v", err)
			tray.Quit()
			return
		}
		if err := d.startWatcher(); err != nil {
			log.Printf("Config watching disabled: %v", err)
		}

		go func() {
			d.reason = <-d.done
			tray.Quit()
		}()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			d.Quit(true)
		}()
	}

	onExit := func() {
		d.finalize()
		fmt.Println("Daemon stopped")
	}

	tray.Run(d, onStart, onExit)
	return startErr
}

// startEngine spins up the engine goroutine and waits until the platform and
// loop exist. The goroutine stays locked to its OS thread: the message
// window and the COM apartment both have thread affinity.
func (d *Daemon) startEngine() error {
	ready := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		platform, err := win32.New()
		if err != nil {
			ready <- fmt.Errorf("failed to bind to the shell: %w", err)
			return
		}
		defer platform.Close()

		d.mu.Lock()
		cfg, err := d.settings.EngineConfig(d.blacklist)
		if err != nil {
			d.mu.Unlock()
			ready <- fmt.Errorf("invalid settings: %w", err)
			return
		}
		loop, err := engine.New(platform, cfg)
		if err != nil {
			d.mu.Unlock()
			ready <- err
			return
		}
		d.loop = loop
		d.fluent = platform.FluentAvailable()
		d.mu.Unlock()

		ready <- nil
		d.done <- loop.Run()
	}()

	if err := <-ready; err != nil {
		return err
	}

	info := models.NewDaemonInfo(os.Getpid())
	if err := config.SaveDaemonInfo(info); err != nil {
		return fmt.Errorf("failed to write daemon info: %w", err)
	}
	log.Printf("Daemon started (PID %d)", info.PID)
	return nil
}

// startWatcher begins hot-reloading config file edits.
func (d *Daemon) startWatcher() error {
	w, err := watcher.New()
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	d.watch = w
	go d.handleWatcherEvents()
	return nil
}

func (d *Daemon) handleWatcherEvents() {
	for event := range d.watch.Events() {
		switch event.Type {
		case watcher.EventSettingsChanged:
			log.Println("settings.yaml changed, reloading")
			d.ReloadSettings()
		case watcher.EventBlacklistChanged:
			log.Println("exclude.conf changed, reloading")
			d.ReloadBlacklist()
		}
	}
}

// finalize persists state after the engine loop has exited. A superseded
// instance leaves daemon.yaml alone; its replacement owns the record now.
func (d *Daemon) finalize() {
	if d.watch != nil {
		d.watch.Stop()
	}

	if d.reason == engine.ExitSaveAndQuit {
		d.mu.Lock()
		settings := d.settings
		d.mu.Unlock()
		if err := config.SaveSettings(settings); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	}

	if d.reason != engine.ExitSuperseded {
		if err := config.RemoveDaemonInfo(); err != nil {
			log.Printf("Failed to remove daemon info: %v", err)
		}
	}
}

// pushConfig recomputes the engine snapshot from current settings and hands
// it to the loop. Call with d.mu NOT held.
func (d *Daemon) pushConfig() {
	d.mu.Lock()
	cfg, err := d.settings.EngineConfig(d.blacklist)
	loop := d.loop
	d.mu.Unlock()

	if err != nil {
		log.Printf("Ignoring invalid settings: %v", err)
		return
	}
	if loop != nil {
		loop.UpdateConfig(cfg)
	}
}
