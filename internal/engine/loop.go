package engine

import (
	"log"
	"time"
)

// Loop is the single-threaded cooperative driver: it pumps platform
// messages, runs one classifier+applier pass per tick, and sleeps the
// configured interval. All mutable engine state is owned by the goroutine
// that calls Run; other goroutines hand it work through Invoke.
type Loop struct {
	platform   Platform
	cfg        Config
	matcher    *Matcher
	registry   *Registry
	classifier *Classifier
	applier    *Applier
	peek       *PeekCoordinator

	invoke chan func()

	running     bool
	exitReason  ExitReason
	peekActive  bool
	needRebuild bool
}

// New builds a loop around the platform with the initial configuration.
func New(p Platform, cfg Config) (*Loop, error) {
	matcher, err := NewMatcher(cfg.Blacklist, cfg.CacheHitMax, cfg.Verbose)
	if err != nil {
		return nil, err
	}
	return &Loop{
		platform:   p,
		cfg:        cfg,
		matcher:    matcher,
		registry:   NewRegistry(),
		classifier: NewClassifier(),
		applier:    NewApplier(),
		peek:       NewPeekCoordinator(),
		invoke:     make(chan func(), 64),
	}, nil
}

// Invoke schedules fn to run on the loop goroutine before the next tick.
// Safe to call from any goroutine.
func (l *Loop) Invoke(fn func()) {
	l.invoke <- fn
}

// Stop ends the loop with the given exit reason once the in-flight tick
// completes.
func (l *Loop) Stop(reason ExitReason) {
	l.Invoke(func() {
		l.running = false
		l.exitReason = reason
	})
}

// UpdateConfig swaps in a new configuration snapshot. The blacklist cache is
// invalidated because the rule sets may have changed.
func (l *Loop) UpdateConfig(cfg Config) {
	l.Invoke(func() {
		l.cfg = cfg
		l.matcher.Configure(cfg.Blacklist, cfg.CacheHitMax, cfg.Verbose)
	})
}

// ClearBlacklistCache drops every cached blacklist verdict.
func (l *Loop) ClearBlacklistCache() {
	l.Invoke(func() { l.matcher.ClearCache() })
}

// RebuildRegistry schedules a taskbar rediscovery before the next tick.
func (l *Loop) RebuildRegistry() {
	l.Invoke(func() { l.needRebuild = true })
}

// Run drives the engine until Stop, a close request, or a superseding
// instance. It must be called from the goroutine that owns the platform's
// message queue. On a clean exit the peek button is forced visible and every
// taskbar returns to the shell default; a superseding instance inherits the
// desktop as-is.
func (l *Loop) Run() ExitReason {
	l.platform.Subscribe(Callbacks{
		PeekStarted:    func() { l.peekActive = true },
		PeekEnded:      func() { l.peekActive = false },
		DisplayChange:  func() { l.needRebuild = true },
		ShellRestarted: func() { l.needRebuild = true },
		NewInstance: func() {
			l.running = false
			l.exitReason = ExitSuperseded
		},
		CloseRequested: func() {
			l.running = false
			l.exitReason = ExitSaveAndQuit
		},
	})

	l.running = true
	l.exitReason = ExitSaveAndQuit
	l.registry.Rebuild(l.platform)
	if l.registry.Len() == 0 {
		log.Printf("[engine] no taskbars discovered; waiting for the shell")
	}

	for {
		l.platform.PumpMessage()
		l.drainInvocations()
		if !l.running {
			break
		}

		if l.needRebuild {
			l.needRebuild = false
			if l.cfg.Verbose {
				log.Printf("[engine] refreshing taskbar handles")
			}
			l.registry.Rebuild(l.platform)
			l.classifier.ForceFullPass()
		}

		l.classifier.Tick(l.cfg, l.platform, l.registry, l.matcher, l.peekActive)
		l.applier.Apply(l.cfg, l.platform, l.registry)
		if primary, ok := l.registry.Primary(); ok {
			l.peek.Apply(l.platform, l.classifier.ShouldShowPeek(), primary.Window)
		}

		if l.cfg.SleepInterval > 0 {
			time.Sleep(l.cfg.SleepInterval)
		}
	}

	if l.exitReason != ExitSuperseded {
		if primary, ok := l.registry.Primary(); ok {
			l.peek.Apply(l.platform, true, primary.Window)
		}
		l.applier.RestoreDefaults(l.platform, l.registry)
	}
	return l.exitReason
}

func (l *Loop) drainInvocations() {
	for {
		select {
		case fn := <-l.invoke:
			fn()
		default:
			return
		}
	}
}
