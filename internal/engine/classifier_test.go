package engine

import "testing"

func newTestMatcher(t *testing.T, rules Blacklist) *Matcher {
	t.Helper()
	m, err := NewMatcher(rules, 500, false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	return m
}

func maximisedMeta() WindowMetadata {
	return WindowMetadata{
		Class:            "ApplicationFrameWindow",
		Title:            "Editor",
		ExeName:          exeName("editor.exe"),
		Visible:          true,
		Maximized:        true,
		OnCurrentDesktop: true,
	}
}

func TestClassifierCadence(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)

	cfg := Config{DynamicWSEnabled: true, FullClassifyTicks: 3}
	reg := NewRegistry()
	reg.Rebuild(f)
	m := newTestMatcher(t, Blacklist{})
	c := NewClassifier()

	wantFull := []bool{true, false, false, true, false, false, true}
	for i, want := range wantFull {
		if got := c.Tick(cfg, f, reg, m, false); got != want {
			t.Errorf("tick %d: full pass = %v, want %v", i+1, got, want)
		}
	}
	if f.enumCalls != 3 {
		t.Errorf("enum calls = %d, want 3", f.enumCalls)
	}
}

func TestClassifierForceFullPass(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)

	cfg := Config{DynamicWSEnabled: true, FullClassifyTicks: 10}
	reg := NewRegistry()
	reg.Rebuild(f)
	m := newTestMatcher(t, Blacklist{})
	c := NewClassifier()

	c.Tick(cfg, f, reg, m, false) // initial full pass
	if c.Tick(cfg, f, reg, m, false) {
		t.Fatal("second tick ran a full pass ahead of cadence")
	}
	c.ForceFullPass()
	if !c.Tick(cfg, f, reg, m, false) {
		t.Error("forced tick did not run a full pass")
	}
}

func TestClassifierMaximisedTrigger(t *testing.T) {
	blocked := ruleSet(nil, nil, []string{"editor.exe"})

	mutate := func(fn func(meta *WindowMetadata)) WindowMetadata {
		meta := maximisedMeta()
		fn(&meta)
		return meta
	}

	tests := []struct {
		name  string
		meta  WindowMetadata
		rules Blacklist
		want  VisualState
	}{
		{
			name: "maximised window triggers",
			meta: maximisedMeta(),
			want: StateWindowMaximised,
		},
		{
			name: "hidden window ignored",
			meta: mutate(func(m *WindowMetadata) { m.Visible = false }),
			want: StateNormal,
		},
		{
			name: "restored window ignored",
			meta: mutate(func(m *WindowMetadata) { m.Maximized = false }),
			want: StateNormal,
		},
		{
			name: "cloaked window ignored",
			meta: mutate(func(m *WindowMetadata) { m.Cloaked = true }),
			want: StateNormal,
		},
		{
			name: "other-desktop window ignored",
			meta: mutate(func(m *WindowMetadata) { m.OnCurrentDesktop = false }),
			want: StateNormal,
		},
		{
			name:  "blacklisted window ignored",
			meta:  maximisedMeta(),
			rules: blocked,
			want:  StateNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakePlatform()
			f.setPrimaryTaskbar(100, 1)
			f.addWindow(500, 1, tt.meta)

			cfg := Config{DynamicWSEnabled: true, FullClassifyTicks: 1}
			reg := NewRegistry()
			reg.Rebuild(f)
			m := newTestMatcher(t, tt.rules)

			NewClassifier().Tick(cfg, f, reg, m, false)

			tb, _ := reg.Lookup(1)
			if tb.State != tt.want {
				t.Errorf("state = %v, want %v", tb.State, tt.want)
			}
		})
	}
}

func TestClassifierPerMonitorStates(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addSecondaryTaskbar(200, 2)
	f.addWindow(500, 2, maximisedMeta())

	cfg := Config{DynamicWSEnabled: true, FullClassifyTicks: 1}
	reg := NewRegistry()
	reg.Rebuild(f)

	NewClassifier().Tick(cfg, f, reg, newTestMatcher(t, Blacklist{}), false)

	if tb, _ := reg.Lookup(1); tb.State != StateNormal {
		t.Errorf("primary monitor state = %v, want %v", tb.State, StateNormal)
	}
	if tb, _ := reg.Lookup(2); tb.State != StateWindowMaximised {
		t.Errorf("secondary monitor state = %v, want %v", tb.State, StateWindowMaximised)
	}
}

func TestClassifierDynamicPeekOnlyOnPrimary(t *testing.T) {
	tests := []struct {
		name     string
		monitor  MonitorID
		wantPeek bool
	}{
		{name: "trigger on primary monitor shows peek", monitor: 1, wantPeek: true},
		{name: "trigger on secondary monitor does not", monitor: 2, wantPeek: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakePlatform()
			f.setPrimaryTaskbar(100, 1)
			f.addSecondaryTaskbar(200, 2)
			f.addWindow(500, tt.monitor, maximisedMeta())

			cfg := Config{PeekMode: PeekDynamic, FullClassifyTicks: 1}
			reg := NewRegistry()
			reg.Rebuild(f)

			c := NewClassifier()
			c.Tick(cfg, f, reg, newTestMatcher(t, Blacklist{}), false)

			if c.ShouldShowPeek() != tt.wantPeek {
				t.Errorf("ShouldShowPeek() = %v, want %v", c.ShouldShowPeek(), tt.wantPeek)
			}
			// Peek tracking alone must not flip visual states.
			if tb, _ := reg.Lookup(tt.monitor); tb.State != StateNormal {
				t.Errorf("state = %v, want %v", tb.State, StateNormal)
			}
		})
	}
}

func TestClassifierStartMenuOverridesMaximised(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addWindow(500, 1, maximisedMeta())
	f.showStart(600, 1)

	cfg := Config{DynamicWSEnabled: true, DynamicStartEnabled: true, FullClassifyTicks: 1}
	reg := NewRegistry()
	reg.Rebuild(f)

	NewClassifier().Tick(cfg, f, reg, newTestMatcher(t, Blacklist{}), false)

	if tb, _ := reg.Lookup(1); tb.State != StateStartMenuOpen {
		t.Errorf("state = %v, want %v", tb.State, StateStartMenuOpen)
	}
}

func TestClassifierPeekActiveResets(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addSecondaryTaskbar(200, 2)
	f.addWindow(500, 2, maximisedMeta())
	f.showStart(600, 1)

	cfg := Config{
		DynamicWSEnabled:     true,
		DynamicStartEnabled:  true,
		NormalWhenPeekActive: true,
		FullClassifyTicks:    1,
	}
	reg := NewRegistry()
	reg.Rebuild(f)

	NewClassifier().Tick(cfg, f, reg, newTestMatcher(t, Blacklist{}), true)

	// Peek clears the maximised state but never the Start override.
	if tb, _ := reg.Lookup(2); tb.State != StateNormal {
		t.Errorf("secondary state = %v during peek, want %v", tb.State, StateNormal)
	}
	if tb, _ := reg.Lookup(1); tb.State != StateStartMenuOpen {
		t.Errorf("primary state = %v during peek, want %v", tb.State, StateStartMenuOpen)
	}
}

func TestClassifierSkipsEnumerationWhenStatic(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addWindow(500, 1, maximisedMeta())

	cfg := Config{PeekMode: PeekAlwaysShow, FullClassifyTicks: 1}
	reg := NewRegistry()
	reg.Rebuild(f)

	c := NewClassifier()
	c.Tick(cfg, f, reg, newTestMatcher(t, Blacklist{}), false)

	if f.enumCalls != 0 {
		t.Errorf("enum calls = %d with all dynamic features off, want 0", f.enumCalls)
	}
	if !c.ShouldShowPeek() {
		t.Error("ShouldShowPeek() = false with PeekAlwaysShow")
	}
}
