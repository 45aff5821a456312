package engine

import "testing"

func TestSpecFor(t *testing.T) {
	cfg := Config{
		TaskbarAppearance: AccentBlur,
		TaskbarColor:      0x80112233,
		DynamicAppearance: AccentOpaque,
		DynamicColor:      0xFF000000,
	}

	tests := []struct {
		name  string
		state VisualState
		want  AccentSpec
	}{
		{"normal uses taskbar appearance", StateNormal, AccentSpec{Kind: AccentBlur, Color: 0x80112233}},
		{"maximised uses dynamic appearance", StateWindowMaximised, AccentSpec{Kind: AccentOpaque, Color: 0xFF000000}},
		{"start menu forces shell default", StateStartMenuOpen, AccentSpec{Kind: AccentNormal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpecFor(tt.state, cfg); got != tt.want {
				t.Errorf("SpecFor(%v) = %+v, want %+v", tt.state, got, tt.want)
			}
		})
	}
}

func TestEncodeAccentColor(t *testing.T) {
	tests := []struct {
		name string
		kind AccentKind
		argb uint32
		want uint32
	}{
		{"red and blue swap", AccentBlur, 0x80112233, 0x80332211},
		{"grey passes through", AccentOpaque, 0xFF404040, 0xFF404040},
		{"fluent zero alpha promoted", AccentFluent, 0x00112233, 0x01332211},
		{"fluent nonzero alpha untouched", AccentFluent, 0x80112233, 0x80332211},
		{"blur zero alpha left alone", AccentBlur, 0x00112233, 0x00332211},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeAccentColor(tt.kind, tt.argb); got != tt.want {
				t.Errorf("EncodeAccentColor(%v, %#08x) = %#08x, want %#08x", tt.kind, tt.argb, got, tt.want)
			}
		})
	}
}

func singleTaskbarRegistry(f *fakePlatform) *Registry {
	reg := NewRegistry()
	reg.Rebuild(f)
	return reg
}

func TestApplierThemeResetOnlyOnEdge(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	reg := singleTaskbarRegistry(f)

	cfg := Config{TaskbarAppearance: AccentBlur, TaskbarColor: 0x80000000}
	a := NewApplier()

	// Non-Normal ticks submit an accent and never touch the theme.
	a.Apply(cfg, f, reg)
	a.Apply(cfg, f, reg)
	if len(f.accents) != 2 {
		t.Fatalf("accent submissions = %d, want 2", len(f.accents))
	}
	if f.themeResetsFor(100) != 0 {
		t.Fatalf("theme resets = %d before any Normal state, want 0", f.themeResetsFor(100))
	}

	// The edge into Normal sends exactly one reset.
	tb, _ := reg.Lookup(1)
	tb.State = StateStartMenuOpen
	a.Apply(cfg, f, reg)
	a.Apply(cfg, f, reg)
	a.Apply(cfg, f, reg)
	if got := f.themeResetsFor(100); got != 1 {
		t.Errorf("theme resets = %d across repeated Normal ticks, want 1", got)
	}
	if len(f.accents) != 2 {
		t.Errorf("accent submissions = %d, want 2; Normal must not submit a policy", len(f.accents))
	}

	// Leaving the shell default and re-entering it resets again.
	tb.State = StateNormal
	a.Apply(cfg, f, reg)
	tb.State = StateStartMenuOpen
	a.Apply(cfg, f, reg)
	if got := f.themeResetsFor(100); got != 2 {
		t.Errorf("theme resets = %d after a second Normal edge, want 2", got)
	}
}

func TestApplierFirstNormalSendsReset(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	reg := singleTaskbarRegistry(f)

	cfg := Config{TaskbarAppearance: AccentNormal}
	a := NewApplier()

	// The taskbar's pre-existing appearance is unknown, so the first Normal
	// still resets.
	a.Apply(cfg, f, reg)
	a.Apply(cfg, f, reg)
	if got := f.themeResetsFor(100); got != 1 {
		t.Errorf("theme resets = %d, want 1", got)
	}
}

func TestApplierFluentDemotion(t *testing.T) {
	tests := []struct {
		name   string
		fluent bool
		want   AccentKind
	}{
		{"host supports fluent", true, AccentFluent},
		{"older host demotes to blur", false, AccentBlur},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakePlatform()
			f.fluent = tt.fluent
			f.setPrimaryTaskbar(100, 1)
			reg := singleTaskbarRegistry(f)

			cfg := Config{TaskbarAppearance: AccentFluent, TaskbarColor: 0x00112233}
			NewApplier().Apply(cfg, f, reg)

			call, ok := f.lastAccentFor(100)
			if !ok {
				t.Fatal("no accent submitted")
			}
			if call.kind != tt.want {
				t.Errorf("kind = %v, want %v", call.kind, tt.want)
			}
		})
	}
}

func TestApplierRestoreDefaults(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addSecondaryTaskbar(200, 2)
	reg := NewRegistry()
	reg.Rebuild(f)

	cfg := Config{TaskbarAppearance: AccentClear, TaskbarColor: 0}
	a := NewApplier()
	a.Apply(cfg, f, reg)

	a.RestoreDefaults(f, reg)
	for _, w := range []Window{100, 200} {
		if got := f.themeResetsFor(w); got != 1 {
			t.Errorf("theme resets for %#x = %d, want 1", w, got)
		}
	}
}
