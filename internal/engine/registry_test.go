package engine

import "testing"

func TestRegistryRebuild(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addSecondaryTaskbar(200, 2)
	f.addSecondaryTaskbar(300, 3)

	reg := NewRegistry()
	reg.Rebuild(f)

	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}
	primary, ok := reg.Primary()
	if !ok || primary.Window != 100 {
		t.Errorf("Primary() = %+v, %v; want window 100", primary, ok)
	}
	for _, m := range []MonitorID{1, 2, 3} {
		tb, ok := reg.Lookup(m)
		if !ok {
			t.Fatalf("Lookup(%d) missing", m)
		}
		if tb.State != StateNormal {
			t.Errorf("monitor %d state = %v, want %v", m, tb.State, StateNormal)
		}
	}
}

func TestRegistryRebuildReplacesWholesale(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addSecondaryTaskbar(200, 2)

	reg := NewRegistry()
	reg.Rebuild(f)
	if tb, ok := reg.Lookup(1); ok {
		tb.State = StateWindowMaximised
	}

	// Shell restart: same monitors, new handles, no secondaries yet.
	f2 := newFakePlatform()
	f2.setPrimaryTaskbar(900, 1)
	reg.Rebuild(f2)

	if reg.Len() != 1 {
		t.Fatalf("Len() = %d after rebuild, want 1", reg.Len())
	}
	tb, ok := reg.Lookup(1)
	if !ok {
		t.Fatal("Lookup(1) missing after rebuild")
	}
	if tb.Ref.Window != 900 {
		t.Errorf("window = %#x, want 0x384", tb.Ref.Window)
	}
	if tb.State != StateNormal {
		t.Errorf("state = %v after rebuild, want %v", tb.State, StateNormal)
	}
	if _, ok := reg.Lookup(2); ok {
		t.Error("stale secondary survived the rebuild")
	}
}

func TestRegistryNoPrimary(t *testing.T) {
	f := newFakePlatform()
	f.addSecondaryTaskbar(200, 2)

	reg := NewRegistry()
	reg.Rebuild(f)

	if _, ok := reg.Primary(); ok {
		t.Error("Primary() reported a taskbar the platform never found")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryResetStates(t *testing.T) {
	f := newFakePlatform()
	f.setPrimaryTaskbar(100, 1)
	f.addSecondaryTaskbar(200, 2)

	reg := NewRegistry()
	reg.Rebuild(f)
	reg.ForEach(func(tb *Taskbar) { tb.State = StateStartMenuOpen })

	reg.ResetStates()
	reg.ForEach(func(tb *Taskbar) {
		if tb.State != StateNormal {
			t.Errorf("monitor %d state = %v, want %v", tb.Ref.Monitor, tb.State, StateNormal)
		}
	})
}
