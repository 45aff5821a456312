//go:build windows

package win32

import (
	"testing"

	"github.com/tintbar-io/tintbar/internal/engine"
)

func TestApplyAccentWithoutEntryPoint(t *testing.T) {
	// Hosts without the composition attribute export keep their stock
	// taskbars; submission must be a silent no-op, not a crash.
	p := &Platform{accentSupported: false}
	p.ApplyAccent(engine.Window(1), engine.AccentBlur, 0x80000000)
	p.ApplyAccent(engine.Window(1), engine.AccentFluent, 0x00112233)
}

func TestApplyPeekButtonNudgesBothDirections(t *testing.T) {
	tests := []struct {
		name    string
		visible bool
		wantCmd uintptr
	}{
		{"show", true, swShowNormal},
		{"hide", false, swHide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cmds []uintptr
			clicks := 0
			applyPeekButton(tt.visible, 10, 20,
				func(hwnd, cmd uintptr) {
					if hwnd != 10 {
						t.Errorf("show targeted hwnd 0x%X, want 0x%X", hwnd, 10)
					}
					cmds = append(cmds, cmd)
				},
				func(hwnd uintptr) {
					if hwnd != 20 {
						t.Errorf("click targeted hwnd 0x%X, want 0x%X", hwnd, 20)
					}
					clicks++
				})

			if len(cmds) != 1 || cmds[0] != tt.wantCmd {
				t.Errorf("show commands = %v, want [%d]", cmds, tt.wantCmd)
			}
			if clicks != 2 {
				t.Errorf("overflow clicks = %d, want 2", clicks)
			}
		})
	}
}

func TestApplyPeekButtonMissingOverflow(t *testing.T) {
	shown := false
	clicks := 0
	applyPeekButton(true, 10, 0,
		func(hwnd, cmd uintptr) { shown = true },
		func(hwnd uintptr) { clicks++ })

	if !shown {
		t.Error("expected the button to be shown")
	}
	if clicks != 0 {
		t.Errorf("overflow clicks = %d, want 0 without an overflow button", clicks)
	}
}
