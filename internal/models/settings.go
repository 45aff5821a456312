package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/tintbar-io/tintbar/internal/engine"
)

// AppearanceConfig is one accent selection: the composition style plus the
// color handed to it.
type AppearanceConfig struct {
	Accent string `yaml:"accent"` // "normal" | "opaque" | "clear" | "blur" | "fluent"
	Color  string `yaml:"color"`  // "#AARRGGBB"
}

// DynamicWSConfig controls the maximised-window override.
type DynamicWSConfig struct {
	Enabled      bool             `yaml:"enabled"`
	Appearance   AppearanceConfig `yaml:"appearance"`
	NormalOnPeek bool             `yaml:"normal_on_peek"`
}

// DynamicStartConfig controls the Start-menu override.
type DynamicStartConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Settings represents global application settings.
// This corresponds to ~/.tintbar/settings.yaml.
type Settings struct {
	Version      int                `yaml:"version"`
	Taskbar      AppearanceConfig   `yaml:"taskbar"`
	DynamicWS    DynamicWSConfig    `yaml:"dynamic_ws"`
	DynamicStart DynamicStartConfig `yaml:"dynamic_start"`
	Peek         string             `yaml:"peek"` // "show" | "hide" | "dynamic"

	SleepIntervalMS   int  `yaml:"sleep_interval_ms"`
	CacheHitMax       int  `yaml:"cache_hit_max"`
	FullClassifyTicks int  `yaml:"full_classify_ticks"`
	Verbose           bool `yaml:"verbose"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Taskbar: AppearanceConfig{
			Accent: "blur",
			Color:  "#00000000",
		},
		DynamicWS: DynamicWSConfig{
			Enabled: false,
			Appearance: AppearanceConfig{
				Accent: "opaque",
				Color:  "#FF000000",
			},
			NormalOnPeek: true,
		},
		DynamicStart: DynamicStartConfig{
			Enabled: false,
		},
		Peek:              "show",
		SleepIntervalMS:   10,
		CacheHitMax:       500,
		FullClassifyTicks: engine.DefaultFullClassifyTicks,
	}
}

// ParseAccent maps a settings accent name to its engine kind.
func ParseAccent(name string) (engine.AccentKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return engine.AccentNormal, nil
	case "opaque":
		return engine.AccentOpaque, nil
	case "clear", "transparent":
		return engine.AccentClear, nil
	case "blur":
		return engine.AccentBlur, nil
	case "fluent", "acrylic":
		return engine.AccentFluent, nil
	default:
		return engine.AccentNormal, fmt.Errorf("unknown accent %q", name)
	}
}

// AccentName is the inverse of ParseAccent, used when saving tray edits.
func AccentName(kind engine.AccentKind) string {
	return kind.String()
}

// ParseColor parses a "#AARRGGBB" color into its packed ARGB value.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if len(s) != 9 || s[0] != '#' {
		return 0, fmt.Errorf("color %q: want #AARRGGBB", s)
	}
	var argb uint32
	for _, c := range s[1:] {
		var nibble uint32
		switch {
		case c >= '0' && c <= '9':
			nibble = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			nibble = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			nibble = uint32(c-'A') + 10
		default:
			return 0, fmt.Errorf("color %q: bad hex digit %q", s, c)
		}
		argb = argb<<4 | nibble
	}
	return argb, nil
}

// FormatColor renders a packed ARGB value as "#AARRGGBB".
func FormatColor(argb uint32) string {
	return fmt.Sprintf("#%08X", argb)
}

// ParsePeekMode maps a settings peek name to its engine mode.
func ParsePeekMode(name string) (engine.PeekMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "show":
		return engine.PeekAlwaysShow, nil
	case "hide":
		return engine.PeekAlwaysHide, nil
	case "dynamic":
		return engine.PeekDynamic, nil
	default:
		return engine.PeekAlwaysShow, fmt.Errorf("unknown peek mode %q", name)
	}
}

// PeekModeName is the inverse of ParsePeekMode.
func PeekModeName(mode engine.PeekMode) string {
	switch mode {
	case engine.PeekAlwaysHide:
		return "hide"
	case engine.PeekDynamic:
		return "dynamic"
	default:
		return "show"
	}
}

// EngineConfig validates the settings and combines them with the parsed
// blacklist into the snapshot the engine consumes.
func (s *Settings) EngineConfig(blacklist engine.Blacklist) (engine.Config, error) {
	taskbarKind, err := ParseAccent(s.Taskbar.Accent)
	if err != nil {
		return engine.Config{}, fmt.Errorf("taskbar appearance: %w", err)
	}
	taskbarColor, err := ParseColor(s.Taskbar.Color)
	if err != nil {
		return engine.Config{}, fmt.Errorf("taskbar appearance: %w", err)
	}
	dynamicKind, err := ParseAccent(s.DynamicWS.Appearance.Accent)
	if err != nil {
		return engine.Config{}, fmt.Errorf("dynamic appearance: %w", err)
	}
	dynamicColor, err := ParseColor(s.DynamicWS.Appearance.Color)
	if err != nil {
		return engine.Config{}, fmt.Errorf("dynamic appearance: %w", err)
	}
	peek, err := ParsePeekMode(s.Peek)
	if err != nil {
		return engine.Config{}, err
	}

	sleep := time.Duration(s.SleepIntervalMS) * time.Millisecond
	if sleep <= 0 {
		sleep = 10 * time.Millisecond
	}
	hitMax := s.CacheHitMax
	if hitMax <= 0 {
		hitMax = 500
	}
	ticks := s.FullClassifyTicks
	if ticks <= 0 {
		ticks = engine.DefaultFullClassifyTicks
	}

	return engine.Config{
		TaskbarAppearance:    taskbarKind,
		TaskbarColor:         taskbarColor,
		DynamicWSEnabled:     s.DynamicWS.Enabled,
		DynamicAppearance:    dynamicKind,
		DynamicColor:         dynamicColor,
		DynamicStartEnabled:  s.DynamicStart.Enabled,
		PeekMode:             peek,
		NormalWhenPeekActive: s.DynamicWS.NormalOnPeek,
		SleepInterval:        sleep,
		CacheHitMax:          hitMax,
		FullClassifyTicks:    ticks,
		Verbose:              s.Verbose,
		Blacklist:            blacklist,
	}, nil
}
