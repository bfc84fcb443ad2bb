package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// NinjaConfig describes how the ninja is drawn and collided.
type NinjaConfig struct {
	// Sprite sheet, placeholder art when empty
	SheetPath string

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64
}

// LevelConfig points at the embedded level.
type LevelConfig struct {
	Path string
}

// UIConfig contains colors and sizes of everything drawn besides the ninja.
type UIConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	GroundThickness float32

	HUDTextColor   color.RGBA
	HUDPanelColor  color.RGBA
	HUDFontSize    float64
	HUDPadding     int
	DebugFontSize  float64
	DebugTextColor color.RGBA

	// Debug colors
	DebugBoxColors map[string]color.RGBA
}

// PauseConfig contains the pause overlay
type PauseConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	Title        string
	Hint         string
}

// EffectsConfig controls the dash after-images.
type EffectsConfig struct {
	GhostStartAlpha float32
	GhostTint       color.RGBA
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay      bool          // Draw collision boxes and timers
	TuningPath   string        // YAML tuning overrides
	WatchTuning  bool          // Reload the tuning file when it changes
	ReloadSettle time.Duration // Quiet time before a changed file is reloaded
}

// Global configuration instances
var C *Config
var Ninja NinjaConfig
var Level LevelConfig
var UI UIConfig
var Pause PauseConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Ninja Animation",
		TPS:    60,
	}

	Ninja = NinjaConfig{
		FrameWidth:  320,
		FrameHeight: 320,
		// The figure only fills the middle of its cell
		CollisionWidth:  96,
		CollisionHeight: 192,
	}

	Level = LevelConfig{
		Path: "levels/dojo.tmx",
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		GroundColor:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		GroundThickness: 4,

		HUDTextColor:   White,
		HUDPanelColor:  color.RGBA{R: 0, G: 0, B: 0, A: 140},
		HUDFontSize:    16,
		HUDPadding:     8,
		DebugFontSize:  12,
		DebugTextColor: Green,

		DebugBoxColors: map[string]color.RGBA{
			"ninja":  Red,
			"sprite": LightBlue,
			"ground": Green,
		},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightOrange,
		HintColor:    White,
		Title:        "PAUSED",
		Hint:         "Press P or ESC to resume",
	}

	Effects = EffectsConfig{
		GhostStartAlpha: 0.6,
		GhostTint:       LightBlue,
	}

	// Defaults, can be overridden by CLI flags
	Debug = DebugConfig{
		ReloadSettle: 100 * time.Millisecond,
	}
}
