package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	TickSeconds float64 // simulated seconds per Update call
	AssetDir    string  // root of the on-disk images/ and audio/ trees
	AppName     string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed float64 // world units per second

	// Dimensions are in map pixels, before the scene scale factor is applied.
	CollisionWidth   float64
	CollisionHeight  float64
	CollisionOffsetY float64
}

// CameraConfig contains camera follow and zoom values
type CameraConfig struct {
	OffsetY float64 // camera looks this far above the player

	// Zoom is NarrowScale when the viewport is taller than it is wide.
	NarrowScale float64
	WideScale   float64
	ZoomSeconds float32
}

// FootstepConfig describes the footstep loop played while walking
type FootstepConfig struct {
	Interval  float64 // seconds between steps
	Volume    float64
	Speed     float64
	DetuneMin float64 // cents
	DetuneMax float64
}

// DialogueConfig contains dialogue box layout and timing
type DialogueConfig struct {
	BoxColor        color.RGBA
	TextColor       color.RGBA
	ButtonColor     color.RGBA
	ButtonHover     color.RGBA
	Padding         int
	BoxHeight       int
	CharsPerSecond  float32
	CloseButtonText string
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawBoundaries bool   // outline every boundary rectangle
	HotReloadMaps  bool   // watch MapDir and rebuild the scene on change
	MapDir         string // directory read instead of the embedded maps
	LogLevel       string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Footsteps FootstepConfig
var DialogueBox DialogueConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightRed   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue   = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Background = color.RGBA{R: 49, G: 23, B: 57, A: 255}
)

func init() {
	C = &Config{
		Width:       1280,
		Height:      720,
		TickSeconds: 1.0 / 60.0,
		AssetDir:    "assets",
		AppName:     "tilewalk",
	}

	Player = PlayerConfig{
		Speed:            250,
		CollisionWidth:   10,
		CollisionHeight:  10,
		CollisionOffsetY: 3,
	}

	Camera = CameraConfig{
		OffsetY:     100,
		NarrowScale: 1,
		WideScale:   1.5,
		ZoomSeconds: 0.4,
	}

	Footsteps = FootstepConfig{
		Interval:  0.35,
		Volume:    0.15,
		Speed:     1.2,
		DetuneMin: -100,
		DetuneMax: 100,
	}

	DialogueBox = DialogueConfig{
		BoxColor:        color.RGBA{R: 255, G: 255, B: 255, A: 235},
		TextColor:       Black,
		ButtonColor:     DarkBlue,
		ButtonHover:     LightBlue,
		Padding:         16,
		BoxHeight:       180,
		CharsPerSecond:  90,
		CloseButtonText: "Close",
	}

	Debug = DebugConfig{
		DrawBoundaries: false,
		HotReloadMaps:  false,
		MapDir:         "assets/maps",
		LogLevel:       "info",
	}
}
