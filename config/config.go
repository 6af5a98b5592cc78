package config

import (
	"image"
	"image/color"
)

// TraceConfig contains path recording and traversal configuration values
type TraceConfig struct {
	MinPointSpacing float64 // Minimum distance between recorded points
	DefaultSpeed    float64 // Marker speed in pixels per millisecond
	MinSpeed        float64 // Lowest speed the speed panel accepts
	MaxSpeed        float64 // Highest speed the speed panel accepts
	VariableStep    bool    // Use wall clock deltas instead of 1000/TPS
}

// BoardConfig contains stroke canvas configuration values
type BoardConfig struct {
	LineWidth       float32
	StrokeColor     color.RGBA
	BackgroundColor color.RGBA
	RoundJoins      bool // Fill a disc at every point so wide strokes have no gaps
}

// MarkerConfig contains marker presentation values
type MarkerConfig struct {
	Radius      float32
	Color       color.RGBA
	RingColor   color.RGBA
	PopDuration float32 // seconds for the pop-in tween
}

// UIConfig contains speed panel and HUD values
type UIConfig struct {
	Panel         image.Rectangle // Screen area owned by the speed panel, pointer presses here are not strokes
	PanelColor    color.RGBA
	InputColor    color.RGBA
	TextColor     color.RGBA
	StatusColor   color.RGBA
	ErrorColor    color.RGBA
	HUDMargin     int
	HUDTextColor  color.RGBA
	HUDFontSize   float64
	PanelFontSize float64
}

// PersistenceConfig contains saved settings storage values
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Preset     string // Preset path to play on startup
	ShowPoints bool   // Draw recorded points on top of the stroke
}

// Config holds general app configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Trace TraceConfig
var Board BoardConfig
var Marker MarkerConfig
var UI UIConfig
var Persistence PersistenceConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Charcoal     = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		Title:  "pathtrace",
	}

	Trace = TraceConfig{
		MinPointSpacing: 10.0,
		DefaultSpeed:    0.8,
		MinSpeed:        0.01,
		MaxSpeed:        20.0,
		VariableStep:    true,
	}

	Board = BoardConfig{
		LineWidth:       20,
		StrokeColor:     White,
		BackgroundColor: Charcoal,
		RoundJoins:      true,
	}

	Marker = MarkerConfig{
		Radius:      14,
		Color:       Orange,
		RingColor:   BrightOrange,
		PopDuration: 0.15,
	}

	UI = UIConfig{
		Panel:         image.Rect(0, 0, 340, 72),
		PanelColor:    color.RGBA{R: 30, G: 30, B: 45, A: 230},
		InputColor:    color.RGBA{R: 50, G: 50, B: 70, A: 255},
		TextColor:     White,
		StatusColor:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		ErrorColor:    LightRed,
		HUDMargin:     10,
		HUDTextColor:  LightBlue,
		HUDFontSize:   12,
		PanelFontSize: 12,
	}

	Persistence = PersistenceConfig{
		AppName:     "pathtrace",
		SettingsKey: "settings",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Preset:     "",
		ShowPoints: false,
	}
}

// ClampSpeed limits v to the range the speed panel accepts.
func ClampSpeed(v float64) float64 {
	if v < Trace.MinSpeed {
		return Trace.MinSpeed
	}
	if v > Trace.MaxSpeed {
		return Trace.MaxSpeed
	}
	return v
}
