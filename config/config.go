package config

import (
	"image/color"

	"github.com/automoto/ingotown/shared/gamemath"
)

// PhysicsConfig contains the per-frame kinematic constants shared by every character
type PhysicsConfig struct {
	Gravity      float64
	MaxSpeed     float64
	DeadZone     float64 // |vx| below this snaps to zero
	Deceleration float64 // vx is divided by this after each step
	DropNudge    float64 // Pixels pushed down when dropping through a platform
}

// Params converts the config into the resolver's parameter block
func (p PhysicsConfig) Params() gamemath.Params {
	return gamemath.Params{
		Gravity:      p.Gravity,
		MaxSpeed:     p.MaxSpeed,
		DeadZone:     p.DeadZone,
		Deceleration: p.Deceleration,
	}
}

// PlayerConfig contains player control values
type PlayerConfig struct {
	Acceleration     float64
	SprintMultiplier float64
	JumpForce        float64

	// Footprint in tiles
	Width  int
	Height int
	Sprite int
}

// NPCConfig contains defaults for roster entries that leave them out
type NPCConfig struct {
	Width  int
	Height int
	Sprite int
}

// SpeechConfig contains speech bubble configuration
type SpeechConfig struct {
	DisplayDuration int // frames
	PopInDuration   float32
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
}

// InteractionConfig is the probe window placed on the faced side of the player
type InteractionConfig struct {
	Width  float64
	Height float64

	SpaceCellSize int // resolv broadphase cell size in pixels
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay       bool   // Draw body boxes and state text
	StartLocation string // Location id to load first; empty means the first in the catalogue
	Watch         bool   // Hot reload layouts from disk
	DataDir       string // Read data from disk instead of the embedded copy
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var NPC NPCConfig
var Speech SpeechConfig
var Interaction InteractionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	// 12 tiles tall at 8px, 16:9
	C = &Config{
		Width:  170,
		Height: 96,
		Scale:  6,
	}

	Physics = PhysicsConfig{
		Gravity:      0.3,
		MaxSpeed:     7,
		DeadZone:     0.1,
		Deceleration: 1.2,
		DropNudge:    3,
	}

	Player = PlayerConfig{
		Acceleration:     1.0,
		SprintMultiplier: 1.5,
		JumpForce:        3.6,
		Width:            1,
		Height:           1,
		Sprite:           0,
	}

	NPC = NPCConfig{
		Width:  1,
		Height: 1,
		Sprite: 1,
	}

	Speech = SpeechConfig{
		DisplayDuration: 180,
		PopInDuration:   8,
		BoxPadding:      2,
		BoxColor:        BlackOverlay,
		TextColor:       White,
	}

	Interaction = InteractionConfig{
		Width:         12,
		Height:        8,
		SpaceCellSize: 16,
	}

	Debug = DebugConfig{}
}
