package config

// Committed-action lock durations and clip playback parameters. These are
// design constants tuned against the clip lengths, not runtime settings.
const (
	PunchLockSeconds = 0.6
	KickLockSeconds  = 1.0

	BlendInSeconds  = 0.2
	NormalClipSpeed = 1.0
	AttackClipSpeed = 1.5

	// MaxTickDelta caps the per-tick elapsed time so a window drag or a
	// paused debugger doesn't teleport characters on the next tick.
	MaxTickDelta = 0.25
)

// Direction constants for character facing along the movement axis.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains character tuning values. Distances are in world
// units (not pixels); speeds are units per second.
type PlayerConfig struct {
	// Movement. Backward speed is intentionally lower than forward so a
	// retreat reads as cautious rather than committed.
	ForwardSpeed  float64
	BackwardSpeed float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	FrameWidth      int
	FrameHeight     int
}

// ArenaConfig bounds the playable strip along the movement axis. Resolv
// space coordinates start at the outer face of the left wall; the movement
// axis origin sits at WallThickness + HalfWidth.
type ArenaConfig struct {
	HalfWidth     float64 // symmetric playable interval around the origin
	WallThickness float64
	FloorY        float64 // y of the ground line characters stand on
	Height        float64 // total space height
}

// CombatConfig contains hitbox tuning for the two attacks.
type CombatConfig struct {
	PunchHitboxWidth  float64
	PunchHitboxHeight float64
	KickHitboxWidth   float64
	KickHitboxHeight  float64

	// HitboxLifetime is how long an attack hitbox stays live, in seconds.
	// Shorter than either lock so the active window sits inside the swing.
	HitboxLifetime float64
}

// RenderConfig maps world units to screen pixels.
type RenderConfig struct {
	PixelsPerUnit float64
}

// CameraConfig contains camera framing and smoothing values.
type CameraConfig struct {
	Smoothing float64 // fraction of remaining distance covered per second
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	StrictInvariants bool // panic on lock/state desynchronization
	DrawHitboxes     bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Arena ArenaConfig
var Combat CombatConfig
var Render RenderConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1024,
		Height: 512,
		Title:  "dojoduel",
	}

	Player = PlayerConfig{
		ForwardSpeed:  4.0,
		BackwardSpeed: 2.0,

		CollisionWidth:  1.0,
		CollisionHeight: 2.0,
		FrameWidth:      96,
		FrameHeight:     96,
	}

	Arena = ArenaConfig{
		HalfWidth:     8.0,
		WallThickness: 1.0,
		FloorY:        6.0,
		Height:        8.0,
	}

	Combat = CombatConfig{
		PunchHitboxWidth:  0.8,
		PunchHitboxHeight: 0.5,
		KickHitboxWidth:   1.1,
		KickHitboxHeight:  0.6,
		HitboxLifetime:    0.25,
	}

	Render = RenderConfig{
		PixelsPerUnit: 48.0,
	}

	Camera = CameraConfig{
		Smoothing: 6.0,
	}

	Debug = DebugConfig{
		StrictInvariants: true,
		DrawHitboxes:     false,
	}
}
