// Package config centralizes all tunable game parameters.
package config

import "time"

// Play field - every entity position is expressed in these logical pixels.
// Renderers scale to fit the terminal or window.
const (
	ScreenWidth  = 750
	ScreenHeight = 750
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Player
const (
	InitialLives    = 5
	DefaultHealth   = 100
	PlayerStartX    = 300
	PlayerStartY    = 600
	PlayerVelocity  = 5
	HealthBarOffset = 10 // Gap between ship and status bar
	HealthBarHeight = 10
	HealthBarMargin = 15 // Room kept below the ship for the status bar
)

// Projectiles
const (
	LaserVelocity    = 15
	CooldownFrames   = 20 // One shot per this many frames per ship
	LaserDamage      = 10
	EnemyLaserOffset = -12 // Horizontal offset that centers enemy lasers under the hull
)

// Waves
const (
	EnemyVelocity     = 1
	InitialWaveLength = 5
	WaveGrowth        = 5
	EnemyFireOdds     = 240 // An enemy attempts to fire with probability 1/EnemyFireOdds per frame
	SpawnMinX         = 50
	SpawnMarginRight  = 100
	SpawnMinY         = -1500
	SpawnMaxY         = -100
)

// Red and green ships drift sideways, blue ships sink faster.
const (
	RedDriftX   = 1.0
	GreenDriftX = 0.5
	BlueDriftY  = 0.5
)

// Game over
const (
	LostDwellSeconds = 3
	LostDwellFrames  = TargetFPS * LostDwellSeconds
)

// Terminal rendering - caps the render area so huge terminals do not flood the wire.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 80
)

// Shutdown
const (
	ShutdownDisplay = 10 * time.Second // Shutdown message shown before auto-disconnect
	ShutdownTimeout = 15 * time.Second // Longest wait for sessions to leave
)

// Inactivity
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)

// Explosion debris
const (
	DebrisCount    = 12   // Particles per destroyed ship
	DebrisSpeed    = 4.0  // Mean initial speed in pixels per frame
	DebrisLifetime = 30   // Maximum lifetime in frames
	DebrisDrag     = 0.92 // Per-frame velocity decay
	DebrisSize     = 4.0
)
