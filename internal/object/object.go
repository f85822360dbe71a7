// Package object holds the game entities: projectiles, the player, enemies, and the wave
// that spawns them.
package object

import (
	"image/color"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/sprite"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen is the logical play field size in pixels.
type Screen struct {
	Width  int
	Height int
}

// Align selects which point of a text run its x coordinate refers to.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle controls how a renderer lays out a run of text.
type TextStyle struct {
	Align Align
	Size  int // Point size in logical pixels, renderers may approximate it
	Color color.RGBA
}

// Renderer is the drawing surface the game writes to. Coordinates are logical pixels.
// Nothing is read back from it.
type Renderer interface {
	DrawSprite(s *sprite.Sprite, x, y float64)
	DrawRect(c color.RGBA, x, y, w, h float64)
	DrawText(text string, x, y float64, style TextStyle)
	Present() error
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Renderer Renderer
	Screen   Screen
}

// Shooter is anything that can fire cooldown-gated projectiles.
type Shooter interface {
	Fire() bool
	TickCooldown()
}

// Target is something a projectile can hit and damage.
type Target interface {
	physics.Collidable
	TakeDamage(amount int)
}
