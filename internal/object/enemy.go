package object

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/tomz197/invaders/internal/loop/config"
)

// Color is an enemy variant. It selects the sprites and the drift profile.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// Colors lists every enemy variant in spawn-table order.
var Colors = []Color{Red, Green, Blue}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Tint is the color of the variant's explosion debris.
func (c Color) Tint() color.RGBA {
	switch c {
	case Red:
		return colornames.Orangered
	case Green:
		return colornames.Limegreen
	case Blue:
		return colornames.Dodgerblue
	}
	return colornames.White
}

// drift returns the per-frame velocity the variant adds to the wave's descent.
func (c Color) drift() (vx, vy float64) {
	switch c {
	case Red:
		return config.RedDriftX, 0
	case Green:
		return config.GreenDriftX, 0
	case Blue:
		return 0, config.BlueDriftY
	}
	return 0, 0
}

// Enemy is a descending ship that bounces between the field edges.
type Enemy struct {
	Ship
	Color  Color
	VX, VY float64
}

// NewEnemy creates a full-health enemy of color c at (x, y).
func NewEnemy(x, y float64, c Color, assets *Assets) *Enemy {
	vx, vy := c.drift()
	return &Enemy{
		Ship: Ship{
			X:           x,
			Y:           y,
			Health:      config.DefaultHealth,
			Sprite:      assets.Ships[c],
			LaserSprite: assets.Lasers[c],
		},
		Color: c,
		VX:    vx,
		VY:    vy,
	}
}

// Move applies horizontal drift, bouncing off either edge, then descends by base plus the
// variant's own vertical drift.
func (e *Enemy) Move(base float64, screen Screen) {
	e.X += e.VX
	if e.X >= float64(screen.Width-e.Width()) || e.X <= 0 {
		e.VX = -e.VX
	}
	e.Y += base + e.VY
}

// Fire spawns a projectile shifted so it leaves from under the hull.
func (e *Enemy) Fire() bool {
	return e.fireFrom(e.X+config.EnemyLaserOffset, e.Y)
}
