package object

import (
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/sprite"
)

// Projectile is a laser owned by the ship that fired it.
type Projectile struct {
	X, Y   float64
	Sprite *sprite.Sprite
}

// NewProjectile creates a projectile at (x, y).
func NewProjectile(x, y float64, s *sprite.Sprite) *Projectile {
	return &Projectile{X: x, Y: y, Sprite: s}
}

// Advance moves the projectile vertically. Negative velocity moves it up.
func (p *Projectile) Advance(velocity float64) {
	p.Y += velocity
}

// OffScreen reports whether the projectile left the field vertically.
func (p *Projectile) OffScreen(height float64) bool {
	return p.Y < 0 || p.Y > height
}

// CollidesWith reports whether the projectile's mask overlaps the target's.
func (p *Projectile) CollidesWith(target physics.Collidable) bool {
	return physics.Collide(p, target)
}

// Position returns the top-left origin.
func (p *Projectile) Position() (float64, float64) {
	return p.X, p.Y
}

// Mask returns the sprite's coverage mask.
func (p *Projectile) Mask() *physics.Mask {
	return p.Sprite.Mask()
}

// Draw renders the projectile.
func (p *Projectile) Draw(ctx DrawContext) {
	ctx.Renderer.DrawSprite(p.Sprite, p.X, p.Y)
}
