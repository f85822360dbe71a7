package object

import (
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/sprite"
)

// Ship is the state and behavior shared by the player and the enemies.
type Ship struct {
	X, Y        float64
	Health      int
	Sprite      *sprite.Sprite
	LaserSprite *sprite.Sprite
	Projectiles []*Projectile

	cooldown int // 0 = ready, otherwise frames since the last shot
}

// Fire spawns a projectile at the ship's origin if the cooldown allows it.
func (s *Ship) Fire() bool {
	return s.fireFrom(s.X, s.Y)
}

func (s *Ship) fireFrom(x, y float64) bool {
	if s.cooldown != 0 {
		return false
	}
	s.Projectiles = append(s.Projectiles, NewProjectile(x, y, s.LaserSprite))
	s.cooldown = 1
	return true
}

// TickCooldown advances the cooldown counter, resetting it once it reaches the threshold.
func (s *Ship) TickCooldown() {
	if s.cooldown >= config.CooldownFrames {
		s.cooldown = 0
	} else if s.cooldown > 0 {
		s.cooldown++
	}
}

// Cooldown returns the current cooldown counter.
func (s *Ship) Cooldown() int {
	return s.cooldown
}

// TakeDamage subtracts amount from the ship's health.
func (s *Ship) TakeDamage(amount int) {
	s.Health -= amount
}

// AdvanceProjectiles ticks the cooldown, then moves every owned projectile. Projectiles that
// leave the field are dropped. A projectile that hits target damages it and is dropped.
func (s *Ship) AdvanceProjectiles(velocity, height float64, target Target) {
	s.TickCooldown()

	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		p.Advance(velocity)
		if p.OffScreen(height) {
			continue
		}
		if p.CollidesWith(target) {
			target.TakeDamage(config.LaserDamage)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

// Width returns the hull width in pixels.
func (s *Ship) Width() int {
	return s.Sprite.Width()
}

// Height returns the hull height in pixels.
func (s *Ship) Height() int {
	return s.Sprite.Height()
}

// Position returns the top-left origin.
func (s *Ship) Position() (float64, float64) {
	return s.X, s.Y
}

// Mask returns the hull's coverage mask.
func (s *Ship) Mask() *physics.Mask {
	return s.Sprite.Mask()
}

// Draw renders the hull and every projectile in flight.
func (s *Ship) Draw(ctx DrawContext) {
	ctx.Renderer.DrawSprite(s.Sprite, s.X, s.Y)
	for _, p := range s.Projectiles {
		p.Draw(ctx)
	}
}
