package object

import (
	"image/color"

	"github.com/tomz197/invaders/internal/loop/config"
)

var (
	healthBarBackground = color.RGBA{R: 255, A: 255}
	healthBarForeground = color.RGBA{G: 255, A: 255}
)

// Player is the ship controlled by the user.
type Player struct {
	Ship
	MaxHealth int
}

// NewPlayer creates a full-health player at (x, y).
func NewPlayer(x, y float64, assets *Assets) *Player {
	return &Player{
		Ship: Ship{
			X:           x,
			Y:           y,
			Health:      config.DefaultHealth,
			Sprite:      assets.Player,
			LaserSprite: assets.PlayerLaser,
		},
		MaxHealth: config.DefaultHealth,
	}
}

// HealthRatio returns health/max-health clamped to [0, 1].
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	r := float64(p.Health) / float64(p.MaxHealth)
	return min(max(r, 0), 1)
}

// Translate moves the player by velocity in each held direction, as long as the sprite
// and its status bar stay inside the field.
func (p *Player) Translate(in Input, velocity float64, screen Screen) {
	w := float64(p.Width())
	h := float64(p.Height())

	if in.Left && p.X-velocity > 0 {
		p.X -= velocity
	}
	if in.Right && p.X+velocity+w < float64(screen.Width) {
		p.X += velocity
	}
	if in.Up && p.Y-velocity > 0 {
		p.Y -= velocity
	}
	if in.Down && p.Y+velocity+h+config.HealthBarMargin < float64(screen.Height) {
		p.Y += velocity
	}
}

// AdvanceProjectiles ticks the cooldown, then moves every player projectile. A projectile
// that hits an enemy removes that enemy from the wave and is dropped. Each projectile kills
// at most one enemy, the first one in wave order. Returns the enemies killed.
func (p *Player) AdvanceProjectiles(velocity, height float64, wave *Wave) []*Enemy {
	p.TickCooldown()

	enemies := wave.Snapshot()
	grid := wave.index(enemies)
	removed := make([]bool, len(enemies))
	var kills []*Enemy

	kept := p.Projectiles[:0]
	for _, pr := range p.Projectiles {
		pr.Advance(velocity)
		if pr.OffScreen(height) {
			continue
		}

		hit := -1
		grid.QueryAround(pr.X, pr.Y, func(i int) bool {
			if removed[i] || (hit >= 0 && i > hit) {
				return false
			}
			if pr.CollidesWith(enemies[i]) {
				hit = i
			}
			return false
		})
		if hit < 0 {
			kept = append(kept, pr)
			continue
		}

		removed[hit] = true
		wave.Remove(enemies[hit])
		kills = append(kills, enemies[hit])
	}
	clear(p.Projectiles[len(kept):])
	p.Projectiles = kept
	return kills
}

// Draw renders the ship, its projectiles, and the health bar below the hull.
func (p *Player) Draw(ctx DrawContext) {
	p.Ship.Draw(ctx)

	w := float64(p.Width())
	y := p.Y + float64(p.Height()) + config.HealthBarOffset
	ctx.Renderer.DrawRect(healthBarBackground, p.X, y, w, config.HealthBarHeight)
	ctx.Renderer.DrawRect(healthBarForeground, p.X, y, w*p.HealthRatio(), config.HealthBarHeight)
}
