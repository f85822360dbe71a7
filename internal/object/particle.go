package object

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/invaders/internal/loop/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived fragment of a destroyed ship. It takes no part in collisions.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity in pixels per frame
	Life    int     // Frames remaining
	MaxLife int     // Initial lifetime (for fade calculation)
	Drag    float64 // Velocity decay (1.0 = no drag)
	Color   color.RGBA
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, life int, c color.RGBA) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = life
	p.MaxLife = life
	p.Drag = config.DebrisDrag
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle one frame and reports whether it has expired.
func (p *Particle) Update() bool {
	p.Life--
	if p.Life <= 0 {
		return true
	}

	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY
	return false
}

// Draw renders the particle as a small square.
func (p *Particle) Draw(ctx DrawContext) {
	// Skip faded particles (< 25% lifetime)
	if p.MaxLife > 0 && p.Life*4 < p.MaxLife {
		return
	}
	half := config.DebrisSize / 2
	ctx.Renderer.DrawRect(p.Color, p.X-half, p.Y-half, config.DebrisSize, config.DebrisSize)
}

// Debris holds the particles of every ship destroyed recently.
type Debris struct {
	Particles []*Particle
	rng       *rand.Rand
}

// NewDebris creates an empty debris field. rng drives the burst directions.
func NewDebris(rng *rand.Rand) *Debris {
	return &Debris{rng: rng}
}

// Explode bursts particles of color c outward from (x, y).
func (d *Debris) Explode(x, y float64, c color.RGBA) {
	for i := 0; i < config.DebrisCount; i++ {
		// Random direction
		angle := d.rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := config.DebrisSpeed * (0.5 + d.rng.Float64())
		// Random lifetime variation (50% to 100%)
		life := config.DebrisLifetime/2 + d.rng.Intn(config.DebrisLifetime/2+1)

		d.Particles = append(d.Particles, NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, c))
	}
}

// ExplodeShip bursts debris from the center of e in its variant's color.
func (d *Debris) ExplodeShip(e *Enemy) {
	d.Explode(e.X+float64(e.Width())/2, e.Y+float64(e.Height())/2, e.Color.Tint())
}

// Update advances every particle and releases the expired ones.
func (d *Debris) Update() {
	kept := d.Particles[:0]
	for _, p := range d.Particles {
		if p.Update() {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(d.Particles[len(kept):])
	d.Particles = kept
}

// Draw renders every live particle.
func (d *Debris) Draw(ctx DrawContext) {
	for _, p := range d.Particles {
		p.Draw(ctx)
	}
}
