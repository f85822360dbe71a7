package object

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/sprite"
)

func TestParticleUpdate(t *testing.T) {
	p := NewParticle(100, 100, 10, -10, 3, color.RGBA{A: 255})
	p.Drag = 0.5

	if p.Update() {
		t.Fatal("particle expired early")
	}
	if p.X != 105 || p.Y != 95 {
		t.Errorf("position = (%v, %v), want (105, 95)", p.X, p.Y)
	}
	p.Update()
	if !p.Update() {
		t.Error("particle outlived its lifetime")
	}
}

func TestDebrisLifecycle(t *testing.T) {
	d := NewDebris(rand.New(rand.NewSource(1)))
	d.Explode(375, 375, color.RGBA{R: 255, A: 255})

	if len(d.Particles) != config.DebrisCount {
		t.Fatalf("particles = %d, want %d", len(d.Particles), config.DebrisCount)
	}
	for _, p := range d.Particles {
		if p.Life < config.DebrisLifetime/2 || p.Life > config.DebrisLifetime {
			t.Errorf("lifetime %d outside [%d, %d]", p.Life, config.DebrisLifetime/2, config.DebrisLifetime)
		}
	}

	for range config.DebrisLifetime {
		d.Update()
	}
	if len(d.Particles) != 0 {
		t.Errorf("particles = %d after the maximum lifetime, want 0", len(d.Particles))
	}
}

func TestExplodeShipUsesTint(t *testing.T) {
	a := testAssets()
	e := NewEnemy(100, 200, Green, a)
	d := NewDebris(rand.New(rand.NewSource(1)))
	d.ExplodeShip(e)

	cx, cy := e.X+float64(e.Width())/2, e.Y+float64(e.Height())/2
	for _, p := range d.Particles {
		if p.Color != Green.Tint() {
			t.Fatalf("color = %v, want %v", p.Color, Green.Tint())
		}
		if p.X != cx || p.Y != cy {
			t.Fatalf("origin = (%v, %v), want (%v, %v)", p.X, p.Y, cx, cy)
		}
	}
}

func TestDebrisDrawSkipsFaded(t *testing.T) {
	d := NewDebris(rand.New(rand.NewSource(1)))
	d.Particles = []*Particle{
		NewParticle(10, 10, 0, 0, 20, color.RGBA{A: 255}),
		NewParticle(10, 10, 0, 0, 20, color.RGBA{A: 255}),
	}
	d.Particles[1].Life = 4

	rects := &rectCounter{}
	d.Draw(DrawContext{Renderer: rects, Screen: field})
	if rects.n != 1 {
		t.Errorf("rects drawn = %d, want 1", rects.n)
	}
}

type rectCounter struct{ n int }

func (r *rectCounter) DrawSprite(*sprite.Sprite, float64, float64)              {}
func (r *rectCounter) DrawRect(color.RGBA, float64, float64, float64, float64) { r.n++ }
func (r *rectCounter) DrawText(string, float64, float64, TextStyle)            {}
func (r *rectCounter) Present() error                                          { return nil }
