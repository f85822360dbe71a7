package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/invaders/internal/loop/config"
)

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		health, max int
		want        float64
	}{
		{100, 100, 1},
		{50, 100, 0.5},
		{10, 100, 0.1},
		{0, 100, 0},
		{-10, 100, 0},
		{150, 100, 1},
		{10, 0, 0},
	}

	for _, tt := range tests {
		p := &Player{Ship: Ship{Health: tt.health}, MaxHealth: tt.max}
		if got := p.HealthRatio(); got != tt.want {
			t.Errorf("HealthRatio(%d/%d) = %v, want %v", tt.health, tt.max, got, tt.want)
		}
	}
}

func TestPlayerTranslate(t *testing.T) {
	a := testAssets() // player sprite is 20x20

	tests := []struct {
		name         string
		x, y         float64
		in           Input
		wantX, wantY float64
	}{
		{"left", 300, 600, Input{Left: true}, 295, 600},
		{"right", 300, 600, Input{Right: true}, 305, 600},
		{"up", 300, 600, Input{Up: true}, 300, 595},
		{"down", 300, 600, Input{Down: true}, 300, 605},
		{"diagonal", 300, 600, Input{Left: true, Up: true}, 295, 595},
		{"left edge", 5, 600, Input{Left: true}, 5, 600},
		{"right edge", 725, 600, Input{Right: true}, 725, 600},
		{"top edge", 300, 5, Input{Up: true}, 300, 5},
		{"bottom edge keeps bar room", 300, 710, Input{Down: true}, 300, 710},
		{"near bottom", 300, 709, Input{Down: true}, 300, 714},
		{"idle", 300, 600, Input{}, 300, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.x, tt.y, a)
			p.Translate(tt.in, config.PlayerVelocity, field)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerProjectileLeavesField(t *testing.T) {
	a := testAssets()
	p := NewPlayer(config.PlayerStartX, config.PlayerStartY, a)
	wave := NewWave(field, a, rand.New(rand.NewSource(1)))

	// Above the field where the projectile would land on the tick it leaves.
	guard := NewEnemy(p.X, -20, Red, a)
	guard.Sprite = solidSprite("guard", 10, 10)
	wave.Enemies = []*Enemy{guard}

	if !p.Fire() {
		t.Fatal("Fire() refused")
	}

	ticks := 0
	for len(p.Projectiles) > 0 {
		if ticks > 100 {
			t.Fatal("projectile never left the field")
		}
		p.AdvanceProjectiles(-config.LaserVelocity, config.ScreenHeight, wave)
		ticks++
	}

	if want := config.PlayerStartY/config.LaserVelocity + 1; ticks != want {
		t.Errorf("projectile removed after %d ticks, want %d", ticks, want)
	}
	if len(wave.Enemies) != 1 {
		t.Errorf("enemy above the field was hit by an off-screen projectile")
	}
}

func TestPlayerProjectileKillsOneEnemy(t *testing.T) {
	a := testAssets()
	p := NewPlayer(config.PlayerStartX, config.PlayerStartY, a)
	wave := NewWave(field, a, rand.New(rand.NewSource(1)))

	first := NewEnemy(200, 300, Red, a)
	second := NewEnemy(210, 300, Green, a)
	bystander := NewEnemy(500, 300, Blue, a)
	wave.Enemies = []*Enemy{first, second, bystander}

	p.Projectiles = []*Projectile{NewProjectile(220, 330, a.PlayerLaser)}

	kills := p.AdvanceProjectiles(-config.LaserVelocity, config.ScreenHeight, wave)

	if len(kills) != 1 || kills[0] != first {
		t.Fatalf("kills = %v, want [first]", kills)
	}
	if len(p.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want 0", len(p.Projectiles))
	}
	if len(wave.Enemies) != 2 || wave.Enemies[0] != second || wave.Enemies[1] != bystander {
		t.Errorf("wave = %v, want [second bystander]", wave.Enemies)
	}
}

func TestPlayerProjectilesDoNotRehitRemovedEnemy(t *testing.T) {
	a := testAssets()
	p := NewPlayer(config.PlayerStartX, config.PlayerStartY, a)
	wave := NewWave(field, a, rand.New(rand.NewSource(1)))

	target := NewEnemy(200, 300, Red, a)
	wave.Enemies = []*Enemy{target}

	p.Projectiles = []*Projectile{
		NewProjectile(210, 330, a.PlayerLaser),
		NewProjectile(220, 330, a.PlayerLaser),
	}

	kills := p.AdvanceProjectiles(-config.LaserVelocity, config.ScreenHeight, wave)

	if len(kills) != 1 {
		t.Errorf("kills = %d, want 1", len(kills))
	}
	if !wave.Empty() {
		t.Errorf("wave still holds %d enemies", len(wave.Enemies))
	}
	if len(p.Projectiles) != 1 {
		t.Errorf("projectiles = %d, want 1 still in flight", len(p.Projectiles))
	}
}
