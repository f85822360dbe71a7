package object

import (
	"testing"

	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/sprite"
)

func TestEnemyDrift(t *testing.T) {
	a := testAssets()
	tests := []struct {
		color  Color
		wantDX float64
		wantDY float64
	}{
		{Red, 1, 1},
		{Green, 0.5, 1},
		{Blue, 0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			e := NewEnemy(100, 100, tt.color, a)
			e.Move(config.EnemyVelocity, field)
			if dx := e.X - 100; dx != tt.wantDX {
				t.Errorf("dx = %v, want %v", dx, tt.wantDX)
			}
			if dy := e.Y - 100; dy != tt.wantDY {
				t.Errorf("dy = %v, want %v", dy, tt.wantDY)
			}
		})
	}
}

func TestRedEnemyBounces(t *testing.T) {
	sheet, err := sprite.Load()
	if err != nil {
		t.Fatalf("sprite.Load() error: %v", err)
	}
	a, err := LoadAssets(sheet)
	if err != nil {
		t.Fatalf("LoadAssets() error: %v", err)
	}

	e := NewEnemy(50, 0, Red, a)
	bound := float64(field.Width - 59)

	for i := 0; e.X < bound; i++ {
		if i > 1000 {
			t.Fatal("enemy never reached the right edge")
		}
		if e.VX <= 0 {
			t.Fatalf("enemy reversed early at x = %v", e.X)
		}
		e.Move(config.EnemyVelocity, field)
	}

	if e.VX >= 0 {
		t.Fatalf("VX = %v at x = %v, want reversed", e.VX, e.X)
	}
	prev := e.X
	e.Move(config.EnemyVelocity, field)
	if e.X >= prev {
		t.Errorf("x went from %v to %v, want decreasing", prev, e.X)
	}
}

func TestEnemyBouncesOffLeftEdge(t *testing.T) {
	e := NewEnemy(1, 0, Green, testAssets())
	e.VX = -config.GreenDriftX
	e.Move(config.EnemyVelocity, field)
	e.Move(config.EnemyVelocity, field)
	if e.VX <= 0 {
		t.Errorf("VX = %v after reaching the left edge, want positive", e.VX)
	}
}

func TestEnemyFireOffset(t *testing.T) {
	e := NewEnemy(200, 80, Blue, testAssets())
	if !e.Fire() {
		t.Fatal("Fire() refused")
	}
	p := e.Projectiles[0]
	if p.X != 200+config.EnemyLaserOffset || p.Y != 80 {
		t.Errorf("projectile at (%v, %v), want (%v, 80)", p.X, p.Y, 200+config.EnemyLaserOffset)
	}
	if p.Sprite != e.LaserSprite {
		t.Error("projectile does not use the enemy laser sprite")
	}
	if e.Fire() {
		t.Error("second Fire() ignored the cooldown")
	}
}
