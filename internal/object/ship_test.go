package object

import (
	"testing"

	"github.com/tomz197/invaders/internal/loop/config"
)

func TestFireCooldown(t *testing.T) {
	a := testAssets()
	s := &Ship{X: 100, Y: 100, LaserSprite: a.PlayerLaser}

	if !s.Fire() {
		t.Fatal("first Fire() refused")
	}
	if s.Cooldown() != 1 {
		t.Fatalf("cooldown after fire = %d, want 1", s.Cooldown())
	}

	for i := 1; i < config.CooldownFrames; i++ {
		s.TickCooldown()
		if s.Fire() {
			t.Fatalf("Fire() succeeded %d ticks after the last shot", i)
		}
	}

	s.TickCooldown()
	if s.Cooldown() != 0 {
		t.Fatalf("cooldown after %d ticks = %d, want 0", config.CooldownFrames, s.Cooldown())
	}
	if !s.Fire() {
		t.Fatal("Fire() refused after the cooldown cycled")
	}
	if len(s.Projectiles) != 2 {
		t.Errorf("projectiles = %d, want 2", len(s.Projectiles))
	}
}

func TestTickCooldownIdle(t *testing.T) {
	s := &Ship{}
	for range 50 {
		s.TickCooldown()
	}
	if s.Cooldown() != 0 {
		t.Errorf("idle cooldown = %d, want 0", s.Cooldown())
	}
}

func TestEnemyProjectileDamagesPlayer(t *testing.T) {
	a := testAssets()
	player := NewPlayer(config.PlayerStartX, config.PlayerStartY, a)
	enemy := NewEnemy(300, 100, Red, a)

	hitting := NewProjectile(player.X+5, player.Y-config.LaserVelocity+5, enemy.LaserSprite)
	distant := NewProjectile(player.X+5, 200, enemy.LaserSprite)
	enemy.Projectiles = []*Projectile{hitting, distant}

	enemy.AdvanceProjectiles(config.LaserVelocity, config.ScreenHeight, player)

	if player.Health != config.DefaultHealth-config.LaserDamage {
		t.Errorf("player health = %d, want %d", player.Health, config.DefaultHealth-config.LaserDamage)
	}
	if len(enemy.Projectiles) != 1 || enemy.Projectiles[0] != distant {
		t.Fatalf("remaining projectiles = %v, want only the distant one", enemy.Projectiles)
	}
	if distant.Y != 200+config.LaserVelocity {
		t.Errorf("distant projectile y = %v, want %v", distant.Y, 200+config.LaserVelocity)
	}
}

func TestAdvanceProjectilesDropsOffScreen(t *testing.T) {
	a := testAssets()
	player := NewPlayer(config.PlayerStartX, config.PlayerStartY, a)
	enemy := NewEnemy(0, 0, Blue, a)
	enemy.Projectiles = []*Projectile{NewProjectile(10, 745, enemy.LaserSprite)}

	enemy.AdvanceProjectiles(config.LaserVelocity, config.ScreenHeight, player)

	if len(enemy.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want 0", len(enemy.Projectiles))
	}
	if player.Health != config.DefaultHealth {
		t.Errorf("player health = %d, want %d", player.Health, config.DefaultHealth)
	}
}
