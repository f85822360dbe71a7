package object

import (
	"math/rand"
	"slices"

	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Wave is the ordered batch of live enemies plus the level bookkeeping that grows it.
type Wave struct {
	Enemies []*Enemy
	Level   int
	Length  int // Enemies spawned by the latest refill

	screen Screen
	assets *Assets
	rng    *rand.Rand
	grid   *physics.SpatialGrid
}

// NewWave creates an empty wave at level 0. rng drives spawn positions, colors, and
// stochastic firing.
func NewWave(screen Screen, assets *Assets, rng *rand.Rand) *Wave {
	return &Wave{
		Length: config.InitialWaveLength,
		screen: screen,
		assets: assets,
		rng:    rng,
		grid: physics.NewSpatialGrid(
			float64(screen.Width),
			float64(screen.Height),
			float64(assets.MaxDimension()),
		),
	}
}

// Empty reports whether every enemy of the wave is gone.
func (w *Wave) Empty() bool {
	return len(w.Enemies) == 0
}

// Refill spawns the next, larger wave. It does nothing while enemies are still alive.
func (w *Wave) Refill() bool {
	if !w.Empty() {
		return false
	}

	w.Level++
	w.Length += config.WaveGrowth

	spanX := w.screen.Width - config.SpawnMarginRight - config.SpawnMinX
	spanY := config.SpawnMaxY - config.SpawnMinY
	for range w.Length {
		x := float64(w.rng.Intn(spanX) + config.SpawnMinX)
		y := float64(w.rng.Intn(spanY) + config.SpawnMinY)
		c := Colors[w.rng.Intn(len(Colors))]
		w.Enemies = append(w.Enemies, NewEnemy(x, y, c, w.assets))
	}
	return true
}

// MaybeFire gives e its per-frame chance to attempt a shot. The ship's cooldown still
// decides whether the attempt produces a projectile.
func (w *Wave) MaybeFire(e *Enemy) bool {
	if w.rng.Intn(config.EnemyFireOdds) != 1 {
		return false
	}
	return e.Fire()
}

// Remove deletes e from the wave by identity.
func (w *Wave) Remove(e *Enemy) bool {
	i := slices.Index(w.Enemies, e)
	if i < 0 {
		return false
	}
	w.Enemies = slices.Delete(w.Enemies, i, i+1)
	return true
}

// Snapshot returns a copy of the live enemies, safe to iterate while removing.
func (w *Wave) Snapshot() []*Enemy {
	return slices.Clone(w.Enemies)
}

// index rebuilds the broad-phase grid from enemies, keyed by their index in that slice.
func (w *Wave) index(enemies []*Enemy) *physics.SpatialGrid {
	w.grid.Clear()
	for i, e := range enemies {
		w.grid.Insert(e.X, e.Y, i)
	}
	return w.grid
}
