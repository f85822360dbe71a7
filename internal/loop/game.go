package loop

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// Phase is the state of a single game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost          // Game over, showing the result until the dwell runs out
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

var textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// HUD font sizes in logical pixels.
const (
	hudTextSize  = 50
	lostTextSize = 60
	lostTextY    = 350
	hudMargin    = 10
)

// Game is one play session from the first wave until the lost dwell ends.
type Game struct {
	Player    *object.Player
	Wave      *object.Wave
	Debris    *object.Debris
	Lives     int
	Lost      bool
	LostCount int // Frames spent in the lost dwell

	screen object.Screen
	phase  Phase
	logger *log.Logger
}

// NewGame creates a game with a fresh player and an empty wave.
func NewGame(screen object.Screen, assets *object.Assets, rng *rand.Rand, logger *log.Logger) *Game {
	return &Game{
		Player: object.NewPlayer(config.PlayerStartX, config.PlayerStartY, assets),
		Wave:   object.NewWave(screen, assets, rng),
		Debris: object.NewDebris(rng),
		Lives:  config.InitialLives,
		screen: screen,
		phase:  PhasePlaying,
		logger: logger,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Level returns the number of waves spawned so far.
func (g *Game) Level() int {
	return g.Wave.Level
}

func (g *Game) over() bool {
	return g.Lives <= 0 || g.Player.Health <= 0
}

// Step advances the simulation by one frame using the input snapshot in.
func (g *Game) Step(in object.Input) Phase {
	if g.phase == PhaseTerminated {
		return g.phase
	}

	if g.over() {
		g.Lost = true
		g.phase = PhaseLost
		g.LostCount++
	}
	g.Debris.Update()

	if g.Lost {
		if g.LostCount > config.LostDwellFrames {
			g.phase = PhaseTerminated
			g.logger.Info("game over", "level", g.Wave.Level, "lives", g.Lives, "health", g.Player.Health)
		}
		return g.phase
	}

	if g.Wave.Refill() {
		g.logger.Debug("wave spawned", "level", g.Wave.Level, "enemies", g.Wave.Length)
	}

	height := float64(g.screen.Height)

	g.Player.Translate(in, config.PlayerVelocity, g.screen)
	if in.Fire {
		g.Player.Fire()
	}

	for _, e := range g.Wave.Snapshot() {
		e.Move(config.EnemyVelocity, g.screen)
		e.AdvanceProjectiles(config.LaserVelocity, height, g.Player)
		g.Wave.MaybeFire(e)

		if e.Y+float64(e.Height()) > height {
			g.Lives--
			g.Wave.Remove(e)
		} else if physics.Collide(e, g.Player) {
			g.Lives--
			g.Wave.Remove(e)
			g.Debris.ExplodeShip(e)
		}
	}

	for _, e := range g.Player.AdvanceProjectiles(-config.LaserVelocity, height, g.Wave) {
		g.Debris.ExplodeShip(e)
	}

	if g.over() {
		g.Lost = true
		g.phase = PhaseLost
	}
	return g.phase
}

// Draw renders the HUD, the ships, explosion debris and the lost banner.
func (g *Game) Draw(ctx object.DrawContext) {
	r := ctx.Renderer

	r.DrawText(fmt.Sprintf("Lives: %d", g.Lives), hudMargin, hudMargin,
		object.TextStyle{Size: hudTextSize, Color: textColor})
	r.DrawText(fmt.Sprintf("Level: %d", g.Wave.Level), float64(ctx.Screen.Width-hudMargin), hudMargin,
		object.TextStyle{Align: object.AlignRight, Size: hudTextSize, Color: textColor})

	for _, e := range g.Wave.Enemies {
		e.Draw(ctx)
	}
	g.Player.Draw(ctx)
	g.Debris.Draw(ctx)

	if g.Lost {
		r.DrawText("You Lost!!", float64(ctx.Screen.Width)/2, lostTextY,
			object.TextStyle{Align: object.AlignCenter, Size: lostTextSize, Color: textColor})
	}
}
