// Package desktop runs the app in an ebiten window.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Game adapts a loop.App to ebiten.Game. Ebiten ticks at 60 TPS, matching the
// terminal frame rate.
type Game struct {
	app      *loop.App
	renderer *Renderer
	keyboard Keyboard
	err      error
}

// NewGame wraps app. A nil keyboard reads the live window input.
func NewGame(app *loop.App, kb Keyboard) *Game {
	if kb == nil {
		kb = &ebitenKeyboard{}
	}
	return &Game{
		app:      app,
		renderer: NewRenderer(),
		keyboard: kb,
	}
}

// Update advances the app and ends the ebiten loop once it stops.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if !g.app.Running() {
		return ebiten.Termination
	}

	g.app.Update(ReadInput(g.keyboard))

	if !g.app.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	if err := g.app.Draw(g.renderer); err != nil {
		g.err = err
	}
}

// Layout keeps the logical field size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Run opens a window of the given scale and blocks until the app stops or the
// window is closed.
func Run(app *loop.App, title string, scale float64) error {
	ebiten.SetWindowSize(int(config.ScreenWidth*scale), int(config.ScreenHeight*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(config.TargetFPS)
	return ebiten.RunGame(NewGame(app, nil))
}
