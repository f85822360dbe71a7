// Package loop provides the game simulation, the screens around it, and the terminal
// frame loop that drives them.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/sprite"
)

// Options configures Run.
type Options struct {
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
	Profile      termenv.Profile
	Seed         int64
	Clock        Clock    // Defaults to a FrameLimiter at the target FPS
	Session      *Session // Hub handle for server-hosted sessions, nil for local play
	IdleLimits   bool     // Warn and disconnect inactive players
}

// Run plays on a terminal with the standard Input → Update → Draw cycle until the player
// quits, the context is cancelled, or the session is shut down.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, sheet *sprite.Sheet, opts Options) error {
	assets, err := object.LoadAssets(sheet)
	if err != nil {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewFrameLimiter(config.TargetFPS)
	}

	appOpts := AppOptions{
		Logger:     logger,
		Seed:       opts.Seed,
		Background: sheet.Background(),
	}
	if opts.IdleLimits {
		appOpts.IdleWarn = config.InactivityWarnUser
		appOpts.IdleDisconnect = config.InactivityDisconnectUser
	}
	app := NewApp(assets, appOpts)

	renderer := draw.NewTerminalRenderer(w, config.ScreenWidth, config.ScreenHeight, draw.TerminalOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Profile:      opts.Profile,
		Background:   sheet.Background(),
		MaxWidth:     config.MaxTermWidth,
		MaxHeight:    config.MaxTermHeight,
	})
	stream := input.StartStream(r)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer draw.ShowCursor(w)
	defer draw.DisableMouse(w)
	draw.ClearScreen(w)

	view := app.View()
	for app.Running() {
		select {
		case <-ctx.Done():
			logger.Debug("frame loop cancelled", "err", ctx.Err())
			draw.ClearScreen(w)
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		processEvents(app, opts.Session)
		in := input.ReadInput(stream)

		// ===== UPDATE PHASE =====
		app.Update(in)
		if v := app.View(); v != view {
			if v == ViewPlaying {
				input.ResetKeyInput(stream)
			}
			logger.Debug("view changed", "from", view, "to", v)
			view = v
		}
		if err := renderer.UpdateSize(); err != nil {
			logger.Warn("terminal size unavailable", "err", err)
		}

		// ===== DRAW PHASE =====
		if err := app.Draw(renderer); err != nil {
			return fmt.Errorf("failed to draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		clock.Tick()
	}

	draw.ClearScreen(w)
	return nil
}

// processEvents applies pending hub events to the app.
func processEvents(app *App, s *Session) {
	if s == nil {
		return
	}
	for {
		select {
		case ev := <-s.Events:
			switch ev.Type {
			case EventServerShutdown:
				app.Shutdown(ev.Display)
			}
		default:
			return
		}
	}
}
