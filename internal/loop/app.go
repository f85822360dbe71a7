package loop

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
)

// View is the screen the app is showing.
type View int

const (
	ViewInstructions View = iota
	ViewTitle
	ViewPlaying
	ViewShutdown
)

func (v View) String() string {
	switch v {
	case ViewInstructions:
		return "instructions"
	case ViewTitle:
		return "title"
	case ViewPlaying:
		return "playing"
	case ViewShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

var instructions = []string{
	"Hello Player! To play the game you need to know some STRICT GUIDELINES!!",
	"UP ARROW for moving up",
	"DOWN ARROW for moving down",
	"LEFT ARROW for moving left",
	"RIGHT ARROW for moving right",
	"SPACE to shoot",
	"You will have 5 lives",
	"You LOSE A LIFE when you COLLIDE with an ENEMY or an ENEMY EXITS the SCREEN!",
	"Your health is limited! If it hits zero, you die instantly!!",
	"CLICK THE MOUSE TO CONTINUE",
}

const (
	instructionsTop     = 50
	instructionsSpacing = 70
	instructionsSize    = 24
	titleSize           = 60
	titleY              = 350
	noticeSize          = 30
)

// AppOptions configures an App.
type AppOptions struct {
	Logger     *log.Logger
	Seed       int64
	Background color.RGBA

	// Idle limits, zero disables them.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration

	Now func() time.Time // Defaults to time.Now
}

// App drives the screens around the game: instructions, title, playing, and the
// shutdown notice. Quit ends the app from any screen.
type App struct {
	view    View
	game    *Game
	running bool
	games   int

	screen     object.Screen
	assets     *object.Assets
	rng        *rand.Rand
	logger     *log.Logger
	background color.RGBA

	idleWarn       time.Duration
	idleDisconnect time.Duration
	lastInput      time.Time
	inactive       bool

	shutdownAt time.Time
	now        func() time.Time
}

// NewApp creates an app showing the instructions screen.
func NewApp(assets *object.Assets, opts AppOptions) *App {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &App{
		view:           ViewInstructions,
		running:        true,
		screen:         object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight},
		assets:         assets,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		logger:         opts.Logger,
		background:     opts.Background,
		idleWarn:       opts.IdleWarn,
		idleDisconnect: opts.IdleDisconnect,
		lastInput:      opts.Now(),
		now:            opts.Now,
	}
}

// Running reports whether the app wants more frames.
func (a *App) Running() bool {
	return a.running
}

// View returns the current screen.
func (a *App) View() View {
	return a.view
}

// Game returns the game in progress, or nil outside the playing screen.
func (a *App) Game() *Game {
	return a.game
}

// Inactive reports whether the idle warning is showing.
func (a *App) Inactive() bool {
	return a.inactive
}

// Screen returns the logical play field size.
func (a *App) Screen() object.Screen {
	return a.screen
}

// Shutdown switches to the shutdown notice. The app stops after display has passed.
func (a *App) Shutdown(display time.Duration) {
	if a.view == ViewShutdown {
		return
	}
	a.view = ViewShutdown
	a.game = nil
	a.shutdownAt = a.now().Add(display)
}

// Update advances the app by one frame.
func (a *App) Update(in object.Input) {
	if !a.running {
		return
	}
	if in.Quit {
		a.running = false
		return
	}
	if a.trackIdle(in) {
		return
	}

	switch a.view {
	case ViewInstructions:
		if in.Click {
			a.view = ViewTitle
		}
	case ViewTitle:
		if in.Click {
			a.startGame()
		}
	case ViewPlaying:
		if a.game.Step(in) == PhaseTerminated {
			a.game = nil
			a.view = ViewTitle
		}
	case ViewShutdown:
		if !a.now().Before(a.shutdownAt) {
			a.running = false
		}
	}
}

// trackIdle updates the idle state and reports whether the app stopped because of it.
func (a *App) trackIdle(in object.Input) bool {
	now := a.now()
	if len(in.Pressed) > 0 || in.Click {
		a.lastInput = now
		a.inactive = false
		return false
	}

	idle := now.Sub(a.lastInput)
	if a.idleDisconnect > 0 && idle > a.idleDisconnect {
		a.logger.Info("disconnecting idle player", "idle", idle.Round(time.Second))
		a.running = false
		return true
	}
	a.inactive = a.idleWarn > 0 && idle > a.idleWarn
	return false
}

func (a *App) startGame() {
	a.games++
	a.game = NewGame(a.screen, a.assets, a.rng, a.logger)
	a.view = ViewPlaying
	a.logger.Debug("game started", "game", a.games)
}

// Draw renders the current screen and presents the frame.
func (a *App) Draw(r object.Renderer) error {
	ctx := object.DrawContext{Renderer: r, Screen: a.screen}
	w, h := float64(a.screen.Width), float64(a.screen.Height)
	centerX := w / 2

	r.DrawRect(a.background, 0, 0, w, h)

	switch a.view {
	case ViewInstructions:
		for i, line := range instructions {
			y := float64(instructionsTop + i*instructionsSpacing)
			r.DrawText(line, centerX, y, centered(instructionsSize))
		}
	case ViewTitle:
		r.DrawText("Press the mouse to begin...", centerX, titleY, centered(titleSize))
	case ViewPlaying:
		a.game.Draw(ctx)
	case ViewShutdown:
		left := int(math.Ceil(a.shutdownAt.Sub(a.now()).Seconds()))
		r.DrawText("SERVER SHUTTING DOWN", centerX, titleY-50, centered(titleSize))
		r.DrawText(fmt.Sprintf("Disconnecting in %d seconds", max(left, 0)), centerX, titleY+50, centered(noticeSize))
	}

	if a.inactive && a.view != ViewShutdown {
		left := int((a.idleDisconnect - a.now().Sub(a.lastInput)).Seconds())
		r.DrawText("INACTIVITY WARNING", centerX, titleY+150, centered(noticeSize))
		r.DrawText(fmt.Sprintf("You will be disconnected in %d seconds", max(left, 0)), centerX, titleY+200, centered(noticeSize))
		r.DrawText("Press any key to continue", centerX, titleY+250, centered(noticeSize))
	}

	return r.Present()
}

func centered(size int) object.TextStyle {
	return object.TextStyle{Align: object.AlignCenter, Size: size, Color: textColor}
}
