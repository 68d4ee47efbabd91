// Package window runs the simulation in a desktop window using Ebitengine.
package window

import (
	"errors"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/sim"
)

// Background is the dark clear color of the window.
var Background = color.RGBA{R: 0x1e, G: 0x1e, B: 0x22, A: 0xff}

// Options configures the desktop window.
type Options struct {
	Title     string
	VSync     bool
	Resizable bool
	TickRate  int
}

// Game implements ebiten.Game around a simulation.
type Game struct {
	sim      *sim.Simulation
	sprites  *sim.Sprites
	field    sim.Playfield
	clock    core.FrameClock
	logger   *log.Logger
	seed     int64
	randSeed bool
	input    core.InputFrame
	now      func() time.Time
}

// NewGame creates the window game. A zero seed draws a time-based one on
// every start. A nil logger discards all output.
func NewGame(params sim.Params, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		sprites:  sim.NewSprites(),
		field:    params.Playfield,
		logger:   logger,
		seed:     params.Seed,
		randSeed: params.Seed == 0,
		input:    core.NewInputFrame(),
		now:      time.Now,
	}
	if g.randSeed {
		params.Seed = g.now().UnixNano()
	}
	g.sim = sim.New(params, g.sprites, sim.WithLogger(logger))
	return g
}

// Simulation returns the simulation driven by the game.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Update collects input and advances the simulation by the wall time since
// the previous frame.
func (g *Game) Update() error {
	g.input.Clear()

	x, y := ebiten.CursorPosition()
	pointer := g.pointer(x, y)

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.input.Launch(pointer)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.input.Launch(pointer)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.input.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.input.Set(core.ActionQuit)
	}

	return g.step(g.clock.Tick(g.now()))
}

// step applies the input collected for one frame and advances the
// simulation by dt seconds.
func (g *Game) step(dt float32) error {
	switch {
	case g.input.Has(core.ActionQuit):
		g.logger.Info("quit requested")
		return ebiten.Termination
	case g.input.Has(core.ActionRestart):
		g.restart()
		return nil
	}

	g.sim.Step(dt, g.input)
	return nil
}

// restart starts over, keeping a fixed seed.
func (g *Game) restart() {
	seed := g.seed
	if g.randSeed {
		seed = g.now().UnixNano()
	}
	g.sim.Reset(seed)
	g.clock.Reset()
	g.logger.Info("restarted", "seed", seed)
}

// pointer converts a cursor position to a pointer. Positions outside the
// window are unavailable.
func (g *Game) pointer(x, y int) core.Pointer {
	if x < 0 || y < 0 || float32(x) >= g.field.Width || float32(y) >= g.field.Height {
		return core.Pointer{}
	}
	return core.PointerAt(float32(x), float32(y))
}

// Draw renders every sprite as a filled circle on the dark background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	g.sprites.Each(func(sp sim.Sprite) {
		x, y := g.field.ToWindow(sp.Position)
		vector.DrawFilledCircle(screen, x, y, sp.Radius, sp.Color.RGBA(), true)
	})
}

// Layout returns the playfield size. The logical screen does not follow the
// outer window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.field.Width), int(g.field.Height)
}

// Run opens the window and blocks until it is closed or q is pressed.
func Run(params sim.Params, opts Options, logger *log.Logger) error {
	game := NewGame(params, logger)

	ebiten.SetWindowSize(int(params.Playfield.Width), int(params.Playfield.Height))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetVsyncEnabled(opts.VSync)
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	game.logger.Info("window opened", "title", opts.Title, "width", params.Playfield.Width, "height", params.Playfield.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
