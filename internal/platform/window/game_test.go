//go:build ebitentest

// Linking Ebitengine needs the platform graphics headers (X11 and Xrandr on
// Linux), so these tests only run with: go test -tags ebitentest ./...

package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/sim"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	p := sim.DefaultParams()
	p.Seed = seed
	return NewGame(p, nil)
}

func TestGameStepLaunches(t *testing.T) {
	g := newTestGame(t, 7)

	g.input.Launch(core.PointerAt(250, 0))
	if err := g.step(0.25); err != nil {
		t.Fatalf("step() = %v", err)
	}

	st := g.Simulation().Stats()
	if st.Launches != 1 || st.Spawns != 2 {
		t.Fatalf("Stats() = %+v, expected one launch and a refill", st)
	}
	if g.sprites.Len() != 2 {
		t.Errorf("sprites = %d, expected 2", g.sprites.Len())
	}
	if sp, ok := g.sprites.Get(1); !ok || sp.Position != core.V2(0, 250) {
		t.Errorf("sprite 1 = %+v, %v; expected it at (0, 250)", sp, ok)
	}
}

func TestGameStepQuit(t *testing.T) {
	g := newTestGame(t, 7)

	g.input.Set(core.ActionQuit)
	if err := g.step(0.1); !errors.Is(err, ebiten.Termination) {
		t.Errorf("step() = %v, expected ebiten.Termination", err)
	}
	if st := g.Simulation().Stats(); st.Ticks != 0 {
		t.Errorf("Ticks = %d, quit should not advance the simulation", st.Ticks)
	}
}

func TestGameRestartKeepsFixedSeed(t *testing.T) {
	g := newTestGame(t, 7)

	g.input.Launch(core.PointerAt(250, 0))
	g.step(0.1) //nolint:errcheck
	g.input.Clear()

	g.input.Set(core.ActionRestart)
	if err := g.step(0.1); err != nil {
		t.Fatalf("step() = %v", err)
	}

	st := g.Simulation().Stats()
	if st.Ticks != 0 || st.Spawns != 1 || st.Active != 1 {
		t.Errorf("Stats() after restart = %+v", st)
	}
	if seed := g.Simulation().Params().Seed; seed != 7 {
		t.Errorf("seed after restart = %d, expected 7", seed)
	}
	if g.sprites.Len() != 1 {
		t.Errorf("sprites after restart = %d, expected 1", g.sprites.Len())
	}
}

func TestGameRestartDrawsNewSeed(t *testing.T) {
	g := newTestGame(t, 0)
	g.now = func() time.Time { return time.Unix(0, 99) }

	g.restart()
	if seed := g.Simulation().Params().Seed; seed != 99 {
		t.Errorf("seed after restart = %d, expected 99", seed)
	}
}

func TestGamePointer(t *testing.T) {
	g := newTestGame(t, 7)

	tests := []struct {
		x, y      int
		available bool
	}{
		{250, 400, true},
		{0, 0, true},
		{-1, 0, false},
		{0, -1, false},
		{500, 10, false},
		{10, 800, false},
	}
	for _, tc := range tests {
		if p := g.pointer(tc.x, tc.y); p.Available != tc.available {
			t.Errorf("pointer(%d, %d).Available = %v, expected %v", tc.x, tc.y, p.Available, tc.available)
		}
	}
}

func TestGameLayout(t *testing.T) {
	g := newTestGame(t, 7)

	if w, h := g.Layout(1920, 1080); w != 500 || h != 800 {
		t.Errorf("Layout() = %dx%d, expected 500x800", w, h)
	}
}
