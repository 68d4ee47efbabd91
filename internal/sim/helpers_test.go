package sim

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomas/internal/core"
)

// recordingSink remembers every call made by the simulation.
type recordingSink struct {
	added   []EntityID
	moved   map[EntityID]core.Vec2
	removed []EntityID
}

func newRecordingSink() *recordingSink {
	return &recordingSink{moved: make(map[EntityID]core.Vec2)}
}

func (s *recordingSink) Add(id EntityID, _ core.Vec2, _ float32, _ core.Color) {
	s.added = append(s.added, id)
}

func (s *recordingSink) Move(id EntityID, pos core.Vec2) {
	s.moved[id] = pos
}

func (s *recordingSink) Remove(id EntityID) {
	s.removed = append(s.removed, id)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// testWorld wires an arena, lifecycle and integrator with the default
// 500x800 parameters, without spawning anything.
type testWorld struct {
	arena      *Arena
	sink       *recordingSink
	lifecycle  *Lifecycle
	integrator *Integrator
}

func newTestWorld() *testWorld {
	p := DefaultParams()
	arena := NewArena()
	sink := newRecordingSink()
	logger := quietLogger()
	return &testWorld{
		arena:      arena,
		sink:       sink,
		lifecycle:  NewLifecycle(arena, sink, rand.New(rand.NewSource(1)), logger, p.SpawnOrigin, p.Radius),
		integrator: NewIntegrator(arena, p.Playfield, p.SpawnOrigin, p.LaunchSpeed, p.DefaultDirection, logger),
	}
}

// launched inserts a ball already in flight.
func (w *testWorld) launched(pos, vel core.Vec2) EntityID {
	return w.arena.Insert(Entity{
		Position: pos,
		Velocity: vel,
		Radius:   50,
		State:    StateLaunched,
	})
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func approxVec(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
