package sim

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomas/internal/core"
)

// Lifecycle owns entity creation and retirement.
// It keeps exactly one idle entity at the spawn origin: whenever the idle
// slot is empty it spawns a replacement, and it never spawns a second one.
type Lifecycle struct {
	arena  *Arena
	sink   RenderSink
	rng    *rand.Rand
	logger *log.Logger

	origin core.Vec2
	radius float32

	spawned uint64
	retired uint64
}

// NewLifecycle creates a lifecycle manager over arena.
// Colors are drawn from rng; sink and logger must be non-nil.
func NewLifecycle(arena *Arena, sink RenderSink, rng *rand.Rand, logger *log.Logger, origin core.Vec2, radius float32) *Lifecycle {
	return &Lifecycle{
		arena:  arena,
		sink:   sink,
		rng:    rng,
		logger: logger,
		origin: origin,
		radius: radius,
	}
}

// Spawn creates an idle entity at the spawn origin with a fresh color and
// registers it with the render sink. It always succeeds.
func (l *Lifecycle) Spawn() EntityID {
	e := Entity{
		Position: l.origin,
		Color:    core.RandomColor(l.rng),
		Radius:   l.radius,
		State:    StateIdle,
	}
	id := l.arena.Insert(e)
	l.spawned++

	l.sink.Add(id, e.Position, e.Radius, e.Color)
	l.logger.Debug("spawn ball", "id", id, "color", e.Color.Hex())
	return id
}

// Retire takes a ball out of play and refills the idle slot.
// The entity is marked retired (the arena drops it at the end of the frame)
// and removed from the sink. Retiring an unknown or already retired entity
// does nothing and returns false, so one boundary event never spawns twice.
// Step already refills the slot right after a launch, so by the time a ball
// retires its replacement usually exists and Replenish spawns nothing here.
func (l *Lifecycle) Retire(id EntityID) bool {
	e, ok := l.arena.Get(id)
	if !ok || e.State == StateRetired {
		return false
	}

	e.State = StateRetired
	e.Velocity = core.Vec2{}
	pos := e.Position
	l.retired++

	l.sink.Remove(id)
	l.logger.Debug("retire ball", "id", id, "x", pos.X, "y", pos.Y)

	l.Replenish()
	return true
}

// Replenish spawns an idle entity if none exists.
// Returns the new ID, or NoEntity when the idle slot was already taken.
func (l *Lifecycle) Replenish() EntityID {
	if _, ok := l.Idle(); ok {
		return NoEntity
	}
	return l.Spawn()
}

// Idle returns the entity occupying the idle slot, if any.
func (l *Lifecycle) Idle() (*Entity, bool) {
	for i := 0; i < l.arena.Len(); i++ {
		if e := l.arena.At(i); e.IsIdle(l.origin) {
			return e, true
		}
	}
	return nil, false
}

// IdleCount returns how many entities satisfy the idle condition.
func (l *Lifecycle) IdleCount() int {
	n := 0
	for i := 0; i < l.arena.Len(); i++ {
		if l.arena.At(i).IsIdle(l.origin) {
			n++
		}
	}
	return n
}
