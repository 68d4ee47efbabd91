package sim

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomas/internal/core"
)

// Retirer takes a ball out of play. Implemented by *Lifecycle.
type Retirer interface {
	Retire(id EntityID) bool
}

// Integrator launches the idle ball and moves launched balls.
type Integrator struct {
	arena     *Arena
	playfield Playfield
	origin    core.Vec2
	speed     float32
	fallback  core.Vec2 // Unit direction used when the pointer is at the center
	logger    *log.Logger
}

// NewIntegrator creates a motion integrator over arena.
// fallback is normalized; a zero fallback means straight up.
func NewIntegrator(arena *Arena, playfield Playfield, origin core.Vec2, speed float32, fallback core.Vec2, logger *log.Logger) *Integrator {
	dir, ok := fallback.Normalize()
	if !ok {
		dir = core.V2(0, 1)
	}
	return &Integrator{
		arena:     arena,
		playfield: playfield,
		origin:    origin,
		speed:     speed,
		fallback:  dir,
		logger:    logger,
	}
}

// LaunchDirection returns the unit vector from the playfield center toward
// the pointer. A pointer exactly at the center yields the fallback direction.
func (in *Integrator) LaunchDirection(p core.Pointer) core.Vec2 {
	local := in.playfield.ToLocal(p.X, p.Y)
	dir, ok := local.Normalize()
	if !ok {
		return in.fallback
	}
	return dir
}

// OnLaunchInput handles one "primary button released" edge.
// It gives the idle ball a velocity of LaunchSpeed toward the pointer and
// returns its ID. Without an available pointer or an idle ball nothing
// changes and NoEntity is returned.
func (in *Integrator) OnLaunchInput(p core.Pointer) EntityID {
	if !p.Available {
		in.logger.Debug("launch ignored: pointer unavailable")
		return NoEntity
	}

	var idle *Entity
	for i := 0; i < in.arena.Len(); i++ {
		if e := in.arena.At(i); e.IsIdle(in.origin) {
			idle = e
			break
		}
	}
	if idle == nil {
		in.logger.Warn("launch ignored: no idle ball")
		return NoEntity
	}

	dir := in.LaunchDirection(p)
	idle.Velocity = dir.Scale(in.speed)
	idle.State = StateLaunched

	in.logger.Debug("launch ball", "id", idle.ID, "vx", idle.Velocity.X, "vy", idle.Velocity.Y)
	return idle.ID
}

// Tick advances every launched ball by dt seconds.
// A ball already at or past the boundary is stopped and handed to r instead
// of being moved, exactly once. Returns the number of balls retired.
func (in *Integrator) Tick(dt float32, r Retirer) int {
	if dt < 0 || math.IsNaN(float64(dt)) || math.IsInf(float64(dt), 0) {
		dt = 0
	}

	retired := 0
	// Retiring spawns into the arena; only the entities present at the
	// start of the tick are visited.
	n := in.arena.Len()
	for i := 0; i < n; i++ {
		e := in.arena.At(i)
		if !e.IsLaunched() {
			continue
		}

		if in.playfield.Exceeded(e.Position) {
			e.Velocity = core.Vec2{}
			if r.Retire(e.ID) {
				retired++
			}
			continue
		}

		e.Position = e.Position.Add(e.Velocity.Scale(dt))
	}
	return retired
}
