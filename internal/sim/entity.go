// Package sim implements the ball launcher simulation: an arena of balls,
// the lifecycle manager that keeps exactly one idle ball at the spawn origin,
// and the motion integrator that launches, moves and retires balls.
//
// The package is frontend agnostic. A frontend drives it by calling
// Simulation.Step once per frame with the elapsed time and the frame's input,
// and observes it through a RenderSink.
package sim

import "github.com/vovakirdan/atomas/internal/core"

// EntityID identifies an entity for the lifetime of a simulation run.
// IDs are assigned sequentially starting at 1 and are never reused.
type EntityID uint64

// NoEntity is the zero EntityID; no entity ever has it.
const NoEntity EntityID = 0

// State is the lifecycle state of an entity.
type State uint8

const (
	StateIdle     State = iota // At the spawn origin with zero velocity, awaiting launch
	StateLaunched              // Moving with nonzero velocity
	StateRetired               // Crossed the boundary; removed at the end of the frame
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunched:
		return "launched"
	case StateRetired:
		return "retired"
	default:
		return "unknown"
	}
}

// Entity is one simulated ball.
type Entity struct {
	ID       EntityID
	Position core.Vec2 // Center in playfield-local coordinates, Y up
	Velocity core.Vec2 // Units per second; zero while idle
	Color    core.Color
	Radius   float32
	State    State
}

// IsIdle reports whether the entity occupies the pending-launch slot:
// not retired, zero velocity, and sitting exactly on origin.
func (e *Entity) IsIdle(origin core.Vec2) bool {
	return e.State != StateRetired && e.Velocity.IsZero() && e.Position == origin
}

// IsLaunched reports whether the entity is in flight.
func (e *Entity) IsLaunched() bool {
	return e.State == StateLaunched && !e.Velocity.IsZero()
}
