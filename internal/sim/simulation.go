package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomas/internal/core"
)

// Params holds the fixed parameters of a simulation run.
type Params struct {
	Playfield        Playfield
	Radius           float32   // Ball radius, same for every ball
	LaunchSpeed      float32   // Units per second given to a launched ball
	SpawnOrigin      core.Vec2 // Where idle balls wait
	DefaultDirection core.Vec2 // Launch direction when the pointer is at the center
	Seed             int64     // Color RNG seed
}

// DefaultParams returns the parameters of the classic 500x800 playfield.
func DefaultParams() Params {
	return Params{
		Playfield: Playfield{
			Width:   500,
			Height:  800,
			MarginX: 5,
			MarginY: 10,
		},
		Radius:           50,
		LaunchSpeed:      1000,
		SpawnOrigin:      core.Vec2{},
		DefaultDirection: core.V2(0, 1),
	}
}

// Stats are running counters of a simulation. They are informational only.
type Stats struct {
	Ticks       uint64
	Launches    uint64
	Retirements uint64
	Spawns      uint64
	Active      int // Entities in play after the last step
	Paused      bool
}

// StepResult is returned by Step.
type StepResult struct {
	Launched EntityID // Ball launched this step, or NoEntity
	Retired  int      // Balls retired this step
	Stats    Stats
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger. Nil keeps the default discarding logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Simulation owns all entity state and runs one step per frame.
// It is not safe for concurrent use; the frontend's run loop is its only
// caller.
type Simulation struct {
	params     Params
	sink       RenderSink
	logger     *log.Logger
	arena      *Arena
	lifecycle  *Lifecycle
	integrator *Integrator

	paused      bool
	ticks       uint64
	launches    uint64
	retirements uint64
}

// New creates a simulation and spawns its first idle ball into sink.
// A nil sink discards render updates.
func New(params Params, sink RenderSink, opts ...Option) *Simulation {
	if sink == nil {
		sink = NopSink{}
	}
	s := &Simulation{
		params: params,
		sink:   sink,
		logger: log.New(io.Discard),
		arena:  NewArena(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(params.Seed)
	return s
}

// Reset clears the playfield, reseeds the color RNG, and spawns a fresh
// idle ball. Counters start over.
func (s *Simulation) Reset(seed int64) {
	for _, e := range s.arena.Snapshot() {
		if e.State != StateRetired {
			s.sink.Remove(e.ID)
		}
	}
	s.arena.Reset()

	s.params.Seed = seed
	rng := rand.New(rand.NewSource(seed))
	p := s.params
	s.lifecycle = NewLifecycle(s.arena, s.sink, rng, s.logger, p.SpawnOrigin, p.Radius)
	s.integrator = NewIntegrator(s.arena, p.Playfield, p.SpawnOrigin, p.LaunchSpeed, p.DefaultDirection, s.logger)

	s.paused = false
	s.ticks = 0
	s.launches = 0
	s.retirements = 0

	s.lifecycle.Spawn()
}

// Step advances the simulation by one frame.
//
// Order: pause toggle, launch on the release edge, integrate and retire,
// refill the idle slot, push positions to the sink, drop retired records.
func (s *Simulation) Step(dt float32, in core.InputFrame) StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
		s.logger.Debug("pause toggled", "paused", s.paused)
	}
	if s.paused {
		return StepResult{Stats: s.Stats()}
	}

	var res StepResult
	if in.Has(core.ActionLaunch) {
		res.Launched = s.integrator.OnLaunchInput(in.Pointer)
		if res.Launched != NoEntity {
			s.launches++
		}
	}

	res.Retired = s.integrator.Tick(dt, s.lifecycle)
	s.retirements += uint64(res.Retired)

	s.lifecycle.Replenish()

	for i := 0; i < s.arena.Len(); i++ {
		if e := s.arena.At(i); e.IsLaunched() {
			s.sink.Move(e.ID, e.Position)
		}
	}

	s.arena.Compact()
	s.ticks++

	res.Stats = s.Stats()
	return res
}

// Stats returns the current counters.
func (s *Simulation) Stats() Stats {
	return Stats{
		Ticks:       s.ticks,
		Launches:    s.launches,
		Retirements: s.retirements,
		Spawns:      s.lifecycle.spawned,
		Active:      s.arena.Len(),
		Paused:      s.paused,
	}
}

// Paused reports whether stepping is suspended.
func (s *Simulation) Paused() bool {
	return s.paused
}

// Params returns the parameters the simulation runs with.
func (s *Simulation) Params() Params {
	return s.params
}

// Entities returns a copy of the entities in spawn order.
func (s *Simulation) Entities() []Entity {
	return s.arena.Snapshot()
}

// Idle returns a copy of the idle ball, if any.
func (s *Simulation) Idle() (Entity, bool) {
	e, ok := s.lifecycle.Idle()
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// IdleCount returns the number of balls in the idle slot.
// It is 1 after every Step.
func (s *Simulation) IdleCount() int {
	return s.lifecycle.IdleCount()
}

// Arena exposes the entity arena.
func (s *Simulation) Arena() *Arena {
	return s.arena
}
