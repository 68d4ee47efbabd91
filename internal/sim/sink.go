package sim

import "github.com/vovakirdan/atomas/internal/core"

//go:generate go tool mockgen -destination=./mocks/render_sink_mock.go -package=mocks . RenderSink

// RenderSink receives the renderable view of the simulation.
// The simulation only writes to it and never reads back.
type RenderSink interface {
	// Add registers a new ball.
	Add(id EntityID, pos core.Vec2, radius float32, color core.Color)

	// Move updates the position of a registered ball.
	Move(id EntityID, pos core.Vec2)

	// Remove forgets a ball.
	Remove(id EntityID)
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Add(EntityID, core.Vec2, float32, core.Color) {}
func (NopSink) Move(EntityID, core.Vec2)                     {}
func (NopSink) Remove(EntityID)                              {}

var _ RenderSink = NopSink{}
