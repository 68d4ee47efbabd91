package tui

import (
	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/sim"
)

// BallRune is the glyph balls are drawn with.
const BallRune = '●'

// Sink keeps the sprites the simulation reports and rasterizes them
// onto a terminal screen.
type Sink struct {
	*sim.Sprites
	field sim.Playfield
}

// NewSink creates an empty sink for the given playfield.
func NewSink(field sim.Playfield) *Sink {
	return &Sink{
		Sprites: sim.NewSprites(),
		field:   field,
	}
}

// Draw rasterizes all sprites into the field area of screen, oldest first.
func (s *Sink) Draw(screen *core.Screen, pm PointerMapper) {
	sx, sy := pm.Scale()
	s.Each(func(sp sim.Sprite) {
		wx, wy := s.field.ToWindow(sp.Position)
		cx, cy := pm.Cell(wx, wy)
		screen.FillEllipse(pm.Field, cx, cy, sp.Radius*sx, sp.Radius*sy, BallRune, sp.Color.Ink())
	})
}

var _ sim.RenderSink = (*Sink)(nil)
