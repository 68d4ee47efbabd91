package sim

import "github.com/vovakirdan/atomas/internal/core"

// Playfield is the fixed rectangle the balls live in, centered at (0, 0).
// The margins pull the collision threshold slightly inside the visible edge.
type Playfield struct {
	Width   float32
	Height  float32
	MarginX float32
	MarginY float32
}

// LimitX is the |x| at which a ball counts as out of the playfield.
func (p Playfield) LimitX() float32 {
	return p.Width/2 - p.MarginX
}

// LimitY is the |y| at which a ball counts as out of the playfield.
func (p Playfield) LimitY() float32 {
	return p.Height/2 - p.MarginY
}

// Exceeded reports whether pos has reached the boundary on either axis.
// A non-finite position (or limit) always counts as exceeded.
func (p Playfield) Exceeded(pos core.Vec2) bool {
	inside := core.Abs32(pos.Y) < p.LimitY() && core.Abs32(pos.X) < p.LimitX()
	return !inside
}

// ToLocal converts a window pixel position (origin top-left, Y down) to
// playfield-local coordinates (origin at center, Y up).
func (p Playfield) ToLocal(x, y float32) core.Vec2 {
	return core.Vec2{
		X: x - p.Width/2,
		Y: -(y - p.Height/2),
	}
}

// ToWindow converts playfield-local coordinates back to window pixels.
func (p Playfield) ToWindow(v core.Vec2) (x, y float32) {
	return v.X + p.Width/2, p.Height/2 - v.Y
}
