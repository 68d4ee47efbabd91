package core

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an entity tint in linear RGB. Channels are in [0, 1].
// The simulation treats it as opaque; only frontends interpret it.
type Color struct {
	R, G, B float32
}

// LinearRGB builds a Color from linear-light channel values.
func LinearRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// RandomColor samples each channel independently from [0, 1).
func RandomColor(rng *rand.Rand) Color {
	return LinearRGB(rng.Float32(), rng.Float32(), rng.Float32())
}

// srgb converts the linear channels to a gamma-encoded colorful.Color.
func (c Color) srgb() colorful.Color {
	return colorful.LinearRgb(float64(c.R), float64(c.G), float64(c.B)).Clamped()
}

// Hex returns the sRGB hex form ("#rrggbb").
func (c Color) Hex() string {
	return c.srgb().Hex()
}

// RGBA returns the opaque sRGB value for image-based renderers.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.srgb().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Ink returns the color as a terminal foreground color.
func (c Color) Ink() Ink {
	return Ink(c.Hex())
}

// Ink is a terminal foreground color understood by lipgloss: empty for the
// terminal default, an ANSI 256 index such as "245", or "#rrggbb".
type Ink string

// Inks used for frame decorations.
const (
	InkDefault Ink = ""
	InkGray    Ink = "245"
	InkYellow  Ink = "11"
)
