package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	Ink  Ink
}

// blank is the cleared cell value.
var blank = Cell{Rune: ' '}

// Screen is a 2D buffer of colored characters.
// It decouples drawing from the terminal: frontends draw with simple rune
// operations and the platform layer turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(0, width),
		height: max(0, height),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetInk places a rune with the given ink at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetInk(x, y int, r rune, ink Ink) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Ink: ink}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, ink Ink) {
	i := 0
	for _, r := range text {
		s.SetInk(x+i, y, r, ink)
		i++
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, ink Ink) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	s.SetInk(r.X, r.Y, '┌', ink)
	s.SetInk(r.Right()-1, r.Y, '┐', ink)
	s.SetInk(r.X, r.Bottom()-1, '└', ink)
	s.SetInk(r.Right()-1, r.Bottom()-1, '┘', ink)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetInk(x, r.Y, '─', ink)
		s.SetInk(x, r.Bottom()-1, '─', ink)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetInk(r.X, y, '│', ink)
		s.SetInk(r.Right()-1, y, '│', ink)
	}
}

// FillEllipse fills every cell whose center lies inside the ellipse with
// center (cx, cy) and radii (rx, ry), all in cell units, clipped to clip.
// At least the cell containing the center is drawn so tiny balls stay visible.
func (s *Screen) FillEllipse(clip Rect, cx, cy, rx, ry float32, r rune, ink Ink) {
	if rx <= 0 || ry <= 0 {
		return
	}

	minX := int(cx - rx)
	maxX := int(cx + rx)
	minY := int(cy - ry)
	maxY := int(cy + ry)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !clip.Contains(x, y) {
				continue
			}
			dx := (float32(x) + 0.5 - cx) / rx
			dy := (float32(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.SetInk(x, y, r, ink)
			}
		}
	}

	if x, y := int(cx), int(cy); cx >= 0 && cy >= 0 && clip.Contains(x, y) {
		s.SetInk(x, y, r, ink)
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
