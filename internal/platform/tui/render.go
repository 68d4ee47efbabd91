package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/atomas/internal/core"
)

// maxCachedStyles bounds the style cache; every ball gets a fresh color.
const maxCachedStyles = 512

// Renderer converts Screen buffers to styled strings.
type Renderer struct {
	styles map[core.Ink]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[core.Ink]lipgloss.Style)}
}

// style returns the cached foreground style for ink.
func (r *Renderer) style(ink core.Ink) lipgloss.Style {
	if st, ok := r.styles[ink]; ok {
		return st
	}
	if len(r.styles) >= maxCachedStyles {
		clear(r.styles)
	}

	st := lipgloss.NewStyle()
	if ink != core.InkDefault {
		st = st.Foreground(lipgloss.Color(string(ink)))
	}
	r.styles[ink] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same ink to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same ink for efficiency
		x := 0
		for x < s.Width() {
			ink := s.GetCell(x, y).Ink

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Ink != ink {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if ink == core.InkDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(ink).Render(run.String()))
		}
	}
	return sb.String()
}
