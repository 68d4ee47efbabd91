package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles for the lines below the playfield.
type Theme struct {
	Status lipgloss.Style
	Help   lipgloss.Style
	Notice lipgloss.Style
}

// DefaultTheme returns the dark theme used by the terminal frontend.
func DefaultTheme() Theme {
	return Theme{
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // Bright cyan
	}
}
