package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/sim"
)

// KeyMap defines the key bindings of the terminal frontend.
type KeyMap struct {
	Launch     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Launch, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("click/space", "launch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
// Keys without a simulation action (screenshot, unbound keys) yield ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// PointerMapper converts terminal cells to playfield window pixels.
// Field is the screen area the playfield is drawn into.
type PointerMapper struct {
	Field     core.Rect
	Playfield sim.Playfield
}

// Pointer maps the cell (x, y) to a window pixel position.
// Cells outside the field give an unavailable pointer.
func (pm PointerMapper) Pointer(x, y int) core.Pointer {
	if pm.Field.W <= 0 || pm.Field.H <= 0 || !pm.Field.Contains(x, y) {
		return core.Pointer{}
	}
	col := float32(x - pm.Field.X)
	row := float32(y - pm.Field.Y)
	return core.PointerAt(
		(col+0.5)*pm.Playfield.Width/float32(pm.Field.W),
		(row+0.5)*pm.Playfield.Height/float32(pm.Field.H),
	)
}

// Cell maps a window pixel position to fractional cell coordinates.
func (pm PointerMapper) Cell(x, y float32) (cx, cy float32) {
	cx = float32(pm.Field.X) + x*float32(pm.Field.W)/pm.Playfield.Width
	cy = float32(pm.Field.Y) + y*float32(pm.Field.H)/pm.Playfield.Height
	return cx, cy
}

// Scale returns the number of cells per pixel on each axis.
func (pm PointerMapper) Scale() (sx, sy float32) {
	return float32(pm.Field.W) / pm.Playfield.Width, float32(pm.Field.H) / pm.Playfield.Height
}

// IsLaunchRelease reports whether a mouse message is the release edge of the
// primary button. Some terminals do not report which button was released.
func IsLaunchRelease(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionRelease {
		return false
	}
	return msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone
}
