package core

// Action represents a semantic action, abstracted from physical key presses
// and mouse buttons. Frontends translate their raw events into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLaunch         // Primary button released (or Space) - launch the idle ball
	ActionPause          // P - pause/unpause the simulation
	ActionRestart        // R - start over with a fresh playfield
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the pointer position in window pixel coordinates
// (origin top-left, Y growing downward).
// Available is false when the position is unknown, e.g. the cursor is
// outside the window or has not moved yet.
type Pointer struct {
	X, Y      float32
	Available bool
}

// PointerAt returns an available pointer at (x, y).
func PointerAt(x, y float32) Pointer {
	return Pointer{X: x, Y: y, Available: true}
}

// InputFrame represents the input collected during one simulation tick.
// Actions are edge-triggered: a frontend sets ActionLaunch once per button
// release, and the frame is cleared after every step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the pointer position sampled with the latest action.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Launch records a launch toward the given pointer.
func (f *InputFrame) Launch(p Pointer) {
	f.Set(ActionLaunch)
	f.Pointer = p
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
// The pointer is kept so that keyboard launches can reuse it.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
