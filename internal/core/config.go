package core

// RuntimeConfig contains the frontend parameters passed to a simulation run.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Frames per second requested from the host loop (default 60)
	Seed     int64 // RNG seed for entity colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
