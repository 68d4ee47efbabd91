package config

import (
	_ "embed"
)

//go:embed defaults/atomas.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/atomas.yaml and is used when that cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:   500,
			Height:  800,
			MarginX: 5,
			MarginY: 10,
		},
		Ball: BallConfig{
			Radius:           50,
			LaunchSpeed:      1000,
			Spawn:            Point{X: 0, Y: 0},
			DefaultDirection: Point{X: 0, Y: 1},
		},
		Window: WindowConfig{
			Title:     "Atomas Clone",
			VSync:     true,
			Resizable: false,
		},
		Runtime: RuntimeSettings{
			TickRate: 60,
		},
	}
}
