// Package config provides YAML (or TOML) based configuration for the
// simulation and its frontends.
package config

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/sim"
)

// Config contains all tunable settings.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Ball      BallConfig      `yaml:"ball" toml:"ball"`
	Window    WindowConfig    `yaml:"window" toml:"window"`
	Runtime   RuntimeSettings `yaml:"runtime" toml:"runtime"`
}

// PlayfieldConfig defines the playfield geometry in window pixels.
type PlayfieldConfig struct {
	Width   float32 `yaml:"width" toml:"width"`
	Height  float32 `yaml:"height" toml:"height"`
	MarginX float32 `yaml:"margin_x" toml:"margin_x"`
	MarginY float32 `yaml:"margin_y" toml:"margin_y"`
}

// Point is a 2D coordinate in configuration files.
type Point struct {
	X float32 `yaml:"x" toml:"x"`
	Y float32 `yaml:"y" toml:"y"`
}

// Vec2 converts the point to a core vector.
func (p Point) Vec2() core.Vec2 {
	return core.V2(p.X, p.Y)
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius           float32 `yaml:"radius" toml:"radius"`
	LaunchSpeed      float32 `yaml:"launch_speed" toml:"launch_speed"`
	Spawn            Point   `yaml:"spawn" toml:"spawn"`
	DefaultDirection Point   `yaml:"default_direction" toml:"default_direction"`
}

// WindowConfig defines desktop window options.
type WindowConfig struct {
	Title     string `yaml:"title" toml:"title"`
	VSync     bool   `yaml:"vsync" toml:"vsync"`
	Resizable bool   `yaml:"resizable" toml:"resizable"`
}

// RuntimeSettings defines the host loop options.
type RuntimeSettings struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"`
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	pf := c.Playfield
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"playfield.width", pf.Width},
		{"playfield.height", pf.Height},
		{"playfield.margin_x", pf.MarginX},
		{"playfield.margin_y", pf.MarginY},
		{"ball.radius", c.Ball.Radius},
		{"ball.launch_speed", c.Ball.LaunchSpeed},
		{"ball.spawn.x", c.Ball.Spawn.X},
		{"ball.spawn.y", c.Ball.Spawn.Y},
		{"ball.default_direction.x", c.Ball.DefaultDirection.X},
		{"ball.default_direction.y", c.Ball.DefaultDirection.Y},
	} {
		if v := float64(f.value); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config: %s must be finite, got %v", f.name, f.value)
		}
	}
	if pf.Width <= 0 || pf.Height <= 0 {
		return fmt.Errorf("config: playfield size must be positive, got %vx%v", pf.Width, pf.Height)
	}
	if pf.MarginX < 0 || pf.MarginY < 0 {
		return fmt.Errorf("config: margins must not be negative, got %v/%v", pf.MarginX, pf.MarginY)
	}
	if pf.MarginX >= pf.Width/2 || pf.MarginY >= pf.Height/2 {
		return fmt.Errorf("config: margins %v/%v leave no room inside %vx%v", pf.MarginX, pf.MarginY, pf.Width, pf.Height)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Ball.LaunchSpeed <= 0 {
		return fmt.Errorf("config: launch speed must be positive, got %v", c.Ball.LaunchSpeed)
	}
	if c.Ball.DefaultDirection.Vec2().IsZero() {
		return fmt.Errorf("config: default direction must not be zero")
	}

	field := c.playfield()
	if field.Exceeded(c.Ball.Spawn.Vec2()) {
		return fmt.Errorf("config: spawn point (%v, %v) is outside the playfield", c.Ball.Spawn.X, c.Ball.Spawn.Y)
	}
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.Runtime.TickRate)
	}
	return nil
}

// playfield converts the geometry section to the simulation type.
func (c Config) playfield() sim.Playfield {
	return sim.Playfield{
		Width:   c.Playfield.Width,
		Height:  c.Playfield.Height,
		MarginX: c.Playfield.MarginX,
		MarginY: c.Playfield.MarginY,
	}
}

// Params builds simulation parameters with the given color seed.
func (c Config) Params(seed int64) sim.Params {
	return sim.Params{
		Playfield:        c.playfield(),
		Radius:           c.Ball.Radius,
		LaunchSpeed:      c.Ball.LaunchSpeed,
		SpawnOrigin:      c.Ball.Spawn.Vec2(),
		DefaultDirection: c.Ball.DefaultDirection.Vec2(),
		Seed:             seed,
	}
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
