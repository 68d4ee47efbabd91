package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/atomas/internal/core"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	cfg, err := Parse("atomas.yaml", defaultYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialYAML(t *testing.T) {
	data := []byte(`
ball:
  launch_speed: 600
playfield:
  width: 640
`)
	cfg, err := Parse("custom.yaml", data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Ball.LaunchSpeed != 600 {
		t.Errorf("LaunchSpeed = %v, expected 600", cfg.Ball.LaunchSpeed)
	}
	if cfg.Playfield.Width != 640 {
		t.Errorf("Width = %v, expected 640", cfg.Playfield.Width)
	}
	// Untouched keys keep their defaults
	if cfg.Playfield.Height != 800 || cfg.Ball.Radius != 50 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[playfield]
width = 300.0
height = 600.0

[ball]
radius = 20.0

[ball.default_direction]
x = 1.0
y = 0.0

[window]
title = "Test"
`)
	cfg, err := Parse("custom.toml", data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Playfield.Width != 300 || cfg.Playfield.Height != 600 {
		t.Errorf("Playfield = %+v, expected 300x600", cfg.Playfield)
	}
	if cfg.Ball.Radius != 20 {
		t.Errorf("Radius = %v, expected 20", cfg.Ball.Radius)
	}
	if cfg.Ball.DefaultDirection != (Point{X: 1, Y: 0}) {
		t.Errorf("DefaultDirection = %+v, expected (1, 0)", cfg.Ball.DefaultDirection)
	}
	if cfg.Window.Title != "Test" {
		t.Errorf("Title = %q, expected Test", cfg.Window.Title)
	}
	if cfg.Ball.LaunchSpeed != 1000 {
		t.Errorf("LaunchSpeed = %v, expected default 1000", cfg.Ball.LaunchSpeed)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("bad.yaml", []byte("ball: [1, 2")); err == nil {
		t.Error("Parse() of broken YAML should fail")
	}
	if _, err := Parse("bad.toml", []byte("[ball\nradius = ")); err == nil {
		t.Error("Parse() of broken TOML should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atomas.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  radius: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ball.Radius != 25 {
		t.Errorf("Radius = %v, expected 25", cfg.Ball.Radius)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
	if !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atomas.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  launch_speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a negative launch speed")
	}
}

func TestLoadRejectsNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atomas.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  launch_speed: .nan\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "ball.launch_speed must be finite") {
		t.Errorf("Load() error = %v, expected a non-finite launch speed error", err)
	}
}

func TestValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Playfield.Width = 0 }, true},
		{"negative margin", func(c *Config) { c.Playfield.MarginY = -1 }, true},
		{"margin eats field", func(c *Config) { c.Playfield.MarginX = 250 }, true},
		{"zero radius", func(c *Config) { c.Ball.Radius = 0 }, true},
		{"zero speed", func(c *Config) { c.Ball.LaunchSpeed = 0 }, true},
		{"zero default direction", func(c *Config) { c.Ball.DefaultDirection = Point{} }, true},
		{"spawn outside", func(c *Config) { c.Ball.Spawn = Point{X: 0, Y: 395} }, true},
		{"spawn off center", func(c *Config) { c.Ball.Spawn = Point{X: 0, Y: -300} }, false},
		{"zero tick rate", func(c *Config) { c.Runtime.TickRate = 0 }, true},
		{"nan launch speed", func(c *Config) { c.Ball.LaunchSpeed = nan }, true},
		{"infinite launch speed", func(c *Config) { c.Ball.LaunchSpeed = inf }, true},
		{"nan margin", func(c *Config) { c.Playfield.MarginY = nan }, true},
		{"infinite width", func(c *Config) { c.Playfield.Width = inf }, true},
		{"nan radius", func(c *Config) { c.Ball.Radius = nan }, true},
		{"nan spawn", func(c *Config) { c.Ball.Spawn.X = nan }, true},
		{"infinite default direction", func(c *Config) { c.Ball.DefaultDirection.Y = -inf }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ball.Spawn = Point{X: 10, Y: -20}

	p := cfg.Params(42)
	if p.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", p.Seed)
	}
	if p.SpawnOrigin != core.V2(10, -20) {
		t.Errorf("SpawnOrigin = %v, expected (10, -20)", p.SpawnOrigin)
	}
	if p.Playfield.LimitY() != 390 || p.Playfield.LimitX() != 245 {
		t.Errorf("Playfield limits = %v/%v, expected 245/390", p.Playfield.LimitX(), p.Playfield.LimitY())
	}
	if p.LaunchSpeed != 1000 || p.Radius != 50 || p.DefaultDirection != core.V2(0, 1) {
		t.Errorf("Params() = %+v", p)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Title = "Round Trip"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "launch_speed: 1000") {
		t.Errorf("Marshal() output missing launch_speed:\n%s", data)
	}

	back, err := Parse("out.yaml", data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
