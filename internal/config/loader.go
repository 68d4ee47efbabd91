package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.atomas/config.yaml -> ./configs/atomas.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A customPath that cannot be read or parsed is an error; the
// implicit locations are skipped silently.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return Config{}, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "atomas.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(path, data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := Parse("atomas.yaml", defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data over the defaults. The format is chosen from the file
// extension of name: ".toml" is TOML, anything else YAML.
func Parse(name string, data []byte) (Config, error) {
	cfg := DefaultConfig()

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".atomas", filename)
}
