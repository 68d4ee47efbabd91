// atomas launches colored balls from the center of a fixed playfield toward
// the pointer. Balls that reach the edge are removed and a fresh one waits
// at the center.
//
// Usage:
//
//	atomas play              - Run in the terminal (mouse click or space to launch)
//	atomas window            - Run in a desktop window
//	atomas config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: runtime.tick_rate from config)
//	--seed <value>        - Set RNG seed for reproducible colors
//	--config <path>       - Load a YAML or TOML config file
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomas/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "atomas",
	Short: "Atomas - launch balls from the center of the playfield",
	Long: `Atomas is a small ball launcher. A ball waits at the center of the
playfield; releasing the mouse button sends it toward the pointer at a
constant speed. When it reaches the edge it disappears and a new ball
takes its place.

Available commands:
  play     - Run in the terminal
  window   - Run in a desktop window
  config   - Print the effective configuration

Examples:
  atomas play
  atomas play --seed 42
  atomas window --config ./atomas.toml
  atomas config > ~/.atomas/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = runtime.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the --fps override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	return cfg, nil
}
