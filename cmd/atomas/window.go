package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomas/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run in a desktop window",
	Long: `Open a desktop window the size of the playfield and run the ball
launcher in it.

Controls:
  Left click - Launch toward the cursor
  Space      - Launch toward the cursor
  P/Esc      - Pause
  R          - Restart
  Q          - Quit

Examples:
  atomas window
  atomas window --config ./atomas.toml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	opts := window.Options{
		Title:     cfg.Window.Title,
		VSync:     cfg.Window.VSync,
		Resizable: cfg.Window.Resizable,
		TickRate:  cfg.Runtime.TickRate,
	}
	return window.Run(cfg.Params(flagSeed), opts, logger)
}
