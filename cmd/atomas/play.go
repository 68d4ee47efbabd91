package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run in the terminal",
	Long: `Run the ball launcher in the terminal. The playfield is scaled to fit
the window.

Controls:
  Click      - Launch toward the clicked cell
  Space      - Launch toward the last pointer position
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Save a screenshot to ~/.atomas/screenshots
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is given, so they do not draw over
the playfield.

Examples:
  atomas play
  atomas play --seed 42 --log-file atomas.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Runtime.TickRate
	rc.Seed = flagSeed

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Info("starting terminal frontend", "width", rc.ScreenW, "height", rc.ScreenH, "fps", rc.TickRate)
	return tui.Run(cfg.Params(flagSeed), rc, logger)
}
