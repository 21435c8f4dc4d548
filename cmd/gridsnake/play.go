package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Change direction
  P            - Pause / resume
  R            - Restart (starts paused)
  ?            - Show all keys
  Ctrl+S       - Save a text screenshot
  Esc/Q        - Quit

Logs are discarded unless --log-file is set, since the game owns the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := variantArg(args)
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 'gridsnake list')", id)
	}

	out, closeLog, err := openLogOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(id, cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}, logger)
}
