package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/window"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a window (800x800, "Snake OpenGL" by default) and play there.

Controls:
  Arrows  - Change direction
  P       - Pause / resume
  R       - Restart (starts paused)
  Esc     - Quit

Logs go to stderr unless --log-file is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	id := variantArg(args)

	out, closeLog, err := openLogOutput(os.Stderr)
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
	sg, ok := game.(*snake.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", id)
	}

	return window.Run(sg, cfg, resolveSeed(), logger)
}
