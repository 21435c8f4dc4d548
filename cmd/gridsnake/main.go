// gridsnake is a real-time Snake game for the terminal and the desktop.
//
// Usage:
//
//	gridsnake play [variant]     - Play in the terminal
//	gridsnake window [variant]   - Play in a desktop window
//	gridsnake list               - List available variants
//	gridsnake config             - Print the effective config as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: search order, then embedded)
//	--seed <value>      - RNG seed for reproducible food placement
//	--fps <rate>        - Terminal frame rate (default: 60)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Real-time Snake on a fixed grid",
	Long: `gridsnake is a minimal real-time Snake game. The snake moves one cell
per move interval; eat food to grow, avoid the walls and your own body.

Examples:
  gridsnake play
  gridsnake play snake_classic --seed 42
  gridsnake window
  gridsnake config > my-snake.yaml
  gridsnake play --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal frame rate")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
		Level:           lvl,
	}), nil
}

// openLogOutput returns the --log-file if set, otherwise fallback.
// The returned close func is always safe to call.
func openLogOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return f, f.Close, nil
}

// loadConfig reads the config selected by --config.
func loadConfig() (config.SnakeConfig, error) {
	return config.LoadSnake(flagConfig)
}

// resolveSeed turns the --seed flag into a concrete seed.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// variantArg returns the variant named in args, or the default.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "snake"
}
