package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file cannot be decoded.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols: 20,
			Rows: 20,
		},
		Timing: TimingConfig{
			MoveInterval: 400 * time.Millisecond,
		},
		Rules: RulesConfig{
			Collision:   CollisionStrict,
			FoodSamples: 0,
		},
		Start: StartConfig{
			Body: []core.Point{
				{X: 10, Y: 10}, // Head
				{X: 10, Y: 9},
				{X: 10, Y: 8},
			},
			Direction: DirectionUp,
			Food:      core.Point{X: 2, Y: 2},
		},
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			Title:  "Snake OpenGL",
		},
	}
}
