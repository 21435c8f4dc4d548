// Package config provides YAML-based configuration loading for gridsnake.
package config

import (
	"errors"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
	Start  StartConfig  `yaml:"start"`
	Window WindowConfig `yaml:"window"`
}

// GridConfig defines the playing field size in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig defines how often the snake moves.
type TimingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"`
}

// RulesConfig defines collision and food placement behavior.
type RulesConfig struct {
	Collision   CollisionRule `yaml:"collision"`
	FoodSamples int           `yaml:"food_samples"`
}

// StartConfig defines the layout used at startup and after a restart.
type StartConfig struct {
	Body      []core.Point `yaml:"body"`
	Direction Direction    `yaml:"direction"`
	Food      core.Point   `yaml:"food"`
}

// WindowConfig defines the windowed shell.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CollisionRule selects how a move is checked against walls and body.
type CollisionRule string

const (
	// CollisionStrict ends the game when the head leaves the grid or hits the body.
	CollisionStrict CollisionRule = "strict"

	// CollisionClassic reproduces the legacy check where body collision is
	// only tested together with the top edge, leaving the top edge open.
	CollisionClassic CollisionRule = "classic"
)

// Valid reports whether r names a known rule.
func (r CollisionRule) Valid() bool {
	return r == CollisionStrict || r == CollisionClassic
}

// Direction is a compass direction name as written in config files.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Vector returns the unit step for d. Up is +Y.
func (d Direction) Vector() (core.Point, bool) {
	switch d {
	case DirectionUp:
		return core.Pt(0, 1), true
	case DirectionDown:
		return core.Pt(0, -1), true
	case DirectionLeft:
		return core.Pt(-1, 0), true
	case DirectionRight:
		return core.Pt(1, 0), true
	default:
		return core.Point{}, false
	}
}
