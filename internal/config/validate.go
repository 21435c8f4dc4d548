package config

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ValidationError describes the first invalid field found in a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrInvalidConfig).
func (e ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks that cfg describes a playable game.
// Checks run in order and the first failure is returned:
//   - grid is at least 2x2
//   - move interval is positive
//   - collision rule is known, food samples not negative
//   - start body is non-empty, inside the grid, without repeats
//   - start direction is known and does not point into the second segment
//   - start food is inside the grid and off the body
func (c SnakeConfig) Validate() error {
	if c.Grid.Cols < 2 || c.Grid.Rows < 2 {
		return ValidationError{
			Field:   "grid",
			Message: fmt.Sprintf("must be at least 2x2, got %dx%d", c.Grid.Cols, c.Grid.Rows),
		}
	}

	if c.Timing.MoveInterval <= 0 {
		return ValidationError{
			Field:   "timing.move_interval",
			Message: fmt.Sprintf("must be positive, got %s", c.Timing.MoveInterval),
		}
	}

	if !c.Rules.Collision.Valid() {
		return ValidationError{
			Field:   "rules.collision",
			Message: fmt.Sprintf("unknown rule %q (want %q or %q)", c.Rules.Collision, CollisionStrict, CollisionClassic),
		}
	}
	if c.Rules.FoodSamples < 0 {
		return ValidationError{
			Field:   "rules.food_samples",
			Message: fmt.Sprintf("must not be negative, got %d", c.Rules.FoodSamples),
		}
	}

	if err := c.validateStart(); err != nil {
		return err
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return ValidationError{
			Field:   "window",
			Message: fmt.Sprintf("size must be positive, got %dx%d", c.Window.Width, c.Window.Height),
		}
	}

	return nil
}

func (c SnakeConfig) validateStart() error {
	grid := core.NewRect(0, 0, c.Grid.Cols, c.Grid.Rows)

	if len(c.Start.Body) == 0 {
		return ValidationError{Field: "start.body", Message: "must have at least one segment"}
	}

	seen := make(map[core.Point]bool, len(c.Start.Body))
	for i, p := range c.Start.Body {
		if !grid.ContainsPoint(p) {
			return ValidationError{
				Field:   fmt.Sprintf("start.body[%d]", i),
				Message: fmt.Sprintf("(%d, %d) is outside the %dx%d grid", p.X, p.Y, c.Grid.Cols, c.Grid.Rows),
			}
		}
		if seen[p] {
			return ValidationError{
				Field:   fmt.Sprintf("start.body[%d]", i),
				Message: fmt.Sprintf("(%d, %d) repeats an earlier segment", p.X, p.Y),
			}
		}
		seen[p] = true
	}

	dir, ok := c.Start.Direction.Vector()
	if !ok {
		return ValidationError{
			Field:   "start.direction",
			Message: fmt.Sprintf("unknown direction %q", c.Start.Direction),
		}
	}
	if len(c.Start.Body) > 1 && c.Start.Body[0].Add(dir) == c.Start.Body[1] {
		return ValidationError{
			Field:   "start.direction",
			Message: fmt.Sprintf("%q points into the snake's own neck", c.Start.Direction),
		}
	}

	if !grid.ContainsPoint(c.Start.Food) {
		return ValidationError{
			Field:   "start.food",
			Message: fmt.Sprintf("(%d, %d) is outside the grid", c.Start.Food.X, c.Start.Food.Y),
		}
	}
	if seen[c.Start.Food] {
		return ValidationError{
			Field:   "start.food",
			Message: fmt.Sprintf("(%d, %d) is on the snake", c.Start.Food.X, c.Start.Food.Y),
		}
	}

	return nil
}
