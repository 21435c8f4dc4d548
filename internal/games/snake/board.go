package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Direction is a unit step on the grid. Up is +Y.
type Direction = core.Point

// The four legal directions.
var (
	DirUp    = Direction{X: 0, Y: 1}
	DirDown  = Direction{X: 0, Y: -1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// isUnit reports whether d is one of the four legal directions.
func isUnit(d Direction) bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}

// DirectionName returns "up", "down", "left", "right" or "none".
func DirectionName(d Direction) string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// CollisionRule selects how Advance decides that a move ends the game.
type CollisionRule int

const (
	// CollisionStrict: out of bounds OR self-collision.
	CollisionStrict CollisionRule = iota

	// CollisionClassic: x < 0 || x >= cols || y < 0 || (y >= rows && self-collision).
	// Reproduces the legacy operator-precedence behavior, so the top edge is open.
	CollisionClassic
)

// Phase is the externally visible game state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome reports what a single Advance did.
type Outcome int

const (
	// OutcomeMoved: the snake moved one cell, length unchanged.
	OutcomeMoved Outcome = iota
	// OutcomeAte: the head landed on food, the snake grew by one.
	OutcomeAte
	// OutcomeCollided: the move hit a wall or the body; the game is over.
	OutcomeCollided
	// OutcomeHalted: the game was already over; nothing changed.
	OutcomeHalted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Layout is a body, heading and food position the board can be reset to.
type Layout struct {
	Body      []core.Point // Head at index 0
	Direction Direction
	Food      core.Point
}

// BoardConfig describes the grid and rules of a Board.
type BoardConfig struct {
	Cols, Rows int
	Rule       CollisionRule

	// FoodSamples bounds random probing in RelocateFood before it scans
	// for free cells. Zero means Cols*Rows.
	FoodSamples int

	// Start is used by NewBoard (with random food) and by Restart (with Start.Food).
	Start Layout
}

// Board is the complete state of one Snake game: body, direction, food and flags.
// It is owned by a single caller and is not safe for concurrent use.
type Board struct {
	cfg  BoardConfig
	grid core.Rect
	rng  *rand.Rand

	body      []core.Point // Head at index 0
	direction Direction
	food      core.Point
	hasFood   bool
	gameOver  bool
	paused    bool
}

// NewBoard creates a board at its startup state: the start body and heading,
// food at a random free cell, running (not paused).
func NewBoard(cfg BoardConfig, rng *rand.Rand) *Board {
	b := &Board{
		cfg:  cfg,
		grid: core.NewRect(0, 0, cfg.Cols, cfg.Rows),
		rng:  rng,
	}
	b.load(cfg.Start)
	b.RelocateFood()
	return b
}

// load places the body and heading from l, clearing both flags.
func (b *Board) load(l Layout) {
	b.body = append(b.body[:0], l.Body...)
	b.direction = l.Direction
	b.food = l.Food
	b.hasFood = true
	b.gameOver = false
	b.paused = false
}

// Advance moves the snake one cell in its current direction.
func (b *Board) Advance() Outcome {
	if b.gameOver || len(b.body) == 0 {
		return OutcomeHalted
	}

	newHead := b.body[0].Add(b.direction)

	if b.collides(newHead) {
		b.gameOver = true
		return OutcomeCollided
	}

	// Prepend the new head; the old tail is still in place at this point.
	b.body = append(b.body, core.Point{})
	copy(b.body[1:], b.body)
	b.body[0] = newHead

	if b.hasFood && newHead == b.food {
		// Keep the tail: the snake grows by one. Food is placed against
		// the grown body, so it cannot land on the new head.
		b.RelocateFood()
		return OutcomeAte
	}

	b.body = b.body[:len(b.body)-1]
	return OutcomeMoved
}

// collides applies the configured collision rule to a prospective head.
func (b *Board) collides(p core.Point) bool {
	switch b.cfg.Rule {
	case CollisionClassic:
		return p.X < 0 || p.X >= b.cfg.Cols || p.Y < 0 ||
			(p.Y >= b.cfg.Rows && b.Occupied(p))
	default:
		return !b.grid.ContainsPoint(p) || b.Occupied(p)
	}
}

// SetDirection changes the heading unless d reverses it.
// Reversals and non-unit vectors are ignored and report false.
func (b *Board) SetDirection(d Direction) bool {
	if !isUnit(d) || d == b.direction.Neg() {
		return false
	}
	b.direction = d
	return true
}

// RelocateFood moves food to a random cell not covered by the body.
// It probes random cells a bounded number of times, then picks uniformly
// among the free cells. Returns false and clears food if the grid is full.
func (b *Board) RelocateFood() bool {
	cells := b.grid.Area()
	if cells == 0 {
		b.hasFood = false
		return false
	}

	samples := b.cfg.FoodSamples
	if samples <= 0 {
		samples = cells
	}

	for range samples {
		p := core.Pt(b.rng.Intn(b.cfg.Cols), b.rng.Intn(b.cfg.Rows))
		if !b.Occupied(p) {
			b.food = p
			b.hasFood = true
			return true
		}
	}

	free := b.FreeCells()
	if len(free) == 0 {
		b.hasFood = false
		return false
	}
	b.food = free[b.rng.Intn(len(free))]
	b.hasFood = true
	return true
}

// FreeCells lists grid cells not covered by the body, row by row from (0, 0).
func (b *Board) FreeCells() []core.Point {
	occupied := make(map[core.Point]bool, len(b.body))
	for _, seg := range b.body {
		occupied[seg] = true
	}

	free := make([]core.Point, 0, max(b.grid.Area()-len(b.body), 0))
	for y := 0; y < b.cfg.Rows; y++ {
		for x := 0; x < b.cfg.Cols; x++ {
			p := core.Pt(x, y)
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// Restart resets body, heading and food to the start layout, clears game over
// and pauses, so the player has to resume explicitly.
func (b *Board) Restart() {
	b.load(b.cfg.Start)
	b.paused = true
}

// TogglePause flips the paused flag.
func (b *Board) TogglePause() {
	b.paused = !b.paused
}

// Phase returns GameOver, Paused or Running, in that order of precedence.
func (b *Board) Phase() Phase {
	switch {
	case b.gameOver:
		return PhaseGameOver
	case b.paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Occupied reports whether any body segment is at p.
func (b *Board) Occupied(p core.Point) bool {
	for _, seg := range b.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the body, head first.
func (b *Board) Body() []core.Point {
	return append([]core.Point(nil), b.body...)
}

// Segments calls fn for each segment, head first, without copying.
func (b *Board) Segments(fn func(i int, p core.Point)) {
	for i, p := range b.body {
		fn(i, p)
	}
}

// Head returns the first body segment.
func (b *Board) Head() core.Point {
	if len(b.body) == 0 {
		return core.Point{}
	}
	return b.body[0]
}

// Len returns the body length.
func (b *Board) Len() int { return len(b.body) }

// Direction returns the current heading.
func (b *Board) Direction() Direction { return b.direction }

// Food returns the food position; ok is false when the grid has no free cell.
func (b *Board) Food() (p core.Point, ok bool) { return b.food, b.hasFood }

// GameOver reports whether the game has ended.
func (b *Board) GameOver() bool { return b.gameOver }

// Paused reports whether movement is suspended.
func (b *Board) Paused() bool { return b.paused }

// Cols returns the grid width.
func (b *Board) Cols() int { return b.cfg.Cols }

// Rows returns the grid height.
func (b *Board) Rows() int { return b.cfg.Rows }

// Rule returns the collision rule in effect.
func (b *Board) Rule() CollisionRule { return b.cfg.Rule }
