// Package snake implements the real-time Snake game: a board model that
// owns the snake, food and flags, a wall-clock move timer, and a Game
// adapter that drives both from shell input.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

const (
	hudHeight = 1 // HUD line above the map frame
	cellWidth = 2 // Terminal columns per grid cell
)

// Variant identifiers.
const (
	VariantStrict  = "snake"
	VariantClassic = "snake_classic"
)

func init() {
	registry.Register(VariantStrict, func(cfg config.SnakeConfig) registry.Game {
		return New(cfg)
	})
	registry.Register(VariantClassic, func(cfg config.SnakeConfig) registry.Game {
		return NewClassic(cfg)
	})
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used by the move timer.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// Game implements registry.Game for Snake.
type Game struct {
	id    string
	title string
	cfg   config.SnakeConfig
	rule  CollisionRule
	clock Clock

	board *Board
	timer *MoveTimer
	tick  uint64
	moves uint64

	screenW int
	screenH int
}

// New creates the default variant, using the collision rule from cfg.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	rule := CollisionStrict
	if cfg.Rules.Collision == config.CollisionClassic {
		rule = CollisionClassic
	}
	return newGame(VariantStrict, "Snake", rule, cfg, opts)
}

// NewClassic creates the variant whose top edge is open, regardless of cfg.
func NewClassic(cfg config.SnakeConfig, opts ...Option) *Game {
	return newGame(VariantClassic, "Snake (Classic)", CollisionClassic, cfg, opts)
}

func newGame(id, title string, rule CollisionRule, cfg config.SnakeConfig, opts []Option) *Game {
	g := &Game{
		id:    id,
		title: title,
		cfg:   cfg,
		rule:  rule,
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset builds a fresh board at the startup layout and restarts the move timer.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.board = NewBoard(g.boardConfig(), rand.New(rand.NewSource(cfg.Seed)))
	g.timer = NewMoveTimer(g.cfg.Timing.MoveInterval, g.clock.Now())
}

// boardConfig converts the YAML config into board terms.
func (g *Game) boardConfig() BoardConfig {
	dir, ok := g.cfg.Start.Direction.Vector()
	if !ok {
		dir = DirUp
	}
	return BoardConfig{
		Cols:        g.cfg.Grid.Cols,
		Rows:        g.cfg.Grid.Rows,
		Rule:        g.rule,
		FoodSamples: g.cfg.Rules.FoodSamples,
		Start: Layout{
			Body:      append([]core.Point(nil), g.cfg.Start.Body...),
			Direction: dir,
			Food:      g.cfg.Start.Food,
		},
	}
}

// Resize records a new terminal size without resetting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// MinScreen returns the smallest screen, in terminal cells, that fits the board.
func (g *Game) MinScreen() (w, h int) {
	return g.cfg.Grid.Cols*cellWidth + 2, g.cfg.Grid.Rows + 2 + hudHeight
}

func (g *Game) tooSmall() bool {
	w, h := g.MinScreen()
	return g.screenW < w || g.screenH < h
}

// Step applies the frame's actions in order, then advances the snake once
// if the game is running and the move interval has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	for _, a := range in.Actions {
		switch a {
		case core.ActionUp:
			g.board.SetDirection(DirUp)
		case core.ActionDown:
			g.board.SetDirection(DirDown)
		case core.ActionLeft:
			g.board.SetDirection(DirLeft)
		case core.ActionRight:
			g.board.SetDirection(DirRight)
		case core.ActionPause:
			g.board.TogglePause()
			if g.board.Paused() {
				events = append(events, core.EventPaused)
			} else {
				events = append(events, core.EventResumed)
			}
		case core.ActionRestart:
			g.board.Restart()
			events = append(events, core.EventRestarted)
		}
	}

	// A too-small terminal freezes the snake the way pause does.
	if g.board.Phase() != PhaseRunning || g.tooSmall() {
		return core.StepResult{State: g.State(), Events: events}
	}

	now := g.clock.Now()
	if !g.timer.Due(now) {
		return core.StepResult{State: g.State(), Events: events}
	}
	g.timer.Mark(now)
	g.moves++

	switch g.board.Advance() {
	case OutcomeMoved:
		events = append(events, core.EventMoved)
	case OutcomeAte:
		events = append(events, core.EventMoved, core.EventAte)
	case OutcomeCollided:
		events = append(events, core.EventCollided)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Length:   g.board.Len(),
		GameOver: g.board.GameOver(),
		Paused:   g.board.Paused(),
	}
}

// Board exposes the board for shells that draw it themselves.
func (g *Game) Board() *Board { return g.board }

// Render draws the HUD, the map and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall() {
		w, h := g.MinScreen()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderMap(dst)

	switch g.board.Phase() {
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over!", "Press R to restart")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Length: %d  [%s]", g.title, g.board.Len(), g.board.Phase())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

// renderMap draws the bordered checkerboard with the snake and food on top.
// Row 0 of the grid is the bottom line of the map.
func (g *Game) renderMap(dst *core.Screen) {
	cols, rows := g.board.Cols(), g.board.Rows()
	frame := core.NewRect((dst.Width()-(cols*cellWidth+2))/2, hudHeight, cols*cellWidth+2, rows+2)
	dst.DrawBox(frame)

	grid := core.NewRect(0, 0, cols, rows)
	put := func(p core.Point, r rune, c core.Color) {
		if !grid.ContainsPoint(p) {
			return
		}
		sx := frame.X + 1 + p.X*cellWidth
		sy := frame.Y + rows - p.Y
		for i := range cellWidth {
			dst.SetColor(sx+i, sy, r, c)
		}
	}

	for y := range rows {
		for x := range cols {
			if (x+y)%2 == 0 {
				put(core.Pt(x, y), '░', core.ColorDarkGray)
			}
		}
	}

	if food, ok := g.board.Food(); ok {
		put(food, '█', core.ColorRed)
	}

	// Tail first so the head wins if segments overlap.
	body := g.board.Body()
	for i := len(body) - 1; i >= 0; i-- {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		put(body[i], '█', c)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
