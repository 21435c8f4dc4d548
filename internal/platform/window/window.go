// Package window runs a game in a desktop window with Ebiten.
// The map is a checkerboard image built once; every snake segment and the
// food are one white unit-square image scaled and tinted per draw.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// keyBindings maps window keys to game actions, checked in this order.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

// Window implements ebiten.Game around a snake game.
type Window struct {
	game   *snake.Game
	cfg    config.WindowConfig
	layout gridLayout
	logger *log.Logger

	unit    *ebiten.Image
	checker *ebiten.Image
	input   core.InputFrame
}

// New builds the window shell and resets the game with seed.
func New(game *snake.Game, cfg config.SnakeConfig, seed int64, logger *log.Logger) *Window {
	w := &Window{
		game:   game,
		cfg:    cfg.Window,
		logger: logger,
		layout: gridLayout{
			cols:   cfg.Grid.Cols,
			rows:   cfg.Grid.Rows,
			width:  cfg.Window.Width,
			height: cfg.Window.Height,
		},
		input: core.NewInputFrame(),
	}

	// The window always fits the board, so report the board's own minimum.
	sw, sh := game.MinScreen()
	game.Reset(core.RuntimeConfig{ScreenW: sw, ScreenH: sh, TickRate: ebiten.DefaultTPS, Seed: seed})

	w.unit = ebiten.NewImage(1, 1)
	w.unit.Fill(color.White)
	w.checker = ebiten.NewImage(w.layout.width, w.layout.height)
	for y := range w.layout.rows {
		for x := range w.layout.cols {
			p := core.Pt(x, y)
			w.drawCell(w.checker, p, shade(p))
		}
	}

	return w
}

// Update reads keys pressed this frame and steps the game once.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.logger.Info("quit", "game", w.game.ID(), "length", w.game.State().Length)
		return ebiten.Termination
	}

	w.input.Clear()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			w.input.Set(b.action)
		}
	}

	result := w.game.Step(w.input)
	for _, e := range result.Events {
		switch e {
		case core.EventCollided:
			w.logger.Info("Game Over!", "length", result.State.Length, "head", w.game.Board().Head())
		case core.EventRestarted:
			w.logger.Info("restart", "game", w.game.ID())
		case core.EventPaused, core.EventResumed:
			w.logger.Debug(string(e))
		}
	}
	return nil
}

// Draw paints the map, food, snake and any status text.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.checker, nil)

	board := w.game.Board()
	if food, ok := board.Food(); ok {
		w.drawCell(screen, food, foodColor)
	}
	board.Segments(func(i int, p core.Point) {
		c := color.Color(snakeColor)
		if i == 0 {
			c = headColor
		}
		w.drawCell(screen, p, c)
	})

	ebitenutil.DebugPrint(screen, fmt.Sprintf("length %d", board.Len()))
	switch board.Phase() {
	case snake.PhaseGameOver:
		w.printCentered(screen, "Game Over! Press R to restart")
	case snake.PhasePaused:
		w.printCentered(screen, "Paused. Press P to continue")
	}
}

// Layout keeps the logical screen at the configured window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// drawCell tints the unit square and stretches it over cell p.
func (w *Window) drawCell(dst *ebiten.Image, p core.Point, c color.Color) {
	cw, ch := w.layout.cellSize()
	x, y := w.layout.origin(p)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cw, ch)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(w.unit, op)
}

// printCentered prints a line with the debug font in the middle of the screen.
func (w *Window) printCentered(screen *ebiten.Image, msg string) {
	const glyphW, glyphH = 6, 16
	x := (w.cfg.Width - len(msg)*glyphW) / 2
	y := (w.cfg.Height - glyphH) / 2
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

// Run opens the window and blocks until it is closed.
func Run(game *snake.Game, cfg config.SnakeConfig, seed int64, logger *log.Logger) error {
	w := New(game, cfg, seed, logger)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	logger.Info("window opened", "game", game.ID(), "seed", seed,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
