package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets  []core.RuntimeConfig
	frames  []core.InputFrame
	resized [2]int
	state   core.GameState
	events  []core.Event
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newTestModel(g *stubGame) Model {
	logger := log.New(io.Discard)
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}, logger)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelReservesHelpLine(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	m.Init()

	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times, want 1", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 80 || got.ScreenH != 23 || got.Seed != 9 {
		t.Errorf("Reset config = %+v, want 80x23 seed 9", got)
	}
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("Step called %d times, want 2", len(g.frames))
	}
	want := []core.Action{core.ActionLeft, core.ActionPause}
	if got := g.frames[0].Actions; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("first frame = %v, want %v", got, want)
	}
	if !g.frames[1].Empty() {
		t.Errorf("second frame = %v, want empty", g.frames[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if len(g.resets) != 1 {
		t.Errorf("resize reset the game")
	}
	if g.resized != [2]int{100, 39} {
		t.Errorf("Resize(%v), want 100x39", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(&stubGame{})

	short := m.View()
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? did not expand help")
	}
	if !strings.Contains(short, "stub") || !strings.Contains(short, "pause") {
		t.Errorf("view missing game or help:\n%s", short)
	}
}
