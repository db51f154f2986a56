package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/happymatch/internal/core"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets  int
	resizes int
	steps   int
	last    core.InputFrame
	state   core.GameState
}

func (f *fakeGame) ID() string { return "fake" }

func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) { f.resets++ }

func (f *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake game") }

func (f *fakeGame) State() core.GameState { return f.state }

func (f *fakeGame) Resize(w, h int) { f.resizes++ }

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.steps++
	f.last = in.Clone()
	return core.StepResult{State: f.state}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestModelFeedsInputOnTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, tick())

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !g.last.Has(core.ActionRight) {
		t.Error("Right should reach the game")
	}
	if !g.last.Clicked || g.last.Click != (core.Point{X: 3, Y: 4}) {
		t.Errorf("click = %v, want (3,4)", g.last.Click)
	}

	// Input is cleared between ticks
	update(t, m, tick())
	if !g.last.Empty() {
		t.Errorf("second tick input = %v, want empty", g.last.Actions)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resizes != 1 || g.resets != 0 {
		t.Errorf("resizes = %d, resets = %d, want 1, 0", g.resizes, g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, nil, "tester")

	// Esc while playing belongs to the game
	m, _ = update(t, m, tick())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Esc during play should not leave the game")
	}

	g.state.Paused = true
	m, _ = update(t, m, tick())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("Esc while paused should go back to the menu")
	}

	steps := g.steps
	_, cmd := update(t, m, tick())
	if cmd != nil || g.steps != steps {
		t.Error("game should stop ticking after leaving")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 3, TickRate: 60})

	view := m.View()
	if !strings.Contains(view, "fake game") {
		t.Errorf("View() = %q, want the game text", view)
	}
}
