package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/registry"
	"github.com/vovakirdan/happymatch/internal/storage"
)

func init() {
	registry.Register("menu_a", func() registry.Game { return &fakeGame{} })
	registry.Register("menu_b", func() registry.Game { return &fakeGame{} })
}

func menuIndex(t *testing.T, m MenuModel, id string) int {
	t.Helper()
	for i, item := range m.items {
		if item.GameID == id {
			return i
		}
	}
	t.Fatalf("menu has no item %q", id)
	return -1
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return nm, cmd
}

func TestMenuListsStats(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.GameResult{
		{GameID: "menu_a", Score: 300, Level: 1},
		{GameID: "menu_a", Score: 900, Level: 2},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	a := m.items[menuIndex(t, m, "menu_a")]
	if a.Best != 900 || a.Played != 2 || a.BestLevel != 2 {
		t.Errorf("menu_a = %+v, want best 900, 2 played, level 2", a)
	}
	if b := m.items[menuIndex(t, m, "menu_b")]; b.Played != 0 || b.Best != 0 {
		t.Errorf("menu_b = %+v, want no stats", b)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	n := len(m.items)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != n-1 {
		t.Errorf("cursor after Up = %d, want %d", m.cursor, n-1)
	}
	m, _ = menuUpdate(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.cursor != 0 {
		t.Errorf("cursor after wheel down = %d, want 0", m.cursor)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.cursor = menuIndex(t, m, "menu_b")

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != "menu_b" {
		t.Errorf("Selected() = %+v, want menu_b", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	sb, _ := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !sb.WantsScoreboard() || sb.IsQuitting() {
		t.Error("Tab should open the scoreboard")
	}

	q, _ := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !q.IsQuitting() {
		t.Error("q should quit")
	}
	if q.View() != "" {
		t.Error("a quitting menu should render nothing")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 30 {
		t.Errorf("Config() = %+v, want 100x30", m.Config())
	}

	view := m.View()
	for _, want := range []string{menuTitle, "no games yet", "Tab: Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
