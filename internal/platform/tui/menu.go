package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/registry"
	"github.com/vovakirdan/happymatch/internal/storage"
)

const menuTitle = "H A P P Y   M A T C H"

// menuBlocks is the strip of block glyphs shown under the title.
var menuBlocks = []struct {
	glyph string
	color core.Color
}{
	{"♥", core.ColorBrightRed},
	{"●", core.ColorBrightBlue},
	{"♣", core.ColorBrightGreen},
	{"◆", core.ColorBrightYellow},
	{"★", core.ColorPurple},
	{"✿", core.ColorPink},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 2)
	menuItemStyle = lipgloss.NewStyle().Padding(0, 3)
)

// MenuItem is one game mode in the picker.
type MenuItem struct {
	GameID      string
	Title       string
	Description string

	// Leaderboard summary, zero when nothing was saved.
	Best      int
	Played    int
	BestLevel int
}

// MenuModel is the Bubble Tea model for the game mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered modes with their saved stats.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if s, ok := stats[g.ID]; ok {
			item.Best = s.HighScore
			item.Played = s.GamesCount
			item.BestLevel = s.BestLevel
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keyMapper.MapKeyToMenuAction(msg))

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.apply(MenuActionUp)
		case tea.MouseButtonWheelDown:
			return m.apply(MenuActionDown)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// apply performs a menu action. Leaving the menu quits its program; the
// caller reads the outcome from the final model.
func (m MenuModel) apply(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % core.Max(len(m.items), 1)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % core.Max(len(m.items), 1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var blocks strings.Builder
	for i, b := range menuBlocks {
		if i > 0 {
			blocks.WriteString(" ")
		}
		blocks.WriteString(styleFor(styleKey{color: b.color}).Render(b.glyph))
	}

	rows := []string{
		menuTitleStyle.Render(menuTitle),
		blocks.String(),
		"",
		"Swap neighbours, line up three or more!",
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			rows = append(rows, menuCardStyle.Render(m.card(item)))
			continue
		}
		rows = append(rows, menuItemStyle.Render(item.Title))
	}
	rows = append(rows, "",
		menuDimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"))

	view := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// card renders the highlighted mode with its description and stats.
func (m MenuModel) card(item MenuItem) string {
	lines := []string{"> " + item.Title}
	if item.Description != "" {
		lines = append(lines, menuDimStyle.Render(item.Description))
	}
	if item.Played > 0 {
		lines = append(lines, menuDimStyle.Render(fmt.Sprintf(
			"best %d  |  level %d  |  %d played", item.Best, item.BestLevel, item.Played)))
	} else {
		lines = append(lines, menuDimStyle.Render("no games yet"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text to the middle of width, measuring styled text by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player picked.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker until the player chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
