package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/registry"
	"github.com/vovakirdan/happymatch/internal/storage"
)

const (
	maxScores         = 100 // Results loaded per mode
	statsPanelWidth   = 24
	minWidthForPanel  = 84
	scoreboardChrome  = 10 // Rows taken by title, tabs, borders and help
	minScoreboardRows = 3
)

// scoreOrder is the column the results are ranked by.
type scoreOrder int

const (
	byScore scoreOrder = iota
	byLevel
	byCascade
	byMatch
)

var scoreOrderNames = [...]string{"score", "level", "cascade", "match"}

func (o scoreOrder) String() string { return scoreOrderNames[o] }

// less ranks a before b. Ties keep the score order.
func (o scoreOrder) less(a, b storage.ScoreEntry) bool {
	switch o {
	case byLevel:
		return a.Level > b.Level
	case byCascade:
		return a.LongestCascade > b.LongestCascade
	case byMatch:
		return a.LargestMatch > b.LargestMatch
	}
	return a.Score > b.Score
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Sort     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Sort, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Sort, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/w", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/s", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "d"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "a"), key.WithHelp("S-tab", "prev mode")),
		Sort:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	sbBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel shows the saved results of each game mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	order     scoreOrder
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 5},
		{Title: "Moves", Width: 5},
		{Title: "Cascade", Width: 7},
		{Title: "Match", Width: 5},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-scoreboardChrome, minScoreboardRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// modeID returns the selected mode's ID, or "" when nothing is registered.
func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// load reads the selected mode's results and stats.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if id := m.modeID(); m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

// fillRows ranks the loaded results by the current order.
func (m *ScoreboardModel) fillRows() {
	sort.SliceStable(m.scores, func(i, j int) bool {
		return m.order.less(m.scores[i], m.scores[j])
	})

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			strconv.Itoa(s.Moves),
			fmt.Sprintf("x%d", s.LongestCascade),
			strconv.Itoa(s.LargestMatch),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			m.order = (m.order + 1) % scoreOrder(len(scoreOrderNames))
			m.fillRows()
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(core.Max(m.height-scoreboardChrome, minScoreboardRows))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := sbBoxStyle.Render(m.tableView())
	if m.width >= minWidthForPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", sbBoxStyle.Render(m.statsPanel()))
	}
	b.WriteString(centerText(body, m.width))
	b.WriteString("\n\n")
	b.WriteString(sbHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = sbActiveStyle.Render(g.Title)
		} else {
			tabs[i] = sbTabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return sbDimStyle.Italic(true).Padding(1, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View() + "\n" + sbDimStyle.Render("sorted by "+m.order.String())
}

// statsPanel summarizes the selected mode's history.
func (m ScoreboardModel) statsPanel() string {
	lines := []string{sbTitleStyle.Render("Stats")}
	if m.stats == nil || m.stats.GamesCount == 0 {
		lines = append(lines, sbDimStyle.Render("no games yet"))
	} else {
		s := m.stats
		lines = append(lines,
			fmt.Sprintf("Games    %d", s.GamesCount),
			fmt.Sprintf("Best     %d", s.HighScore),
			fmt.Sprintf("Average  %.0f", s.AvgScore),
			fmt.Sprintf("Total    %d", s.TotalScore),
			fmt.Sprintf("Level    %d", s.BestLevel),
			fmt.Sprintf("Cascade  x%d", s.LongestCascade),
		)
		if !s.LastPlayed.IsZero() {
			lines = append(lines, sbDimStyle.Render("last "+s.LastPlayed.Format("Jan 02 15:04")))
		}
	}
	return lipgloss.NewStyle().Width(statsPanelWidth).Render(strings.Join(lines, "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard. It returns true if the player went
// back to the menu and false if they quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
