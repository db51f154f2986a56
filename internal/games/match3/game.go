// Package match3 implements Happy Match, a swap-and-clear puzzle game on
// top of the board engine. It adds the cursor and pointer controls, replay
// animations, notifications and levels that the terminal platform drives.
package match3

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happymatch/internal/config"
	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/games/match3/board"
	"github.com/vovakirdan/happymatch/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeMini   Mode = "mini"
)

// MiniSide is the board side used by the mini mode.
const MiniSide = 6

// Notification texts.
const (
	toastGreatMatch = "Great Match!"
	toastInvalid    = "Invalid Move"
	toastLevelUp    = "Level up!"
	toastNoMoves    = "No more moves"
)

// Game implements the match-3 game.
type Game struct {
	mode   Mode
	cfg    config.Match3Config
	rt     core.RuntimeConfig
	engine *board.Engine
	tick   uint64

	cursor     board.Coord
	hint       []board.Coord
	hintTicks  int
	level      int
	shownScore int

	// Replay queue for the last move. The engine has already settled;
	// frames only replay what happened.
	frames     []frame
	frameTicks int

	// Per-step totals reported by the engine listener during a move.
	stepTotals []int

	toasts []toast

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool

	// startLayout replaces the first generated board; used by tests.
	startLayout *board.Grid
}

// Package-level variables for config
var (
	configPath string
	boardRows  int
	boardCols  int
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// SetBoardSize overrides the configured board size. Zero keeps the config value.
func SetBoardSize(rows, cols int) {
	boardRows = rows
	boardCols = cols
}

// SetLogger sets the logger used for gameplay events. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a normal mode game.
func New() *Game {
	return &Game{mode: ModeNormal}
}

// NewMini creates a mini mode game on a 6x6 board.
func NewMini() *Game {
	return &Game{mode: ModeMini}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMini {
		return "match3_mini"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMini {
		return "Happy Match (Mini)"
	}
	return "Happy Match"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeMini {
		return "Quick 6x6 board, same rules"
	}
	return "Swap neighbouring blocks to line up three or more"
}

// newEngine builds the board engine from opts. A layout that does not fit
// falls back to a generated board, and options the engine refuses fall
// back to its defaults.
func (g *Game) newEngine(opts board.Options) *board.Engine {
	opts.Listener = g
	eng, err := board.NewGame(opts)
	if err == nil {
		return eng
	}
	if opts.Layout != nil {
		logger.Warn("board layout rejected, generating", "err", err)
		opts.Layout = nil
		if eng, err = board.NewGame(opts); err == nil {
			return eng
		}
	}

	logger.Error("board options rejected, using defaults", "err", err)
	eng, err = board.NewGame(board.Options{Seed: opts.Seed, Listener: g})
	if err != nil {
		// Default options are always valid.
		panic(err)
	}
	return eng
}

// Reset initializes the game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.cfg = loadConfig(g.mode)

	eng := g.newEngine(board.Options{
		Rows:          g.cfg.Board.Rows,
		Cols:          g.cfg.Board.Cols,
		Kinds:         g.cfg.Board.BlockTypes,
		PointsPerCell: g.cfg.Scoring.PointsPerCell,
		Seed:          cfg.Seed,
		Layout:        g.startLayout,
	})
	g.engine = eng
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newSession()

	logger.Debug("game reset", "mode", g.mode, "rows", g.cfg.Board.Rows, "cols", g.cfg.Board.Cols,
		"types", g.cfg.Board.BlockTypes, "seed", cfg.Seed, "config", g.cfg.Source)
}

// loadConfig resolves the config for a mode, falling back to defaults.
func loadConfig(mode Mode) config.Match3Config {
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultMatch3Config()
	}
	if mode == ModeMini {
		cfg.Board.Rows = MiniSide
		cfg.Board.Cols = MiniSide
	}
	if boardRows > 0 {
		cfg.Board.Rows = core.Clamp(boardRows, config.MinBoardSide, config.MaxBoardSide)
	}
	if boardCols > 0 {
		cfg.Board.Cols = core.Clamp(boardCols, config.MinBoardSide, config.MaxBoardSide)
	}
	if len(cfg.Scoring.LevelThresholds) == 0 {
		cfg.Scoring.LevelThresholds = DefaultThresholds
	}
	return cfg
}

// newSession clears everything that belongs to one play-through.
func (g *Game) newSession() {
	g.cursor = board.Coord{}
	g.hint = nil
	g.hintTicks = 0
	g.level = 1
	g.shownScore = 0
	g.frames = nil
	g.frameTicks = 0
	g.stepTotals = nil
	g.toasts = nil
	g.gameOver = false
	g.checkMoves()
}

// Resize adapts the game to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.updateToasts()

	// Restart is allowed at any time; the engine is never mid-move here.
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Input is ignored while a move replays
	if g.updateAnimation() {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	prev := g.engine.Score()
	g.engine.Restart()
	g.newSession()
	logger.Debug("board restarted", "previous_score", prev)
}

// handleInput applies cursor, selection and pointer input.
func (g *Game) handleInput(in core.InputFrame) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, rows-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, rows-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, cols-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, cols-1)
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	if in.Has(core.ActionBack) {
		g.engine.Deselect()
		g.hint = nil
	}

	if in.Clicked {
		if c, ok := g.cellAt(in.Click); ok {
			g.cursor = c
			g.selectCell(c)
			return
		}
	}

	if in.Has(core.ActionConfirm) {
		g.selectCell(g.cursor)
	}
}

func (g *Game) showHint() {
	a, b, ok := g.engine.Hint()
	if !ok {
		return
	}
	g.hint = []board.Coord{a, b}
	g.hintTicks = g.rt.TicksFor(g.cfg.Timing.ToastMS)
	logger.Debug("hint", "from", a, "to", b)
}

// selectCell feeds one selection to the engine and queues the replay.
func (g *Game) selectCell(c board.Coord) {
	before := g.engine.Grid()
	g.stepTotals = g.stepTotals[:0]

	out, err := g.engine.SelectCell(c)
	if err != nil {
		logger.Warn("selection refused", "cell", c, "err", err)
		return
	}

	switch out.Kind {
	case board.OutcomeSelected:
		logger.Debug("selected", "cell", out.Selection)
	case board.OutcomeReverted:
		g.hint = nil
		logger.Debug("move reverted", "from", out.From, "to", out.To)
		g.play(g.revertFrames(before, out))
	case board.OutcomeCommitted:
		g.hint = nil
		stats := g.engine.Stats()
		logger.Debug("move committed", "from", out.From, "to", out.To,
			"points", out.Points, "cascades", out.Cascades, "score", g.engine.Score(), "moves", stats.Moves)
		frames := g.resolveFrames(before, out)
		if lvl := LevelFor(g.engine.Score(), g.cfg.Scoring.LevelThresholds); lvl > g.level {
			g.level = lvl
			logger.Debug("level up", "level", lvl)
			if len(frames) > 0 {
				frames[len(frames)-1].toasts = append(frames[len(frames)-1].toasts, toastLevelUp)
			} else {
				g.addToast(toastLevelUp)
			}
		}
		g.play(frames)
	case board.OutcomeRejected:
		logger.Debug("selection rejected while resolving", "cell", c)
	}
}

// settled runs once the replay queue drains.
func (g *Game) settled() {
	g.shownScore = g.engine.Score()
	g.checkMoves()
}

// checkMoves ends the game when no swap can score.
func (g *Game) checkMoves() {
	if g.gameOver {
		return
	}
	if _, _, ok := g.engine.Hint(); !ok {
		g.gameOver = true
		g.addToast(toastNoMoves)
		logger.Debug("no moves left", "score", g.engine.Score())
	}
}

// ScoreChanged implements board.Listener.
func (g *Game) ScoreChanged(delta, total int) {
	g.stepTotals = append(g.stepTotals, total)
}

// MatchFound implements board.Listener.
func (g *Game) MatchFound(size, step int) {
	logger.Debug("match", "size", size, "step", step)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Level:    g.level,
	}
	if g.engine != nil {
		stats := g.engine.Stats()
		st.Score = g.engine.Score()
		st.Moves = stats.Moves
		st.LongestCascade = stats.LongestCascade
		st.LargestMatch = stats.LargestMatch
	}
	return st
}

// Engine exposes the underlying board engine.
func (g *Game) Engine() *board.Engine {
	return g.engine
}
