package match3

import "github.com/vovakirdan/happymatch/internal/games/match3/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "normal" or "mini"
	Score     int
	Level     int
	Moves     int
	Board     [][]board.BlockType
	Cursor    board.Coord
	Selection *board.Coord
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.gameOver:
		state = StateGameOver
	case g.animating():
		state = StateAnimating
	}

	es := g.engine.Snapshot()
	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     es.Score,
		Level:     g.level,
		Moves:     es.Moves,
		Board:     es.Cells,
		Cursor:    g.cursor,
		Selection: es.Selection,
		State:     state,
	}
}
