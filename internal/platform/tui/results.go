package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/storage"
)

// resultRecorder saves each play-through with a nonzero score exactly once:
// on game over, when the player restarts mid-game, or when leaving.
type resultRecorder struct {
	store  *storage.Store
	logger *log.Logger // Optional
	user   string
	gameID string
	last   core.GameState
	saved  bool
}

func newResultRecorder(store *storage.Store, gameID string) *resultRecorder {
	return &resultRecorder{store: store, gameID: gameID}
}

// observe is called with the state after every tick.
func (r *resultRecorder) observe(st core.GameState) {
	prev := r.last
	r.last = st

	// A new play-through started on the same game
	restarted := (prev.GameOver && !st.GameOver) ||
		(!prev.GameOver && prev.Score > 0 && st.Score < prev.Score)
	if restarted {
		if !r.saved {
			r.save(prev)
		}
		r.saved = false
	}

	if st.GameOver && !r.saved {
		r.save(st)
		r.saved = true
	}
}

// flush saves the current play-through if it has not been saved yet.
func (r *resultRecorder) flush() {
	if r.saved {
		return
	}
	r.save(r.last)
	r.saved = true
}

func (r *resultRecorder) save(st core.GameState) {
	if st.Score <= 0 || r.store == nil {
		return
	}

	_, err := r.store.SaveResult(storage.GameResult{
		GameID:         r.gameID,
		Score:          st.Score,
		Level:          st.Level,
		Moves:          st.Moves,
		LongestCascade: st.LongestCascade,
		LargestMatch:   st.LargestMatch,
	})
	if r.logger == nil {
		return
	}
	if err != nil {
		r.logger.Warn("could not save result", "game", r.gameID, "user", r.user, "error", err)
		return
	}
	r.logger.Info("result saved", "game", r.gameID, "user", r.user, "score", st.Score, "level", st.Level)
}
