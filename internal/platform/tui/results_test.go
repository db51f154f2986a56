package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func savedScores(t *testing.T, store *storage.Store) []int {
	t.Helper()
	entries, err := store.AllScores("match3")
	if err != nil {
		t.Fatalf("AllScores() error: %v", err)
	}
	scores := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = e.Score
	}
	return scores
}

func TestResultRecorder(t *testing.T) {
	tests := []struct {
		name   string
		states []core.GameState
		flush  bool
		want   []int
	}{
		{
			name: "game over saves once",
			states: []core.GameState{
				{Score: 50},
				{Score: 50, GameOver: true},
				{Score: 50, GameOver: true},
			},
			want: []int{50},
		},
		{
			name: "restart after game over starts a new result",
			states: []core.GameState{
				{Score: 50, GameOver: true},
				{Score: 0},
				{Score: 80},
				{Score: 80, GameOver: true},
			},
			want: []int{80, 50},
		},
		{
			name: "restart mid-game saves the abandoned board",
			states: []core.GameState{
				{Score: 30},
				{Score: 0},
				{Score: 20},
			},
			want: []int{30},
		},
		{
			name: "leaving saves the running board",
			states: []core.GameState{
				{Score: 20},
			},
			flush: true,
			want:  []int{20},
		},
		{
			name: "leaving after game over does not duplicate",
			states: []core.GameState{
				{Score: 40, GameOver: true},
			},
			flush: true,
			want:  []int{40},
		},
		{
			name: "zero scores are not saved",
			states: []core.GameState{
				{Score: 0},
				{Score: 0, GameOver: true},
			},
			flush: true,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			r := newResultRecorder(store, "match3")

			for _, st := range tt.states {
				r.observe(st)
			}
			if tt.flush {
				r.flush()
				r.flush()
			}

			got := savedScores(t, store)
			if len(got) != len(tt.want) {
				t.Fatalf("saved %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("saved %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestResultRecorderStoresDetails(t *testing.T) {
	store := openTestStore(t)
	r := newResultRecorder(store, "match3")

	r.observe(core.GameState{Score: 120, GameOver: true, Level: 2, Moves: 9, LongestCascade: 3, LargestMatch: 5})

	entries, err := store.TopScores("match3", 1)
	if err != nil || len(entries) != 1 {
		t.Fatalf("TopScores() = %v, %v", entries, err)
	}
	e := entries[0]
	if e.Level != 2 || e.Moves != 9 || e.LongestCascade != 3 || e.LargestMatch != 5 {
		t.Errorf("entry = %+v, want level 2, 9 moves, cascade 3, match 5", e)
	}
}

func TestResultRecorderWithoutStore(t *testing.T) {
	r := newResultRecorder(nil, "match3")
	r.observe(core.GameState{Score: 10, GameOver: true})
	r.flush()
}
