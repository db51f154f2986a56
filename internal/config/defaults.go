package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in match-3 configuration.
// It mirrors defaults/match3.yaml and is used if the embedded file is unreadable.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:       8,
			Cols:       8,
			BlockTypes: 6,
		},
		Scoring: ScoringConfig{
			PointsPerCell:   10,
			GreatMatchSize:  5,
			LevelThresholds: []int{0, 500, 1000, 2000, 3500, 5000, 7000},
		},
		Timing: TimingConfig{
			SwapMS:   300,
			ClearMS:  600,
			SettleMS: 500,
			ToastMS:  2000,
		},
		Source: "default",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3", "match3_mini":
		return defaultMatch3YAML
	default:
		return nil
	}
}
