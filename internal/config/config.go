// Package config provides YAML and HCL configuration loading for Happy Match.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Board size and type limits accepted by Validate.
const (
	MinBoardSide  = 3
	MaxBoardSide  = 32
	MinBlockTypes = 2
	MaxBlockTypes = 6
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`

	// Source names where the config was loaded from ("embedded", "default"
	// or a file path).
	Source string `yaml:"-"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	BlockTypes int `yaml:"block_types"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	PointsPerCell   int   `yaml:"points_per_cell"`
	GreatMatchSize  int   `yaml:"great_match_size"`
	LevelThresholds []int `yaml:"level_thresholds"` // Ascending; index+1 is the level
}

// TimingConfig defines animation and notification durations in milliseconds.
type TimingConfig struct {
	SwapMS   int `yaml:"swap_ms"`
	ClearMS  int `yaml:"clear_ms"`
	SettleMS int `yaml:"settle_ms"`
	ToastMS  int `yaml:"toast_ms"`
}

// Validate reports every out-of-range setting at once.
func (c Match3Config) Validate() error {
	var problems []string

	if c.Board.Rows < MinBoardSide || c.Board.Rows > MaxBoardSide {
		problems = append(problems, fmt.Sprintf("board.rows %d not in %d..%d", c.Board.Rows, MinBoardSide, MaxBoardSide))
	}
	if c.Board.Cols < MinBoardSide || c.Board.Cols > MaxBoardSide {
		problems = append(problems, fmt.Sprintf("board.cols %d not in %d..%d", c.Board.Cols, MinBoardSide, MaxBoardSide))
	}
	if c.Board.BlockTypes < MinBlockTypes || c.Board.BlockTypes > MaxBlockTypes {
		problems = append(problems, fmt.Sprintf("board.block_types %d not in %d..%d", c.Board.BlockTypes, MinBlockTypes, MaxBlockTypes))
	}

	if c.Scoring.PointsPerCell <= 0 {
		problems = append(problems, "scoring.points_per_cell must be positive")
	}
	if c.Scoring.GreatMatchSize < 3 {
		problems = append(problems, "scoring.great_match_size must be at least 3")
	}
	if len(c.Scoring.LevelThresholds) == 0 {
		problems = append(problems, "scoring.level_thresholds is empty")
	} else if c.Scoring.LevelThresholds[0] != 0 {
		problems = append(problems, "scoring.level_thresholds must start at 0")
	}
	for i := 1; i < len(c.Scoring.LevelThresholds); i++ {
		if c.Scoring.LevelThresholds[i] <= c.Scoring.LevelThresholds[i-1] {
			problems = append(problems, fmt.Sprintf("scoring.level_thresholds not ascending at index %d", i))
			break
		}
	}

	t := c.Timing
	if t.SwapMS < 0 || t.ClearMS < 0 || t.SettleMS < 0 || t.ToastMS < 0 {
		problems = append(problems, "timing values must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
