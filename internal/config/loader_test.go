package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	want := DefaultMatch3Config()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, want)
	}
	if err := want.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadMatch3FallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
	if cfg.Board.Rows != 8 || cfg.Board.Cols != 8 {
		t.Errorf("board = %dx%d, expected 8x8", cfg.Board.Rows, cfg.Board.Cols)
	}
}

func TestLoadMatch3UserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".happymatch", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, dir, "match3.yaml", "board:\n  rows: 10\n")

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
	if cfg.Board.Rows != 10 {
		t.Errorf("Rows = %d, expected 10", cfg.Board.Rows)
	}
}

func TestLoadMatch3PartialYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
board:
  cols: 12
scoring:
  level_thresholds: [0, 100, 250]
timing:
  swap_ms: 0
`)

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}

	if cfg.Board.Cols != 12 {
		t.Errorf("Cols = %d, expected 12", cfg.Board.Cols)
	}
	if cfg.Board.Rows != 8 {
		t.Errorf("Rows = %d, expected the default 8", cfg.Board.Rows)
	}
	if !reflect.DeepEqual(cfg.Scoring.LevelThresholds, []int{0, 100, 250}) {
		t.Errorf("LevelThresholds = %v", cfg.Scoring.LevelThresholds)
	}
	if cfg.Timing.SwapMS != 0 || cfg.Timing.ClearMS != 600 {
		t.Errorf("Timing = %+v, expected swap 0 and default clear", cfg.Timing)
	}
}

func TestLoadMatch3HCL(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.hcl", `
board {
  rows        = 6
  block_types = 4
}

scoring {
  points_per_cell  = 25
  level_thresholds = [0, 300, 900]
}
`)

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}

	if cfg.Board.Rows != 6 || cfg.Board.Cols != 8 || cfg.Board.BlockTypes != 4 {
		t.Errorf("Board = %+v, expected rows 6, default cols, 4 types", cfg.Board)
	}
	if cfg.Scoring.PointsPerCell != 25 || cfg.Scoring.GreatMatchSize != 5 {
		t.Errorf("Scoring = %+v", cfg.Scoring)
	}
	if !reflect.DeepEqual(cfg.Scoring.LevelThresholds, []int{0, 300, 900}) {
		t.Errorf("LevelThresholds = %v", cfg.Scoring.LevelThresholds)
	}
	if cfg.Timing != DefaultMatch3Config().Timing {
		t.Errorf("Timing = %+v, expected defaults", cfg.Timing)
	}
}

func TestLoadMatch3HCLVariables(t *testing.T) {
	path := writeFile(t, t.TempDir(), "limits.hcl", `
board {
  rows        = max_side
  cols        = min_side + 1
  block_types = max_block_types
}
`)

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}

	if cfg.Board.Rows != MaxBoardSide || cfg.Board.Cols != MinBoardSide+1 || cfg.Board.BlockTypes != MaxBlockTypes {
		t.Errorf("Board = %+v, expected %dx%d with %d types", cfg.Board, MaxBoardSide, MinBoardSide+1, MaxBlockTypes)
	}
}

func TestLoadMatch3Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"broken yaml", writeFile(t, dir, "broken.yaml", "board: [rows"), false},
		{"broken hcl", writeFile(t, dir, "broken.hcl", "board {"), false},
		{"unknown hcl attribute", writeFile(t, dir, "extra.hcl", "board {\n  depth = 3\n}\n"), false},
		{"unknown hcl variable", writeFile(t, dir, "var.hcl", "board {\n  rows = huge\n}\n"), false},
		{"out of range", writeFile(t, dir, "big.yaml", "board:\n  rows: 99\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMatch3(tc.path)
			if err == nil {
				t.Fatal("LoadMatch3() should fail")
			}
			if !strings.HasPrefix(err.Error(), "config:") {
				t.Errorf("error %q should carry the config: prefix", err)
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v", got, tc.invalid)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		want   string
	}{
		{"rows too small", func(c *Match3Config) { c.Board.Rows = 2 }, "board.rows"},
		{"cols too large", func(c *Match3Config) { c.Board.Cols = 33 }, "board.cols"},
		{"one block type", func(c *Match3Config) { c.Board.BlockTypes = 1 }, "board.block_types"},
		{"seven block types", func(c *Match3Config) { c.Board.BlockTypes = 7 }, "board.block_types"},
		{"zero points", func(c *Match3Config) { c.Scoring.PointsPerCell = 0 }, "points_per_cell"},
		{"tiny great match", func(c *Match3Config) { c.Scoring.GreatMatchSize = 2 }, "great_match_size"},
		{"no thresholds", func(c *Match3Config) { c.Scoring.LevelThresholds = nil }, "empty"},
		{"thresholds start above zero", func(c *Match3Config) { c.Scoring.LevelThresholds = []int{10, 20} }, "start at 0"},
		{"thresholds not ascending", func(c *Match3Config) { c.Scoring.LevelThresholds = []int{0, 500, 500} }, "not ascending"},
		{"negative timing", func(c *Match3Config) { c.Timing.ToastMS = -1 }, "timing"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}
