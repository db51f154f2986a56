package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.happymatch/configs/match3.{yaml,hcl} ->
// ./configs/match3.{yaml,hcl} -> embedded default.
// Keys missing from a file keep their default values.
func LoadMatch3(customPath string) (Match3Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Match3Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decodeMatch3(data, customPath)
		if err != nil {
			return Match3Config{}, err
		}
		return cfg, cfg.Validate()
	}

	var candidates []string
	for _, name := range []string{"match3.yaml", "match3.hcl"} {
		if p := userConfigPath(name); p != "" {
			candidates = append(candidates, p)
		}
	}
	candidates = append(candidates, filepath.Join("configs", "match3.yaml"), filepath.Join("configs", "match3.hcl"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeMatch3(data, path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// decodeMatch3 overlays a YAML or HCL document (chosen by file extension)
// on top of the defaults.
func decodeMatch3(data []byte, path string) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	cfg.Source = path

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if err := decodeHCL(data, path, &cfg); err != nil {
			return Match3Config{}, err
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// hclMatch3 mirrors Match3Config for HCL files. Blocks and attributes are
// pointers so that absent settings can be told apart from zero values.
type hclMatch3 struct {
	Board   *hclBoard   `hcl:"board,block"`
	Scoring *hclScoring `hcl:"scoring,block"`
	Timing  *hclTiming  `hcl:"timing,block"`
}

type hclBoard struct {
	Rows       *int `hcl:"rows,optional"`
	Cols       *int `hcl:"cols,optional"`
	BlockTypes *int `hcl:"block_types,optional"`
}

type hclScoring struct {
	PointsPerCell   *int  `hcl:"points_per_cell,optional"`
	GreatMatchSize  *int  `hcl:"great_match_size,optional"`
	LevelThresholds []int `hcl:"level_thresholds,optional"`
}

type hclTiming struct {
	SwapMS   *int `hcl:"swap_ms,optional"`
	ClearMS  *int `hcl:"clear_ms,optional"`
	SettleMS *int `hcl:"settle_ms,optional"`
	ToastMS  *int `hcl:"toast_ms,optional"`
}

func decodeHCL(data []byte, path string, cfg *Match3Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return fmt.Errorf("config: cannot parse %s: %w", path, diags)
	}

	var doc hclMatch3
	if diags := gohcl.DecodeBody(file.Body, hclEvalContext(), &doc); diags.HasErrors() {
		return fmt.Errorf("config: cannot decode %s: %w", path, diags)
	}

	if b := doc.Board; b != nil {
		override(&cfg.Board.Rows, b.Rows)
		override(&cfg.Board.Cols, b.Cols)
		override(&cfg.Board.BlockTypes, b.BlockTypes)
	}
	if s := doc.Scoring; s != nil {
		override(&cfg.Scoring.PointsPerCell, s.PointsPerCell)
		override(&cfg.Scoring.GreatMatchSize, s.GreatMatchSize)
		if s.LevelThresholds != nil {
			cfg.Scoring.LevelThresholds = s.LevelThresholds
		}
	}
	if t := doc.Timing; t != nil {
		override(&cfg.Timing.SwapMS, t.SwapMS)
		override(&cfg.Timing.ClearMS, t.ClearMS)
		override(&cfg.Timing.SettleMS, t.SettleMS)
		override(&cfg.Timing.ToastMS, t.ToastMS)
	}
	return nil
}

// hclEvalContext exposes the board limits to HCL expressions,
// e.g. `rows = max_side`.
func hclEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"min_side":        cty.NumberIntVal(MinBoardSide),
			"max_side":        cty.NumberIntVal(MaxBoardSide),
			"min_block_types": cty.NumberIntVal(MinBlockTypes),
			"max_block_types": cty.NumberIntVal(MaxBlockTypes),
		},
	}
}

func override(dst, v *int) {
	if v != nil {
		*dst = *v
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".happymatch", "configs", filename)
}
