package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happymatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config",
	Long: `Print the built-in YAML config for a game mode (default: match3).
Save it to ~/.happymatch/configs/match3.yaml and edit it to customize
the board, scoring and animation timings.

Examples:
  happymatch config > ~/.happymatch/configs/match3.yaml
  happymatch config --config ./custom.hcl --effective`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

var flagEffective bool

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Show the config that would be used, and where it came from")
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !flagEffective {
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", gameID)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", cfg.Source)
	fmt.Printf("board:   rows=%d cols=%d block_types=%d\n", cfg.Board.Rows, cfg.Board.Cols, cfg.Board.BlockTypes)
	fmt.Printf("scoring: points_per_cell=%d great_match_size=%d level_thresholds=%v\n",
		cfg.Scoring.PointsPerCell, cfg.Scoring.GreatMatchSize, cfg.Scoring.LevelThresholds)
	fmt.Printf("timing:  swap_ms=%d clear_ms=%d settle_ms=%d toast_ms=%d\n",
		cfg.Timing.SwapMS, cfg.Timing.ClearMS, cfg.Timing.SettleMS, cfg.Timing.ToastMS)
}
