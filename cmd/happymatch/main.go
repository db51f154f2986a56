// happymatch is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	happymatch list              - List available game modes
//	happymatch play [game]       - Play a game (default: match3)
//	happymatch menu              - Start menu to pick a mode interactively
//	happymatch serve             - Start SSH server for remote play
//	happymatch scores [game]     - Show high scores for a game
//	happymatch config            - Print the default config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.happymatch/scores.db)
//	--config <path>    - Use a custom YAML or HCL config file
//	--log-file <path>  - Write debug logs of gameplay events to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/happymatch/internal/config"
	"github.com/vovakirdan/happymatch/internal/games/match3"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string

	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "happymatch",
	Short: "Happy Match - swap blocks, match three, score points",
	Long: `Happy Match is a match-3 puzzle game that runs in your terminal.

Swap two neighbouring blocks to line up three or more of the same kind.
Matched blocks disappear, the blocks above fall down, new ones drop in
from the top, and any new lines clear as a cascade.

Available commands:
  list     - Show all game modes
  play     - Play a game directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default config

Examples:
  happymatch play
  happymatch play match3_mini
  happymatch play --rows 10 --cols 10
  happymatch serve --ssh :2222
  happymatch scores match3`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.happymatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (.yaml or .hcl)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags and wires the game package to them.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagConfig != "" {
		if _, err := config.LoadMatch3(flagConfig); err != nil {
			return err
		}
	}
	match3.SetConfigPath(flagConfig)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		match3.SetLogger(log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "happymatch",
		}))
	}

	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if logFile != nil {
		logFile.Close()
	}
}
