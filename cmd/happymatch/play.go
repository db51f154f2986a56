package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/happymatch/internal/core"
	"github.com/vovakirdan/happymatch/internal/games/match3"
	"github.com/vovakirdan/happymatch/internal/platform/tui"
	"github.com/vovakirdan/happymatch/internal/registry"
	"github.com/vovakirdan/happymatch/internal/storage"
)

var (
	flagRows int
	flagCols int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game mode (default: match3).

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select a block, then a neighbour to swap
  Mouse click  - Select the clicked block
  Esc/B        - Cancel the selection
  H/?          - Show a valid swap
  P            - Pause
  R            - New board
  Q/Ctrl+C     - Quit

Examples:
  happymatch play
  happymatch play match3_mini
  happymatch play --rows 10 --cols 12
  happymatch play --seed 42
  happymatch play --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'happymatch list' to see available games.")
		os.Exit(1)
	}

	match3.SetBoardSize(flagRows, flagCols)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
