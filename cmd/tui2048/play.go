package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui2048/internal/games/t2048"
	"github.com/vovakirdan/tui2048/internal/platform/tui"
	"github.com/vovakirdan/tui2048/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a 2048 mode",
	Long: `Start playing the specified mode ("2048" when omitted).

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P/Space          - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options (chance that a new tile is a 4):
  easy   - 5%
  normal - 10%
  hard   - 20%

Examples:
  tui2048 play
  tui2048 play 2048_endless
  tui2048 play 2048_campaign --level 5
  tui2048 play --difficulty hard --seed 42
  tui2048 play --config ./big-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-10)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	gameID := "2048"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tui2048 list' to see available modes.")
		os.Exit(1)
	}

	gameCfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyGameFlags()

	if flagLevel < 0 || flagLevel > t2048.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: --level must be between 1 and %d\n", t2048.LevelCount())
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	tui.MenuResult{GameID: gameID, StartLevel: flagLevel}.Apply(game)

	store := openStore(logger)

	cfg := runtimeConfig(gameCfg)
	logger.Debug("starting game", "mode", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)

	runID, runErr := tui.Run(game, store, cfg)
	if runID != "" {
		logger.Debug("run saved", "mode", gameID, "run", runID)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
