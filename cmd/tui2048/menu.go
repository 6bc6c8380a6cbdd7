package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui2048/internal/platform/tui"
	"github.com/vovakirdan/tui2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  tui2048 menu
  tui2048 menu --fps 30
  tui2048 menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()

	gameCfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyGameFlags()

	store := openStore(logger)
	cfg := runtimeConfig(gameCfg)

	var lastRun string // Most recent saved run, highlighted on the scoreboard

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastRun)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "error", err)
			continue
		}
		menuResult.Apply(game)

		// Fresh seed for each game unless pinned by --seed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		runID, err := tui.Run(game, store, cfg)
		if err != nil {
			logger.Error("game failed", "mode", menuResult.GameID, "error", err)
		}
		if runID != "" {
			lastRun = runID
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
