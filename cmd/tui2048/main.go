// tui2048 plays 2048 in the terminal.
//
// Usage:
//
//	tui2048 list              - List available modes
//	tui2048 play [mode]       - Play a mode (default "2048")
//	tui2048 menu              - Start menu to pick modes interactively
//	tui2048 serve             - Start SSH server for remote play
//	tui2048 scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.tui2048/scores.db)
//	--config <path>        - Custom board/rules YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/games/t2048"
	"github.com/vovakirdan/tui2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is a terminal version of the 2048 sliding tile puzzle.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles merge
and add their value to your score. Reach the target tile to win.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tui2048 play
  tui2048 play 2048_endless --difficulty hard
  tui2048 menu
  tui2048 serve --ssh :2222
  tui2048 scores 2048`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom t2048 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tui2048",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// applyGameFlags passes --config and --difficulty to the 2048 modes.
func applyGameFlags() {
	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(flagDifficulty)
}

// openStore opens the scores database. Failure is logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadConfig loads the 2048 config. A broken --config is reported up front
// instead of silently using defaults.
func loadConfig(logger *log.Logger) (config.T2048Config, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("loaded config", "path", flagConfig, "rows", cfg.Board.Rows, "cols", cfg.Board.Cols,
		"win_tile", cfg.Rules.WinTile, "keys", len(cfg.Keys))
	return cfg, nil
}

// runtimeConfig builds the runtime config from flags, the terminal size and
// the config's key bindings.
func runtimeConfig(gameCfg config.T2048Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:     width,
		ScreenH:     height,
		TickRate:    flagFPS,
		Seed:        flagSeed,
		KeyBindings: gameCfg.KeyBindings(),
	}
}
