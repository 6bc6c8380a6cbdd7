// Package config provides YAML-based game configuration loading and
// difficulty presets for the 2048 platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui2048/internal/core"
)

// MaxBoardSize bounds each board dimension so the board fits a terminal.
const MaxBoardSize = 12

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
	Spawn SpawnConfig `yaml:"spawn"`

	// Keys maps a key name ("x", "ctrl+n", "pgup") to an action name
	// ("up", "restart", "none" to unbind).
	Keys map[string]string `yaml:"keys"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RulesConfig defines win condition and opening.
type RulesConfig struct {
	WinTile    int `yaml:"win_tile"`    // 0 = never win (endless)
	StartTiles int `yaml:"start_tiles"` // Tiles spawned when a run starts
}

// SpawnConfig defines the random tile spawn policy.
type SpawnConfig struct {
	ProbFour float64 `yaml:"prob_four"` // Probability that a spawned tile is a 4
}

var (
	// ErrInvalidBoard is returned for board dimensions outside [1, MaxBoardSize].
	ErrInvalidBoard = errors.New("config: invalid board size")

	// ErrInvalidWinTile is returned when win_tile is not 0 or a power of two >= 4.
	ErrInvalidWinTile = errors.New("config: invalid win tile")

	// ErrInvalidProbability is returned when prob_four is outside [0, 1].
	ErrInvalidProbability = errors.New("config: invalid spawn probability")

	// ErrInvalidKeyBinding is returned for a key bound to an unknown action.
	ErrInvalidKeyBinding = errors.New("config: invalid key binding")
)

// Validate checks the configuration for values the engine cannot play.
func (c T2048Config) Validate() error {
	if c.Board.Rows < 1 || c.Board.Rows > MaxBoardSize || c.Board.Cols < 1 || c.Board.Cols > MaxBoardSize {
		return fmt.Errorf("%w: %dx%d (allowed 1..%d)", ErrInvalidBoard, c.Board.Rows, c.Board.Cols, MaxBoardSize)
	}
	if w := c.Rules.WinTile; w != 0 && (w < 4 || w&(w-1) != 0) {
		return fmt.Errorf("%w: %d", ErrInvalidWinTile, w)
	}
	if c.Rules.StartTiles < 0 || c.Rules.StartTiles > c.Board.Rows*c.Board.Cols {
		return fmt.Errorf("config: start_tiles %d does not fit a %dx%d board", c.Rules.StartTiles, c.Board.Rows, c.Board.Cols)
	}
	if p := c.Spawn.ProbFour; p < 0 || p > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	for key, name := range c.Keys {
		if _, ok := core.ParseAction(name); !ok || key == "" {
			return fmt.Errorf("%w: %q -> %q", ErrInvalidKeyBinding, key, name)
		}
	}
	return nil
}

// KeyBindings converts the keys section to actions. Unknown action names
// are skipped; Validate reports them.
func (c T2048Config) KeyBindings() map[string]core.Action {
	if len(c.Keys) == 0 {
		return nil
	}
	bindings := make(map[string]core.Action, len(c.Keys))
	for key, name := range c.Keys {
		if a, ok := core.ParseAction(name); ok {
			bindings[key] = a
		}
	}
	return bindings
}
