package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Rules: RulesConfig{
			WinTile:    2048,
			StartTiles: 2,
		},
		Spawn: SpawnConfig{
			ProbFour: 0.10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
