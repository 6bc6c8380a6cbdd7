package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means "use the config as is".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ProbFourForPreset returns the spawn-4 probability for a difficulty preset.
// More 4s fill the board faster.
func ProbFourForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.20
	default:
		return 0.10
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Spawn.ProbFour = ProbFourForPreset(preset)
}
