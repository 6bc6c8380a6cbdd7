package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and keys.
const AppDir = ".tui2048"

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.tui2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
//
// A custom path must exist, parse and validate. Files found on the search
// path that fail to parse or validate are skipped.
func LoadT2048(customPath string) (T2048Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readT2048(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/t2048.yaml"}
	if userCfgPath := userConfigPath("t2048.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		if cfg, err := readT2048(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readT2048 parses one YAML file over the defaults, so omitted keys keep
// their default values.
func readT2048(path string) (T2048Config, error) {
	cfg := DefaultT2048Config()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ or ~/ with the user's home directory.
// Other users' homes (~bob/x) are not expanded.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
