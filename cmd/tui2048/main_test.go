package main

import (
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui2048/internal/core"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"2222", "2222"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "debug"
	if got := newLogger().GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}

	flagLogLevel = "error"
	if got := newLogger().GetLevel(); got != log.ErrorLevel {
		t.Errorf("level = %v, want error", got)
	}
}

func TestPersistentFlagValidation(t *testing.T) {
	oldLevel, oldDifficulty := flagLogLevel, flagDifficulty
	t.Cleanup(func() {
		flagLogLevel = oldLevel
		flagDifficulty = oldDifficulty
	})

	tests := []struct {
		name       string
		level      string
		difficulty string
		wantErr    bool
	}{
		{"defaults", "warn", "", false},
		{"hard", "info", "hard", false},
		{"bad difficulty", "warn", "insane", true},
		{"bad level", "loud", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagLogLevel = tt.level
			flagDifficulty = tt.difficulty
			err := rootCmd.PersistentPreRunE(rootCmd, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	old := flagConfig
	t.Cleanup(func() { flagConfig = old })
	t.Setenv("HOME", t.TempDir())

	flagConfig = ""
	cfg, err := loadConfig(newLogger())
	if err != nil {
		t.Fatalf("no --config should pass, got %v", err)
	}
	if rc := runtimeConfig(cfg); len(rc.KeyBindings) != 0 {
		t.Errorf("default config bindings = %v, want none", rc.KeyBindings)
	}

	flagConfig = "/nonexistent/t2048.yaml"
	if _, err := loadConfig(newLogger()); err == nil {
		t.Error("missing --config file should fail")
	}

	flagConfig = filepath.Join(t.TempDir(), "keys.yaml")
	yaml := "keys:\n  i: up\n  x: restart\n  w: none\n"
	if err := os.WriteFile(flagConfig, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(newLogger())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	rc := runtimeConfig(cfg)
	want := map[string]core.Action{"i": core.ActionUp, "x": core.ActionRestart, "w": core.ActionNone}
	if !maps.Equal(rc.KeyBindings, want) {
		t.Errorf("KeyBindings = %v, want %v", rc.KeyBindings, want)
	}
}
