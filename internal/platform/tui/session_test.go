package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui2048/internal/games/t2048"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return model, cmd
}

func TestSessionMenuGameMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := openStore(t)
	m := NewSessionModel(store, testConfig(), "alice", "session-1")

	if m.SessionID() != "session-1" {
		t.Errorf("SessionID = %q", m.SessionID())
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatal("enter should start a game")
	}
	if !strings.Contains(m.View(), "Score:") {
		t.Error("game view should show the HUD")
	}

	// Pause then back to the menu without quitting the program
	m, _ = sessionStep(t, m, keyRunes("p"))
	m, _ = sessionStep(t, m, TickMsg{})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatal("esc while paused should return to the menu")
	}
	if m.quitting {
		t.Error("session should still be running")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "bob", "session-2")

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard not rendered")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("esc should return to the menu")
	}

	m, cmd := sessionStep(t, m, keyRunes("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionLogsFinishedRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var buf bytes.Buffer
	m := NewSessionModel(openStore(t), testConfig(), "carol", "session-3")
	m.logger = log.New(&buf)

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	game, ok := m.gameModel.game.(*t2048.Game)
	if !ok {
		t.Fatalf("game is %T, want *t2048.Game", m.gameModel.game)
	}
	setBoard(t, game, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	m, _ = sessionStep(t, m, keyRunes("a"))
	m, _ = sessionStep(t, m, TickMsg{})
	m, _ = sessionStep(t, m, TickMsg{})

	out := buf.String()
	if strings.Count(out, "run finished") != 1 {
		t.Fatalf("log = %q, want one run finished entry", out)
	}
	for _, want := range []string{"session-3", "carol", m.gameModel.LastRunID()} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestSessionIgnoresScreenshotKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	m := NewSessionModel(nil, testConfig(), "dave", "session-4")

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatal("enter should start a game")
	}
	for range 3 {
		m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	}

	if _, err := os.Stat(filepath.Join(home, ".tui2048", "screenshots")); !os.IsNotExist(err) {
		t.Errorf("session wrote screenshots on the server (stat err %v)", err)
	}
	if strings.Contains(m.View(), "Saved ") {
		t.Error("session view should not report a saved screenshot")
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if want := filepath.Join(home, ".tui2048", "host_key"); got != want {
		t.Errorf("default path = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Errorf("key directory not created: %v", err)
	}

	got, err = resolveHostKeyPath("~/keys/server")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if want := filepath.Join(home, "keys", "server"); got != want {
		t.Errorf("expanded path = %q, want %q", got, want)
	}
}
