package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui2048/internal/storage"
)

func scoreboardStep(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T, want ScoreboardModel", next)
	}
	return model
}

func seedRuns(t *testing.T, store *storage.Store, runs ...storage.RunResult) {
	t.Helper()
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
}

func TestScoreboardLoadsSelectedMode(t *testing.T) {
	store := openStore(t)
	seedRuns(t, store,
		storage.RunResult{GameID: "2048", Score: 500, MaxTile: 64, Moves: 90, Rows: 4, Cols: 4},
		storage.RunResult{GameID: "2048", Score: 900, MaxTile: 128, Moves: 120, Rows: 4, Cols: 4},
		storage.RunResult{GameID: "2048_endless", Score: 4000, MaxTile: 512, Moves: 400, Rows: 5, Cols: 5},
	)

	m := NewScoreboardModel(store, 100, 30)
	if m.modeID() != "2048" {
		t.Fatalf("first mode = %q, want 2048", m.modeID())
	}
	if len(m.scores) != 2 || m.scores[0].Score != 900 {
		t.Fatalf("scores = %+v, want two runs led by 900", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 {
		t.Errorf("stats = %+v, want 2 runs", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Runs: 2", "900", "4x4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// Tab twice: 2048 -> 2048_campaign -> 2048_endless
	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.scores) != 0 {
		t.Errorf("campaign should have no runs, got %d", len(m.scores))
	}
	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.modeID() != "2048_endless" || len(m.scores) != 1 {
		t.Fatalf("mode = %q with %d runs, want 2048_endless with 1", m.modeID(), len(m.scores))
	}

	// Wraps around backwards
	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.modeID() != "2048_endless" {
		t.Errorf("mode after wrap = %q, want 2048_endless", m.modeID())
	}
}

func TestScoreboardSortOrders(t *testing.T) {
	store := openStore(t)
	seedRuns(t, store,
		storage.RunResult{GameID: "2048", Score: 300, MaxTile: 128, Moves: 10, Rows: 4, Cols: 4},
		storage.RunResult{GameID: "2048", Score: 800, MaxTile: 64, Moves: 20, Rows: 4, Cols: 4},
	)

	m := NewScoreboardModel(store, 80, 24)
	if m.scores[0].Score != 800 {
		t.Fatalf("default order should be by score, first = %d", m.scores[0].Score)
	}

	m = scoreboardStep(t, m, keyRunes("s"))
	if m.order != byTile || m.scores[0].MaxTile != 128 {
		t.Errorf("order = %s first tile = %d, want tile order led by 128", m.order, m.scores[0].MaxTile)
	}

	m = scoreboardStep(t, m, keyRunes("s"))
	if m.order != byRecent {
		t.Errorf("order = %s, want recent", m.order)
	}

	m = scoreboardStep(t, m, keyRunes("s"))
	if m.order != byScore || m.scores[0].Score != 800 {
		t.Errorf("sort should cycle back to score, got %s", m.order)
	}
}

func TestScoreboardSelectedRun(t *testing.T) {
	store := openStore(t)
	runID, err := store.SaveRun(storage.RunResult{GameID: "2048", Score: 100, MaxTile: 16, Moves: 7, Rows: 3, Cols: 5})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, 80, 24)
	line := m.selectedLine()
	if !strings.Contains(line, runID[:8]) || !strings.Contains(line, "3x5") {
		t.Errorf("selectedLine() = %q, want run id prefix and board", line)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
	if m.selectedLine() != "" {
		t.Error("no selection without runs")
	}

	back := scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}
	quit := scoreboardStep(t, m, keyRunes("q"))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardFocusRun(t *testing.T) {
	store := openStore(t)
	seedRuns(t, store,
		storage.RunResult{GameID: "2048", Score: 700, MaxTile: 64, Rows: 4, Cols: 4},
		storage.RunResult{GameID: "2048_endless", Score: 9000, MaxTile: 1024, Rows: 4, Cols: 4},
	)
	runID, err := store.SaveRun(storage.RunResult{GameID: "2048_endless", Score: 3000, MaxTile: 256, Rows: 4, Cols: 4})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	m.FocusRun(runID)
	if m.modeID() != "2048_endless" {
		t.Fatalf("mode = %q, want the run's mode 2048_endless", m.modeID())
	}
	if m.table.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.table.Cursor())
	}
	if line := m.selectedLine(); !strings.Contains(line, runID[:8]) {
		t.Errorf("selectedLine() = %q, want run %s", line, runID[:8])
	}
	if line := m.lastRunLine(); line != "Last run: 3000 pts, tile 256, #2 of 2" {
		t.Errorf("lastRunLine() = %q", line)
	}
	if !strings.Contains(m.View(), "Last run: 3000 pts") {
		t.Error("view should show the last run")
	}

	// Only the run's own mode mentions it.
	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.lastRunLine() != "" {
		t.Errorf("lastRunLine() in %s = %q, want empty", m.modeID(), m.lastRunLine())
	}
}

func TestScoreboardFocusUnknownRun(t *testing.T) {
	store := openStore(t)
	seedRuns(t, store, storage.RunResult{GameID: "2048", Score: 100, MaxTile: 16, Rows: 4, Cols: 4})

	m := NewScoreboardModel(store, 80, 24)
	m.FocusRun("no-such-run")
	m.FocusRun("")
	if m.modeID() != "2048" || m.table.Cursor() != 0 || m.lastRun != nil {
		t.Errorf("unknown run changed the board: mode=%s cursor=%d last=%v", m.modeID(), m.table.Cursor(), m.lastRun)
	}

	NewScoreboardModel(nil, 80, 24).FocusRun("anything")
}
