package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// saveScore records a run that carries only a score.
func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveRun(RunResult{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveScore(t, store, "2048", 1200)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("HighScore after reopen = %d, want 1200", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		saveScore(t, store, "2048", score)
	}
	// Different mode
	saveScore(t, store, "2048_endless", 500)

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if _, err := uuid.Parse(scores[i].RunID); err != nil {
			t.Errorf("scores[%d] run id %q is not a uuid", i, scores[i].RunID)
		}
	}

	endless, err := store.TopScores("2048_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := RunResult{GameID: "2048", Score: 2932, MaxTile: 256, Moves: 311, Rows: 4, Cols: 5}
	runID, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", runID, err)
	}

	got, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Score != run.Score || got.MaxTile != run.MaxTile || got.Moves != run.Moves ||
		got.Rows != run.Rows || got.Cols != run.Cols || got.GameID != run.GameID {
		t.Errorf("RunByID() = %+v, want fields of %+v", got, run)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Error("unknown run id should return nil")
	}

	other, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if other == runID {
		t.Error("run ids should be unique")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		saveScore(t, store, "test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for i := range 12 {
		saveScore(t, store, "many", i)
	}
	scores, err = store.TopScores("many", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("default limit returned %d scores, want 10", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "2048", 100)
	store.SaveRun(RunResult{GameID: "2048", Score: 300, MaxTile: 32})
	saveScore(t, store, "2048", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "2048", 100)
	saveScore(t, store, "2048", 200)
	saveScore(t, store, "2048_endless", 300)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("2048", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	endless, _ := store.TopScores("2048_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunResult{GameID: "2048", Score: 1000, MaxTile: 128, Moves: 100, Rows: 4, Cols: 4})
	store.SaveRun(RunResult{GameID: "2048", Score: 3000, MaxTile: 256, Moves: 300, Rows: 4, Cols: 4})
	store.SaveRun(RunResult{GameID: "2048_endless", Score: 50, MaxTile: 16, Moves: 9, Rows: 4, Cols: 4})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 3000 || stats.BestTile != 256 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 2000 || stats.TotalScore != 4000 || stats.TotalMoves != 400 {
		t.Errorf("aggregates = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() returned %d games, want 2", len(all))
	}
	if all["2048_endless"].HighScore != 50 || all["2048_endless"].BestTile != 16 {
		t.Errorf("endless stats = %+v", all["2048_endless"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tui2048/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tui2048", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreTileCounts(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []RunResult{
		{GameID: "2048", Score: 3000, MaxTile: 256, Moves: 200},
		{GameID: "2048", Score: 3500, MaxTile: 256, Moves: 220},
		{GameID: "2048", Score: 20000, MaxTile: 2048, Moves: 900},
		{GameID: "2048_endless", Score: 9000, MaxTile: 1024, Moves: 500},
	} {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Runs without a max tile are left out
	saveScore(t, store, "2048", 10)

	counts, err := store.TileCounts("2048")
	if err != nil {
		t.Fatalf("TileCounts() failed: %v", err)
	}
	if len(counts) != 2 || counts[256] != 2 || counts[2048] != 1 {
		t.Errorf("TileCounts() = %v, want map[256:2 2048:1]", counts)
	}
}
