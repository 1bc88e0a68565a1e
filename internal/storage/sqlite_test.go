package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRunRoundTrip(t *testing.T) {
	store := openStore(t)

	id, err := store.SaveRun(Run{GameID: "polyfit", Player: "ann", Score: 120, Solved: 4, PieceSize: 4})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d", id)
	}

	runs, err := store.TopScores("polyfit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("TopScores() returned %d runs, want 1", len(runs))
	}
	got := runs[0]
	if got.ID != id || got.Player != "ann" || got.Score != 120 || got.Solved != 4 || got.PieceSize != 4 {
		t.Errorf("run = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openStore(t)

	for _, s := range []int{100, 50, 500, 200, 400} {
		if _, err := store.SaveScore("polyfit", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("polyfit_relaxed", 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"top three", 3, []int{500, 400, 200}},
		{"default limit", 0, []int{500, 400, 200, 100, 50}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := store.TopScores("polyfit", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(runs) != len(tc.want) {
				t.Fatalf("got %d runs, want %d", len(runs), len(tc.want))
			}
			for i, w := range tc.want {
				if runs[i].Score != w {
					t.Errorf("run %d score = %d, want %d", i, runs[i].Score, w)
				}
			}
		})
	}

	all, err := store.AllScores("polyfit")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() = %d runs, want 5", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("polyfit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d", high)
	}

	store.SaveScore("polyfit", 100)
	store.SaveScore("polyfit", 300)
	store.SaveScore("polyfit_relaxed", 50)

	if high, _ := store.HighScore("polyfit"); high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}

	if err := store.ClearScores("polyfit"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if runs, _ := store.TopScores("polyfit", 10); len(runs) != 0 {
		t.Errorf("%d runs left after clear", len(runs))
	}
	if runs, _ := store.TopScores("polyfit_relaxed", 10); len(runs) != 1 {
		t.Error("clearing one mode should not touch another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	store.SaveRun(Run{GameID: "polyfit", Score: 100, Solved: 2})
	store.SaveRun(Run{GameID: "polyfit", Score: 300, Solved: 6})
	store.SaveRun(Run{GameID: "polyfit_relaxed", Score: 40, Solved: 1})

	stats, err := store.GetGameStats("polyfit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalSolved != 8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["polyfit_relaxed"].HighScore != 40 {
		t.Errorf("all stats = %v", all)
	}
}
