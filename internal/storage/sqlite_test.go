package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Mode: "campaign", Seed: 1, Score: 100, LevelReached: 2, DurationSecs: 30},
		{Mode: "campaign", Seed: 1, Score: 50, LevelReached: 1, DurationSecs: 10},
		{Mode: "campaign", Seed: 1, Score: 200, LevelReached: 3, DurationSecs: 90},
		{Mode: "daily", Seed: 20260830, Score: 500, LevelReached: 1, DurationSecs: 45},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("campaign", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 campaign runs, got %d", len(runs))
	}

	// Sorted by score descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in score order: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}
	if runs[0].LevelReached != 3 {
		t.Errorf("Expected best run to reach level 3, got %d", runs[0].LevelReached)
	}

	dailyRuns, err := store.TopRuns("daily", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(dailyRuns) != 1 {
		t.Errorf("Expected 1 daily run, got %d", len(dailyRuns))
	}
	if dailyRuns[0].Seed != 20260830 {
		t.Errorf("Daily seed = %d, want 20260830", dailyRuns[0].Seed)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Mode: "campaign", Score: (i + 1) * 100, LevelReached: i + 1})
	}

	runs, err := store.TopRuns("campaign", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("campaign")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best of 0 for empty mode, got %d", best)
	}

	store.SaveRun(RunRecord{Mode: "campaign", Score: 100})
	store.SaveRun(RunRecord{Mode: "campaign", Score: 300})
	store.SaveRun(RunRecord{Mode: "campaign", Score: 200})

	best, err = store.BestScore("campaign")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best of 300, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "campaign", Score: 100, LevelReached: 2, DurationSecs: 30})
	store.SaveRun(RunRecord{Mode: "campaign", Score: 300, LevelReached: 5, DurationSecs: 70})
	store.SaveRun(RunRecord{Mode: "daily", Score: 999, LevelReached: 1, DurationSecs: 5})

	stats, err := store.Stats("campaign")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, want 300", stats.BestScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, want 5", stats.BestLevel)
	}
	if stats.TotalSeconds != 100 {
		t.Errorf("TotalSeconds = %d, want 100", stats.TotalSeconds)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("practice")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || stats.BestLevel != 0 {
		t.Errorf("Empty mode stats should be zero, got %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "campaign", Score: 100})
	store.SaveRun(RunRecord{Mode: "campaign", Score: 200})
	store.SaveRun(RunRecord{Mode: "daily", Score: 300})

	if err := store.ClearRuns("campaign"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	campaignRuns, _ := store.TopRuns("campaign", 10)
	if len(campaignRuns) != 0 {
		t.Errorf("Expected 0 campaign runs after clear, got %d", len(campaignRuns))
	}

	dailyRuns, _ := store.TopRuns("daily", 10)
	if len(dailyRuns) != 1 {
		t.Error("Daily runs should not be affected by clearing campaign")
	}
}
