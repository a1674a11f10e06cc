package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, run := range []struct{ score, level int }{
		{25, 2}, {80, 6}, {41, 3},
	} {
		if _, err := store.SaveRun(run.score, run.level); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 80 || runs[1].Score != 41 || runs[2].Score != 25 {
		t.Errorf("runs not ordered by score: %d, %d, %d",
			runs[0].Score, runs[1].Score, runs[2].Score)
	}
	if runs[0].Level != 6 {
		t.Errorf("best run level = %d, want 6", runs[0].Level)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(i*10, i); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit 3, got %d", len(runs))
	}
}

func TestStoreBestScoreAndLevel(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database reports zero, not an error.
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() on empty db failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty db = %d, want 0", best)
	}

	if _, err := store.SaveRun(12, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(55, 4); err != nil {
		t.Fatal(err)
	}

	if best, _ := store.BestScore(); best != 55 {
		t.Errorf("BestScore() = %d, want 55", best)
	}
	if level, _ := store.BestLevel(); level != 4 {
		t.Errorf("BestLevel() = %d, want 4", level)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(10, 1); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}
