// internal/storage/sqlite_test.go
package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct {
		score, stage int
		outcome      string
	}{
		{1200, 2, "player"},
		{4500, 5, "base"},
		{300, 1, "player"},
	} {
		if _, err := store.SaveScore(run.score, run.stage, run.outcome); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d entries, want 3", len(scores))
	}
	if scores[0].Score != 4500 || scores[1].Score != 1200 || scores[2].Score != 300 {
		t.Errorf("scores not sorted descending: %v, %v, %v",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[0].Stage != 5 || scores[0].Outcome != "base" {
		t.Errorf("entry fields lost: %+v", scores[0])
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(i*100, 1, "player"); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("got %d entries, want 5", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 0 {
		t.Errorf("empty table high score = %d, want 0", best)
	}

	store.SaveScore(100, 1, "player")
	store.SaveScore(999, 3, "base")
	store.SaveScore(500, 2, "player")

	best, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 999 {
		t.Errorf("high score = %d, want 999", best)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(100, 1, "player")
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}
	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("got %d entries after clear, want 0", len(scores))
	}
}
