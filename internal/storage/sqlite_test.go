package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("racer", "ana@example.com", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("racer", "ana@example.com")
	if err != nil || best != 42 {
		t.Errorf("BestScore() = %d, %v; want 42", best, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.CreateUser("ana", "ana@example.com", "hash"); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	// Save some scores
	for _, sc := range []int{100, 50, 200} {
		if _, err := store.SaveScore("racer", "ana@example.com", sc); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// A player without an account row
	if _, err := store.SaveScore("racer", "ghost@example.com", 150); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	// Different game
	if _, err := store.SaveScore("other", "ana@example.com", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("racer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []int{200, 150, 100, 50}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, sc := range want {
		if scores[i].Score != sc {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, sc)
		}
	}
	if scores[0].Username != "ana" || scores[0].UserEmail != "ana@example.com" {
		t.Errorf("top entry = %+v, want ana", scores[0])
	}
	if scores[1].Username != "" {
		t.Errorf("orphan score username = %q, want empty", scores[1].Username)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", "a@b.c", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScores(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	best, err := store.BestScore("racer", "ana@example.com")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for a new player, got %d", best)
	}

	store.SaveScore("racer", "ana@example.com", 100)
	store.SaveScore("racer", "ana@example.com", 300)
	store.SaveScore("racer", "ana@example.com", 200)
	store.SaveScore("racer", "bob@example.com", 900)
	store.SaveScore("other", "ana@example.com", 7)

	best, _ = store.BestScore("racer", "ana@example.com")
	if best != 300 {
		t.Errorf("BestScore() = %d, want 300", best)
	}

	high, _ := store.HighScore("racer")
	if high != 900 {
		t.Errorf("HighScore() = %d, want 900", high)
	}

	bests, err := store.UserBests("ana@example.com")
	if err != nil {
		t.Fatalf("UserBests() failed: %v", err)
	}
	if len(bests) != 2 || bests["racer"] != 300 || bests["other"] != 7 {
		t.Errorf("UserBests() = %v", bests)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("racer", "a@b.c", 100)
	store.SaveScore("racer", "a@b.c", 200)
	store.SaveScore("other", "a@b.c", 300)

	// Clear only racer scores
	if err := store.ClearScores("racer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	racerScores, _ := store.TopScores("racer", 10)
	if len(racerScores) != 0 {
		t.Errorf("Expected 0 racer scores after clear, got %d", len(racerScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing racer")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("racer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("racer", "a@b.c", 10)
	store.SaveScore("racer", "a@b.c", 30)
	store.SaveScore("racer", "d@e.f", 50)

	stats, err = store.GetGameStats("racer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Players != 2 || stats.HighScore != 50 || stats.TotalScore != 90 || stats.AvgScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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

func TestStoreUsers(t *testing.T) {
	store := openTestStore(t)

	u, err := store.CreateUser("ana", "ana@example.com", "hash-1")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if u.ID == 0 || u.Username != "ana" || u.PasswordHash != "hash-1" {
		t.Errorf("created user = %+v", u)
	}

	if _, err := store.CreateUser("other", "ana@example.com", "hash-2"); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate CreateUser() err = %v, want ErrUserExists", err)
	}

	got, err := store.UserByEmail("ana@example.com")
	if err != nil || got.ID != u.ID {
		t.Errorf("UserByEmail() = %+v, %v", got, err)
	}
	if _, err := store.UserByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UserByEmail(missing) err = %v, want ErrUserNotFound", err)
	}
}

func TestStoreCurrentUser(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.CurrentUser(); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("CurrentUser() with nobody signed in err = %v", err)
	}

	store.CreateUser("ana", "ana@example.com", "h")
	store.CreateUser("bob", "bob@example.com", "h")

	if err := store.SetCurrentUser("ana@example.com"); err != nil {
		t.Fatalf("SetCurrentUser() failed: %v", err)
	}
	if err := store.SetCurrentUser("bob@example.com"); err != nil {
		t.Fatalf("SetCurrentUser() failed: %v", err)
	}
	u, err := store.CurrentUser()
	if err != nil || u.Username != "bob" {
		t.Errorf("CurrentUser() = %+v, %v; want bob", u, err)
	}

	if err := store.ClearCurrentUser(); err != nil {
		t.Fatalf("ClearCurrentUser() failed: %v", err)
	}
	if _, err := store.CurrentUser(); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("CurrentUser() after clear err = %v", err)
	}
}

func TestScoreboard(t *testing.T) {
	store := openTestStore(t)
	board := store.Scoreboard("racer")

	if err := board.RecordScore("ana@example.com", 80); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	if err := board.RecordScore("ana@example.com", 40); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	best, err := board.BestScore("ana@example.com")
	if err != nil || best != 80 {
		t.Errorf("BestScore() = %d, %v; want 80", best, err)
	}

	// Slots are independent.
	other, _ := store.Scoreboard("other").BestScore("ana@example.com")
	if other != 0 {
		t.Errorf("other slot best = %d, want 0", other)
	}

	store.Close()
	if _, err := board.BestScore("ana@example.com"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("BestScore() on closed store err = %v, want ErrStorageUnavailable", err)
	}
	if err := board.RecordScore("ana@example.com", 1); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("RecordScore() on closed store err = %v, want ErrStorageUnavailable", err)
	}
}
