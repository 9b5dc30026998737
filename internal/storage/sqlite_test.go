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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveMatchAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.SaveMatch(MatchRecord{
		Player:        "alice",
		PlayerScore:   11,
		AIScore:       7,
		Winner:        "player",
		Level:         2.5,
		Difficulty:    "hard",
		DurationTicks: 5400,
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if rec.ID == 0 {
		t.Error("SaveMatch() should return the row ID")
	}
	if _, err := uuid.Parse(rec.MatchID); err != nil {
		t.Errorf("MatchID %q is not a UUID: %v", rec.MatchID, err)
	}

	got, err := store.MatchByID(rec.MatchID)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}
	if got.Player != "alice" || got.PlayerScore != 11 || got.AIScore != 7 ||
		got.Winner != "player" || got.Level != 2.5 || got.Difficulty != "hard" || got.DurationTicks != 5400 {
		t.Errorf("MatchByID() = %+v, expected the saved values", *got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestSaveMatchKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	rec, err := store.SaveMatch(MatchRecord{MatchID: id, PlayerScore: 3, AIScore: 11, Winner: "ai"})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if rec.MatchID != id {
		t.Errorf("MatchID = %q, expected %q", rec.MatchID, id)
	}

	if _, err := store.SaveMatch(MatchRecord{MatchID: id, Winner: "ai"}); err == nil {
		t.Error("saving a duplicate match ID should fail")
	}
}

func TestSaveMatchRejectsBadWinner(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{Winner: "draw"}); err == nil {
		t.Error("SaveMatch() should reject an unknown winner")
	}
}

func TestMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("MatchByID() = %+v, expected nil", got)
	}
}

func TestRecentMatchesNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveMatch(MatchRecord{PlayerScore: i, AIScore: 11, Winner: "ai"}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recs, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recs))
	}
	for i, want := range []int{4, 3, 2} {
		if recs[i].PlayerScore != want {
			t.Errorf("recs[%d].PlayerScore = %d, expected %d", i, recs[i].PlayerScore, want)
		}
	}

	all, err := store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("RecentMatches(0) = %d records, expected the default limit to cover all 5", len(all))
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Played != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", *empty)
	}

	matches := []MatchRecord{
		{PlayerScore: 11, AIScore: 5, Winner: "player", Level: 2},
		{PlayerScore: 11, AIScore: 9, Winner: "player", Level: 3},
		{PlayerScore: 4, AIScore: 11, Winner: "ai", Level: 1},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Played != 3 || stats.PlayerWins != 2 || stats.AIWins != 1 {
		t.Errorf("stats = %+v, expected 3 played, 2-1", *stats)
	}
	if stats.AvgLevel != 2 || stats.BestLevel != 3 {
		t.Errorf("levels avg=%f best=%f, expected 2 and 3", stats.AvgLevel, stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{Winner: "ai"}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recs, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Expected no matches after clear, got %d", len(recs))
	}
}
