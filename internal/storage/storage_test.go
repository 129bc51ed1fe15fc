package storage

import (
	"os"
	"testing"
	"time"

	"github.com/hailam/chessboard/internal/testutil"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	testutil.AssertNoError(t, err, "open storage")
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close storage: %v", err)
		}
	})
	return s
}

func TestPreferences(t *testing.T) {
	s := openTemp(t)

	t.Run("Defaults", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, prefs.BoardSize, 640)
		testutil.AssertTrue(t, prefs.ShowLabels, "labels on by default")
		testutil.AssertTrue(t, prefs.ShowHighlights, "highlights on by default")
	})

	t.Run("RoundTrip", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.BoardSize = 480
		prefs.ShowLabels = false
		testutil.AssertNoError(t, s.SavePreferences(prefs))

		loaded, err := s.LoadPreferences()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, loaded.BoardSize, 480)
		testutil.AssertTrue(t, !loaded.ShowLabels, "labels should be off")
		testutil.AssertTrue(t, loaded.ShowHighlights, "highlights should stay on")
	})
}

func TestRecordGame(t *testing.T) {
	s := openTemp(t)

	stats, err := s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *stats, Stats{})
	testutil.AssertEqual(t, stats.WhiteWinRate(), 0.0)

	start := time.Now().Add(-time.Minute)
	first, err := s.RecordGame(GameRecord{Winner: WinnerBlack, Moves: 4, Started: start, Finished: start.Add(10 * time.Second)})
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, first.ID != "", "ID should be generated")
	testutil.AssertTrue(t, first.Name != "", "name should be generated")
	testutil.AssertEqual(t, first.Duration(), 10*time.Second)

	second, err := s.RecordGame(GameRecord{ID: "fixed", Name: "scholar", Winner: WinnerWhite, Moves: 7, Started: start})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, second.ID, "fixed")

	stats, err = s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *stats, Stats{GamesPlayed: 2, WhiteWins: 1, BlackWins: 1})
	testutil.AssertEqual(t, stats.WhiteWinRate(), 50.0)

	games, err := s.Games()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 2)
	testutil.AssertEqual(t, games[0].ID, first.ID)
	testutil.AssertEqual(t, games[1].Name, "scholar")
	testutil.AssertEqual(t, games[1].Moves, 7)
}

func TestRecordGameRejectsUnknownWinner(t *testing.T) {
	s := openTemp(t)

	_, err := s.RecordGame(GameRecord{Winner: "Nobody"})
	if err == nil {
		t.Fatal("expected an error for an unknown winner")
	}

	stats, err := s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.GamesPlayed, 0)
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	dbDir, err := GetDatabaseDir()
	testutil.AssertNoError(t, err)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
