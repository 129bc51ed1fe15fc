package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/apex/log"
	"github.com/dgraph-io/badger/v4"
	petname "github.com/dustinkirkland/golang-petname"
	uuid "github.com/satori/go.uuid"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	gamePrefix     = "game/"
)

// Winner names as recorded in game records.
const (
	WinnerWhite = "White"
	WinnerBlack = "Black"
)

// Preferences stores user settings for the board window.
type Preferences struct {
	BoardSize      int       `json:"board_size"`
	ShowLabels     bool      `json:"show_labels"`
	ShowHighlights bool      `json:"show_highlights"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		BoardSize:      640,
		ShowLabels:     true,
		ShowHighlights: true,
		LastPlayed:     time.Now(),
	}
}

// GameRecord describes a finished game.
type GameRecord struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Winner   string    `json:"winner"`
	Moves    int       `json:"moves"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// Duration returns how long the game lasted.
func (r GameRecord) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Stats stores aggregate results.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
}

// WhiteWinRate returns White's share of finished games as a percentage (0-100).
func (s *Stats) WhiteWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.WhiteWins) / float64(s.GamesPlayed) * 100
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dir, err)
	}
	log.WithField("dir", dir).Debug("database opened")

	return &Storage{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, keyPreferences, prefs)
	})
	return prefs, err
}

// LoadStats loads aggregate results, returns empty stats if not found.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, keyStats, stats)
	})
	return stats, err
}

// RecordGame stores a finished game and updates the aggregate results in a
// single transaction. A missing ID or name is generated.
func (s *Storage) RecordGame(rec GameRecord) (GameRecord, error) {
	if rec.Winner != WinnerWhite && rec.Winner != WinnerBlack {
		return rec, fmt.Errorf("record game: unknown winner %q", rec.Winner)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewV4().String()
	}
	if rec.Name == "" {
		rec.Name = petname.Generate(2, "-")
	}
	if rec.Finished.IsZero() {
		rec.Finished = time.Now()
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		stats := &Stats{}
		if err := getJSON(txn, keyStats, stats); err != nil {
			return err
		}
		stats.GamesPlayed++
		if rec.Winner == WinnerWhite {
			stats.WhiteWins++
		} else {
			stats.BlackWins++
		}

		if err := setJSON(txn, gamePrefix+rec.ID, rec); err != nil {
			return err
		}
		return setJSON(txn, keyStats, stats)
	})
	if err != nil {
		return rec, fmt.Errorf("record game %s: %w", rec.ID, err)
	}
	log.WithFields(log.Fields{
		"id":     rec.ID,
		"winner": rec.Winner,
		"moves":  rec.Moves,
	}).Debug("game stored")
	return rec, nil
}

// Games returns every recorded game, oldest first.
func (s *Storage) Games() ([]GameRecord, error) {
	var games []GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			games = append(games, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Finished.Before(games[j].Finished)
	})
	return games, nil
}

// getJSON decodes the value at key into v, leaving v untouched if the key is absent.
func getJSON(txn *badger.Txn, key string, v interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}
