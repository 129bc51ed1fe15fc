// ChessBoard - a touch-driven chess board built with Ebitengine
package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	size       = flag.Int("size", 0, "board edge in pixels (default: saved preference)")
	labels     = flag.Bool("labels", true, "draw rank and file labels")
	highlights = flag.Bool("highlights", true, "highlight the selection and its legal moves")
	dataDir    = flag.String("data-dir", "", "directory for saved preferences and games")
	noStore    = flag.Bool("no-store", false, "do not read or write saved data")
	logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	log.SetHandler(cli.Default)
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.WithError(err).Fatal("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.WithField("path", *cpuprofile).Info("CPU profiling enabled")
	}

	store := openStorage()
	prefs := loadPreferences(store)

	game := ui.NewGame(store, prefs)
	defer game.Close()

	side := game.WindowSize()
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle("ChessBoard")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game loop stopped")
	}
}

// openStorage opens the data store, or returns nil when storage is disabled
// or unavailable. The board works without it.
func openStorage() *storage.Storage {
	if *noStore {
		return nil
	}

	var (
		store *storage.Storage
		err   error
	)
	if *dataDir != "" {
		store, err = storage.Open(*dataDir)
	} else {
		store, err = storage.OpenDefault()
	}
	if err != nil {
		log.WithError(err).Warn("storage unavailable, nothing will be saved")
		return nil
	}

	if stats, err := store.LoadStats(); err == nil && stats.GamesPlayed > 0 {
		log.WithFields(log.Fields{
			"games":      stats.GamesPlayed,
			"white_wins": stats.WhiteWins,
			"black_wins": stats.BlackWins,
		}).Info("welcome back")
	}
	return store
}

// loadPreferences reads saved preferences and applies the flags given on
// the command line on top of them.
func loadPreferences(store *storage.Storage) *storage.Preferences {
	prefs := storage.DefaultPreferences()
	if store != nil {
		saved, err := store.LoadPreferences()
		if err != nil {
			log.WithError(err).Warn("failed to load preferences")
		} else {
			prefs = saved
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			prefs.BoardSize = *size
		case "labels":
			prefs.ShowLabels = *labels
		case "highlights":
			prefs.ShowHighlights = *highlights
		}
	})
	prefs.LastPlayed = time.Now()

	if store != nil {
		if err := store.SavePreferences(prefs); err != nil {
			log.WithError(err).Warn("failed to save preferences")
		}
	}
	return prefs
}
