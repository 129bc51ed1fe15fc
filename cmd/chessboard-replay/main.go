// Command chessboard-replay plays a script of touches against a fresh board
// and prints the board after each one.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/replay"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/termview"
)

var (
	length   = flag.Float64("length", 100, "square edge in pixels used to interpret coordinates")
	script   = flag.String("script", "-", "touch script to replay (- for stdin)")
	noColor  = flag.Bool("no-color", false, "disable colored output")
	glyphs   = flag.Bool("glyphs", false, "draw pieces as Unicode chess symbols")
	final    = flag.Bool("final", false, "print only the final frame")
	record   = flag.Bool("record", false, "save a finished game to the data store")
	dataDir  = flag.String("data-dir", "", "directory for saved games (with -record)")
	logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	log.SetHandler(cli.Default)
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	if *noColor {
		color.NoColor = true
	}

	if err := run(os.Stdout); err != nil {
		log.WithError(err).Fatal("replay failed")
	}
}

func run(w io.Writer) error {
	in, err := openScript(*script)
	if err != nil {
		return err
	}
	defer in.Close()

	if *length <= 0 {
		return fmt.Errorf("square length must be positive, got %v", *length)
	}
	b := board.New(*length)

	touches, err := replay.Parse(in, b)
	if err != nil {
		return fmt.Errorf("parse %s: %w", *script, err)
	}
	log.WithField("touches", len(touches)).Debug("script loaded")

	view := termview.NewRenderer(nil, *glyphs)
	started := time.Now()
	turn, moves, over := b.SideToMove(), 0, false

	err = replay.Run(b, touches, func(i int, t replay.Touch) error {
		sq := b.SquareAt(t.X, t.Y)
		log.WithFields(log.Fields{
			"touch":  i + 1,
			"line":   t.Line,
			"square": sq.String(),
		}).Debug("touch")

		switch {
		case over && b.Winner() == board.NoSide:
			over, moves, started = false, 0, time.Now()
			log.Info("new game")
		case b.SideToMove() != turn:
			moves++
			if winner := b.Winner(); winner != board.NoSide {
				over = true
				log.WithField("moves", moves).Info(board.Banner(winner))
				if err := saveGame(winner, moves, started); err != nil {
					return err
				}
			}
		}
		turn = b.SideToMove()

		if *final {
			return nil
		}
		fmt.Fprintf(w, "\n# %d: %s (line %d)\n", i+1, sq, t.Line)
		return view.Render(w, b)
	})
	if err != nil {
		return err
	}

	if *final {
		return view.Render(w, b)
	}
	return nil
}

// openScript opens path for reading, with "-" meaning stdin.
func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	return f, nil
}

// saveGame records a finished game when -record is set.
func saveGame(winner board.Side, moves int, started time.Time) error {
	if !*record {
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
		return err
	}
	defer store.Close()

	rec, err := store.RecordGame(storage.GameRecord{
		Winner:  winner.String(),
		Moves:   moves,
		Started: started,
	})
	if err != nil {
		return err
	}
	log.WithField("id", rec.ID).WithField("name", rec.Name).Info("game recorded")
	return nil
}
