package ui

import (
	"time"

	"github.com/apex/log"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by the input handler.
var UIScale float64 = 1.0

// MinBoardSize is the smallest board edge, in logical pixels, the window accepts.
const MinBoardSize = 240

// Game implements ebiten.Game interface.
type Game struct {
	// Core game state
	board   *board.Board
	moves   int
	started time.Time

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences

	// Components
	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager

	// HiDPI scaling
	scale float64
}

// NewGame creates a board window. store may be nil, in which case finished
// games and preference toggles are not persisted.
func NewGame(store *storage.Storage, prefs *storage.Preferences) *Game {
	if prefs == nil {
		prefs = storage.DefaultPreferences()
	}
	if prefs.BoardSize < MinBoardSize {
		prefs.BoardSize = MinBoardSize
	}

	length := float64(prefs.BoardSize) / board.Columns
	return &Game{
		board:    board.New(length),
		started:  time.Now(),
		storage:  store,
		prefs:    prefs,
		renderer: NewRenderer(length),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(),
		scale:    1.0,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if IsKeyJustPressed(ebiten.KeyL) {
		g.prefs.ShowLabels = !g.prefs.ShowLabels
		g.savePreferences()
	}
	if IsKeyJustPressed(ebiten.KeyH) {
		g.prefs.ShowHighlights = !g.prefs.ShowHighlights
		g.savePreferences()
	}
	if IsKeyJustPressed(ebiten.KeyM) {
		audio := g.feedback.Audio()
		audio.SetEnabled(!audio.IsEnabled())
	}

	if mx, my, ok := g.input.Tap(); ok {
		if x, y, inside := g.toBoard(mx, my); inside {
			g.touch(x, y)
		}
	}
	return nil
}

// toBoard converts a logical window position to board pixel space, whose
// origin is the bottom-left corner. Each pixel maps to its center so that
// the boundary pixels land inside their square.
func (g *Game) toBoard(mx, my int) (x, y float64, ok bool) {
	size := g.renderer.Size()
	x = float64(mx) + 0.5
	y = size - float64(my) - 0.5
	return x, y, g.board.Contains(x, y)
}

// touch forwards a board coordinate and reacts to what changed.
func (g *Game) touch(x, y float64) {
	before := g.board.State()
	g.board.Touch(x, y)
	after := g.board.State()

	switch {
	case before.Terminal():
		g.moves = 0
		g.started = time.Now()
		g.feedback.OnNewGame()
		log.Info("new game")

	case after.SideToMove() != before.SideToMove():
		g.moves++
		mover := before.SideToMove()
		opponent := mover.Next()
		captured := after.Count(opponent) < before.Count(opponent)
		to := g.board.SquareAt(x, y)

		log.WithFields(log.Fields{
			"side":    mover.String(),
			"from":    before.Selected().String(),
			"to":      to.String(),
			"capture": captured,
		}).Debug("move")

		if after.Terminal() {
			g.feedback.OnMoveMade(to, captured, false)
			g.gameOver(after.Winner())
			return
		}
		g.feedback.OnMoveMade(to, captured, after.InCheck(opponent))

	case after.Selected() != board.NoSquare && after.Selected() != before.Selected():
		if after.PieceAt(after.Selected()).Side() != after.SideToMove() {
			g.feedback.OnRefused(after.Selected())
			return
		}
		g.feedback.OnSelect()
	}
}

// gameOver announces the winner and records the finished game.
func (g *Game) gameOver(winner board.Side) {
	g.feedback.OnGameOver()
	log.WithField("winner", winner.String()).WithField("moves", g.moves).Info(board.Banner(winner))

	if g.storage == nil {
		return
	}
	rec, err := g.storage.RecordGame(storage.GameRecord{
		Winner:  winner.String(),
		Moves:   g.moves,
		Started: g.started,
	})
	if err != nil {
		log.WithError(err).Warn("failed to record game")
		return
	}
	log.WithField("id", rec.ID).WithField("name", rec.Name).Debug("game recorded")
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.WithError(err).Warn("failed to save preferences")
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	screen.Fill(g.renderer.Theme().Background)

	state := g.board.State()
	g.renderer.DrawBoard(screen, g.board)

	if g.prefs.ShowHighlights {
		checked := board.NoSquare
		if !state.Terminal() && state.InCheck(state.SideToMove()) {
			checked = kingSquare(g.board, state.SideToMove())
		}
		g.renderer.DrawHighlights(screen, g.board, checked)
	}
	if g.prefs.ShowLabels {
		g.renderer.DrawLabels(screen, g.board)
	}
	g.feedback.Draw(screen, g.renderer, g.board)
	g.renderer.DrawPieces(screen, g.board)

	if winner := g.board.Winner(); winner != board.NoSide {
		g.renderer.DrawBanner(screen, board.Banner(winner))
	}
}

// kingSquare returns the square of side's king on v, or NoSquare.
func kingSquare(v board.View, side board.Side) board.Square {
	king := board.NewPiece(board.King, side)
	for sq, p := range v.Pieces() {
		if p == king {
			return sq
		}
	}
	return board.NoSquare
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0 // Ensure minimum scale of 1.0
	}
	UIScale = g.scale

	side := int(g.renderer.Size() * g.scale)
	return side, side
}

// WindowSize returns the window edge in logical pixels.
func (g *Game) WindowSize() int {
	return int(g.renderer.Size())
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage == nil {
		return
	}
	g.prefs.LastPlayed = time.Now()
	g.savePreferences()
	if err := g.storage.Close(); err != nil {
		log.WithError(err).Warn("failed to close storage")
	}
}
