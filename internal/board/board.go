package board

import (
	"fmt"
	"math"
)

// View is the read-only surface a renderer draws from.
type View interface {
	Squares() []Square
	Length() float64
	Position(sq Square) (x, y float64)
	PieceAt(sq Square) Piece
	Pieces() map[Square]Piece
	SideToMove() Side
	Selected() Square
	LegalMoves() SquareSet
	EnPassant() Square
	Winner() Side
}

// Board owns the game state and is the single entry point for input.
// It is not safe for concurrent use: callers serialize touches.
type Board struct {
	length  float64
	squares []Square
	state   State
}

var _ View = (*Board)(nil)

// New creates a board in the starting arrangement whose squares are length
// pixels wide. It panics if length is not positive.
func New(length float64) *Board {
	if !(length > 0) {
		panic(fmt.Sprintf("board: square length must be positive, got %v", length))
	}
	b := &Board{
		length:  length,
		squares: make([]Square, 0, Rows*Columns),
		state:   NewState(),
	}
	for row := 1; row <= Rows; row++ {
		for column := 1; column <= Columns; column++ {
			b.squares = append(b.squares, NewSquare(column, row))
		}
	}
	return b
}

// Squares returns the 64 squares ordered row by row, starting at row 1.
func (b *Board) Squares() []Square {
	squares := make([]Square, len(b.squares))
	copy(squares, b.squares)
	return squares
}

// Get returns the square at column and row (1-8). It panics outside the board.
func (b *Board) Get(column, row int) Square {
	return NewSquare(column, row)
}

// Length returns the side length of a square in pixels.
func (b *Board) Length() float64 {
	return b.length
}

// Position returns the pixel origin of sq, measured from the rendering origin.
func (b *Board) Position(sq Square) (x, y float64) {
	return float64(sq.Column()-1) * b.length, float64(sq.Row()-1) * b.length
}

// Contains returns true if (x, y) maps to a square on the board.
func (b *Board) Contains(x, y float64) bool {
	column := int(math.Ceil(x / b.length))
	row := int(math.Ceil(y / b.length))
	return column >= 1 && column <= Columns && row >= 1 && row <= Rows
}

// SquareAt returns the square under (x, y). Both coordinates are divided by
// the square length and rounded up; it panics when the result is off the board.
func (b *Board) SquareAt(x, y float64) Square {
	return NewSquare(int(math.Ceil(x/b.length)), int(math.Ceil(y/b.length)))
}

// Touch handles a touch at (x, y) in board pixel space.
func (b *Board) Touch(x, y float64) {
	b.state = Transition(b.state, b.SquareAt(x, y))
}

// State returns a copy of the current state.
func (b *Board) State() State {
	return b.state
}

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	return b.state.PieceAt(sq)
}

// Pieces returns a snapshot of the occupied squares.
func (b *Board) Pieces() map[Square]Piece {
	return b.state.Pieces()
}

// SideToMove returns the side whose turn it is.
func (b *Board) SideToMove() Side {
	return b.state.SideToMove()
}

// Selected returns the selected square, or NoSquare.
func (b *Board) Selected() Square {
	return b.state.Selected()
}

// LegalMoves returns the highlighted destinations of the current selection.
func (b *Board) LegalMoves() SquareSet {
	return b.state.LegalMoves()
}

// EnPassant returns the live en passant square, or NoSquare.
func (b *Board) EnPassant() Square {
	return b.state.EnPassant()
}

// Winner returns the winning side, or NoSide.
func (b *Board) Winner() Side {
	return b.state.Winner()
}

// Banner returns the end-of-game message for winner.
func Banner(winner Side) string {
	return fmt.Sprintf("Checkmate! %s has won!", winner)
}
