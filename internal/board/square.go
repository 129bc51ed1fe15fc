// Package board implements the rules engine behind the touch-driven chess board.
package board

import (
	"fmt"
	"math"
)

// Board dimensions.
const (
	Columns = 8
	Rows    = 8
)

// Square represents one of the 64 board cells.
// Squares are ordered row by row starting at row 1: A1=0, H1=7, A8=56, H8=63.
// Rows grow away from the rendering origin; columns grow left to right.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare returns the square at the given column and row (both 1-indexed).
// It panics when either coordinate lies outside the board: a miss here always
// means a coordinate mapping bug upstream.
func NewSquare(column, row int) Square {
	if column < 1 || column > Columns || row < 1 || row > Rows {
		panic(fmt.Sprintf("board: no square at column %d, row %d", column, row))
	}
	return Square((row-1)*Columns + column - 1)
}

// Column returns the column of the square (1-8, where 1=a, 8=h).
func (sq Square) Column() int {
	return int(sq)%Columns + 1
}

// Row returns the row of the square (1-8).
func (sq Square) Row() int {
	return int(sq)/Columns + 1
}

// IsValid returns true if the square is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Column()-1, sq.Row())
}

// Shade is the display color of a square.
type Shade uint8

const (
	Light Shade = iota
	Dark
)

// String returns the shade name.
func (s Shade) String() string {
	if s == Dark {
		return "Dark"
	}
	return "Light"
}

// Shade returns the display color: dark when exactly one of column and row is even.
func (sq Square) Shade() Shade {
	if (sq.Column()+sq.Row())%2 == 1 {
		return Dark
	}
	return Light
}

// ColumnsApart returns the absolute column distance between two squares.
func (sq Square) ColumnsApart(other Square) int {
	return abs(sq.Column() - other.Column())
}

// RowsApart returns the absolute row distance between two squares.
func (sq Square) RowsApart(other Square) int {
	return abs(sq.Row() - other.Row())
}

// DistanceTo returns the Euclidean distance in squares.
func (sq Square) DistanceTo(other Square) float64 {
	return math.Hypot(float64(sq.ColumnsApart(other)), float64(sq.RowsApart(other)))
}

// IsInlineWith returns true if both squares share a row or a column.
func (sq Square) IsInlineWith(other Square) bool {
	return sq.Row() == other.Row() || sq.Column() == other.Column()
}

// IsDiagonalTo returns true if both squares share a diagonal.
// A square is diagonal to itself.
func (sq Square) IsDiagonalTo(other Square) bool {
	return sq.RowsApart(other) == sq.ColumnsApart(other)
}

// IsAheadOf returns true if sq is in the same column as other and lies in
// side's forward direction from it.
func (sq Square) IsAheadOf(other Square, side Side) bool {
	return sq.Column() == other.Column() && (sq.Row()-other.Row())*side.Forward() > 0
}

// IsBetween returns true if sq lies strictly between first and second on a
// shared row, column or diagonal.
func (sq Square) IsBetween(first, second Square) bool {
	if !sq.IsValid() || !first.IsValid() || !second.IsValid() {
		return false
	}
	return betweenSet[first][second].Has(sq)
}

var betweenSet [64][64]SquareSet

func init() {
	// For each aligned pair, collect the squares strictly between them
	for first := A1; first <= H8; first++ {
		for second := A1; second <= H8; second++ {
			if first == second {
				continue
			}
			if !first.IsInlineWith(second) && !first.IsDiagonalTo(second) {
				continue
			}

			dc := sign(second.Column() - first.Column())
			dr := sign(second.Row() - first.Row())

			var between SquareSet
			c, r := first.Column()+dc, first.Row()+dr
			for c != second.Column() || r != second.Row() {
				between = between.Add(NewSquare(c, r))
				c += dc
				r += dr
			}
			betweenSet[first][second] = between
		}
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
