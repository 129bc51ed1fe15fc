package board

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares, one bit per square index.
type SquareSet uint64

// AllSquares contains every square on the board.
const AllSquares SquareSet = 0xFFFFFFFFFFFFFFFF

// SetOf returns a set holding the given squares.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq added.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<sq
}

// Remove returns the set with sq removed.
func (s SquareSet) Remove(sq Square) SquareSet {
	return s &^ (1 << sq)
}

// Has returns true if sq is a member of the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.IsValid() && s&(1<<sq) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty returns true if the set has no members.
func (s SquareSet) Empty() bool {
	return s == 0
}

// First returns the lowest square in the set, or NoSquare.
func (s SquareSet) First() Square {
	if s == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(s)))
}

// ForEach calls f for each member in ascending square order.
func (s SquareSet) ForEach(f func(Square)) {
	for s != 0 {
		sq := s.First()
		s &= s - 1
		f(sq)
	}
}

// Squares returns the members in ascending square order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	s.ForEach(func(sq Square) {
		squares = append(squares, sq)
	})
	return squares
}

// String returns the members in algebraic notation, e.g. "{e3 e4}".
func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	s.ForEach(func(sq Square) {
		names = append(names, sq.String())
	})
	return "{" + strings.Join(names, " ") + "}"
}
