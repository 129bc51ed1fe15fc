package board

import (
	"testing"

	"github.com/hailam/chessboard/internal/testutil"
)

const testLength = 100

// touch taps the center of sq.
func touch(b *Board, squares ...Square) {
	for _, sq := range squares {
		x, y := b.Position(sq)
		b.Touch(x+b.Length()/2, y+b.Length()/2)
	}
}

func TestTouchMovesPawn(t *testing.T) {
	b := New(testLength)

	touch(b, E2)
	testutil.AssertEqual(t, b.Selected(), E2)
	testutil.AssertEqual(t, b.LegalMoves(), SetOf(E3, E4))

	touch(b, E4)
	testutil.AssertEqual(t, b.PieceAt(E4), WhitePawn)
	testutil.AssertEqual(t, b.PieceAt(E2), NoPiece)
	testutil.AssertEqual(t, b.EnPassant(), E3)
	testutil.AssertEqual(t, b.SideToMove(), Black)
	testutil.AssertEqual(t, b.Selected(), NoSquare)
	testutil.AssertEqual(t, b.LegalMoves(), SquareSet(0))
}

func TestTouchEnPassant(t *testing.T) {
	b := New(testLength)

	touch(b,
		H2, H3,
		B7, B5,
		H3, H4,
		B5, B4,
		A2, A4,
	)
	testutil.AssertEqual(t, b.EnPassant(), A3)

	touch(b, B4)
	testutil.AssertEqual(t, b.LegalMoves(), SetOf(A3, B3))

	touch(b, A3)
	testutil.AssertEqual(t, b.PieceAt(A4), NoPiece)
	testutil.AssertEqual(t, b.PieceAt(A3), BlackPawn)
	testutil.AssertEqual(t, b.PieceAt(B4), NoPiece)
	testutil.AssertEqual(t, b.State().Count(White), 15)
	testutil.AssertEqual(t, b.EnPassant(), NoSquare)
}

func TestEnPassantExpiresAfterOneTurn(t *testing.T) {
	b := New(testLength)

	touch(b,
		H2, H3,
		B7, B5,
		H3, H4,
		B5, B4,
		A2, A4,
		G7, G6, // Black declines
		G2, G3,
	)

	touch(b, B4)
	testutil.AssertEqual(t, b.LegalMoves(), SetOf(B3))
}

func TestFoolsMate(t *testing.T) {
	b := New(testLength)

	touch(b,
		F2, F3,
		E7, E5,
		G2, G4,
		D8, H4,
	)
	testutil.AssertEqual(t, b.Winner(), Black)
	testutil.AssertEqual(t, Banner(b.Winner()), "Checkmate! Black has won!")
	testutil.AssertTrue(t, b.State().Terminal(), "board should be terminal")

	// Any touch now resets, and the touched square is ignored.
	touch(b, E2)
	testutil.AssertEqual(t, b.Winner(), NoSide)
	testutil.AssertEqual(t, b.Selected(), NoSquare)
	testutil.AssertEqual(t, b.SideToMove(), White)
	testutil.AssertEqual(t, len(b.Pieces()), 32)
	start := NewState()
	testutil.AssertEqual(t, b.Pieces(), start.Pieces())
}

func TestTouchSameSquareDeselects(t *testing.T) {
	tests := []struct {
		name  string
		setup []Square
		sq    Square
	}{
		{"own piece", nil, E2},
		{"opponent piece", nil, E7},
		{"empty square", nil, E4},
		{"after a move", []Square{E2, E4}, D7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(testLength)
			touch(b, tc.setup...)
			touch(b, tc.sq, tc.sq)
			testutil.AssertEqual(t, b.Selected(), NoSquare)
			testutil.AssertEqual(t, b.LegalMoves(), SquareSet(0))
		})
	}
}

func TestTouchReselects(t *testing.T) {
	b := New(testLength)

	touch(b, E2, D2)
	testutil.AssertEqual(t, b.Selected(), D2)
	testutil.AssertEqual(t, b.LegalMoves(), SetOf(D3, D4))

	// An opponent piece is selectable but shows no moves.
	touch(b, E7)
	testutil.AssertEqual(t, b.Selected(), E7)
	testutil.AssertEqual(t, b.LegalMoves(), SquareSet(0))

	// Touching through an opponent selection never moves it.
	touch(b, E5)
	testutil.AssertEqual(t, b.Selected(), NoSquare)
	testutil.AssertEqual(t, b.PieceAt(E7), BlackPawn)
	testutil.AssertEqual(t, b.SideToMove(), White)
}

func TestTouchIllegalDestination(t *testing.T) {
	b := New(testLength)

	touch(b, E2, E5)
	testutil.AssertEqual(t, b.Selected(), NoSquare)
	testutil.AssertEqual(t, b.PieceAt(E2), WhitePawn)
	testutil.AssertEqual(t, b.PieceAt(E5), NoPiece)
	testutil.AssertEqual(t, b.SideToMove(), White)

	// A capture-shaped touch onto a friendly piece reselects it.
	touch(b, B1, D2)
	testutil.AssertEqual(t, b.Selected(), D2)
	testutil.AssertEqual(t, b.PieceAt(B1), WhiteKnight)
}

func TestTouchCoordinateMapping(t *testing.T) {
	b := New(testLength)

	tests := []struct {
		x, y float64
		want Square
	}{
		{0.1, 0.1, A1},
		{100, 100, A1},
		{100.5, 0.1, B1},
		{450, 350, E4},
		{800, 800, H8},
	}
	for _, tc := range tests {
		testutil.AssertTrue(t, b.Contains(tc.x, tc.y), "Contains(%v, %v)", tc.x, tc.y)
		testutil.AssertEqual(t, b.SquareAt(tc.x, tc.y), tc.want, "SquareAt(%v, %v)", tc.x, tc.y)
	}

	for _, c := range [][2]float64{{0, 50}, {50, 0}, {800.1, 5}, {5, 801}, {-20, 40}} {
		testutil.AssertTrue(t, !b.Contains(c[0], c[1]), "Contains(%v, %v)", c[0], c[1])
		testutil.AssertPanics(t, func() { b.Touch(c[0], c[1]) }, "Touch(%v, %v)", c[0], c[1])
	}
}

func TestNewRejectsNonPositiveLength(t *testing.T) {
	testutil.AssertPanics(t, func() { New(0) })
	testutil.AssertPanics(t, func() { New(-1) })
}

func TestPosition(t *testing.T) {
	b := New(50)
	x, y := b.Position(A1)
	testutil.AssertEqual(t, [2]float64{x, y}, [2]float64{0, 0})
	x, y = b.Position(C5)
	testutil.AssertEqual(t, [2]float64{x, y}, [2]float64{100, 200})
}

func TestAccessorsAreIdempotent(t *testing.T) {
	b := New(testLength)
	touch(b, E2, E4, D7, D5, E4)

	first := struct {
		Squares []Square
		Pieces  map[Square]Piece
		Legal   SquareSet
		Sel     Square
		Winner  Side
	}{b.Squares(), b.Pieces(), b.LegalMoves(), b.Selected(), b.Winner()}

	for i := 0; i < 3; i++ {
		again := first
		again.Squares = b.Squares()
		again.Pieces = b.Pieces()
		again.Legal = b.LegalMoves()
		again.Sel = b.Selected()
		again.Winner = b.Winner()
		testutil.AssertEqual(t, again, first)
	}

	testutil.AssertEqual(t, first.Sel, E4)
	testutil.AssertEqual(t, first.Legal, SetOf(D5, E5))
}

func TestSquaresReturnsCopy(t *testing.T) {
	b := New(testLength)
	squares := b.Squares()
	squares[0] = H8
	testutil.AssertEqual(t, b.Squares()[0], A1)
}
