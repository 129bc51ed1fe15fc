package board

import (
	"math/rand"
	"testing"

	"github.com/hailam/chessboard/internal/testutil"
)

// position builds a state holding only the given pieces.
func position(toMove Side, pieces map[Square]Piece) State {
	s := NewState()
	for i := range s.placement {
		s.placement[i] = NoPiece
	}
	for sq, p := range pieces {
		s.placement[sq] = p
	}
	s.toMove = toMove
	return s
}

func TestStartingArrangement(t *testing.T) {
	s := NewState()

	testutil.AssertEqual(t, s.Count(White), 16)
	testutil.AssertEqual(t, s.Count(Black), 16)
	testutil.AssertEqual(t, s.PieceAt(E1), WhiteKing)
	testutil.AssertEqual(t, s.PieceAt(D8), BlackQueen)
	testutil.AssertEqual(t, s.PieceAt(B8), BlackKnight)
	testutil.AssertEqual(t, s.PieceAt(H2), WhitePawn)
	testutil.AssertEqual(t, s.SideToMove(), White)
	testutil.AssertEqual(t, s.EnPassant(), NoSquare)
	testutil.AssertEqual(t, s.Winner(), NoSide)

	for column := 1; column <= Columns; column++ {
		sq := NewSquare(column, 2)
		want := SetOf(NewSquare(column, 3), NewSquare(column, 4))
		testutil.AssertEqual(t, s.MovesFrom(sq), want, "pawn on %v", sq)
	}
	for column := 1; column <= Columns; column++ {
		sq := NewSquare(column, 1)
		got := s.MovesFrom(sq)
		if s.PieceAt(sq).Kind() == Knight {
			testutil.AssertEqual(t, got.Len(), 2, "knight on %v", sq)
		} else {
			testutil.AssertTrue(t, got.Empty(), "%v on %v has moves %v", s.PieceAt(sq), sq, got)
		}
	}
}

func TestPawnAttacksOnlyDiagonally(t *testing.T) {
	s := NewState()
	testutil.AssertEqual(t, s.AttackSquares(E2), SetOf(D3, F3))
	testutil.AssertEqual(t, s.AttackSquares(A2), SetOf(B3))
	testutil.AssertEqual(t, s.AttackSquares(D7), SetOf(C6, E6))
	testutil.AssertEqual(t, s.AttackSquares(E4), SquareSet(0), "empty square")
}

func TestAttackSquaresIncludeDefendedPieces(t *testing.T) {
	s := position(White, map[Square]Piece{
		A1: WhiteRook,
		A3: WhitePawn,
		H8: WhiteKing,
		F6: BlackKing,
	})

	testutil.AssertEqual(t, s.AttackSquares(A1), SetOf(A2, A3, B1, C1, D1, E1, F1, G1, H1))
	testutil.AssertEqual(t, s.MovesFrom(A1), SetOf(A2, B1, C1, D1, E1, F1, G1, H1))
}

func TestKingCannotMoveIntoAttack(t *testing.T) {
	s := position(White, map[Square]Piece{
		E1: WhiteKing,
		A2: BlackRook,
		H8: BlackKing,
	})

	moves := s.MovesFrom(E1)
	testutil.AssertEqual(t, moves, SetOf(D1, F1))
	testutil.AssertTrue(t, moves&s.AttackedBy(Black) == 0, "king moves into attack")
}

func TestKingCannotStepAlongCheckingLine(t *testing.T) {
	s := position(White, map[Square]Piece{
		E1: WhiteKing,
		A1: BlackRook,
		H8: BlackKing,
	})

	testutil.AssertTrue(t, s.InCheck(White), "white should be in check")
	testutil.AssertEqual(t, s.MovesFrom(E1), SetOf(D2, E2, F2))
}

func TestKingCannotCaptureDefendedPiece(t *testing.T) {
	s := position(White, map[Square]Piece{
		E1: WhiteKing,
		E2: BlackPawn,
		D3: BlackBishop,
		H8: BlackKing,
	})

	// Pawn on e2 is defended by the bishop; d1 and f1 are hit by the pawn.
	moves := s.MovesFrom(E1)
	testutil.AssertTrue(t, !moves.Has(E2), "king captured a defended pawn: %v", moves)
	testutil.AssertTrue(t, !moves.Has(D1) && !moves.Has(F1), "king stepped into pawn attack: %v", moves)
	testutil.AssertEqual(t, moves, SetOf(D2, F2))
}

func TestPinnedPieceCannotMove(t *testing.T) {
	s := position(White, map[Square]Piece{
		E1: WhiteKing,
		E2: WhiteBishop,
		E8: BlackRook,
		A8: BlackKing,
	})

	testutil.AssertEqual(t, s.MovesFrom(E2), SquareSet(0))
}

func TestCheckMustBeAnswered(t *testing.T) {
	s := position(White, map[Square]Piece{
		E1: WhiteKing,
		H2: WhiteRook,
		E8: BlackRook,
		A8: BlackKing,
	})

	testutil.AssertEqual(t, s.MovesFrom(H2), SetOf(E2))
	testutil.AssertEqual(t, s.MovesFrom(E1), SetOf(D1, D2, F1, F2))
}

func TestPawnMoves(t *testing.T) {
	kings := func(extra map[Square]Piece) map[Square]Piece {
		pieces := map[Square]Piece{A1: WhiteKing, H8: BlackKing}
		for sq, p := range extra {
			pieces[sq] = p
		}
		return pieces
	}

	tests := []struct {
		name   string
		pieces map[Square]Piece
		from   Square
		want   SquareSet
	}{
		{"blocked head on", kings(map[Square]Piece{E4: WhitePawn, E5: BlackPawn}), E4, 0},
		{"double push blocked on first step", kings(map[Square]Piece{E2: WhitePawn, E3: BlackKnight}), E2, 0},
		{"double push blocked on second step", kings(map[Square]Piece{E2: WhitePawn, E4: BlackKnight}), E2, SetOf(E3)},
		{"captures diagonally", kings(map[Square]Piece{E4: WhitePawn, D5: BlackKnight, F5: WhiteKnight}), E4, SetOf(D5, E5)},
		{"black moves down", kings(map[Square]Piece{C7: BlackPawn, B6: WhiteRook}), C7, SetOf(B6, C6, C5)},
		{"no double push off the start row", kings(map[Square]Piece{C3: WhitePawn}), C3, SetOf(C4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := position(White, tc.pieces)
			testutil.AssertEqual(t, s.MovesFrom(tc.from), tc.want)
		})
	}
}

func TestEnPassantIsLegal(t *testing.T) {
	s := position(White, map[Square]Piece{
		E1: WhiteKing,
		E5: WhitePawn,
		D5: BlackPawn,
		E8: BlackKing,
	})
	s.enPassant = D6
	s.enPassantPawn = D5

	testutil.AssertEqual(t, s.MovesFrom(E5), SetOf(D6, E6))
	testutil.AssertTrue(t, s.AttackSquares(E5).Has(D6), "en passant square should be attacked")

	next := s.move(E5, D6)
	testutil.AssertEqual(t, next.PieceAt(D6), WhitePawn)
	testutil.AssertEqual(t, next.PieceAt(D5), NoPiece)
	testutil.AssertEqual(t, next.EnPassant(), NoSquare)
	testutil.AssertEqual(t, next.EnPassantPawn(), NoSquare)
}

func TestDoubleAdvanceRecordsEnPassant(t *testing.T) {
	s := NewState().move(C7, C5)
	testutil.AssertEqual(t, s.EnPassant(), C6)
	testutil.AssertEqual(t, s.EnPassantPawn(), C5)

	s = s.move(G1, F3)
	testutil.AssertEqual(t, s.EnPassant(), NoSquare)
	testutil.AssertEqual(t, s.EnPassantPawn(), NoSquare)
}

func TestNoLegalMovesWithoutCheckEndsGame(t *testing.T) {
	// Black king boxed in on h8 by a queen on g6 after White's move: stalemate,
	// which ends the game in White's favour.
	s := position(White, map[Square]Piece{
		A1: WhiteKing,
		G5: WhiteQueen,
		H8: BlackKing,
	})

	s = s.play(G5, G6)
	testutil.AssertTrue(t, !s.InCheck(Black), "black should not be in check")
	testutil.AssertEqual(t, s.Winner(), White)
}

// TestRandomPlayoutsKeepKingsSafe plays random legal games and checks that no
// legal move ever leaves or puts a king on an attacked square.
func TestRandomPlayoutsKeepKingsSafe(t *testing.T) {
	games, plies := 4, 40
	if testing.Short() {
		games, plies = 1, 20
	}

	rng := rand.New(rand.NewSource(1))
	for g := 0; g < games; g++ {
		s := NewState()
		for ply := 0; ply < plies && !s.Terminal(); ply++ {
			side := s.SideToMove()
			threatened := s.AttackedBy(side.Next())

			var froms []Square
			for sq := A1; sq <= H8; sq++ {
				if s.PieceAt(sq).Side() != side {
					continue
				}
				moves := s.MovesFrom(sq)
				if s.PieceAt(sq).Kind() == King && moves&threatened != 0 {
					t.Fatalf("game %d ply %d: king on %v may move into %v", g, ply, sq, moves&threatened)
				}
				moves.ForEach(func(to Square) {
					if next := s.move(sq, to); next.InCheck(side) {
						t.Fatalf("game %d ply %d: %v-%v leaves %v in check", g, ply, sq, to, side)
					}
				})
				if !moves.Empty() {
					froms = append(froms, sq)
				}
			}

			from := froms[rng.Intn(len(froms))]
			targets := s.MovesFrom(from).Squares()
			s = s.play(from, targets[rng.Intn(len(targets))])
		}
	}
}
