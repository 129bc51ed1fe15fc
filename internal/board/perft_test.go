package board

import (
	"testing"

	"github.com/hailam/chessboard/internal/testutil"
)

// perft counts the number of leaf nodes at the given depth.
func perft(s State, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for from := A1; from <= H8; from++ {
		if s.PieceAt(from).Side() != s.SideToMove() {
			continue
		}
		moves := s.MovesFrom(from)
		if depth == 1 {
			nodes += int64(moves.Len())
			continue
		}
		moves.ForEach(func(to Square) {
			nodes += perft(s.play(from, to), depth-1)
		})
	}
	return nodes
}

// TestPerftStartingPosition counts move paths from the starting arrangement.
// Castling and promotion cannot occur this early, so the counts match
// standard chess.
func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		// Depth 4 takes several seconds with the brute-force legality check:
		// {4, 197281},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if tc.depth > 2 && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			got := perft(NewState(), tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassant counts paths from a position where the only
// capture available is en passant.
func TestPerftEnPassant(t *testing.T) {
	s := position(White, map[Square]Piece{
		E1: WhiteKing,
		D2: WhitePawn,
		E8: BlackKing,
		E4: BlackPawn,
	})
	s = s.play(D2, D4)
	testutil.AssertEqual(t, s.EnPassant(), D3)

	// Black: king e8 has 5 moves, pawn e4 has e3 and exd3 en passant.
	if got := perft(s, 1); got != 7 {
		t.Errorf("perft(1) = %d, want 7", got)
	}
}
