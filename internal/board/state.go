package board

// State is the complete board-state record. It is a value: every transition
// takes a State and returns the next one, so all mutation happens at the
// Transition boundary.
type State struct {
	placement [64]Piece
	toMove    Side

	selected Square
	legal    SquareSet

	// enPassant is the square a pawn skipped on the previous move;
	// enPassantPawn is where that pawn landed.
	enPassant     Square
	enPassantPawn Square

	winner Side
}

// NewState returns the standard starting arrangement with White to move.
func NewState() State {
	s := State{
		toMove:        White,
		selected:      NoSquare,
		enPassant:     NoSquare,
		enPassantPawn: NoSquare,
		winner:        NoSide,
	}
	for i := range s.placement {
		s.placement[i] = NoPiece
	}
	for _, side := range []Side{White, Black} {
		for column := 1; column <= Columns; column++ {
			s.placement[NewSquare(column, side.HomeRow())] = NewPiece(backRank[column-1], side)
			s.placement[NewSquare(column, side.PawnRow())] = NewPiece(Pawn, side)
		}
	}
	return s
}

// PieceAt returns the piece on sq, or NoPiece if the square is empty.
func (s State) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return s.placement[sq]
}

// IsEmpty returns true if no piece occupies sq.
func (s State) IsEmpty(sq Square) bool {
	return s.PieceAt(sq) == NoPiece
}

// Pieces returns a snapshot of the occupied squares.
func (s State) Pieces() map[Square]Piece {
	pieces := make(map[Square]Piece, 32)
	for sq, p := range s.placement {
		if p != NoPiece {
			pieces[Square(sq)] = p
		}
	}
	return pieces
}

// Count returns the number of pieces owned by side.
func (s State) Count(side Side) int {
	n := 0
	for _, p := range s.placement {
		if p != NoPiece && p.Side() == side {
			n++
		}
	}
	return n
}

// SideToMove returns the side whose turn it is.
func (s State) SideToMove() Side {
	return s.toMove
}

// Selected returns the selected square, or NoSquare.
func (s State) Selected() Square {
	return s.selected
}

// LegalMoves returns the highlighted destinations of the current selection.
func (s State) LegalMoves() SquareSet {
	return s.legal
}

// EnPassant returns the square a pawn may capture onto en passant, or NoSquare.
func (s State) EnPassant() Square {
	return s.enPassant
}

// EnPassantPawn returns the square of the pawn capturable en passant, or NoSquare.
func (s State) EnPassantPawn() Square {
	return s.enPassantPawn
}

// Winner returns the winning side, or NoSide while the game is running.
func (s State) Winner() Side {
	return s.winner
}

// Terminal returns true once a winner has been recorded.
func (s State) Terminal() bool {
	return s.winner != NoSide
}

// occupied returns the set of occupied squares.
func (s State) occupied() SquareSet {
	var set SquareSet
	for sq, p := range s.placement {
		if p != NoPiece {
			set = set.Add(Square(sq))
		}
	}
	return set
}

// kingSquare returns the square of side's king, or NoSquare.
func (s State) kingSquare(side Side) Square {
	king := NewPiece(King, side)
	for sq, p := range s.placement {
		if p == king {
			return Square(sq)
		}
	}
	return NoSquare
}

// move relocates the piece on from to to, applying en passant capture and
// bookkeeping. It does not touch the turn, selection or winner.
func (s State) move(from, to Square) State {
	p := s.placement[from]

	if p.Kind() == Pawn && to == s.enPassant && s.enPassantPawn != NoSquare {
		s.placement[s.enPassantPawn] = NoPiece
	}

	if p.Kind() == Pawn && to.RowsApart(from) == 2 {
		s.enPassant = NewSquare(from.Column(), (from.Row()+to.Row())/2)
		s.enPassantPawn = to
	} else {
		s.enPassant = NoSquare
		s.enPassantPawn = NoSquare
	}

	s.placement[to] = p
	s.placement[from] = NoPiece
	return s
}

// play applies a move, passes the turn and records a winner when the new
// side to move is left without a legal move.
func (s State) play(from, to Square) State {
	s = s.move(from, to)
	s.selected = NoSquare
	s.legal = 0
	s.toMove = s.toMove.Next()
	if !s.HasLegalMoves(s.toMove) {
		s.winner = s.toMove.Next()
	}
	return s
}
