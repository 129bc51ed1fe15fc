package board

// AttackSquares returns the squares the piece on from could capture on,
// whether or not it is that piece's turn. Squares held by the piece's own
// side are included: a defended piece counts as attacked.
// Pawns attack diagonally (or onto the en passant square), never straight ahead.
func (s State) AttackSquares(from Square) SquareSet {
	p := s.PieceAt(from)
	if p == NoPiece {
		return 0
	}
	occupied := s.occupied()

	var set SquareSet
	for to := A1; to <= H8; to++ {
		if !p.Kind().ValidPath(from, to, p.Side()) || betweenSet[from][to]&occupied != 0 {
			continue
		}
		if p.Kind() == Pawn && !to.IsDiagonalTo(from) && to != s.enPassant {
			continue
		}
		set = set.Add(to)
	}
	return set
}

// AttackedBy returns the union of the attack squares of every piece of side.
func (s State) AttackedBy(side Side) SquareSet {
	var set SquareSet
	for sq, p := range s.placement {
		if p != NoPiece && p.Side() == side {
			set |= s.AttackSquares(Square(sq))
		}
	}
	return set
}

// InCheck returns true if side's king stands on a square the opponent attacks.
func (s State) InCheck(side Side) bool {
	king := s.kingSquare(side)
	return king != NoSquare && s.AttackedBy(side.Next()).Has(king)
}

// MovesFrom returns the destinations the piece on from may move to, given
// occupancy, pawn capture rules and the safety of its own king.
// Every destination, king moves included, is checked by playing it and
// recomputing the opponent's attacks, so a king cannot retreat along the
// line it is checked on.
func (s State) MovesFrom(from Square) SquareSet {
	p := s.PieceAt(from)
	if p == NoPiece {
		return 0
	}
	side := p.Side()
	occupied := s.occupied()

	var threatened SquareSet
	if p.Kind() == King {
		threatened = s.AttackedBy(side.Next())
	}

	var set SquareSet
	for to := A1; to <= H8; to++ {
		if !p.Kind().ValidPath(from, to, side) || betweenSet[from][to]&occupied != 0 {
			continue
		}

		target := s.placement[to]
		if target != NoPiece && target.Side() == side {
			continue
		}

		if p.Kind() == Pawn {
			if to.IsDiagonalTo(from) {
				if target == NoPiece && to != s.enPassant {
					continue
				}
			} else if target != NoPiece {
				continue
			}
		}

		if threatened.Has(to) || s.exposesKing(from, to) {
			continue
		}
		set = set.Add(to)
	}
	return set
}

// exposesKing plays from→to on a copy and reports whether the mover's king
// ends up on a square the opponent attacks in the resulting position.
func (s State) exposesKing(from, to Square) bool {
	side := s.placement[from].Side()
	next := s.move(from, to)
	king := next.kingSquare(side)
	if king == NoSquare {
		return false
	}
	return next.AttackedBy(side.Next()).Has(king)
}

// HasLegalMoves returns true if any piece of side has a legal move.
func (s State) HasLegalMoves(side Side) bool {
	for sq, p := range s.placement {
		if p != NoPiece && p.Side() == side && !s.MovesFrom(Square(sq)).Empty() {
			return true
		}
	}
	return false
}
