package board

// paths maps each kind to its movement shape, ignoring occupancy.
var paths = [NoKind]func(from, to Square, side Side) bool{
	Pawn:   pawnPath,
	Knight: knightPath,
	Bishop: bishopPath,
	Rook:   rookPath,
	Queen:  queenPath,
	King:   kingPath,
}

// ValidPath returns true if a piece of kind k owned by side could travel
// from one square to another on an empty board. A square never reaches itself.
func (k Kind) ValidPath(from, to Square, side Side) bool {
	if k >= NoKind || from == to || !from.IsValid() || !to.IsValid() {
		return false
	}
	return paths[k](from, to, side)
}

func pawnPath(from, to Square, side Side) bool {
	if to.IsAheadOf(from, side) {
		steps := to.RowsApart(from)
		return steps == 1 || steps == 2 && from.Row() == side.PawnRow()
	}
	// Capture shape: one diagonal step forward
	return to.IsDiagonalTo(from) && to.RowsApart(from) == 1 &&
		(to.Row()-from.Row())*side.Forward() > 0
}

func knightPath(from, to Square, _ Side) bool {
	d := from.DistanceTo(to)
	return d > 2 && d < 2.5
}

func bishopPath(from, to Square, _ Side) bool {
	return from.IsDiagonalTo(to)
}

func rookPath(from, to Square, _ Side) bool {
	return from.IsInlineWith(to)
}

func queenPath(from, to Square, side Side) bool {
	return bishopPath(from, to, side) || rookPath(from, to, side)
}

func kingPath(from, to Square, side Side) bool {
	return queenPath(from, to, side) && from.DistanceTo(to) < 2
}
