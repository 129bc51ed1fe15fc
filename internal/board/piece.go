package board

// Side represents one of the two players.
type Side uint8

const (
	White Side = iota
	Black
	NoSide Side = 2
)

// Next returns the opposing side.
func (s Side) Next() Side {
	return s ^ 1
}

// Forward returns the row direction the side's pawns advance in.
func (s Side) Forward() int {
	if s == Black {
		return -1
	}
	return 1
}

// PawnRow returns the row the side's pawns start on.
func (s Side) PawnRow() int {
	if s == Black {
		return 7
	}
	return 2
}

// HomeRow returns the row the side's back rank starts on.
func (s Side) HomeRow() int {
	if s == Black {
		return 8
	}
	return 1
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoSide"
	}
}

// Kind represents the type of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoKind Kind = 6
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece combines Kind and Side into a single value.
// Encoded as: kind + side*6
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

// NewPiece creates a Piece from Kind and Side.
func NewPiece(k Kind, s Side) Piece {
	if k >= NoKind || s >= NoSide {
		return NoPiece
	}
	return Piece(k) + Piece(s)*6
}

// Kind returns the Kind of the piece.
func (p Piece) Kind() Kind {
	if p >= NoPiece {
		return NoKind
	}
	return Kind(p % 6)
}

// Side returns the Side owning the piece.
func (p Piece) Side() Side {
	if p >= NoPiece {
		return NoSide
	}
	return Side(p / 6)
}

// String returns the piece letter: uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return string("PNBRQKpnbrqk"[p])
}

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	if p >= NoPiece {
		return " "
	}
	return []string{"♙", "♘", "♗", "♖", "♕", "♔", "♟", "♞", "♝", "♜", "♛", "♚"}[p]
}

// backRank lists the back rank kinds by column.
var backRank = [Columns]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
