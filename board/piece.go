package board

// Piece represents a piece type.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King

	// NumPieces is the number of piece types in the game of chess.
	NumPieces = 6
)

// Pieces lists the piece types with placement corresponding to their
// respective index, following FEN letter precedence order (PNBRQK).
var Pieces = [NumPieces]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// Index returns the stable index of the piece, used for table lookups.
func (p Piece) Index() int {
	return int(p)
}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
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
		return ""
	}
}

// SymbolFEN returns the FEN letter of the piece, uppercase for White
// and lowercase for Black.
func (p Piece) SymbolFEN(c Color) string {
	var sym rune
	switch p {
	case Pawn:
		sym = 'P'
	case Knight:
		sym = 'N'
	case Bishop:
		sym = 'B'
	case Rook:
		sym = 'R'
	case Queen:
		sym = 'Q'
	case King:
		sym = 'K'
	default:
		return ""
	}
	if c == Black {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

// SymbolUnicode returns the figurine symbol of the piece.
func (p Piece) SymbolUnicode(c Color) string {
	switch c {
	case White:
		switch p {
		case Pawn:
			return "♙"
		case Knight:
			return "♘"
		case Bishop:
			return "♗"
		case Rook:
			return "♖"
		case Queen:
			return "♕"
		case King:
			return "♔"
		default:
			return ""
		}
	case Black:
		switch p {
		case Pawn:
			return "♟"
		case Knight:
			return "♞"
		case Bishop:
			return "♝"
		case Rook:
			return "♜"
		case Queen:
			return "♛"
		case King:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}
