package board

import (
	"fmt"
	"strings"
)

// CastlingStatus describes the remaining castling privilege of a single
// color.
type CastlingStatus uint8

const (
	CastlingNotAvailable CastlingStatus = iota
	CastlingKingside
	CastlingQueenside
	CastlingBoth
)

func (s CastlingStatus) String() string {
	switch s {
	case CastlingNotAvailable:
		return "NotAvailable"
	case CastlingKingside:
		return "Kingside"
	case CastlingQueenside:
		return "Queenside"
	case CastlingBoth:
		return "Both"
	default:
		return ""
	}
}

// CastlingRights is a 4-bit mask over the four castling privileges.
// High to low: White kingside, White queenside, Black kingside, Black
// queenside. Rights are stored literally as given by FEN text; whether
// the kings and rooks actually stand on their home squares is not this
// package's concern.
type CastlingRights uint8

const (
	castleWhiteKingside  CastlingRights = 1 << 3
	castleWhiteQueenside CastlingRights = 1 << 2
	castleBlackKingside  CastlingRights = 1 << 1
	castleBlackQueenside CastlingRights = 1 << 0

	// NoCastlingRights is the zero mask.
	NoCastlingRights CastlingRights = 0
	// FullCastlingRights has all four privileges set.
	FullCastlingRights CastlingRights = 0b1111
)

// NewCastlingRightsFromString parses the FEN castling field. The empty
// string and "-" both yield the zero mask; any character outside
// {K, Q, k, q} is an error carrying the offending field.
func NewCastlingRightsFromString(s string) (CastlingRights, error) {
	var r CastlingRights
	if s == "-" {
		return r, nil
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			r |= castleWhiteKingside
		case 'Q':
			r |= castleWhiteQueenside
		case 'k':
			r |= castleBlackKingside
		case 'q':
			r |= castleBlackQueenside
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownCastlingRights, s)
		}
	}
	return r, nil
}

// The 2-bit sub-field read by ForColor carries queenside in bit 0 and
// kingside in bit 1, which does not line up with the CastlingStatus
// discriminants. The mapping must stay an explicit table, never a
// numeric cast.
var castlingStatusTable = [4]CastlingStatus{
	CastlingNotAvailable,
	CastlingQueenside,
	CastlingKingside,
	CastlingBoth,
}

// ForColor returns the castling status of the given color. White's
// sub-field occupies the upper two bits of the mask, Black's the lower
// two.
func (r CastlingRights) ForColor(c Color) CastlingStatus {
	if c == White {
		return castlingStatusTable[(r&0b1100)>>2]
	}
	return castlingStatusTable[r&0b0011]
}

// String renders the mask as the FEN castling field: the available
// privileges in canonical KQkq order, or "-" when none remain.
func (r CastlingRights) String() string {
	if r == NoCastlingRights {
		return "-"
	}
	builder := strings.Builder{}
	if r&castleWhiteKingside != 0 {
		_, _ = builder.WriteRune('K')
	}
	if r&castleWhiteQueenside != 0 {
		_, _ = builder.WriteRune('Q')
	}
	if r&castleBlackKingside != 0 {
		_, _ = builder.WriteRune('k')
	}
	if r&castleBlackQueenside != 0 {
		_, _ = builder.WriteRune('q')
	}
	return builder.String()
}
