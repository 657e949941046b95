package board

import (
	"fmt"
	"strings"

	"github.com/chessify-dev/chessify/position"
)

// FEN renders the position in Forsyth-Edwards Notation. Rendering a
// board parsed from a canonical FEN string reproduces that string
// exactly; boards parsed without clock fields render with both clocks
// at zero.
func (b *Board) FEN() string {
	builder := strings.Builder{}
	for r := 0; r < position.NumRanks; r++ {
		skip := 0
		for f := 0; f < position.NumFiles; f++ {
			pl, ok := b.pieces[position.NewSquare(position.File(f), position.Rank(r))]
			if !ok {
				skip++
				continue
			}
			if skip != 0 {
				_ = builder.WriteByte(byte('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(pl.Piece.SymbolFEN(pl.Color))
		}
		if skip != 0 {
			_ = builder.WriteByte(byte('0' + skip))
		}
		if r < position.NumRanks-1 {
			_ = builder.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castlingRights.String())
	_ = builder.WriteByte(' ')

	if b.hasEnPassant {
		_, _ = builder.WriteString(b.enPassant.Notation())
	} else {
		_ = builder.WriteByte('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfmoveClock, b.fullmoveNumber))

	return builder.String()
}
