package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chessify-dev/chessify/bitboard"
	"github.com/chessify-dev/chessify/position"
)

// BoardBuilder accumulates position fields and produces an immutable
// Board. The placement planes, side to move and castling rights are
// required; the en passant square and the clocks are optional. A
// builder is a transient single-owner value, not meant to be shared.
type BoardBuilder struct {
	planes         *[NumPlanes]bitboard.Bitboard
	pieces         map[position.Square]Placement
	sideToMove     *Color
	castlingRights *CastlingRights
	enPassant      *position.Square
	halfmoveClock  uint64
	fullmoveNumber uint64
}

// NewBoardBuilder returns an empty builder.
func NewBoardBuilder() *BoardBuilder {
	return &BoardBuilder{
		pieces: make(map[position.Square]Placement),
	}
}

func (b *BoardBuilder) ensurePlanes() *[NumPlanes]bitboard.Bitboard {
	if b.planes == nil {
		b.planes = new([NumPlanes]bitboard.Bitboard)
	}
	return b.planes
}

// SetPiece places a piece on the given square, updating the plane and
// the dense map together. A previous occupant of the square is removed
// first.
func (b *BoardBuilder) SetPiece(s position.Square, p Piece, c Color) *BoardBuilder {
	planes := b.ensurePlanes()
	if prev, ok := b.pieces[s]; ok {
		i := PlaneIndex(prev.Piece, prev.Color)
		planes[i] = planes[i].Unset(s)
	}
	i := PlaneIndex(p, c)
	planes[i] = planes[i].Set(s)
	b.pieces[s] = Placement{Piece: p, Color: c}
	return b
}

// SetSideToMove sets which color moves next.
func (b *BoardBuilder) SetSideToMove(c Color) *BoardBuilder {
	b.sideToMove = &c
	return b
}

// SetCastlingRights sets the remaining castling privileges.
func (b *BoardBuilder) SetCastlingRights(r CastlingRights) *BoardBuilder {
	b.castlingRights = &r
	return b
}

// SetEnPassantSquare sets the en passant target square.
func (b *BoardBuilder) SetEnPassantSquare(s position.Square) *BoardBuilder {
	b.enPassant = &s
	return b
}

// SetHalfmoveClock sets the half-move clock.
func (b *BoardBuilder) SetHalfmoveClock(n uint64) *BoardBuilder {
	b.halfmoveClock = n
	return b
}

// SetFullmoveNumber sets the full-move number.
func (b *BoardBuilder) SetFullmoveNumber(n uint64) *BoardBuilder {
	b.fullmoveNumber = n
	return b
}

// TryBuild produces the immutable Board. It fails if a required field
// was never supplied, or if the planes and the dense map disagree.
func (b *BoardBuilder) TryBuild() (*Board, error) {
	if b.planes == nil {
		return nil, fmt.Errorf("%w: bitboards not initialized", ErrBoardSetup)
	}
	if b.sideToMove == nil {
		return nil, fmt.Errorf("%w: side to move not initialized", ErrBoardSetup)
	}
	if b.castlingRights == nil {
		return nil, fmt.Errorf("%w: castling rights not initialized", ErrBoardSetup)
	}

	occupied := bitboard.Empty
	total := 0
	for i, plane := range b.planes {
		if occupied.And(plane) != bitboard.Empty {
			return nil, fmt.Errorf("%w: plane %d overlaps another plane", ErrBoardSetup, i)
		}
		occupied = occupied.Or(plane)
		total += plane.BitCount()
	}
	if total != len(b.pieces) {
		return nil, fmt.Errorf("%w: %d plane bits set for %d occupied squares", ErrBoardSetup, total, len(b.pieces))
	}
	for s, pl := range b.pieces {
		if !b.planes[PlaneIndex(pl.Piece, pl.Color)].IsSet(s) {
			return nil, fmt.Errorf("%w: %s %s missing from plane at %s", ErrBoardSetup, pl.Color, pl.Piece, s)
		}
	}

	board := &Board{
		planes:         *b.planes,
		pieces:         make(map[position.Square]Placement, len(b.pieces)),
		sideToMove:     *b.sideToMove,
		castlingRights: *b.castlingRights,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
	}
	for s, pl := range b.pieces {
		board.pieces[s] = pl
	}
	if b.enPassant != nil {
		board.enPassant = *b.enPassant
		board.hasEnPassant = true
	}
	return board, nil
}

// Build is TryBuild converting any error into a panic.
func (b *BoardBuilder) Build() *Board {
	board, err := b.TryBuild()
	if err != nil {
		panic(err)
	}
	return board
}

// NewBoardBuilderFromFEN parses a FEN string into a builder. Fields are
// validated in textual order and the first error wins.
//
// A FEN string carries four required whitespace-separated fields
// (placement, active color, castling availability, en passant target)
// optionally followed by the half-move clock and full-move number. The
// clocks are parsed only when both are present, in which case the field
// count is exactly six; otherwise they default to zero.
func NewBoardBuilderFromFEN(fen string) (*BoardBuilder, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}

	b := NewBoardBuilder()
	b.ensurePlanes()

	if err := b.parsePlacement(fields[0], fen); err != nil {
		return nil, err
	}

	side, err := NewColorFromString(fields[1])
	if err != nil {
		return nil, err
	}
	b.SetSideToMove(side)

	rights, err := NewCastlingRightsFromString(fields[2])
	if err != nil {
		return nil, err
	}
	b.SetCastlingRights(rights)

	if fields[3] != "-" {
		s, err := position.NewSquareFromNotation(fields[3])
		if err != nil {
			return nil, err
		}
		b.SetEnPassantSquare(s)
	}

	if len(fields) == 6 {
		half, err := strconv.ParseUint(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		full, err := strconv.ParseUint(fields[5], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid fullmove number %q", ErrInvalidFEN, fields[5])
		}
		b.SetHalfmoveClock(half)
		b.SetFullmoveNumber(full)
	}

	return b, nil
}

// MustNewBoardBuilderFromFEN is NewBoardBuilderFromFEN converting any
// error into a panic.
func MustNewBoardBuilderFromFEN(fen string) *BoardBuilder {
	b, err := NewBoardBuilderFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePlacement scans the placement field left to right, 8th rank
// first. Each of the eight '/'-separated rank groups must cover exactly
// eight files through piece letters and skip digits 1-8.
func (b *BoardBuilder) parsePlacement(placement, fen string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != position.NumRanks {
		return fmt.Errorf("%w: %d rank groups in %q", ErrInvalidFEN, len(rows), fen)
	}
	for r, row := range rows {
		file := 0
		for i := 0; i < len(row); i++ {
			cell := row[i]
			if '1' <= cell && cell <= '8' {
				file += int(cell - '0')
				continue
			}
			var p Piece
			var c Color
			switch cell {
			case 'P':
				p, c = Pawn, White
			case 'N':
				p, c = Knight, White
			case 'B':
				p, c = Bishop, White
			case 'R':
				p, c = Rook, White
			case 'Q':
				p, c = Queen, White
			case 'K':
				p, c = King, White
			case 'p':
				p, c = Pawn, Black
			case 'n':
				p, c = Knight, Black
			case 'b':
				p, c = Bishop, Black
			case 'r':
				p, c = Rook, Black
			case 'q':
				p, c = Queen, Black
			case 'k':
				p, c = King, Black
			default:
				return fmt.Errorf("%w: unknown symbol %q in %q", ErrInvalidFEN, string(cell), fen)
			}
			if file >= position.NumFiles {
				return fmt.Errorf("%w: rank %d overflows in %q", ErrInvalidFEN, position.Rank(r).Number(), fen)
			}
			b.SetPiece(position.NewSquare(position.File(file), position.Rank(r)), p, c)
			file++
		}
		if file != position.NumFiles {
			return fmt.Errorf("%w: rank %d covers %d files in %q", ErrInvalidFEN, position.Rank(r).Number(), file, fen)
		}
	}
	return nil
}
