// Package board implements an immutable chess position snapshot and its
// FEN codec.
package board

import (
	"github.com/chessify-dev/chessify/bitboard"
	"github.com/chessify-dev/chessify/position"
)

const (
	// NumPlanes is the number of per-piece-per-color bitboard planes.
	NumPlanes = NumPieces * NumColors

	// DefaultBoardFEN is the standard starting position.
	DefaultBoardFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Placement identifies the occupant of a square.
type Placement struct {
	Piece Piece
	Color Color
}

// PlaneIndex returns the index of the bitboard plane dedicated to the
// given piece and color: White planes occupy indices 0-5 and Black 6-11,
// both in Pawn..King order.
func PlaneIndex(p Piece, c Color) int {
	return c.Index()*NumPieces + p.Index()
}

// Board is a position snapshot: twelve bitboard planes, a dense
// square-to-occupant map kept consistent with the planes, and the FEN
// game-state scalars. A Board is produced once by a BoardBuilder and
// never mutated afterwards, so it is safe to share across goroutines.
type Board struct {
	planes [NumPlanes]bitboard.Bitboard
	pieces map[position.Square]Placement

	sideToMove     Color
	castlingRights CastlingRights
	enPassant      position.Square
	hasEnPassant   bool
	halfmoveClock  uint64
	fullmoveNumber uint64
}

type boardConfig struct {
	fen string
}

// BoardOption configures NewBoard.
type BoardOption func(*boardConfig)

// WithFEN loads the board from the given FEN string instead of the
// standard starting position.
func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard builds a board, by default at the standard starting
// position.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultBoardFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	builder, err := NewBoardBuilderFromFEN(cfg.fen)
	if err != nil {
		return nil, err
	}
	return builder.TryBuild()
}

// MustNewBoard is NewBoard converting any error into a panic. Reserved
// for callers supplying trusted input, such as the built-in starting
// FEN.
func MustNewBoard(opts ...BoardOption) *Board {
	b, err := NewBoard(opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Bitboards returns the twelve piece placement planes, indexed by
// PlaneIndex.
func (b *Board) Bitboards() [NumPlanes]bitboard.Bitboard {
	return b.planes
}

// Bitboard returns the placement plane for the given piece and color.
func (b *Board) Bitboard(p Piece, c Color) bitboard.Bitboard {
	return b.planes[PlaneIndex(p, c)]
}

// PieceAt returns the occupant of the given square, if any.
func (b *Board) PieceAt(s position.Square) (Piece, Color, bool) {
	pl, ok := b.pieces[s]
	return pl.Piece, pl.Color, ok
}

// SquareMap returns a copy of the dense square-to-occupant mapping.
// Only occupied squares are present.
func (b *Board) SquareMap() map[position.Square]Placement {
	m := make(map[position.Square]Placement, len(b.pieces))
	for s, pl := range b.pieces {
		m[s] = pl
	}
	return m
}

// SideToMove returns which color moves next.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// CastlingRights returns the remaining castling privileges.
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// CastlingStatusFor returns the castling status of the given color.
func (b *Board) CastlingStatusFor(c Color) CastlingStatus {
	return b.castlingRights.ForColor(c)
}

// EnPassantSquare returns the en passant target square, if one exists.
func (b *Board) EnPassantSquare() (position.Square, bool) {
	return b.enPassant, b.hasEnPassant
}

// HalfmoveClock returns the half-move clock as stored in the FEN. The
// value is kept verbatim, never interpreted.
func (b *Board) HalfmoveClock() uint64 {
	return b.halfmoveClock
}

// FullmoveNumber returns the full-move number as stored in the FEN.
func (b *Board) FullmoveNumber() uint64 {
	return b.fullmoveNumber
}
