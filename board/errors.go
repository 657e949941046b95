package board

import "errors"

var (
	// ErrBoardSetup represents a builder with a required field missing
	// or inconsistent piece placement.
	ErrBoardSetup = errors.New("board setup incomplete")

	// ErrInvalidFEN represents a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid fen")

	// ErrUnknownColor represents an unparseable color field.
	ErrUnknownColor = errors.New("unknown color")

	// ErrUnknownCastlingRights represents an unparseable castling
	// rights field.
	ErrUnknownCastlingRights = errors.New("unknown castling rights")
)
