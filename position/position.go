// Package position implements the coordinate system of the chess board.
package position

import (
	"errors"
	"fmt"
)

const (
	// NumFiles is the number of files (columns) on the board.
	NumFiles = 8
	// NumRanks is the number of ranks (rows) on the board.
	NumRanks = 8
	// NumSquares is the total number of squares on the board.
	NumSquares = NumFiles * NumRanks
)

var (
	// ErrUnknownSquare represents an unparseable square notation error.
	ErrUnknownSquare = errors.New("unknown square")
)

// Square identifies a single cell on the board as a linear index in
// [0, 63]. Index 0 is a8 and index 63 is h1: ranks are stored top rank
// first, matching the order FEN lists them in, so
// index = rankRow*8 + fileCol with rankRow 0 for the 8th rank.
type Square uint8

// File is a column index, 0 for file a through 7 for file h.
type File uint8

// Rank is a row index counting down from the top of the board: row 0 is
// the 8th rank, row 7 is the 1st.
type Rank uint8

// Named constants for all 64 squares, in index order.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NewSquare combines a file and a rank row into a Square.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)*NumFiles + uint8(f))
}

// NewSquareFromIndex builds a Square from an arbitrary integer. The
// value is masked to 6 bits: out-of-range input truncates into [0, 63]
// instead of erroring.
func NewSquareFromIndex(i uint8) Square {
	return Square(i & (NumSquares - 1))
}

// NewSquareFromNotation parses algebraic notation such as "e3". The
// notation must be at least two characters: a file letter a-h (either
// case) followed by a rank digit 1-8. Characters past the first two are
// not examined.
func NewSquareFromNotation(n string) (Square, error) {
	if len(n) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSquare, n)
	}
	f, err := notationToFile(n[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSquare, n)
	}
	r, err := notationToRank(n[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSquare, n)
	}
	return NewSquare(f, r), nil
}

func notationToFile(c byte) (File, error) {
	c |= 0x20 // lowercase is +32 uppercase
	if c < 'a' || 'h' < c {
		return 0, ErrUnknownSquare
	}
	return File(c - 'a'), nil
}

func notationToRank(c byte) (Rank, error) {
	if c < '1' || '8' < c {
		return 0, ErrUnknownSquare
	}
	return Rank('8' - c), nil
}

// Index returns the linear index of the square, used for bit positions
// and table lookups.
func (s Square) Index() int {
	return int(s)
}

// File returns the column of the square.
func (s Square) File() File {
	return File(s % NumFiles)
}

// Rank returns the row of the square, counting down from the 8th rank.
func (s Square) Rank() Rank {
	return Rank(s / NumFiles)
}

func (s Square) String() string {
	return s.Notation()
}

// Notation renders the square in algebraic notation, the inverse of
// NewSquareFromNotation.
func (s Square) Notation() string {
	return s.File().Notation() + s.Rank().Notation()
}

// Notation returns the file letter, "a" through "h".
func (f File) Notation() string {
	if f >= NumFiles {
		return ""
	}
	return string(rune('a' + f))
}

// Number returns the human-facing rank number, 8 for row 0 down to 1
// for row 7.
func (r Rank) Number() uint8 {
	return uint8(NumRanks - r)
}

// Notation returns the rank digit, "8" for row 0 down to "1" for row 7.
func (r Rank) Notation() string {
	if r >= NumRanks {
		return ""
	}
	return string(rune('0' + NumRanks - r))
}
