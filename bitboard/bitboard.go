// Package bitboard implements a 64-bit set of board squares.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/chessify-dev/chessify/position"
)

// Bitboard is a 64-bit set of squares: bit i is set iff the square with
// index i is a member. Every 64-bit pattern is a valid bitboard, and all
// operations are pure value operations.
type Bitboard uint64

const (
	// Empty is the bitboard with no squares set.
	Empty Bitboard = 0
	// Full is the bitboard with every square set.
	Full Bitboard = ^Empty
)

// FromSquare returns a bitboard with exactly the given square set.
func FromSquare(s position.Square) Bitboard {
	return 1 << s.Index()
}

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	return b & o
}

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return b | o
}

// Xor returns the symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return b ^ o
}

// Not returns the complement of b.
func (b Bitboard) Not() Bitboard {
	return ^b
}

// Set returns a copy of b with the given square set.
func (b Bitboard) Set(s position.Square) Bitboard {
	return b | FromSquare(s)
}

// Unset returns a copy of b with the given square cleared.
func (b Bitboard) Unset(s position.Square) Bitboard {
	return b &^ FromSquare(s)
}

// IsSet reports whether the given square is a member of b.
func (b Bitboard) IsSet(s position.Square) bool {
	return b&FromSquare(s) != 0
}

// Union returns the union of all given bitboards.
func Union(bbs ...Bitboard) Bitboard {
	u := Empty
	for _, bb := range bbs {
		u |= bb
	}
	return u
}

// Intersect returns the intersection of all given bitboards.
func Intersect(bbs ...Bitboard) Bitboard {
	u := Full
	for _, bb := range bbs {
		u &= bb
	}
	return u
}

// BitCount returns the number of squares in the set.
func (b Bitboard) BitCount() int {
	return bits.OnesCount64(uint64(b))
}

// LS1B returns the square of the least significant set bit. Only
// meaningful for non-empty bitboards.
func (b Bitboard) LS1B() position.Square {
	return position.NewSquareFromIndex(uint8(bits.TrailingZeros64(uint64(b))))
}

// String renders an 8x8 grid of '1'/'0' in raw bit order: bit 0 is the
// first row's first column. This dumps the raw bits for diagnostics and
// deliberately ignores the board's own rank ordering.
func (b Bitboard) String() string {
	builder := strings.Builder{}
	for row := 0; row < position.NumRanks; row++ {
		for col := 0; col < position.NumFiles; col++ {
			if b&(1<<(row*position.NumFiles+col)) != 0 {
				_, _ = builder.WriteString(" 1 ")
			} else {
				_, _ = builder.WriteString(" 0 ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	return builder.String()
}
