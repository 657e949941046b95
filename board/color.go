package board

import "fmt"

// Color represents a player color.
type Color uint8

const (
	White Color = iota
	Black

	// NumColors is the number of colors in the game of chess.
	NumColors = 2
)

// Colors lists the colors with placement corresponding to their
// respective index.
var Colors = [NumColors]Color{White, Black}

// NewColorFromString parses the FEN active-color field. Only the first
// character is examined: 'w'/'W' is White, 'b'/'B' is Black, anything
// else (including the empty string) is an error.
func NewColorFromString(s string) (Color, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	switch s[0] {
	case 'w', 'W':
		return White, nil
	case 'b', 'B':
		return Black, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// Index returns the stable index of the color, used for table lookups.
func (c Color) Index() int {
	return int(c)
}

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return ""
	}
}
