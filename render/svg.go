// Package render draws board diagrams.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chessify-dev/chessify/board"
	"github.com/chessify-dev/chessify/position"
)

const (
	cellSize = 48
	margin   = 24

	lightFill = "fill:#eeeed2"
	darkFill  = "fill:#769656"
	glyphAttr = "font-size:36px;text-anchor:middle;dominant-baseline:central"
	labelAttr = "font-size:14px;text-anchor:middle;dominant-baseline:central;fill:#555555"
)

// SVG writes an SVG diagram of the position to w, 8th rank at the top,
// with file and rank labels along the edges.
func SVG(w io.Writer, b *board.Board) {
	canvas := svg.New(w)
	size := 2*margin + position.NumFiles*cellSize
	canvas.Start(size, size)

	for r := 0; r < position.NumRanks; r++ {
		for f := 0; f < position.NumFiles; f++ {
			x := margin + f*cellSize
			y := margin + r*cellSize
			fill := darkFill
			if (f+r)%2 == 0 {
				fill = lightFill
			}
			canvas.Rect(x, y, cellSize, cellSize, fill)

			if pl, ok := pieceAt(b, f, r); ok {
				canvas.Text(x+cellSize/2, y+cellSize/2, pl.Piece.SymbolUnicode(pl.Color), glyphAttr)
			}
		}
	}

	for f := 0; f < position.NumFiles; f++ {
		x := margin + f*cellSize + cellSize/2
		canvas.Text(x, size-margin/2, position.File(f).Notation(), labelAttr)
	}
	for r := 0; r < position.NumRanks; r++ {
		y := margin + r*cellSize + cellSize/2
		canvas.Text(margin/2, y, position.Rank(r).Notation(), labelAttr)
	}

	canvas.End()
}

func pieceAt(b *board.Board, f, r int) (board.Placement, bool) {
	p, c, ok := b.PieceAt(position.NewSquare(position.File(f), position.Rank(r)))
	return board.Placement{Piece: p, Color: c}, ok
}
