package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/chessify-dev/chessify/position"
)

var (
	drawLightCell = color.New(color.FgBlack, color.BgHiGreen)
	drawDarkCell  = color.New(color.FgBlack, color.BgGreen)
	drawLabel     = color.New(color.Bold)
)

// Dump renders a plain ASCII grid of the position, 8th rank first.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for r := 0; r < position.NumRanks; r++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", position.Rank(r).Number()))
		for f := 0; f < position.NumFiles; f++ {
			sym := " "
			if pl, ok := b.pieces[position.NewSquare(position.File(f), position.Rank(r))]; ok {
				sym = pl.Piece.SymbolFEN(pl.Color)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for f := 0; f < position.NumFiles; f++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.File(f).Notation()))
	}
	return builder.String()
}

// Draw renders a colored grid of the position for terminal display.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for r := 0; r < position.NumRanks; r++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %d ", position.Rank(r).Number()))
		for f := 0; f < position.NumFiles; f++ {
			sym := " "
			if pl, ok := b.pieces[position.NewSquare(position.File(f), position.Rank(r))]; ok {
				sym = pl.Piece.SymbolUnicode(pl.Color)
			}
			cell := fmt.Sprintf(" %s ", sym)
			if (f+r)%2 == 0 {
				_, _ = builder.WriteString(drawLightCell.Sprint(cell))
			} else {
				_, _ = builder.WriteString(drawDarkCell.Sprint(cell))
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for f := 0; f < position.NumFiles; f++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", position.File(f).Notation()))
	}
	return builder.String()
}
