package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chessify-dev/chessify/board"
	"github.com/chessify-dev/chessify/render"
	"github.com/chessify-dev/chessify/store"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	svgOut = flag.String("svg", "", "write an SVG diagram of the position to the given file")

	storeDir   = flag.String("store.dir", defaultStoreDir(), "position store directory")
	saveName   = flag.String("save", "", "save the position under the given name")
	loadName   = flag.String("load", "", "show a previously saved position")
	deleteName = flag.String("delete", "", "delete a saved position")
	listRun    = flag.Bool("list", false, "list saved positions")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultBoardFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	if *saveName != "" || *loadName != "" || *deleteName != "" || *listRun {
		return runStore(fen)
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	return show(b)
}

func show(b *board.Board) error {
	fmt.Println(b.Draw())
	fmt.Println()
	fmt.Println(b.FEN())
	fmt.Printf("to move: %s  castling: %s/%s\n",
		b.SideToMove(), b.CastlingStatusFor(board.White), b.CastlingStatusFor(board.Black))
	if sq, ok := b.EnPassantSquare(); ok {
		fmt.Printf("en passant: %s\n", sq)
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			return err
		}
		render.SVG(f, b)
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("diagram written to %s\n", *svgOut)
	}
	return nil
}

func runStore(fen string) error {
	st, err := store.Open(*storeDir)
	if err != nil {
		return err
	}
	defer st.Close()

	switch {
	case *saveName != "":
		b, err := board.NewBoard(board.WithFEN(fen))
		if err != nil {
			return err
		}
		if err := st.Save(*saveName, b); err != nil {
			return err
		}
		log.Printf("saved %q\n", *saveName)
		return nil

	case *loadName != "":
		b, err := st.Load(*loadName)
		if err != nil {
			return err
		}
		return show(b)

	case *deleteName != "":
		if err := st.Delete(*deleteName); err != nil {
			return err
		}
		log.Printf("deleted %q\n", *deleteName)
		return nil

	default:
		recs, err := st.List()
		if err != nil {
			return err
		}
		width := 0
		for _, rec := range recs {
			width = max(width, len(rec.Name))
		}
		for _, rec := range recs {
			fmt.Printf(" %-*s  %s  %s\n", width, rec.Name, rec.SavedAt.Format(time.DateTime), rec.FEN)
		}
		fmt.Println(message.NewPrinter(language.English).
			Sprintf("%d positions in %s", len(recs), *storeDir))
		return nil
	}
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chessify"
	}
	return filepath.Join(home, ".chessify")
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}
