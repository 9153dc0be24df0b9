package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/game"
)

// renderer draws the board and outcome messages to a terminal.
type renderer struct {
	out io.Writer

	whitePiece *color.Color
	blackPiece *color.Color
	label      *color.Color
	banner     *color.Color
}

func newRenderer(out io.Writer, coloured bool) *renderer {
	r := &renderer{
		out:        out,
		whitePiece: color.New(color.FgHiWhite, color.Bold),
		blackPiece: color.New(color.FgHiBlue, color.Bold),
		label:      color.New(color.FgHiBlack),
		banner:     color.New(color.FgHiGreen, color.Bold),
	}
	if !coloured {
		for _, c := range []*color.Color{r.whitePiece, r.blackPiece, r.label, r.banner} {
			c.DisableColor()
		}
	}
	return r
}

// Render draws the position from White's point of view, with file and rank
// labels, followed by the side to move and a check notice.
func (r *renderer) Render(st *game.State) {
	board := st.Board()

	fmt.Fprintln(r.out)
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		r.label.Fprintf(r.out, " %c ", rank)
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				fmt.Fprint(r.out, " . ")
				continue
			}
			letter := engine.PieceFENLetter(piece)
			if chess.ExtractColour(piece) == chess.White {
				r.whitePiece.Fprintf(r.out, " %c ", letter)
			} else {
				r.blackPiece.Fprintf(r.out, " %c ", letter)
			}
		}
		fmt.Fprintln(r.out)
	}
	r.label.Fprint(r.out, "   ")
	for col := chess.Col('a'); col <= 'h'; col++ {
		r.label.Fprintf(r.out, " %c ", col)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out)

	if last, ok := st.LastMove(); ok {
		fmt.Fprintf(r.out, "Last move: %s\n", last)
	}
	if st.InCheck() {
		r.banner.Fprintf(r.out, "%s is in check!\n", colourName(st.ToMove()))
	}
}

// Announce prints the final outcome.
func (r *renderer) Announce(outcome game.Outcome) {
	r.banner.Fprintf(r.out, "Game over: %s.\n", outcome)
	fmt.Fprintln(r.out)
}
