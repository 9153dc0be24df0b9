// Package record captures a finished (or in-progress) game as a transcript
// that can be rendered as a numbered move log or exported as JSON.
package record

import (
	"fmt"
	"strings"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/game"
)

// Entry is one played move with its position context.
type Entry struct {
	MoveNumber int    `json:"moveNumber"`
	Colour     string `json:"colour"` // "white" or "black"
	Move       string `json:"move"`   // coordinate notation
	Capture    bool   `json:"capture,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"` // "kingside" or "queenside"
}

// Record is the complete transcript of a game.
type Record struct {
	InitialFEN string  `json:"initialFEN,omitempty"`
	Entries    []Entry `json:"moves"`
	Result     string  `json:"result"`
	FinalFEN   string  `json:"finalFEN"`
	PlyCount   int     `json:"plyCount"`
}

// FromState builds a transcript by unwinding the game's history and
// replaying it. The state is returned to its original position before
// FromState returns.
func FromState(st *game.State) *Record {
	plies := st.PlyCount()

	// Unwind to the start, collecting moves newest-first.
	moves := make([]chess.Move, 0, plies)
	for i := 0; i < plies; i++ {
		move, err := st.Undo()
		if err != nil {
			break
		}
		moves = append(moves, move)
	}

	rec := &Record{
		Entries:  make([]Entry, 0, len(moves)),
		PlyCount: plies,
	}
	if fen := st.FEN(); fen != engine.InitialFEN {
		rec.InitialFEN = fen
	}

	// Replay oldest-first, restoring the state as we go.
	board := st.Board()
	for i := len(moves) - 1; i >= 0; i-- {
		move := moves[i]
		rec.Entries = append(rec.Entries, makeEntry(board, move))
		st.Apply(move) //nolint:errcheck // replaying the recorded line
		board = st.Board()
	}

	rec.Result = resultString(st.Outcome())
	rec.FinalFEN = st.FEN()
	return rec
}

// makeEntry describes a move about to be played on the given board.
func makeEntry(board *chess.Board, move chess.Move) Entry {
	entry := Entry{
		MoveNumber: int(board.MoveNumber),
		Colour:     strings.ToLower(board.ToMove.String()),
		Move:       move.String(),
		Capture:    move.Capture,
	}
	if move.IsPromotion() {
		entry.Promotion = strings.ToLower(move.Promotion.String())
	}
	switch {
	case move.CastleKingside:
		entry.Castle = "kingside"
	case move.CastleQueenside:
		entry.Castle = "queenside"
	}
	return entry
}

// resultString maps an outcome to the conventional result text.
func resultString(outcome game.Outcome) string {
	switch {
	case outcome == game.CheckmateWhiteWins:
		return "1-0"
	case outcome == game.CheckmateBlackWins:
		return "0-1"
	case outcome.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}

// MoveLog renders the transcript as a numbered move list, one full move
// per line, e.g. "1. e2e4 e7e5".
func (r *Record) MoveLog() string {
	var sb strings.Builder
	for i := 0; i < len(r.Entries); {
		entry := r.Entries[i]
		fmt.Fprintf(&sb, "%d. %s", entry.MoveNumber, entry.Move)
		i++
		if i < len(r.Entries) && r.Entries[i].Colour == "black" {
			fmt.Fprintf(&sb, " %s", r.Entries[i].Move)
			i++
		}
		sb.WriteByte('\n')
	}
	if r.Result != "*" {
		sb.WriteString(r.Result)
		sb.WriteByte('\n')
	}
	return sb.String()
}
