package testutil

import (
	"strings"
	"testing"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/game"
)

// MustBoard builds a board from a FEN string, failing the test on error.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// MustState builds a game state from a FEN string, failing the test on error.
func MustState(t *testing.T, fen string) *game.State {
	t.Helper()
	st, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q) failed: %v", fen, err)
	}
	return st
}

// PlayMoves applies a space-separated list of coordinate moves
// (e.g. "e2e4 e7e5 g1f3") to a game state, failing the test on any error.
func PlayMoves(t *testing.T, st *game.State, moves string) {
	t.Helper()
	for _, text := range strings.Fields(moves) {
		move, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", text, err)
		}
		if err := st.Apply(move); err != nil {
			t.Fatalf("Apply(%q) failed: %v", text, err)
		}
	}
}

// MoveStrings renders moves in coordinate notation for easy comparison.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, move := range moves {
		out[i] = move.String()
	}
	return out
}
