package engine_test

import (
	"testing"

	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/testutil"
)

// The expected node counts are the published perft results for these
// well-known validation positions.
var perftCases = []struct {
	name  string
	fen   string
	depth int
	want  uint64
}{
	{name: "initial depth 1", fen: engine.InitialFEN, depth: 1, want: 20},
	{name: "initial depth 2", fen: engine.InitialFEN, depth: 2, want: 400},
	{name: "initial depth 3", fen: engine.InitialFEN, depth: 3, want: 8902},
	{
		name:  "dense middlegame depth 1",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		depth: 1,
		want:  48,
	},
	{
		name:  "dense middlegame depth 2",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		depth: 2,
		want:  2039,
	},
	{
		name:  "pawn endgame depth 3",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		depth: 3,
		want:  2812,
	},
	{
		name:  "promotion tangle depth 2",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		depth: 2,
		want:  1486,
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tc.fen)
			if got := engine.Perft(board, tc.depth); got != tc.want {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.want)
			}
		})
	}
}

func TestPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	board := engine.NewInitialBoard()
	if got := engine.Perft(board, 4); got != 197281 {
		t.Errorf("Perft(4) = %d, want 197281", got)
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	board := testutil.MustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	entries := engine.Divide(board, 2)

	if len(entries) != 48 {
		t.Fatalf("Divide produced %d entries, want 48", len(entries))
	}
	var total uint64
	for _, entry := range entries {
		total += entry.Nodes
	}
	if total != 2039 {
		t.Errorf("Divide total = %d, want 2039", total)
	}
}

func TestParallelPerftMatchesSequential(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tc.fen)
			if got := engine.ParallelPerft(board, tc.depth, 4); got != tc.want {
				t.Errorf("ParallelPerft(%d) = %d, want %d", tc.depth, got, tc.want)
			}
		})
	}
}

func TestParallelPerftLeavesBoardUntouched(t *testing.T) {
	board := engine.NewInitialBoard()
	before := engine.BoardToFEN(board)
	engine.ParallelPerft(board, 3, 4)
	testutil.AssertEqual(t, engine.BoardToFEN(board), before, "board after parallel perft")
}

func TestParallelDivideOrdering(t *testing.T) {
	board := engine.NewInitialBoard()

	sequential := engine.Divide(board, 3)
	parallel := engine.ParallelDivide(board, 3, 4)

	testutil.AssertEqual(t, parallel, sequential, "parallel divide should match sequential order and counts")
}
