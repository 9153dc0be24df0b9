package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/testutil"
)

func TestMakeMoveEffects(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
	}{
		{
			name:    "pawn push sets en passant target",
			fen:     engine.InitialFEN,
			move:    "e2e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "single push sets no target",
			fen:     engine.InitialFEN,
			move:    "e2e3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/4P3/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:    "capture resets the halfmove clock",
			fen:     "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 4 3",
			move:    "e4d5",
			wantFEN: "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "quiet knight move advances the clock",
			fen:     engine.InitialFEN,
			move:    "g1f3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKBNR b KQkq - 1 1",
		},
		{
			name:    "black move increments the move number",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    "c7c5",
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "en passant removes the bypassing pawn",
			fen:     "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move:    "e5f6",
			wantFEN: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "promotion replaces the pawn",
			fen:     "8/P7/8/8/8/8/k6K/8 w - - 0 1",
			move:    "a7a8q",
			wantFEN: "Q7/8/8/8/8/8/k6K/8 b - - 0 1",
		},
		{
			name:    "kingside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1g1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:    "queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    "e8c8",
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			move := findMove(t, engine.LegalMoves(board), tt.move)
			engine.MakeMove(board, move)
			testutil.AssertEqual(t, engine.BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestUnmakeMoveRestoresBoardExactly(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 10",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"8/P7/8/8/8/8/k6K/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		board := testutil.MustBoard(t, fen)
		reference := board.Copy()

		for _, move := range engine.LegalMoves(board) {
			delta := engine.MakeMove(board, move)
			engine.UnmakeMove(board, move, delta)

			if diff := cmp.Diff(reference, board); diff != "" {
				t.Fatalf("%s: make/unmake of %s left the board changed (-want +got):\n%s",
					fen, move, diff)
			}
		}
	}
}

func TestUnmakeMoveRestoresDeepLines(t *testing.T) {
	// Walk every two-ply line from a tactically dense position and verify
	// the board comes back identical each time.
	board := testutil.MustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	reference := board.Copy()

	for _, first := range engine.LegalMoves(board) {
		d1 := engine.MakeMove(board, first)
		for _, second := range engine.LegalMoves(board) {
			d2 := engine.MakeMove(board, second)
			engine.UnmakeMove(board, second, d2)
		}
		engine.UnmakeMove(board, first, d1)
	}

	if diff := cmp.Diff(reference, board); diff != "" {
		t.Fatalf("two-ply walk left the board changed (-want +got):\n%s", diff)
	}
}

func TestMakeMoveKingTracking(t *testing.T) {
	board := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	move := findMove(t, engine.LegalMoves(board), "e1d2")

	delta := engine.MakeMove(board, move)
	if board.King(chess.White) != chess.Sq('d', '2') {
		t.Errorf("King(White) = %v after e1d2, want d2", board.King(chess.White))
	}
	engine.UnmakeMove(board, move, delta)
	if board.King(chess.White) != chess.Sq('e', '1') {
		t.Errorf("King(White) = %v after undo, want e1", board.King(chess.White))
	}
}

func TestUnmakePromotionRestoresPawn(t *testing.T) {
	board := testutil.MustBoard(t, "3n4/2P5/8/8/8/8/k6K/8 w - - 0 1")
	move := findMove(t, engine.LegalMoves(board), "c7d8q")

	delta := engine.MakeMove(board, move)
	if board.At(chess.Sq('d', '8')) != chess.W(chess.Queen) {
		t.Fatal("promotion should place a white queen on d8")
	}

	engine.UnmakeMove(board, move, delta)
	if board.At(chess.Sq('c', '7')) != chess.W(chess.Pawn) {
		t.Error("undo should restore the pawn on c7")
	}
	if board.At(chess.Sq('d', '8')) != chess.B(chess.Knight) {
		t.Error("undo should restore the captured knight on d8")
	}
}
