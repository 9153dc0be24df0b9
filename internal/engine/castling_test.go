package engine_test

import (
	"testing"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/testutil"
)

func TestCastlingGeneration(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantKingside  bool
		wantQueenside bool
	}{
		{
			name:          "both sides available",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			wantKingside:  true,
			wantQueenside: true,
		},
		{
			name:          "black to move with both rights",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			wantKingside:  true,
			wantQueenside: true,
		},
		{
			name: "rights lost",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
		},
		{
			name:          "kingside path blocked",
			fen:           "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1",
			wantQueenside: true,
		},
		{
			name:          "queenside path blocked on b1 only",
			fen:           "rn2k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			wantKingside:  true,
			wantQueenside: false,
		},
		{
			name: "king in check",
			fen:  "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1",
		},
		{
			name:          "kingside transit square attacked",
			fen:           "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			wantQueenside: true,
		},
		{
			name:         "queenside destination attacked",
			fen:          "2r3k1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			wantKingside: true,
		},
		{
			name:          "attack on b1 does not stop queenside",
			fen:           "1r4k1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			wantKingside:  true,
			wantQueenside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			moves := engine.LegalMoves(board)

			rank := "1"
			if board.ToMove == chess.Black {
				rank = "8"
			}
			kingside := containsMove(moves, "e"+rank+"g"+rank)
			queenside := containsMove(moves, "e"+rank+"c"+rank)

			if kingside != tt.wantKingside {
				t.Errorf("kingside castle generated = %v, want %v", kingside, tt.wantKingside)
			}
			if queenside != tt.wantQueenside {
				t.Errorf("queenside castle generated = %v, want %v", queenside, tt.wantQueenside)
			}
		})
	}
}

func TestCastlingMovesRookAndKing(t *testing.T) {
	board := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	move := findMove(t, engine.LegalMoves(board), "e1g1")
	if !move.CastleKingside {
		t.Fatalf("e1g1 should carry the castle flag, got %+v", move)
	}

	engine.MakeMove(board, move)
	if board.At(chess.Sq('g', '1')) != chess.W(chess.King) {
		t.Error("king should stand on g1 after castling")
	}
	if board.At(chess.Sq('f', '1')) != chess.W(chess.Rook) {
		t.Error("rook should stand on f1 after castling")
	}
	if !board.IsEmpty(chess.Sq('h', '1')) || !board.IsEmpty(chess.Sq('e', '1')) {
		t.Error("e1 and h1 should be vacated by castling")
	}
	if board.CanCastle(chess.White, true) || board.CanCastle(chess.White, false) {
		t.Error("castling rights are spent by castling")
	}
	if board.King(chess.White) != chess.Sq('g', '1') {
		t.Error("king square tracking should follow the castle")
	}
}

func TestRookMoveLosesRight(t *testing.T) {
	board := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	move := findMove(t, engine.LegalMoves(board), "h1g1")

	delta := engine.MakeMove(board, move)
	if board.CanCastle(chess.White, true) {
		t.Error("moving the h1 rook must clear the kingside right")
	}
	if !board.CanCastle(chess.White, false) {
		t.Error("the queenside right must survive an h-rook move")
	}

	engine.UnmakeMove(board, move, delta)
	if !board.CanCastle(chess.White, true) {
		t.Error("undo must restore the kingside right")
	}
}

func TestRookCaptureLosesRight(t *testing.T) {
	// The a8 rook is captured on its home square.
	board := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/Q3K3 w kq - 0 1")
	move := findMove(t, engine.LegalMoves(board), "a1a8")

	engine.MakeMove(board, move)
	if board.CanCastle(chess.Black, false) {
		t.Error("capturing the a8 rook must clear Black's queenside right")
	}
	if !board.CanCastle(chess.Black, true) {
		t.Error("Black's kingside right must survive")
	}
}
