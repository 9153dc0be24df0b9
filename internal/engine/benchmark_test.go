package engine_test

import (
	"testing"

	"github.com/kjansen/chessmind/internal/engine"
)

func BenchmarkLegalMovesInitial(b *testing.B) {
	board := engine.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.LegalMoves(board)
	}
}

func BenchmarkLegalMovesMiddlegame(b *testing.B) {
	board, err := engine.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.LegalMoves(board)
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := engine.NewInitialBoard()
	moves := engine.LegalMoves(board)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		move := moves[i%len(moves)]
		delta := engine.MakeMove(board, move)
		engine.UnmakeMove(board, move, delta)
	}
}

func BenchmarkPerft3(b *testing.B) {
	board := engine.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Perft(board, 3)
	}
}

func BenchmarkParallelPerft3(b *testing.B) {
	board := engine.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.ParallelPerft(board, 3, 4)
	}
}
