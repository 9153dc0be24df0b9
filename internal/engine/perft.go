package engine

import (
	"sort"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It is the standard cross-check for move generator correctness.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		delta := MakeMove(board, move)
		nodes += Perft(board, depth-1)
		UnmakeMove(board, move, delta)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns per-root-move perft counts, in move generation order.
func Divide(board *chess.Board, depth int) []DivideEntry {
	moves := LegalMoves(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		delta := MakeMove(board, move)
		entries = append(entries, DivideEntry{Move: move, Nodes: Perft(board, depth-1)})
		UnmakeMove(board, move, delta)
	}
	return entries
}

// ParallelPerft distributes the root moves of a perft run over a worker
// pool. Every job gets its own board copy, so the workers never share
// mutable state.
func ParallelPerft(board *chess.Board, depth, workers int) uint64 {
	if depth <= 1 || workers <= 1 {
		return Perft(board, depth)
	}

	moves := LegalMoves(board)
	pool := worker.NewPool(func(job worker.Job) worker.Result {
		return worker.Result{
			Index: job.Index,
			Move:  job.Move,
			Nodes: Perft(job.Board, job.Depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))

	pool.Start()
	go func() {
		for i, move := range moves {
			child := board.Copy()
			MakeMove(child, move)
			pool.Submit(worker.Job{Index: i, Board: child, Move: move, Depth: depth - 1})
		}
		pool.Close()
	}()

	var nodes uint64
	for result := range pool.Results() {
		nodes += result.Nodes
	}
	return nodes
}

// ParallelDivide is Divide distributed over a worker pool. Results are
// returned in move generation order regardless of completion order.
func ParallelDivide(board *chess.Board, depth, workers int) []DivideEntry {
	if depth <= 1 || workers <= 1 {
		return Divide(board, depth)
	}

	moves := LegalMoves(board)
	pool := worker.NewPool(func(job worker.Job) worker.Result {
		return worker.Result{
			Index: job.Index,
			Move:  job.Move,
			Nodes: Perft(job.Board, job.Depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))

	pool.Start()
	go func() {
		for i, move := range moves {
			child := board.Copy()
			MakeMove(child, move)
			pool.Submit(worker.Job{Index: i, Board: child, Move: move, Depth: depth - 1})
		}
		pool.Close()
	}()

	entries := make([]DivideEntry, 0, len(moves))
	for result := range pool.Results() {
		entries = append(entries, DivideEntry{Move: result.Move, Nodes: result.Nodes})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return indexOfMove(moves, entries[i].Move) < indexOfMove(moves, entries[j].Move)
	})
	return entries
}

func indexOfMove(moves []chess.Move, move chess.Move) int {
	for i, m := range moves {
		if m == move {
			return i
		}
	}
	return len(moves)
}
