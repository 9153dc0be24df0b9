package worker_test

import (
	"sync/atomic"
	"testing"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/worker"
)

func countingProcess(counter *int64) worker.ProcessFunc {
	return func(job worker.Job) worker.Result {
		atomic.AddInt64(counter, 1)
		return worker.Result{Index: job.Index, Move: job.Move, Nodes: 1}
	}
}

func TestPoolProcessesAllJobs(t *testing.T) {
	var processed int64
	pool := worker.NewPool(countingProcess(&processed), worker.WithWorkers(4))
	pool.Start()

	const numJobs = 50
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(worker.Job{Index: i})
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numJobs {
		t.Errorf("received %d distinct results, want %d", len(seen), numJobs)
	}
	if got := atomic.LoadInt64(&processed); got != numJobs {
		t.Errorf("processed %d jobs, want %d", got, numJobs)
	}
}

func TestPoolDefaults(t *testing.T) {
	pool := worker.NewPool(func(job worker.Job) worker.Result { return worker.Result{} })
	if got := pool.NumWorkers(); got != 1 {
		t.Errorf("default NumWorkers = %d, want 1", got)
	}
}

func TestPoolOptions(t *testing.T) {
	pool := worker.NewPool(func(job worker.Job) worker.Result { return worker.Result{} },
		worker.WithWorkers(8), worker.WithBufferSize(64))
	if got := pool.NumWorkers(); got != 8 {
		t.Errorf("NumWorkers = %d, want 8", got)
	}

	// Invalid values fall back to the defaults.
	pool = worker.NewPool(func(job worker.Job) worker.Result { return worker.Result{} },
		worker.WithWorkers(0), worker.WithBufferSize(-1))
	if got := pool.NumWorkers(); got != 1 {
		t.Errorf("NumWorkers with invalid option = %d, want 1", got)
	}
}

func TestPoolStop(t *testing.T) {
	var processed int64
	pool := worker.NewPool(countingProcess(&processed), worker.WithWorkers(2), worker.WithBufferSize(100))

	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped should report true after Stop")
	}
	pool.Start()

	go func() {
		for i := 0; i < 20; i++ {
			pool.Submit(worker.Job{Index: i})
		}
		pool.Close()
	}()

	for range pool.Results() {
	}
	if got := atomic.LoadInt64(&processed); got != 0 {
		t.Errorf("stopped pool processed %d jobs, want 0", got)
	}
}

func TestPoolAnalysesPositions(t *testing.T) {
	// The pool's real workload: independent move counts from board copies.
	board := engine.NewInitialBoard()
	moves := engine.LegalMoves(board)

	pool := worker.NewPool(func(job worker.Job) worker.Result {
		return worker.Result{
			Index: job.Index,
			Move:  job.Move,
			Nodes: engine.Perft(job.Board, job.Depth),
		}
	}, worker.WithWorkers(4), worker.WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		for i, move := range moves {
			child := board.Copy()
			engine.MakeMove(child, move)
			pool.Submit(worker.Job{Index: i, Board: child, Move: move, Depth: 1})
		}
		pool.Close()
	}()

	var total uint64
	results := make(map[string]uint64)
	for result := range pool.Results() {
		total += result.Nodes
		results[result.Move.String()] = result.Nodes
	}

	// Sum of replies over all first moves is perft(2).
	if total != 400 {
		t.Errorf("total replies = %d, want 400", total)
	}
	if got := results["e2e4"]; got != 20 {
		t.Errorf("replies to e2e4 = %d, want 20", got)
	}
}

func TestPoolJobsCarryIndependentBoards(t *testing.T) {
	board := engine.NewInitialBoard()
	before := engine.BoardToFEN(board)

	pool := worker.NewPool(func(job worker.Job) worker.Result {
		engine.MakeMove(job.Board, chess.Move{
			From: chess.Sq('e', '2'), To: chess.Sq('e', '4'),
		})
		return worker.Result{Index: job.Index}
	}, worker.WithWorkers(2))
	pool.Start()

	go func() {
		for i := 0; i < 4; i++ {
			pool.Submit(worker.Job{Index: i, Board: board.Copy()})
		}
		pool.Close()
	}()
	for range pool.Results() {
	}

	if got := engine.BoardToFEN(board); got != before {
		t.Error("workers mutated a shared board through a job copy")
	}
}
