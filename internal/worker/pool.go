// Package worker provides a worker pool for parallel position analysis.
// Each job carries its own board, so jobs never share mutable state; the
// rules engine itself stays single-threaded.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/kjansen/chessmind/internal/chess"
)

// Job is one root position to analyse: the board after Move has been
// played, to be explored Depth further plies.
type Job struct {
	Index int // Original index for ordering results
	Board *chess.Board
	Move  chess.Move
	Depth int
}

// Result is the outcome of analysing a job.
type Result struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Err   error
}

// ProcessFunc is the function signature for processing a job.
type ProcessFunc func(job Job) Result

// Pool manages a pool of workers for parallel analysis.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobChan     chan Job
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; other settings
// have sensible defaults (1 worker, buffer size of 10).
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobChan = make(chan Job, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs from the job channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(job)
	}
}

// Submit submits a job for processing.
// This may block if the job channel buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobChan <- job
}

// Stop signals workers to stop processing new jobs.
// Jobs already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers
// are done.
func (p *Pool) Close() {
	close(p.jobChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
