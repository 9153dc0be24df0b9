// Package search selects moves for the artificial opponent using negamax
// with alpha-beta pruning over the move generator and evaluator.
package search

import (
	"math/rand"
	"sort"
	"time"

	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/errors"
	"github.com/kjansen/chessmind/internal/eval"
	"github.com/kjansen/chessmind/internal/game"
)

const (
	// mateScore is far above any static evaluation. Mate found at ply p
	// scores mateScore-p, so shorter mates beat longer ones.
	mateScore = 1_000_000

	// infinity bounds the alpha-beta window.
	infinity = mateScore + 1

	// maxDepth is a hard ceiling guarding against runaway recursion.
	maxDepth = 64

	// deadlineCheckInterval is how many nodes pass between deadline
	// checks. Cancellation is cooperative, never preemptive.
	deadlineCheckInterval = 1024
)

// DefaultDepth is the search depth used when the caller does not choose one.
const DefaultDepth = 3

// Options configures a search.
type Options struct {
	// Depth is the lookahead in plies. Values above the hard ceiling are
	// clamped; zero or negative means DefaultDepth.
	Depth int

	// TimeLimit optionally bounds the wall-clock budget. When it expires
	// the search returns the best move found so far. Zero means no limit.
	TimeLimit time.Duration
}

// Result describes a completed (or time-expired) search.
type Result struct {
	Move  chess.Move
	Score int // centipawns from the mover's perspective
	Nodes uint64
	Depth int
	Time  time.Duration
}

// IsMateScore reports whether a score encodes a forced mate.
func IsMateScore(score int) bool {
	if score < 0 {
		score = -score
	}
	return score > mateScore-maxDepth
}

// Search finds the best move for the side to move. The game state is left
// unchanged: the search works on a private board copy. It never returns an
// empty move for a non-terminal position; if the budget is exhausted before
// any candidate is evaluated, the first legal move is returned.
func Search(st *game.State, opts Options) (Result, error) {
	start := time.Now()

	if st.Outcome().IsTerminal() {
		return Result{}, errors.Wrap(errors.ErrGameOver, "search")
	}

	depth := opts.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	if depth > maxDepth {
		depth = maxDepth
	}

	s := &searcher{board: st.Board()}
	if opts.TimeLimit > 0 {
		s.deadline = start.Add(opts.TimeLimit)
	}

	moves := engine.LegalMoves(s.board)
	orderMoves(s.board, moves)

	// Fall back to the first legal move so an expired budget still
	// produces an answer.
	best := moves[0]
	bestScore := -infinity
	alpha, beta := -infinity, infinity

	for _, move := range moves {
		delta := engine.MakeMove(s.board, move)
		score := -s.negamax(depth-1, 1, -beta, -alpha)
		engine.UnmakeMove(s.board, move, delta)

		if s.stopped {
			break
		}
		if score > bestScore {
			bestScore = score
			best = move
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	if bestScore == -infinity {
		// Nothing finished evaluating; report the fallback with a
		// neutral score.
		bestScore = 0
	}

	return Result{
		Move:  best,
		Score: bestScore,
		Nodes: s.nodes,
		Depth: depth,
		Time:  time.Since(start),
	}, nil
}

// BestMove is Search reduced to just the chosen move.
func BestMove(st *game.State, opts Options) (chess.Move, error) {
	result, err := Search(st, opts)
	if err != nil {
		return chess.Move{}, err
	}
	return result.Move, nil
}

// RandomMove picks a uniformly random legal move using the supplied
// generator. The generator is a parameter, not ambient state, so callers
// control determinism.
func RandomMove(st *game.State, rng *rand.Rand) (chess.Move, error) {
	moves := st.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, errors.Wrap(errors.ErrGameOver, "random move")
	}
	return moves[rng.Intn(len(moves))], nil
}

// searcher carries the per-search mutable state.
type searcher struct {
	board    *chess.Board
	deadline time.Time
	nodes    uint64
	stopped  bool
}

// negamax returns the score of the current position from the perspective
// of the side to move, looking depth plies ahead within [alpha, beta].
func (s *searcher) negamax(depth, ply, alpha, beta int) int {
	s.nodes++
	if s.expired() {
		return alpha
	}

	moves := engine.LegalMoves(s.board)
	if len(moves) == 0 {
		if engine.IsInCheck(s.board, s.board.ToMove) {
			// Checkmated; earlier mates are worse for the victim.
			return -(mateScore - ply)
		}
		return 0 // stalemate
	}

	if s.board.HalfmoveClock >= engine.HalfmoveDrawLimit ||
		engine.HasInsufficientMaterial(s.board) {
		return 0
	}

	if depth <= 0 {
		return eval.Score(s.board, s.board.ToMove)
	}

	orderMoves(s.board, moves)

	best := -infinity
	for _, move := range moves {
		delta := engine.MakeMove(s.board, move)
		score := -s.negamax(depth-1, ply+1, -beta, -alpha)
		engine.UnmakeMove(s.board, move, delta)

		if s.stopped {
			break
		}
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break // window exhausted; the rest cannot matter
		}
	}
	return best
}

// expired checks the deadline every deadlineCheckInterval nodes.
func (s *searcher) expired() bool {
	if s.stopped {
		return true
	}
	if s.deadline.IsZero() || s.nodes%deadlineCheckInterval != 0 {
		return false
	}
	if time.Now().After(s.deadline) {
		s.stopped = true
	}
	return s.stopped
}

// orderMoves sorts captures and promotions to the front so alpha-beta
// prunes more. The sort is stable, preserving generation order among equal
// moves, which keeps results deterministic.
func orderMoves(board *chess.Board, moves []chess.Move) {
	type scored struct {
		move  chess.Move
		score int
	}
	entries := make([]scored, len(moves))
	for i, move := range moves {
		entries[i] = scored{move: move, score: moveOrderScore(board, move)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})
	for i, entry := range entries {
		moves[i] = entry.move
	}
}

// moveOrderScore ranks a move for ordering: most valuable victim with the
// least valuable attacker first, promotions close behind.
func moveOrderScore(board *chess.Board, move chess.Move) int {
	score := 0
	if move.Capture {
		victim := chess.Pawn // en passant captures a pawn off the target square
		if !move.EnPassant {
			victim = chess.ExtractPiece(board.At(move.To))
		}
		attacker := chess.ExtractPiece(board.At(move.From))
		score += 10*eval.MaterialValue(victim) - eval.MaterialValue(attacker)
	}
	if move.IsPromotion() {
		score += eval.MaterialValue(move.Promotion)
	}
	return score
}
