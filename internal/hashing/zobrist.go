// Package hashing provides Zobrist-style position keys and repetition
// counting for the threefold repetition rule.
package hashing

import (
	"math/rand"

	"github.com/kjansen/chessmind/internal/chess"
)

// zobristSeed fixes the random table so keys are stable across runs.
// Determinism matters more here than the particular constants.
const zobristSeed = 0x6368657373 // "chess"

const numSquares = chess.BoardSize * chess.BoardSize

var (
	// pieceKeys[colour][kind][square]
	pieceKeys    [2][chess.NumPieceValues][numSquares]uint64
	sideKey      uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for colour := 0; colour < 2; colour++ {
		for kind := 0; kind < int(chess.NumPieceValues); kind++ {
			for sq := 0; sq < numSquares; sq++ {
				pieceKeys[colour][kind][sq] = rng.Uint64()
			}
		}
	}
	sideKey = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

// PositionKey computes the key of a position. Two positions share a key
// exactly when they agree on piece placement, side to move, castling
// rights, and en passant target - the identity the threefold repetition
// rule is defined over.
func PositionKey(board *chess.Board) uint64 {
	var key uint64

	for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			colour := chess.ExtractColour(piece)
			kind := chess.ExtractPiece(piece)
			key ^= pieceKeys[colour][kind][chess.Sq(col, rank).Index()]
		}
	}

	if board.ToMove == chess.White {
		key ^= sideKey
	}
	if board.WKingCastle != 0 {
		key ^= castlingKeys[0]
	}
	if board.WQueenCastle != 0 {
		key ^= castlingKeys[1]
	}
	if board.BKingCastle != 0 {
		key ^= castlingKeys[2]
	}
	if board.BQueenCastle != 0 {
		key ^= castlingKeys[3]
	}
	if board.EnPassant {
		key ^= epFileKeys[int(board.EPSquare.Col-chess.FirstCol)]
	}

	return key
}

// RepetitionTable counts how often each position key has occurred in the
// current game line.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Push records one occurrence of a key and returns the new count.
func (t *RepetitionTable) Push(key uint64) int {
	t.counts[key]++
	return t.counts[key]
}

// Pop removes one occurrence of a key.
func (t *RepetitionTable) Pop(key uint64) {
	n := t.counts[key]
	if n <= 1 {
		delete(t.counts, key)
		return
	}
	t.counts[key] = n - 1
}

// Count returns how often a key has occurred.
func (t *RepetitionTable) Count(key uint64) int {
	return t.counts[key]
}
