// Package eval provides the static position evaluator: material plus
// piece-square positional terms, in centipawns.
package eval

import "github.com/kjansen/chessmind/internal/chess"

// Material values in centipawns. The king carries no material value; mate
// is the search's business, not the evaluator's.
var material = [chess.NumPieceValues]int{
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// MaterialValue returns the material value of a piece kind in centipawns.
func MaterialValue(kind chess.Piece) int {
	if kind < 0 || kind >= chess.NumPieceValues {
		return 0
	}
	return material[kind]
}

// Score evaluates the board from the given perspective; higher is better
// for that colour. The function is deterministic, side-effect-free, and
// zero-sum: Score(b, White) == -Score(b, Black).
func Score(board *chess.Board, perspective chess.Colour) int {
	var score int // White minus Black

	for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			colour := chess.ExtractColour(piece)
			kind := chess.ExtractPiece(piece)
			value := material[kind] + pieceSquare(kind, colour, chess.Sq(col, rank))
			if colour == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}

	if perspective == chess.Black {
		return -score
	}
	return score
}
