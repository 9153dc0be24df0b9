package engine

import "github.com/kjansen/chessmind/internal/chess"

// Direction tables shared by move generation and attack detection.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// offsetSquare returns the square displaced from sq by (dc, dr).
// The result may be invalid; callers check with Valid or rely on the
// board's hedge returning Off.
func offsetSquare(sq chess.Square, dc, dr int) chess.Square {
	return chess.Square{
		Col:  chess.Col(int(sq.Col) + dc),
		Rank: chess.Rank(int(sq.Rank) + dr),
	}
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsAttacked(board, board.King(colour), colour.Opposite())
}

// IsAttacked returns true if the square is attacked by any piece of the
// given colour. Castling is never an attack, so it is ignored here; this
// is what makes the post-move check filter in movegen sound.
func IsAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally toward their direction of travel, so from
	// the target square we look one rank against it.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := chess.Rank(int(sq.Rank) - chess.ColourOffset(byColour))
	if board.Get(sq.Col-1, pawnRank) == pawn || board.Get(sq.Col+1, pawnRank) == pawn {
		return true
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.At(offsetSquare(sq, off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.At(offsetSquare(sq, off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)

	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if slidingAttack(board, sq, dir, bishop, queen) {
			return true
		}
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if slidingAttack(board, sq, dir, rook, queen) {
			return true
		}
	}

	return false
}

// slidingAttack walks from sq in the given direction and reports whether
// the first occupied square holds one of the two attacker pieces.
func slidingAttack(board *chess.Board, sq chess.Square, dir [2]int, a, b chess.Piece) bool {
	cur := offsetSquare(sq, dir[0], dir[1])
	for {
		piece := board.At(cur)
		if piece == chess.Off {
			return false
		}
		if piece != chess.Empty {
			return piece == a || piece == b
		}
		cur = offsetSquare(cur, dir[0], dir[1])
	}
}
