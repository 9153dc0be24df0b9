package engine

import "github.com/kjansen/chessmind/internal/chess"

// appendCastleMoves adds the castling moves available to the side to move.
// Rights are tracked on the board, not derived from piece history. Beyond
// the right itself, a castle requires every square between king and rook to
// be empty, the king not to be in check, and the king's path (including the
// destination) to be free of attacked squares.
func appendCastleMoves(moves []chess.Move, board *chess.Board) []chess.Move {
	colour := board.ToMove
	rank := chess.Rank('1')
	if colour == chess.Black {
		rank = '8'
	}

	kingSq := chess.Sq('e', rank)
	if board.King(colour) != kingSq {
		return moves
	}
	enemy := colour.Opposite()
	if IsAttacked(board, kingSq, enemy) {
		return moves
	}

	if board.CanCastle(colour, true) &&
		board.IsEmpty(chess.Sq('f', rank)) &&
		board.IsEmpty(chess.Sq('g', rank)) &&
		!IsAttacked(board, chess.Sq('f', rank), enemy) &&
		!IsAttacked(board, chess.Sq('g', rank), enemy) {
		moves = append(moves, chess.Move{
			From: kingSq, To: chess.Sq('g', rank),
			Promotion: chess.Empty, CastleKingside: true,
		})
	}

	if board.CanCastle(colour, false) &&
		board.IsEmpty(chess.Sq('d', rank)) &&
		board.IsEmpty(chess.Sq('c', rank)) &&
		board.IsEmpty(chess.Sq('b', rank)) &&
		!IsAttacked(board, chess.Sq('d', rank), enemy) &&
		!IsAttacked(board, chess.Sq('c', rank), enemy) {
		moves = append(moves, chess.Move{
			From: kingSq, To: chess.Sq('c', rank),
			Promotion: chess.Empty, CastleQueenside: true,
		})
	}

	return moves
}
