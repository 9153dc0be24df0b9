// Package engine implements the chess rules: move generation, move
// application with exact undo, check detection, FEN, and draw rules.
package engine

import "github.com/kjansen/chessmind/internal/chess"

// promotionKinds is the fixed generation order for promotions. Keeping it
// stable keeps search results reproducible.
var promotionKinds = [4]chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns every strictly legal move for the side to move, in a
// stable order: squares are scanned file a-h, rank 1-8, and each piece's
// destinations follow its fixed pattern tables. An empty result combined
// with the check status classifies checkmate versus stalemate.
func LegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	pseudo := PseudoLegalMoves(board)
	pseudo = appendCastleMoves(pseudo, board)

	// Pinned pieces are rejected here implicitly: every candidate is played
	// on the board and discarded if the mover's own king ends up attacked.
	legal := pseudo[:0]
	for _, move := range pseudo {
		delta := MakeMove(board, move)
		if !IsInCheck(board, colour) {
			legal = append(legal, move)
		}
		UnmakeMove(board, move, delta)
	}
	return legal
}

// PseudoLegalMoves generates moves that follow the piece movement patterns
// but may leave the mover's king in check. Castling is excluded; it has its
// own generator with the extra attack conditions.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	moves := make([]chess.Move, 0, 48)

	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			from := chess.Sq(col, rank)
			switch chess.ExtractPiece(piece) {
			case chess.Pawn:
				moves = appendPawnMoves(moves, board, from, colour)
			case chess.Knight:
				moves = appendOffsetMoves(moves, board, from, colour, knightOffsets[:])
			case chess.Bishop:
				moves = appendSlidingMoves(moves, board, from, colour, diagonalDirs[:])
			case chess.Rook:
				moves = appendSlidingMoves(moves, board, from, colour, straightDirs[:])
			case chess.Queen:
				moves = appendSlidingMoves(moves, board, from, colour, diagonalDirs[:])
				moves = appendSlidingMoves(moves, board, from, colour, straightDirs[:])
			case chess.King:
				moves = appendOffsetMoves(moves, board, from, colour, kingOffsets[:])
			}
		}
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures, en passant, and
// promotions for the pawn on from.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)

	one := offsetSquare(from, 0, dir)
	if board.At(one) == chess.Empty {
		moves = appendPawnAdvance(moves, from, one, colour, false)
		if from.Rank == chess.StartRank(colour) {
			two := offsetSquare(from, 0, 2*dir)
			if board.At(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two, Promotion: chess.Empty})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := offsetSquare(from, dc, dir)
		target := board.At(to)
		switch {
		case target != chess.Empty && target != chess.Off && chess.ExtractColour(target) != colour:
			moves = appendPawnAdvance(moves, from, to, colour, true)
		case board.EnPassant && to == board.EPSquare:
			moves = append(moves, chess.Move{
				From: from, To: to, Promotion: chess.Empty,
				Capture: true, EnPassant: true,
			})
		}
	}
	return moves
}

// appendPawnAdvance adds a single pawn push or capture, expanding it into
// the four promotion moves when it reaches the last rank.
func appendPawnAdvance(moves []chess.Move, from, to chess.Square, colour chess.Colour, capture bool) []chess.Move {
	if to.Rank != chess.PromotionRank(colour) {
		return append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty, Capture: capture})
	}
	for _, kind := range promotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind, Capture: capture})
	}
	return moves
}

// appendOffsetMoves adds moves for fixed-offset pieces (knight, king).
func appendOffsetMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := offsetSquare(from, off[0], off[1])
		target := board.At(to)
		if target == chess.Off {
			continue
		}
		if target == chess.Empty {
			moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty})
		} else if chess.ExtractColour(target) != colour {
			moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty, Capture: true})
		}
	}
	return moves
}

// appendSlidingMoves adds moves for sliding pieces, stopping at the first
// occupied square in each direction and capturing if it holds an enemy.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to := offsetSquare(from, dir[0], dir[1])
		for {
			target := board.At(to)
			if target == chess.Off {
				break
			}
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty, Capture: true})
				}
				break
			}
			moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty})
			to = offsetSquare(to, dir[0], dir[1])
		}
	}
	return moves
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. It short-circuits on the first one found.
func HasLegalMoves(board *chess.Board) bool {
	colour := board.ToMove
	pseudo := PseudoLegalMoves(board)
	for _, move := range pseudo {
		delta := MakeMove(board, move)
		ok := !IsInCheck(board, colour)
		UnmakeMove(board, move, delta)
		if ok {
			return true
		}
	}
	// Castling can never be the only legal move: the plain king step onto
	// the intermediate square would also be legal. No need to generate it.
	return false
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}
