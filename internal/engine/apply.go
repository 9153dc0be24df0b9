package engine

import "github.com/kjansen/chessmind/internal/chess"

// Delta is the minimal reversible record produced by MakeMove. Feeding it
// back to UnmakeMove restores the board exactly, including castling rights,
// the en passant target, and both clocks. Undo is never a recomputation.
type Delta struct {
	// Moved is the coloured piece that made the move, before any promotion.
	Moved chess.Piece

	// Captured is the coloured piece removed from CapturedSq, or Empty.
	// CapturedSq differs from the destination for en passant captures.
	Captured   chess.Piece
	CapturedSq chess.Square

	// Side state prior to the move.
	PrevWKingCastle  chess.Col
	PrevWQueenCastle chess.Col
	PrevBKingCastle  chess.Col
	PrevBQueenCastle chess.Col
	PrevEnPassant    bool
	PrevEPSquare     chess.Square
	PrevHalfmove     uint
	PrevMoveNumber   uint
	PrevWKing        chess.Square
	PrevBKing        chess.Square
}

// MakeMove applies a move mechanically, without legality checking, and
// returns the delta needed to reverse it. Legality is the move generator's
// responsibility; MakeMove trusts that both squares are on the board.
func MakeMove(board *chess.Board, move chess.Move) Delta {
	colour := board.ToMove
	moved := board.At(move.From)

	delta := Delta{
		Moved:            moved,
		Captured:         chess.Empty,
		PrevWKingCastle:  board.WKingCastle,
		PrevWQueenCastle: board.WQueenCastle,
		PrevBKingCastle:  board.BKingCastle,
		PrevBQueenCastle: board.BQueenCastle,
		PrevEnPassant:    board.EnPassant,
		PrevEPSquare:     board.EPSquare,
		PrevHalfmove:     board.HalfmoveClock,
		PrevMoveNumber:   board.MoveNumber,
		PrevWKing:        board.WKing,
		PrevBKing:        board.BKing,
	}

	// Remove the captured piece first, so the mover can land on its square.
	if move.EnPassant {
		delta.CapturedSq = chess.Sq(move.To.Col, chess.Rank(int(move.To.Rank)-chess.ColourOffset(colour)))
		delta.Captured = board.At(delta.CapturedSq)
		board.Put(delta.CapturedSq, chess.Empty)
	} else if target := board.At(move.To); target != chess.Empty {
		delta.CapturedSq = move.To
		delta.Captured = target
		board.Put(move.To, chess.Empty)
	}

	// Move the piece, promoting if required.
	board.Put(move.From, chess.Empty)
	if move.IsPromotion() {
		board.Put(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		board.Put(move.To, moved)
	}

	kind := chess.ExtractPiece(moved)

	if kind == chess.King {
		board.SetKing(colour, move.To)
		if colour == chess.White {
			board.WKingCastle, board.WQueenCastle = 0, 0
		} else {
			board.BKingCastle, board.BQueenCastle = 0, 0
		}
	}

	// A castle also moves the rook.
	if move.IsCastle() {
		rookFrom, rookTo := castleRookSquares(move, colour)
		rook := board.At(rookFrom)
		board.Put(rookFrom, chess.Empty)
		board.Put(rookTo, rook)
	}

	// Castling rights are lost when a rook leaves its corner or is captured
	// on it.
	if kind == chess.Rook {
		clearRookRight(board, colour, move.From)
	}
	if delta.Captured != chess.Empty && chess.ExtractPiece(delta.Captured) == chess.Rook {
		clearRookRight(board, chess.ExtractColour(delta.Captured), delta.CapturedSq)
	}

	// The en passant target exists only for the single reply to a double
	// pawn push.
	board.EnPassant = false
	if kind == chess.Pawn && isDoublePush(move, colour) {
		board.EnPassant = true
		board.EPSquare = chess.Sq(move.From.Col, chess.Rank(int(move.From.Rank)+chess.ColourOffset(colour)))
	}

	if kind == chess.Pawn || delta.Captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return delta
}

// UnmakeMove exactly reverses a move previously applied with MakeMove.
func UnmakeMove(board *chess.Board, move chess.Move, delta Delta) {
	colour := board.ToMove.Opposite() // the side that made the move
	board.ToMove = colour

	// Put the mover back, demoting a promoted pawn.
	board.Put(move.To, chess.Empty)
	board.Put(move.From, delta.Moved)

	if delta.Captured != chess.Empty {
		board.Put(delta.CapturedSq, delta.Captured)
	}

	if move.IsCastle() {
		rookFrom, rookTo := castleRookSquares(move, colour)
		rook := board.At(rookTo)
		board.Put(rookTo, chess.Empty)
		board.Put(rookFrom, rook)
	}

	board.WKingCastle = delta.PrevWKingCastle
	board.WQueenCastle = delta.PrevWQueenCastle
	board.BKingCastle = delta.PrevBKingCastle
	board.BQueenCastle = delta.PrevBQueenCastle
	board.EnPassant = delta.PrevEnPassant
	board.EPSquare = delta.PrevEPSquare
	board.HalfmoveClock = delta.PrevHalfmove
	board.MoveNumber = delta.PrevMoveNumber
	board.WKing = delta.PrevWKing
	board.BKing = delta.PrevBKing
}

// castleRookSquares returns the rook's from and to squares for a castle.
func castleRookSquares(move chess.Move, colour chess.Colour) (chess.Square, chess.Square) {
	rank := chess.Rank('1')
	if colour == chess.Black {
		rank = '8'
	}
	if move.CastleKingside {
		return chess.Sq('h', rank), chess.Sq('f', rank)
	}
	return chess.Sq('a', rank), chess.Sq('d', rank)
}

// clearRookRight removes the castling right associated with a rook's corner
// square, if the square is one.
func clearRookRight(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if colour == chess.White && sq.Rank == '1' {
		if sq.Col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if sq.Col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && sq.Rank == '8' {
		if sq.Col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if sq.Col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}

// isDoublePush reports whether a pawn move is a two-square advance.
func isDoublePush(move chess.Move, colour chess.Colour) bool {
	diff := int(move.To.Rank) - int(move.From.Rank)
	return diff == 2*chess.ColourOffset(colour)
}
