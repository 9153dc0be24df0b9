package chess

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// board[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The current full-move number, incremented after Black's move.
	MoveNumber uint

	// Rook starting columns for the 4 castling options.
	// Zero means the corresponding right has been lost.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Is an en passant capture possible? If so EPSquare holds the square
	// on which the capture can be made.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	// Initialize all squares to Off (hedge) or Empty
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// Get returns the piece at the given coordinates.
// Out-of-range coordinates return Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// At returns the piece on a square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Set places a piece at the given coordinates. Out-of-range coordinates
// are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// Put places a piece on a square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq) == Empty
}

// IsOccupiedBy reports whether the square holds a piece of the given colour.
func (b *Board) IsOccupiedBy(sq Square, colour Colour) bool {
	p := b.At(sq)
	return p != Empty && p != Off && ExtractColour(p) == colour
}

// King returns the square of the given colour's king.
func (b *Board) King(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

// SetKing records the king square for the given colour.
func (b *Board) SetKing(colour Colour, sq Square) {
	if colour == White {
		b.WKing = sq
	} else {
		b.BKing = sq
	}
}

// CanCastle reports whether the given colour still holds the kingside or
// queenside castling right.
func (b *Board) CanCastle(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return b.WKingCastle != 0
	case colour == White:
		return b.WQueenCastle != 0
	case kingside:
		return b.BKingCastle != 0
	default:
		return b.BQueenCastle != 0
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
