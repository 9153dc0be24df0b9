package chess

import (
	"fmt"

	"github.com/kjansen/chessmind/internal/errors"
)

// Move represents a single move as a plain value. A Move is only meaningful
// relative to the board position it was generated from.
type Move struct {
	From Square
	To   Square

	// Promotion holds the piece kind a pawn promotes to, or Empty.
	Promotion Piece

	// Flags describing the move.
	Capture         bool
	EnPassant       bool
	CastleKingside  bool
	CastleQueenside bool
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty && m.Promotion != Off
}

// IsCastle reports whether this move is a castling move.
func (m Move) IsCastle() bool {
	return m.CastleKingside || m.CastleQueenside
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(promotionLetter(m.Promotion))
	}
	return s
}

// SameAction reports whether two moves describe the same from/to/promotion
// action, ignoring the flags that the generator fills in.
func (m Move) SameAction(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// promotionLetter returns the lowercase suffix letter for a promotion kind.
func promotionLetter(piece Piece) byte {
	switch piece {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	}
	return '?'
}

// PromotionFromLetter maps a promotion suffix letter to a piece kind.
func PromotionFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	}
	return Empty, false
}

// ParseMove parses coordinate notation such as "e2e4" or "e7e8q".
// Only the from/to squares and promotion kind are filled in; the remaining
// flags belong to the move generator.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	move := Move{From: from, To: to, Promotion: Empty}
	if len(text) == 5 {
		piece, ok := PromotionFromLetter(text[4])
		if !ok {
			return Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrInvalidSquare)
		}
		move.Promotion = piece
	}
	return move, nil
}
