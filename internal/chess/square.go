package chess

import (
	"fmt"

	"github.com/kjansen/chessmind/internal/errors"
)

// Square identifies a single board square by file and rank characters
// ('a'-'h', '1'-'8'). The zero value is not a valid square.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq is a shorthand constructor for a Square.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// Index returns a dense 0-63 index for the square (a1=0, b1=1, ..., h8=63).
// The square must be valid.
func (s Square) Index() int {
	return int(s.Rank-FirstRank)*BoardSize + int(s.Col-FirstCol)
}

// String returns the coordinate form of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// ParseSquare parses a two-character coordinate such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	sq := Square{Col: Col(text[0]), Rank: Rank(text[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}
