package engine

import "github.com/kjansen/chessmind/internal/chess"

// HalfmoveDrawLimit is the halfmove-clock value at which the fifty-move
// rule applies (fifty full moves without a pawn move or capture).
const HalfmoveDrawLimit = 100

// HasInsufficientMaterial returns true if neither side can possibly
// deliver checkmate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B with both bishops on the same square colour
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}

			colour := chess.ExtractColour(piece)
			kind := chess.ExtractPiece(piece)

			if kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen is mating material.
			if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
				return false
			}

			if colour == chess.White {
				whiteMinors = append(whiteMinors, kind)
				if kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(col, rank)
				}
			} else {
				blackMinors = append(blackMinors, kind)
				if kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(col, rank)
				}
			}
		}
	}

	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}
	if len(whiteMinors) == 0 && len(blackMinors) == 1 {
		return true
	}
	if len(blackMinors) == 0 && len(whiteMinors) == 1 {
		return true
	}
	if len(whiteMinors) == 1 && len(blackMinors) == 1 &&
		whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(col chess.Col, rank chess.Rank) bool {
	colNum := int(col - chess.FirstCol)
	rankNum := int(rank - chess.FirstRank)
	return (colNum+rankNum)%2 == 1
}
