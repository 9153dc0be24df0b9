package eval

import "github.com/kjansen/chessmind/internal/chess"

// Piece-square tables in centipawns, indexed [rank-1][file] from White's
// point of view; Black mirrors the rank. The shapes reward central knights
// and bishops, advanced supported pawns, active rooks, and a tucked-away
// king.
var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, -50, -50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{0, 0, 0, -20, -20, 0, 0, 0},
	{10, -10, -20, 0, 0, -20, -10, 10},
	{10, 20, 20, -20, -20, 20, 20, 10},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 10, 10, 0, -20, -40},
	{-30, 10, 20, 30, 30, 20, 10, -30},
	{-30, 0, 30, 40, 40, 30, 0, -30},
	{-30, 10, 30, 40, 40, 30, 10, -30},
	{-30, 0, 20, 30, 30, 20, 0, -30},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 10, 0, 0, 0, 0, 10, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int{
	{0, 0, 10, 20, 20, 10, 0, 0},
	{-20, 0, 0, 0, 0, 0, 0, -20},
	{-20, 0, 0, 0, 0, 0, 0, -20},
	{-20, 0, 0, 0, 0, 0, 0, -20},
	{-20, 0, 0, 0, 0, 0, 0, -20},
	{-20, 0, 0, 0, 0, 0, 0, -20},
	{20, 20, 20, 20, 20, 20, 20, 20},
	{0, 0, 10, 20, 20, 10, 0, 0},
}

var queenTable = [8][8]int{
	{-20, -10, -10, 0, 0, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{0, 0, 10, 10, 10, 10, 0, 0},
	{0, 0, 10, 10, 10, 10, 0, 0},
	{-10, 10, 10, 10, 10, 10, 0, -10},
	{-10, 0, 10, 0, 0, 0, 0, -10},
	{-20, -10, -10, 0, 0, -10, -10, -20},
}

var kingTable = [8][8]int{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

// pieceTables dispatches by piece kind.
var pieceTables = map[chess.Piece]*[8][8]int{
	chess.Pawn:   &pawnTable,
	chess.Knight: &knightTable,
	chess.Bishop: &bishopTable,
	chess.Rook:   &rookTable,
	chess.Queen:  &queenTable,
	chess.King:   &kingTable,
}

// pieceSquare returns the positional bonus for a piece of the given kind
// and colour standing on the square.
func pieceSquare(kind chess.Piece, colour chess.Colour, sq chess.Square) int {
	table, ok := pieceTables[kind]
	if !ok {
		return 0
	}
	rankIdx := int(sq.Rank - chess.FirstRank)
	if colour == chess.Black {
		rankIdx = chess.BoardSize - 1 - rankIdx
	}
	return table[rankIdx][int(sq.Col-chess.FirstCol)]
}
