// Package game provides the game state machine: move application with
// exact undo, history, and terminal-state detection.
package game

import "github.com/kjansen/chessmind/internal/chess"

// Outcome classifies the state of a game.
type Outcome int

const (
	Ongoing Outcome = iota
	CheckmateWhiteWins
	CheckmateBlackWins
	StalemateDraw
	FiftyMoveDraw
	InsufficientMaterialDraw
	ThreefoldRepetitionDraw
)

// String returns a human-readable description of the outcome.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case CheckmateWhiteWins:
		return "checkmate, White wins"
	case CheckmateBlackWins:
		return "checkmate, Black wins"
	case StalemateDraw:
		return "draw by stalemate"
	case FiftyMoveDraw:
		return "draw by fifty-move rule"
	case InsufficientMaterialDraw:
		return "draw by insufficient material"
	case ThreefoldRepetitionDraw:
		return "draw by threefold repetition"
	}
	return "unknown"
}

// IsTerminal reports whether the game has ended.
func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

// IsDraw reports whether the outcome is any of the draw conditions.
func (o Outcome) IsDraw() bool {
	switch o {
	case StalemateDraw, FiftyMoveDraw, InsufficientMaterialDraw, ThreefoldRepetitionDraw:
		return true
	}
	return false
}

// Winner returns the winning colour for a checkmate outcome. The second
// return value is false for ongoing games and draws.
func (o Outcome) Winner() (chess.Colour, bool) {
	switch o {
	case CheckmateWhiteWins:
		return chess.White, true
	case CheckmateBlackWins:
		return chess.Black, true
	}
	return chess.White, false
}
