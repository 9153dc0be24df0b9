package game

import (
	"github.com/kjansen/chessmind/internal/chess"
	"github.com/kjansen/chessmind/internal/engine"
	"github.com/kjansen/chessmind/internal/errors"
	"github.com/kjansen/chessmind/internal/hashing"
)

// historyEntry pairs an applied move with the delta that reverses it and
// the position key it produced.
type historyEntry struct {
	move  chess.Move
	delta engine.Delta
	key   uint64
}

// State is a complete game: the current board, the undo stack, and the
// repetition counts for the line played so far. A State exclusively owns
// its board; accessors hand out copies.
type State struct {
	board      *chess.Board
	history    []historyEntry
	repetition *hashing.RepetitionTable
	key        uint64

	// legal caches the legal move list for the current position;
	// nil means not yet computed.
	legal []chess.Move
}

// New creates a game from the standard initial position.
func New() *State {
	st, _ := NewFromFEN(engine.InitialFEN)
	return st
}

// NewFromFEN creates a game from an arbitrary position.
func NewFromFEN(fen string) (*State, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	st := &State{
		board:      board,
		repetition: hashing.NewRepetitionTable(),
		key:        hashing.PositionKey(board),
	}
	st.repetition.Push(st.key)
	return st, nil
}

// Board returns a snapshot copy of the current board. Callers never get a
// mutable reference into the state.
func (s *State) Board() *chess.Board {
	return s.board.Copy()
}

// ToMove returns the side to move.
func (s *State) ToMove() chess.Colour {
	return s.board.ToMove
}

// InCheck reports whether the side to move is in check.
func (s *State) InCheck() bool {
	return engine.IsInCheck(s.board, s.board.ToMove)
}

// FEN returns the current position in FEN.
func (s *State) FEN() string {
	return engine.BoardToFEN(s.board)
}

// PlyCount returns the number of applied moves.
func (s *State) PlyCount() int {
	return len(s.history)
}

// LastMove returns the most recently applied move.
func (s *State) LastMove() (chess.Move, bool) {
	if len(s.history) == 0 {
		return chess.Move{}, false
	}
	return s.history[len(s.history)-1].move, true
}

// LegalMoves returns the legal moves in the current position. The result
// is a copy; mutating it does not affect the state.
func (s *State) LegalMoves() []chess.Move {
	if s.legal == nil {
		s.legal = engine.LegalMoves(s.board)
	}
	out := make([]chess.Move, len(s.legal))
	copy(out, s.legal)
	return out
}

// legalMoves returns the cached legal move list without copying.
func (s *State) legalMoves() []chess.Move {
	if s.legal == nil {
		s.legal = engine.LegalMoves(s.board)
	}
	return s.legal
}

// Apply validates the move against the current legal set and applies it.
// Only the from/to squares and promotion kind of the argument are
// considered, so a parsed coordinate move is accepted as-is.
// Fails with ErrGameOver after a terminal outcome and ErrIllegalMove for
// a move outside the legal set.
func (s *State) Apply(move chess.Move) error {
	if s.Outcome().IsTerminal() {
		return &errors.MoveError{
			Err:  errors.ErrGameOver,
			Move: move.String(),
			Ply:  len(s.history) + 1,
		}
	}

	matched, ok := s.matchLegal(move)
	if !ok {
		return &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Move: move.String(),
			Ply:  len(s.history) + 1,
			FEN:  s.FEN(),
		}
	}

	delta := engine.MakeMove(s.board, matched)
	s.key = hashing.PositionKey(s.board)
	s.repetition.Push(s.key)
	s.history = append(s.history, historyEntry{move: matched, delta: delta, key: s.key})
	s.legal = nil
	return nil
}

// matchLegal finds the generator's move matching the given action.
func (s *State) matchLegal(move chess.Move) (chess.Move, bool) {
	for _, legal := range s.legalMoves() {
		if legal.SameAction(move) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

// Undo reverses the most recent move and returns it. All side state
// (castling rights, en passant target, clocks) is restored exactly from
// the recorded delta. Undoing out of a terminal position is permitted and
// returns the game to ongoing.
func (s *State) Undo() (chess.Move, error) {
	if len(s.history) == 0 {
		return chess.Move{}, errors.ErrNoHistory
	}

	entry := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.repetition.Pop(entry.key)
	engine.UnmakeMove(s.board, entry.move, entry.delta)

	if len(s.history) > 0 {
		s.key = s.history[len(s.history)-1].key
	} else {
		s.key = hashing.PositionKey(s.board)
	}
	s.legal = nil
	return entry.move, nil
}

// Outcome classifies the current position. Checkmate and stalemate take
// precedence over the draw-by-rule conditions.
func (s *State) Outcome() Outcome {
	if len(s.legalMoves()) == 0 {
		if s.InCheck() {
			if s.board.ToMove == chess.White {
				return CheckmateBlackWins
			}
			return CheckmateWhiteWins
		}
		return StalemateDraw
	}

	if s.board.HalfmoveClock >= engine.HalfmoveDrawLimit {
		return FiftyMoveDraw
	}
	if engine.HasInsufficientMaterial(s.board) {
		return InsufficientMaterialDraw
	}
	if s.repetition.Count(s.key) >= 3 {
		return ThreefoldRepetitionDraw
	}
	return Ongoing
}
