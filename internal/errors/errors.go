// Package errors provides sentinel errors and error types for chessmind.
// It defines the error taxonomy of the rules engine and structured error
// types that preserve context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure conditions.
// All of them are locally recoverable; none are fatal to the process.
var (
	// ErrInvalidSquare indicates an out-of-range coordinate. This is a
	// programming-contract violation at the parse boundary.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoHistory indicates an undo with an empty history stack.
	ErrNoHistory = errors.New("no move to undo")

	// ErrGameOver indicates a move applied after a terminal outcome.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps a move-related error with position context. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Move string // Coordinate notation of the offending move
	Ply  int    // 1-based ply at which the error occurred (0 if not applicable)
	FEN  string // Position in which the move was attempted (if known)
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %q", e.Move)
	if e.Ply > 0 {
		msg += fmt.Sprintf(" at ply %d", e.Ply)
	}
	if e.FEN != "" {
		msg += fmt.Sprintf(" in %q", e.FEN)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
