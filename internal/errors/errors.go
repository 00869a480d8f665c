// Package errors provides sentinel errors and error types for the chess rule engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOffBoard indicates a coordinate outside a1-h8.
	ErrOffBoard = errors.New("coordinate off board")

	// ErrEmptySquare indicates a move from a square holding no piece.
	ErrEmptySquare = errors.New("no piece on origin square")

	// ErrWrongTurn indicates a move by the side not on move.
	ErrWrongTurn = errors.New("not your turn")

	// ErrSelfCheck indicates a move that would leave the mover's king attacked.
	ErrSelfCheck = errors.New("move would leave own king in check")

	// ErrIllegalShape indicates a move the piece cannot make from its square,
	// either because of its movement pattern or a blocked path.
	ErrIllegalShape = errors.New("piece cannot move there")

	// ErrCastlingRight indicates the castling right for the wing is gone.
	ErrCastlingRight = errors.New("castling right no longer held")

	// ErrCastlingBlocked indicates pieces between king and rook.
	ErrCastlingBlocked = errors.New("piece in the way of castling")

	// ErrCastlingAttacked indicates the king starts on, crosses or lands on an attacked square.
	ErrCastlingAttacked = errors.New("king would castle out of, through or into check")

	// ErrPromotionRequired indicates a pawn reaching the last rank without a promotion choice.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrBadPromotion indicates a promotion choice other than Q, R, B or N.
	ErrBadPromotion = errors.New("invalid promotion piece")

	// ErrUnparsable indicates move text that matches no supported notation.
	ErrUnparsable = errors.New("move text not understood")

	// ErrNoCandidate indicates move text no piece can legally satisfy.
	ErrNoCandidate = errors.New("no piece can make this move")

	// ErrAmbiguous indicates move text several pieces can legally satisfy.
	ErrAmbiguous = errors.New("ambiguous move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a recorded move that could not be played.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates a general game record parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Kind distinguishes the three classes of move failure.
type Kind int

const (
	KindUnknown    Kind = iota
	KindStructural      // off-board coordinate or empty origin
	KindRule            // the rules of chess forbid the move
	KindNotation        // the move text cannot be resolved
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural error"
	case KindRule:
		return "rule violation"
	case KindNotation:
		return "notation error"
	}
	return "error"
}

// MoveError reports why a move was rejected. The board is never modified
// when one is returned.
type MoveError struct {
	Kind Kind   // Which class of failure
	Err  error  // The sentinel naming the failed condition
	Move string // The move as given (if known)
}

// NewMoveError creates a MoveError.
func NewMoveError(kind Kind, err error, move string) *MoveError {
	return &MoveError{Kind: kind, Err: err, Move: move}
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	if e.Move != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Move, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Reason returns the human-readable rejection reason.
func (e *MoveError) Reason() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// KindOf returns the kind of the first MoveError in err's chain.
func KindOf(err error) Kind {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GameError wraps errors with game context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the file
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a game record parsing error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if e.Line > 0 {
			if loc != "" {
				loc += ":"
			}
			loc += fmt.Sprintf("line %d", e.Line)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
