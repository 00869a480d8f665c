package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsMating returns true if colour gives check and the opponent has no
// legal move out of it.
func IsMating(board *chess.Board, colour chess.Colour) bool {
	return IsChecking(board, colour) && !hasEscape(*board, colour.Opposite())
}

// IsPating returns true if colour has stalemated the opponent: no check,
// no legal move and no legal castle.
func IsPating(board *chess.Board, colour chess.Colour) bool {
	if IsChecking(board, colour) {
		return false
	}
	defender := colour.Opposite()
	if hasEscape(*board, defender) {
		return false
	}
	return canCastle(board, defender, chess.Kingside) != nil &&
		canCastle(board, defender, chess.Queenside) != nil
}

// Status describes a position from the point of view of the side that
// made the last move.
type Status struct {
	Mover chess.Colour
	Check chess.CheckStatus
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s.Check == chess.Checkmate || s.Check == chess.Stalemate
}

// Result returns the game result token: "1-0", "0-1", "1/2-1/2" or "*".
func (s Status) Result() string {
	switch s.Check {
	case chess.Checkmate:
		if s.Mover == chess.White {
			return "1-0"
		}
		return "0-1"
	case chess.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// String describes the status for display.
func (s Status) String() string {
	switch s.Check {
	case chess.Checkmate:
		return "checkmate, " + s.Mover.String() + " wins"
	case chess.Stalemate:
		return "stalemate"
	case chess.Check:
		return s.Mover.Opposite().String() + " is in check"
	}
	return s.Mover.Opposite().String() + " to move"
}

// Evaluate returns the status left behind by the side that just moved.
func Evaluate(board *chess.Board) Status {
	mover := board.ToMove.Opposite()
	status := Status{Mover: mover, Check: chess.NoCheck}

	switch {
	case IsMating(board, mover):
		status.Check = chess.Checkmate
	case IsPating(board, mover):
		status.Check = chess.Stalemate
	case IsChecking(board, mover):
		status.Check = chess.Check
	}
	return status
}
