package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Validate checks whether the piece on from may move to to. It returns nil
// for a legal move, otherwise a *errors.MoveError whose kind and sentinel
// name the first failed condition. The board is never modified.
//
// Checks run in a fixed order: the origin must hold a piece, that piece must
// belong to the side to move when enforceTurn is set, the move must not leave
// the mover's king attacked, and finally the destination must be attacked by
// the piece or be a pawn advance or en-passant capture.
func Validate(board *chess.Board, from, to chess.Square, enforceTurn bool) error {
	move := from.String() + to.String()
	if !from.Valid() || !to.Valid() {
		return structuralError(errors.ErrOffBoard, move)
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return structuralError(errors.ErrEmptySquare, move)
	}
	if enforceTurn && piece.Colour != board.ToMove {
		return ruleError(errors.ErrWrongTurn, move)
	}

	if leavesKingAttacked(board, from, to) {
		return ruleError(errors.ErrSelfCheck, move)
	}

	if Attacks(board, from).Has(to) {
		return nil
	}
	if piece.Type == chess.Pawn {
		if isPawnAdvance(board, from, to) || enPassantVictim(board, from, to).Valid() {
			return nil
		}
	}
	return ruleError(errors.ErrIllegalShape, move)
}

// IsValid is the boolean form of Validate.
func IsValid(board *chess.Board, from, to chess.Square, enforceTurn bool) bool {
	return Validate(board, from, to, enforceTurn) == nil
}

// leavesKingAttacked plays the move on a clone without any rule checking
// and tests the mover's king there.
func leavesKingAttacked(board *chess.Board, from, to chess.Square) bool {
	mover := board.Get(from).Colour

	trial := board.Clone()
	if victim := enPassantVictim(board, from, to); victim.Valid() {
		trial.Clear(victim)
	}
	trial.Relocate(from, to)

	return IsChecking(trial, mover.Opposite())
}
