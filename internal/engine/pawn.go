package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isPawnAdvance reports whether moving the pawn on from to to is a plain
// forward step: one square, or two from the starting rank, onto empty squares.
func isPawnAdvance(board *chess.Board, from, to chess.Square) bool {
	pawn := board.Get(from)
	if pawn.Type != chess.Pawn || to.File() != from.File() || !board.Get(to).IsEmpty() {
		return false
	}

	direction := chess.ColourOffset(pawn.Colour)
	switch to.Rank() - from.Rank() {
	case direction:
		return true
	case 2 * direction:
		return from.Rank() == chess.PawnStartRank(pawn.Colour) && isPathClear(board, from, to)
	}
	return false
}

// enPassantVictim returns the square of the pawn captured en passant by
// moving from to to, or NoSquare when the move is not such a capture.
// Eligibility comes only from the last move record.
func enPassantVictim(board *chess.Board, from, to chess.Square) chess.Square {
	pawn := board.Get(from)
	if pawn.Type != chess.Pawn || !board.Get(to).IsEmpty() {
		return chess.NoSquare
	}
	if abs(to.File()-from.File()) != 1 || to.Rank()-from.Rank() != chess.ColourOffset(pawn.Colour) {
		return chess.NoSquare
	}

	last := board.LastMove
	target, ok := last.EnPassantTarget()
	if !ok || target != to || last.Colour == pawn.Colour {
		return chess.NoSquare
	}

	victim := chess.NewSquare(to.File(), from.Rank())
	if board.Get(victim) != (chess.Piece{Type: chess.Pawn, Colour: pawn.Colour.Opposite()}) {
		return chess.NoSquare
	}
	return victim
}
