package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsChecking returns true if the pieces of colour attack the opposing king.
func IsChecking(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.King(colour.Opposite())
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(board, king, colour)
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for from := chess.Square(0); from.Valid(); from++ {
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != byColour {
			continue
		}
		if Attacks(board, from).Has(sq) {
			return true
		}
	}
	return false
}
