package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply validates and plays the move from-to for the side to move.
// promotion is required when a pawn reaches the last rank and ignored
// otherwise. On error the board is unchanged.
func Apply(board *chess.Board, from, to chess.Square, promotion chess.PieceType) error {
	if err := Validate(board, from, to, true); err != nil {
		return err
	}

	piece := board.Get(from)
	promotes := piece.Type == chess.Pawn && to.Rank() == chess.PromotionRank(piece.Colour)
	if promotes {
		if promotion == chess.NoPiece {
			return ruleError(errors.ErrPromotionRequired, from.String()+to.String())
		}
		if !promotion.IsPromotionChoice() {
			return ruleError(errors.ErrBadPromotion, from.String()+to.String())
		}
	}

	revokeCastling(board, from)
	revokeCastling(board, to)

	// Handle en passant capture
	if victim := enPassantVictim(board, from, to); victim.Valid() {
		board.Clear(victim)
	}

	board.Relocate(from, to)

	if promotes {
		board.Set(to, chess.Piece{Type: promotion, Colour: piece.Colour})
	}

	board.LastMove = chess.LastMove{
		Played: true,
		Piece:  piece.Type,
		Colour: piece.Colour,
		From:   from,
		To:     to,
	}
	finishTurn(board)
	return nil
}

// finishTurn passes the move to the other side, counting a full move
// once Black has played.
func finishTurn(board *chess.Board) {
	if board.ToMove == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()
}
