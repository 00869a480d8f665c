package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// castlePath holds the squares involved in one castling move.
type castlePath struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	// The king's origin, the square it crosses and its destination.
	guarded [3]chess.Square
}

func castlingPath(colour chess.Colour, side chess.CastleSide) castlePath {
	rank := chess.HomeRank(colour)
	sq := func(file int) chess.Square { return chess.NewSquare(file, rank) }

	if side == chess.Kingside {
		return castlePath{
			kingFrom: sq(4), kingTo: sq(6),
			rookFrom: sq(7), rookTo: sq(5),
			guarded: [3]chess.Square{sq(4), sq(5), sq(6)},
		}
	}
	return castlePath{
		kingFrom: sq(4), kingTo: sq(2),
		rookFrom: sq(0), rookTo: sq(3),
		guarded: [3]chess.Square{sq(4), sq(3), sq(2)},
	}
}

// CanCastle reports why the side to move may not castle on the given wing,
// or nil if it may.
func CanCastle(board *chess.Board, side chess.CastleSide) error {
	return canCastle(board, board.ToMove, side)
}

func canCastle(board *chess.Board, colour chess.Colour, side chess.CastleSide) error {
	move := side.String()
	if side != chess.Kingside && side != chess.Queenside {
		return notationError(errors.ErrUnparsable, move)
	}
	if !board.HasCastle(colour, side) {
		return ruleError(errors.ErrCastlingRight, move)
	}

	path := castlingPath(colour, side)
	if board.Get(path.kingFrom) != (chess.Piece{Type: chess.King, Colour: colour}) ||
		board.Get(path.rookFrom) != (chess.Piece{Type: chess.Rook, Colour: colour}) {
		return ruleError(errors.ErrCastlingRight, move)
	}
	if !isPathClear(board, path.kingFrom, path.rookFrom) {
		return ruleError(errors.ErrCastlingBlocked, move)
	}
	for _, sq := range path.guarded {
		if isSquareAttacked(board, sq, colour.Opposite()) {
			return ruleError(errors.ErrCastlingAttacked, move)
		}
	}
	return nil
}

// Castle castles the side to move on the given wing. King and rook move
// together, both rights of that colour are cleared and the turn passes.
// On error the board is unchanged.
func Castle(board *chess.Board, side chess.CastleSide) error {
	if err := CanCastle(board, side); err != nil {
		return err
	}

	colour := board.ToMove
	path := castlingPath(colour, side)

	board.Relocate(path.kingFrom, path.kingTo)
	board.Relocate(path.rookFrom, path.rookTo)
	board.ClearCastling(colour, chess.Kingside)
	board.ClearCastling(colour, chess.Queenside)

	board.LastMove = chess.LastMove{
		Played: true,
		Piece:  chess.King,
		Colour: colour,
		From:   path.kingFrom,
		To:     path.kingTo,
		Castle: side,
	}
	finishTurn(board)
	return nil
}

// castleSideOf recognises a two-file move of the mover's king from its home
// square written in long form, such as e1g1, and returns the wing it castles
// to. The opponent's king is left for Apply to reject.
func castleSideOf(board *chess.Board, from, to chess.Square) chess.CastleSide {
	king := board.Get(from)
	if king.Type != chess.King || king.Colour != board.ToMove || from != chess.NewSquare(4, chess.HomeRank(king.Colour)) || to.Rank() != from.Rank() {
		return chess.NoCastle
	}
	switch to.File() {
	case 6:
		return chess.Kingside
	case 2:
		return chess.Queenside
	}
	return chess.NoCastle
}

// revokeCastling clears every right tied to a king or rook home square.
// It is called for both squares of a move, so a rook captured at home
// loses its right too.
func revokeCastling(board *chess.Board, sq chess.Square) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if sq.Rank() != chess.HomeRank(colour) {
			continue
		}
		switch sq.File() {
		case 0:
			board.ClearCastling(colour, chess.Queenside)
		case 4:
			board.ClearCastling(colour, chess.Kingside)
			board.ClearCastling(colour, chess.Queenside)
		case 7:
			board.ClearCastling(colour, chess.Kingside)
		}
	}
}
