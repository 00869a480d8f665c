package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// sanPattern matches piece letter, file and rank disambiguation, capture
// marker, destination and promotion.
var sanPattern = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=?([QRBN]))?$`)

// Resolution is a move text reduced to concrete squares.
type Resolution struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
	Castle    chess.CastleSide
}

// Resolve turns short algebraic text such as "e4", "Nbd2", "exd5",
// "R1e1", "e8=Q" or "O-O" into a move for the side to move. Trailing
// "+", "#", "!" and "?" are ignored. Exactly one piece must be able to
// make the move; castling is returned unchecked.
func Resolve(board *chess.Board, text string) (Resolution, error) {
	san := strings.TrimRight(strings.TrimSpace(text), "+#!?")

	if side := castleToken(san); side != chess.NoCastle {
		path := castlingPath(board.ToMove, side)
		return Resolution{From: path.kingFrom, To: path.kingTo, Castle: side}, nil
	}

	m := sanPattern.FindStringSubmatch(san)
	if m == nil {
		return Resolution{}, notationError(errors.ErrUnparsable, text)
	}

	pieceType := chess.Pawn
	if m[1] != "" {
		pieceType = chess.PieceTypeFromLetter(m[1][0])
	}
	to := chess.MustParseSquare(m[5])
	if m[6] != "" && (pieceType != chess.Pawn || to.Rank() != chess.PromotionRank(board.ToMove)) {
		return Resolution{}, notationError(errors.ErrUnparsable, text)
	}

	file, rank := -1, -1
	if m[2] != "" {
		file = int(m[2][0] - chess.FirstCol)
	}
	if m[3] != "" {
		rank = int(m[3][0] - chess.FirstRank)
	}
	if pieceType == chess.Pawn && file < 0 && m[4] == "" {
		file = to.File()
	}

	var candidates []chess.Square
	for _, from := range board.FindPieces(board.ToMove, pieceType) {
		if file >= 0 && from.File() != file {
			continue
		}
		if rank >= 0 && from.Rank() != rank {
			continue
		}
		if IsValid(board, from, to, true) {
			candidates = append(candidates, from)
		}
	}

	switch len(candidates) {
	case 0:
		return Resolution{}, notationError(errors.ErrNoCandidate, text)
	case 1:
	default:
		return Resolution{}, notationError(errors.ErrAmbiguous, text)
	}

	res := Resolution{From: candidates[0], To: to}
	if m[6] != "" {
		res.Promotion = chess.PieceTypeFromLetter(m[6][0])
	}
	return res, nil
}

// castleToken recognises O-O and O-O-O, also written with zeros.
func castleToken(s string) chess.CastleSide {
	switch s {
	case "O-O", "0-0":
		return chess.Kingside
	case "O-O-O", "0-0-0":
		return chess.Queenside
	}
	return chess.NoCastle
}
