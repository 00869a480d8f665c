package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// longForm matches origin and destination coordinates with an optional
// promotion letter. Letters and digits are loose so that off-board
// coordinates are reported as such rather than as bad notation.
var longForm = regexp.MustCompile(`^([a-z][0-9])([a-z][0-9])([qrbnQRBN])?$`)

// Play applies one move for the side to move and returns the resulting
// status. text is either long form ("e2e4", "e7e8q") or short algebraic.
// A king moving two files from its home square in long form castles.
// promotion is used when text names none. On error the board is unchanged.
func Play(board *chess.Board, text string, promotion chess.PieceType) (Status, error) {
	text = strings.TrimSpace(text)

	var err error
	if m := longForm.FindStringSubmatch(text); m != nil {
		err = playLongForm(board, m, promotion)
	} else {
		err = playAlgebraic(board, text, promotion)
	}
	if err != nil {
		var me *errors.MoveError
		if errors.As(err, &me) {
			me.Move = text
		}
		return Status{}, err
	}
	return Evaluate(board), nil
}

func playLongForm(board *chess.Board, m []string, promotion chess.PieceType) error {
	from, okFrom := chess.ParseSquare(m[1])
	to, okTo := chess.ParseSquare(m[2])
	if !okFrom || !okTo {
		return structuralError(errors.ErrOffBoard, m[0])
	}
	if m[3] != "" {
		promotion = chess.PieceTypeFromLetter(m[3][0])
	}

	if side := castleSideOf(board, from, to); side != chess.NoCastle {
		return Castle(board, side)
	}
	return Apply(board, from, to, promotion)
}

func playAlgebraic(board *chess.Board, text string, promotion chess.PieceType) error {
	res, err := Resolve(board, text)
	if err != nil {
		return err
	}
	if res.Castle != chess.NoCastle {
		return Castle(board, res.Castle)
	}
	if res.Promotion != chess.NoPiece {
		promotion = res.Promotion
	}
	return Apply(board, res.From, res.To, promotion)
}
