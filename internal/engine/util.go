package engine

import "github.com/lgbarn/chessrules-go/internal/errors"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func structuralError(err error, move string) error {
	return errors.NewMoveError(errors.KindStructural, err, move)
}

func ruleError(err error, move string) error {
	return errors.NewMoveError(errors.KindRule, err, move)
}

func notationError(err error, move string) error {
	return errors.NewMoveError(errors.KindNotation, err, move)
}
