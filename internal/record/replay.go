package record

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Step describes the position after one replayed move.
type Step struct {
	Ply    int
	Move   string
	Board  *chess.Board
	Status engine.Status
}

// StartBoard returns the position the game starts from.
func (g *Game) StartBoard() (*chess.Board, error) {
	if fen := g.StartFEN(); fen != "" {
		return engine.NewBoardFromFEN(fen)
	}
	return engine.NewInitialBoard(), nil
}

// Replay plays the recorded moves in order. Promotions without an explicit
// piece use promotion. If visit is non-nil it is called after every move;
// a non-nil return stops the replay with that error.
func (g *Game) Replay(promotion chess.PieceType, visit func(Step) error) (*chess.Board, engine.Status, error) {
	board, err := g.StartBoard()
	if err != nil {
		return nil, engine.Status{}, &errors.GameError{Err: err, Line: g.StartLine}
	}

	status := engine.Evaluate(board)
	for i, move := range g.Moves {
		ply := i + 1
		if status.Over() {
			return board, status, &errors.GameError{
				Err:      fmt.Errorf("%w: game already over (%s)", errors.ErrIllegalMove, status),
				PlyNum:   ply,
				MoveText: move,
				Line:     g.StartLine,
			}
		}
		status, err = engine.Play(board, move, promotion)
		if err != nil {
			return board, status, &errors.GameError{
				Err:      err,
				PlyNum:   ply,
				MoveText: move,
				Line:     g.StartLine,
			}
		}
		if visit != nil {
			if err := visit(Step{Ply: ply, Move: move, Board: board, Status: status}); err != nil {
				return board, status, err
			}
		}
	}
	return board, status, nil
}
