package worker

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/record"
)

// Replayer returns a ProcessFunc that replays and analyzes each game from
// its start position, promoting to promotion when a move names no piece.
func Replayer(promotion chess.PieceType) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		analysis, err := processing.AnalyzeGame(item.Game, promotion)
		var ge *errors.GameError
		if errors.As(err, &ge) {
			ge.GameNum = item.Index + 1
		}
		return ProcessResult{
			Game:     item.Game,
			Index:    item.Index,
			Board:    analysis.FinalBoard,
			Status:   analysis.Status,
			Plies:    analysis.Plies,
			Analysis: analysis,
			Error:    err,
		}
	}
}

// CheckOptions controls CheckGames.
type CheckOptions struct {
	Workers   int
	Promotion chess.PieceType
	FailFast  bool // Skip games not yet started once one fails
}

// CheckGames replays every game on a worker pool and returns the results
// in input order. With FailFast, games skipped after a failure have no
// entry and the returned slice holds only processed games.
func CheckGames(games []*record.Game, opts CheckOptions) []ProcessResult {
	pool := NewPool(Replayer(opts.Promotion),
		WithWorkers(opts.Workers),
		WithBufferSize(len(games)))
	pool.Start()

	go func() {
		for i, g := range games {
			pool.Submit(WorkItem{Game: g, Index: i})
		}
		pool.Close()
	}()

	slots := make([]*ProcessResult, len(games))
	for res := range pool.Results() {
		res := res
		slots[res.Index] = &res
		if res.Error != nil && opts.FailFast {
			pool.Stop()
		}
	}

	results := make([]ProcessResult, 0, len(games))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}
