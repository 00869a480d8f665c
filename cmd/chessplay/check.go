package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/record"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// checkFiles replays every game of the input files on the worker pool and
// reports the broken ones. It returns the number of failed games.
func checkFiles(cfg *config.Config, logger zerolog.Logger) (int, error) {
	var games []*record.Game
	var sources []string
	var gameNums []int
	for _, path := range cfg.InputFiles {
		gs, err := readGameFile(path, cfg.French)
		if err != nil {
			return 0, err
		}
		for i := range gs {
			sources = append(sources, path)
			gameNums = append(gameNums, i+1)
		}
		games = append(games, gs...)
	}

	results := worker.CheckGames(games, worker.CheckOptions{
		Workers:   cfg.Check.Workers,
		Promotion: cfg.Promotion,
		FailFast:  cfg.Check.FailFast,
	})

	var detector *hashing.DuplicateDetector
	if cfg.Check.Duplicates {
		detector = hashing.NewDuplicateDetector(cfg.Check.ExactDuplicates)
	}

	out := cfg.OutputFile
	failed := 0
	for _, r := range results {
		path, num := sources[r.Index], gameNums[r.Index]
		if r.Error != nil {
			failed++
			err := withGameContext(r.Error, path, num)
			fmt.Fprintf(out, "FAIL %v\n", err)
			logger.Warn().Err(err).Str("file", path).Int("game", num).Msg("broken game")
			continue
		}
		if recorded := r.Game.Result; r.Status.Over() && record.IsResult(recorded) && recorded != r.Status.Result() {
			logger.Warn().Str("file", path).Int("game", num).
				Str("recorded", recorded).Str("actual", r.Status.Result()).Msg("result tag disagrees with final position")
		}
		if detector != nil && detector.CheckAndAdd(r.Board, r.Plies) {
			fmt.Fprintf(out, "dup  %s game %d: same final position as an earlier game\n", path, num)
		}
		if cfg.Verbosity >= 2 {
			fmt.Fprintf(out, "ok   %s game %d: %d plies, %s%s\n", path, num, r.Plies, r.Status.Result(), analysisNotes(r.Analysis))
		}
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(out, "%d game(s) checked, %d failed.\n", len(results), failed)
		if detector != nil {
			fmt.Fprintf(out, "%d duplicate(s) found.\n", detector.DuplicateCount())
		}
	}
	return failed, nil
}

// analysisNotes summarises the noteworthy features of a replayed game.
func analysisNotes(a *processing.GameAnalysis) string {
	if a == nil {
		return ""
	}
	var notes []string
	if a.RepetitionDetected() {
		notes = append(notes, "threefold repetition")
	}
	if a.UnderpromotionFound() {
		notes = append(notes, "underpromotion")
	}
	if a.HasInsufficientMaterial {
		notes = append(notes, "insufficient material")
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}
