package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/record"
)

// readGameFile reads every game in the named file.
func readGameFile(path string, french bool) ([]*record.Game, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only file

	return record.ReadAll(file, record.Options{French: french, File: path})
}

// replayFiles shows each selected game move by move, or exports them all
// as one JSON document.
func replayFiles(cfg *config.Config, logger zerolog.Logger) error {
	var writer output.GameWriter
	if cfg.Replay.JSON {
		writer = output.NewJSONWriter(cfg.OutputFile, output.Options{
			Promotion: cfg.Promotion,
			MoveFEN:   cfg.Replay.ShowFEN,
		})
	}

	for _, path := range cfg.InputFiles {
		games, err := readGameFile(path, cfg.French)
		if err != nil {
			return err
		}
		logger.Info().Str("file", path).Int("games", len(games)).Msg("loaded games")

		for i, game := range games {
			num := i + 1
			if cfg.Replay.GameNumber != 0 && num != cfg.Replay.GameNumber {
				continue
			}
			if writer != nil {
				err = writer.WriteGame(game)
			} else {
				err = replayGame(cfg, path, num, game)
			}
			if err != nil {
				return withGameContext(err, path, num)
			}
		}
	}

	if writer != nil {
		return writer.Close()
	}
	return nil
}

// replayGame prints each move and the board after it, pausing between moves.
func replayGame(cfg *config.Config, path string, num int, game *record.Game) error {
	out := cfg.OutputFile
	if white, black := game.Tag("White"), game.Tag("Black"); white != "" || black != "" {
		fmt.Fprintf(out, "Game %d: %s - %s\n", num, white, black)
	}

	positions := hashing.NewPositionCounter()
	if start, err := game.StartBoard(); err == nil {
		positions.Add(start)
	}

	_, status, err := game.Replay(cfg.Promotion, func(s record.Step) error {
		fmt.Fprintln(out, moveLabel(s))
		fmt.Fprintln(out, s.Board)
		if cfg.Replay.ShowFEN {
			fmt.Fprintln(out, engine.BoardToFEN(s.Board))
		}
		if s.Status.Check != chess.NoCheck {
			fmt.Fprintln(out, s.Status)
		}
		if n := positions.Add(s.Board); n >= 3 {
			fmt.Fprintf(out, "Position has occurred %d times\n", n)
		}
		time.Sleep(cfg.Replay.Delay)
		return nil
	})
	if err != nil {
		return err
	}

	result := game.Result
	if result == "" {
		result = status.Result()
	}
	fmt.Fprintf(out, "Result: %s\n", result)
	return nil
}

// moveLabel numbers a replayed move the way score sheets do: "12. e4"
// for White and "12... e5" for Black.
func moveLabel(s record.Step) string {
	if s.Board.ToMove == chess.Black {
		return fmt.Sprintf("%d. %s", s.Board.MoveNumber, s.Move)
	}
	return fmt.Sprintf("%d... %s", s.Board.MoveNumber-1, s.Move)
}

// withGameContext fills in the file and game number of a replay failure.
func withGameContext(err error, path string, num int) error {
	var ge *errors.GameError
	if errors.As(err, &ge) {
		ge.File = path
		ge.GameNum = num
		return ge
	}
	return &errors.GameError{Err: err, File: path, GameNum: num}
}
