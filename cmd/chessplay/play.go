package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// quitCommand abandons an interactive game.
const quitCommand = "end"

// randomMover picks uniformly among the legal moves.
type randomMover struct {
	rng *rand.Rand
}

func newRandomMover(seed int64) *randomMover {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomMover{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // G404: move choice needs no cryptographic randomness
}

// Pick returns one of the side to move's legal moves, or "" if it has none.
func (m *randomMover) Pick(board *chess.Board) string {
	moves := engine.PossibleMoves(board, board.ToMove)
	if len(moves) == 0 {
		return ""
	}
	return moves[m.rng.Intn(len(moves))]
}

// startBoard returns the initial position or the one described by fen.
func startBoard(fen string) (*chess.Board, error) {
	if fen == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(fen)
}

// playGame runs an interactive game between the console and a random mover.
func playGame(cfg *config.Config, logger zerolog.Logger) error {
	board, err := startBoard(cfg.Play.StartFEN)
	if err != nil {
		return err
	}
	out := cfg.OutputFile
	in := bufio.NewScanner(cfg.Input)
	computer := newRandomMover(cfg.Play.Seed)
	human := cfg.Play.HumanColour

	fmt.Fprintln(out, board)
	if status := engine.Evaluate(board); status.Over() {
		fmt.Fprintln(out, status)
		return nil
	}

	for {
		if board.ToMove != human {
			move := computer.Pick(board)
			status, err := engine.Play(board, move, cfg.Promotion)
			if err != nil {
				return errors.Wrapf(err, "computer move %q", move)
			}
			logger.Debug().Str("move", move).Str("fen", engine.BoardToFEN(board)).Msg("computer moved")
			fmt.Fprintln(out, move)
			fmt.Fprintln(out, board)
			if reportStatus(out, status) {
				return nil
			}
			continue
		}

		if cfg.Play.ShowMoves {
			fmt.Fprintf(out, "Legal moves: %s\n", strings.Join(engine.PossibleMoves(board, human), " "))
		}
		fmt.Fprintf(out, "What is your move? (%q to finish) ", quitCommand)
		if !in.Scan() {
			return in.Err()
		}
		text := strings.TrimSpace(in.Text())
		switch text {
		case "":
			continue
		case quitCommand:
			fmt.Fprintln(out, "Game abandoned")
			logger.Info().Str("fen", engine.BoardToFEN(board)).Msg("game abandoned")
			return nil
		}

		status, err := engine.Play(board, text, cfg.Promotion)
		if err != nil {
			fmt.Fprintf(out, "Move %s refused: %v\n", text, err)
			logger.Info().Err(err).Str("move", text).Str("kind", errors.KindOf(err).String()).Msg("move rejected")
			continue
		}
		logger.Debug().Str("move", text).Str("fen", engine.BoardToFEN(board)).Msg("player moved")
		fmt.Fprintln(out, board)
		if reportStatus(out, status) {
			return nil
		}
	}
}

// reportStatus prints check, mate and stalemate announcements and reports
// whether the game is over.
func reportStatus(out io.Writer, status engine.Status) bool {
	if status.Check == chess.NoCheck {
		return false
	}
	fmt.Fprintln(out, status)
	if status.Over() {
		fmt.Fprintf(out, "Result: %s\n", status.Result())
	}
	return status.Over()
}
