// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Mode selection
	mode = flag.String("mode", "play", "What to do: play, replay or check")

	// Play options
	colour    = flag.String("colour", "White", "Side you play: White or Black")
	seed      = flag.Int64("seed", 0, "Seed for the random mover (0 = from the clock)")
	startFEN  = flag.String("fen", "", "Start from this FEN instead of the initial position")
	showMoves = flag.Bool("moves", false, "List the legal moves before each of your turns")

	// Replay options
	delay      = flag.Duration("delay", time.Second, "Pause after each replayed move")
	gameNumber = flag.Int("game", 0, "Replay only this game of the file (1-indexed, 0 = all)")
	showFEN    = flag.Bool("showfen", false, "Print the FEN after each replayed move")
	jsonOut    = flag.Bool("json", false, "Write the games as JSON instead of replaying them on screen")

	// Check options
	workers  = flag.Int("workers", 0, "Games checked in parallel (0 = number of CPUs)")
	failFast = flag.Bool("failfast", false, "Stop checking after the first broken game")
	dupes    = flag.Bool("D", false, "Report games ending on the same position as an earlier game")
	exactDup = flag.Bool("exact", false, "With -D, duplicates must also have the same number of moves")

	// Shared options
	french    = flag.Bool("fr", false, "Game files use French piece letters (T F C D R)")
	promotion = flag.String("promote", "Q", "Promotion piece when a move names none: Q, R, B or N")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 = errors only, 1 = summary, 2 = every move")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags and positional arguments into cfg.
func applyFlags(cfg *config.Config, args []string) error {
	m, err := config.ParseMode(*mode)
	if err != nil {
		return err
	}
	cfg.Mode = m
	cfg.Verbosity = *verbosity
	cfg.French = *french
	cfg.InputFiles = args
	cfg.OutputFilename = *outputFile

	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	applyReplayFlags(cfg)
	applyCheckFlags(cfg)
	return applyPromotionFlag(cfg)
}

// applyPlayFlags configures the interactive game.
func applyPlayFlags(cfg *config.Config) error {
	switch strings.ToLower(*colour) {
	case "white", "w":
		cfg.Play.HumanColour = chess.White
	case "black", "b":
		cfg.Play.HumanColour = chess.Black
	default:
		return fmt.Errorf("colour %q: %w", *colour, errors.ErrInvalidConfig)
	}
	cfg.Play.Seed = *seed
	cfg.Play.StartFEN = *startFEN
	cfg.Play.ShowMoves = *showMoves
	return nil
}

// applyReplayFlags configures timed replay.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.Delay = *delay
	cfg.Replay.GameNumber = *gameNumber
	cfg.Replay.ShowFEN = *showFEN
	cfg.Replay.JSON = *jsonOut
}

// applyCheckFlags configures batch validation.
func applyCheckFlags(cfg *config.Config) {
	cfg.Check.Workers = *workers
	if cfg.Check.Workers == 0 {
		cfg.Check.Workers = runtime.NumCPU()
	}
	cfg.Check.FailFast = *failFast
	cfg.Check.Duplicates = *dupes || *exactDup
	cfg.Check.ExactDuplicates = *exactDup
}

// applyPromotionFlag parses the default promotion piece.
func applyPromotionFlag(cfg *config.Config) error {
	if len(*promotion) != 1 {
		return fmt.Errorf("promotion %q: %w", *promotion, errors.ErrInvalidConfig)
	}
	p := chess.PieceTypeFromLetter(strings.ToUpper(*promotion)[0])
	if !p.IsPromotionChoice() {
		return fmt.Errorf("promotion %q: %w", *promotion, errors.ErrInvalidConfig)
	}
	cfg.Promotion = p
	return nil
}
