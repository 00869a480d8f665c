// chessplay plays, replays and validates chess games on the console.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := newLogger(cfg)

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	os.Exit(run(cfg, logger))
}

// run dispatches to the selected mode and returns the exit status.
func run(cfg *config.Config, logger zerolog.Logger) int {
	logger.Debug().Str("mode", cfg.Mode.String()).Strs("files", cfg.InputFiles).Msg("starting")

	var err error
	switch cfg.Mode {
	case config.PlayMode:
		err = playGame(cfg, logger)
	case config.ReplayMode:
		err = replayFiles(cfg, logger)
	case config.CheckMode:
		var failed int
		failed, err = checkFiles(cfg, logger)
		if err == nil && failed > 0 {
			return 1
		}
	}
	if err != nil {
		logger.Error().Err(err).Msg(cfg.Mode.String() + " failed")
		return 1
	}
	return 0
}

// newLogger builds the diagnostics logger on cfg.LogFile.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case cfg.Verbosity >= 2:
		level = zerolog.DebugLevel
	case cfg.Verbosity == 1:
		level = zerolog.InfoLevel
	}
	return zerolog.New(cfg.LogFile).Level(level).With().Timestamp().Logger()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options] [game-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Play, replay or validate chess games on the console.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  play    Play against a random mover; type moves as e2e4 or Nf3, \"end\" to stop\n")
	fmt.Fprintf(os.Stderr, "  replay  Show each move of the game files with a pause (-delay)\n")
	fmt.Fprintf(os.Stderr, "  check   Replay every game of the files in parallel and report broken ones\n")
}
