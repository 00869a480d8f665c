// Package config provides configuration for the chessplay console front end.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Mode selects what the front end does.
type Mode int

const (
	PlayMode   Mode = iota // Interactive game against a random mover
	ReplayMode             // Timed replay of recorded games
	CheckMode              // Validate recorded games in parallel
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case PlayMode:
		return "play"
	case ReplayMode:
		return "replay"
	case CheckMode:
		return "check"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name as given on the command line.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "play":
		return PlayMode, nil
	case "replay":
		return ReplayMode, nil
	case "check":
		return CheckMode, nil
	}
	return PlayMode, fmt.Errorf("unknown mode %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=errors only, 1=summary, 2=running commentary

	// Promotion is used when a move reaches the last rank without naming a piece.
	Promotion chess.PieceType

	// French reads recorded games with French piece letters.
	French bool

	// Sub-configurations
	Play   *PlayConfig
	Replay *ReplayConfig
	Check  *CheckConfig

	// File handling
	InputFiles     []string
	OutputFilename string

	// Streams
	Input      io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       PlayMode,
		Verbosity:  1,
		Promotion:  chess.Queen,
		Play:       NewPlayConfig(),
		Replay:     NewReplayConfig(),
		Check:      NewCheckConfig(),
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for boards, moves and results.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration for the selected mode.
func (c *Config) Validate() error {
	if !c.Promotion.IsPromotionChoice() {
		return fmt.Errorf("promotion piece %v: %w", c.Promotion, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d < 0: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	switch c.Mode {
	case PlayMode:
		return c.Play.Validate()
	case ReplayMode:
		if len(c.InputFiles) == 0 {
			return fmt.Errorf("replay needs a game file: %w", errors.ErrInvalidConfig)
		}
		return c.Replay.Validate()
	case CheckMode:
		if len(c.InputFiles) == 0 {
			return fmt.Errorf("check needs at least one game file: %w", errors.ErrInvalidConfig)
		}
		return c.Check.Validate()
	}
	return fmt.Errorf("mode %v: %w", c.Mode, errors.ErrInvalidConfig)
}
