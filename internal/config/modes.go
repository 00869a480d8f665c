package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PlayConfig holds settings for an interactive game.
type PlayConfig struct {
	// HumanColour is the side typed in at the console.
	HumanColour chess.Colour

	// Seed drives the random mover; zero means seed from the clock.
	Seed int64

	// StartFEN is the starting position; empty means the initial position.
	StartFEN string

	// ShowMoves lists the legal moves before each human turn.
	ShowMoves bool
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{HumanColour: chess.White}
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.HumanColour != chess.White && p.HumanColour != chess.Black {
		return fmt.Errorf("human colour %v: %w", p.HumanColour, errors.ErrInvalidConfig)
	}
	return nil
}

// ReplayConfig holds settings for replaying recorded games.
type ReplayConfig struct {
	// Delay is the pause after each move is shown.
	Delay time.Duration

	// ShowFEN prints the FEN after each move alongside the board.
	ShowFEN bool

	// GameNumber selects one game from the file; zero replays all.
	GameNumber int

	// JSON writes the selected games as one JSON document instead of
	// showing them move by move.
	JSON bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{Delay: time.Second}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Delay < 0 {
		return fmt.Errorf("replay delay %v < 0: %w", r.Delay, errors.ErrInvalidConfig)
	}
	if r.GameNumber < 0 {
		return fmt.Errorf("game number %d < 0: %w", r.GameNumber, errors.ErrInvalidConfig)
	}
	return nil
}

// CheckConfig holds settings for batch validation.
type CheckConfig struct {
	// Workers is the number of games replayed concurrently.
	Workers int

	// FailFast stops starting new games after the first failure.
	FailFast bool

	// Duplicates reports games ending on the same position as an earlier one.
	Duplicates bool

	// ExactDuplicates also requires duplicate games to have the same length.
	ExactDuplicates bool
}

// NewCheckConfig creates a CheckConfig with default values.
func NewCheckConfig() *CheckConfig {
	return &CheckConfig{Workers: 1}
}

// Validate checks that the check configuration is valid.
func (c *CheckConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
