package config

import (
	"io"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets the front end mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Mode = mode
	return b
}

// WithHumanColour sets the side played from the console.
func (b *ConfigBuilder) WithHumanColour(c chess.Colour) *ConfigBuilder {
	b.cfg.Play.HumanColour = c
	return b
}

// WithSeed seeds the random mover.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithStartFEN sets the starting position for play.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Play.StartFEN = fen
	return b
}

// WithDelay sets the pause between replayed moves.
func (b *ConfigBuilder) WithDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Replay.Delay = d
	return b
}

// WithFEN enables FEN output during replay.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Replay.ShowFEN = enabled
	return b
}

// WithJSON switches replay to JSON export.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Replay.JSON = enabled
	return b
}

// WithFrench reads recorded games with French piece letters.
func (b *ConfigBuilder) WithFrench(enabled bool) *ConfigBuilder {
	b.cfg.French = enabled
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Check.Workers = n
	return b
}

// WithDuplicates enables duplicate detection in check mode.
func (b *ConfigBuilder) WithDuplicates(exact bool) *ConfigBuilder {
	b.cfg.Check.Duplicates = true
	b.cfg.Check.ExactDuplicates = exact
	return b
}

// WithPromotion sets the default promotion piece.
func (b *ConfigBuilder) WithPromotion(p chess.PieceType) *ConfigBuilder {
	b.cfg.Promotion = p
	return b
}

// WithInputFiles sets the game files to read.
func (b *ConfigBuilder) WithInputFiles(files ...string) *ConfigBuilder {
	b.cfg.InputFiles = files
	return b
}

// WithInput sets the reader for console moves.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
