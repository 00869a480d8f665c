// Package output writes replayed games in machine-readable form.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/record"
)

// GameWriter is the interface for writing replayed games.
type GameWriter interface {
	// WriteGame replays and writes a single game.
	WriteGame(game *record.Game) error

	// Flush writes any buffered games to the underlying writer.
	Flush() error

	// Close flushes the writer and releases any resources.
	Close() error
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	opts   Options
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games into one document.
func NewJSONWriter(w io.Writer, opts Options) *JSONWriter {
	return &JSONWriter{
		w:     w,
		opts:  opts,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, opts Options) *JSONWriter {
	return &JSONWriter{
		w:      w,
		opts:   opts,
		single: true,
	}
}

// WriteGame replays game and buffers it, or writes it at once in single
// mode. A game that fails to replay is not written.
func (jw *JSONWriter) WriteGame(game *record.Game) error {
	jg, err := GameToJSON(game, jw.opts)
	if err != nil {
		return err
	}
	if jw.single {
		return jw.encode(jg)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
