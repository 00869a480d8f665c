package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/record"
)

// MustBoardFromFEN builds a board from fen and fails the test on error.
func MustBoardFromFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return board
}

// MustPlay plays each move in turn, promoting to a queen when a move
// does not name a piece. It returns the status after the last move.
func MustPlay(t testing.TB, board *chess.Board, moves ...string) engine.Status {
	t.Helper()
	var status engine.Status
	for _, m := range moves {
		var err error
		status, err = engine.Play(board, m, chess.Queen)
		if err != nil {
			t.Fatalf("Play(%q) error = %v\n%s", m, err, board)
		}
	}
	return status
}

// ReadTestGames reads every game from text. It returns nil when reading
// fails or finds no games.
func ReadTestGames(text string) []*record.Game {
	games, err := record.ReadAll(strings.NewReader(text), record.Options{})
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustReadGames reads every game from text and fails the test if none are found.
func MustReadGames(t testing.TB, text string) []*record.Game {
	t.Helper()
	games, err := record.ReadAll(strings.NewReader(text), record.Options{})
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(games) == 0 {
		t.Fatalf("no games found in:\n%s", text)
	}
	return games
}

// MustReadGame reads the first game from text.
func MustReadGame(t testing.TB, text string) *record.Game {
	t.Helper()
	return MustReadGames(t, text)[0]
}
