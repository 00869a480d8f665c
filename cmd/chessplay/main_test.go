package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const gameFile = `[Event "Casual"]
[White "Player1"]
[Black "Player2"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1

[Event "Opening"]
[White "A"]
[Black "B"]

1. e4 c5 2. Nf3 d6 *
`

const brokenFile = `[Event "Broken"]

1. e4 e5 2. Ke3 *
`

// writeFile creates a file in a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// testConfig builds a quiet config writing to the returned buffer.
func testConfig(b *config.ConfigBuilder) (*config.Config, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := b.WithOutput(out).WithLog(&bytes.Buffer{}).WithDelay(0).Build()
	return cfg, out
}

func TestPlayGame_HumanMates(t *testing.T) {
	cfg, out := testConfig(config.NewConfigBuilder().
		WithStartFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1").
		WithInput(strings.NewReader("Ra9\nRa8#\n")))

	if err := playGame(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("playGame() error = %v", err)
	}
	text := out.String()
	testutil.AssertContains(t, text, "Move Ra9 refused")
	testutil.AssertContains(t, text, "checkmate, White wins")
	testutil.AssertContains(t, text, "Result: 1-0")
}

func TestPlayGame_End(t *testing.T) {
	cfg, out := testConfig(config.NewConfigBuilder().
		WithHumanColour(chess.Black).
		WithSeed(7).
		WithInput(strings.NewReader("\nend\n")))

	if err := playGame(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("playGame() error = %v", err)
	}
	testutil.AssertContains(t, out.String(), "Game abandoned")
}

func TestPlayGame_ComputerReplies(t *testing.T) {
	cfg, out := testConfig(config.NewConfigBuilder().
		WithSeed(3).
		WithInput(strings.NewReader("e2e4\nend\n")))
	cfg.Play.ShowMoves = true

	if err := playGame(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("playGame() error = %v", err)
	}
	text := out.String()
	testutil.AssertContains(t, text, "Legal moves: Nba3")
	// Initial board, board after e4, board after the reply.
	if got := strings.Count(text, "  a b c d e f g h"); got != 3 {
		t.Errorf("printed %d boards, want 3:\n%s", got, text)
	}
}

func TestPlayGame_BadFEN(t *testing.T) {
	cfg, _ := testConfig(config.NewConfigBuilder().WithStartFEN("not a fen"))
	err := playGame(cfg, zerolog.Nop())
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestRandomMover_PicksLegalMoves(t *testing.T) {
	m := newRandomMover(11)
	board := engine.NewInitialBoard()
	for ply := 0; ply < 40; ply++ {
		if engine.Evaluate(board).Over() {
			break
		}
		move := m.Pick(board)
		if _, err := engine.Play(board, move, chess.Queen); err != nil {
			t.Fatalf("ply %d: Play(%q) error = %v", ply+1, move, err)
		}
	}

	mated := testutil.MustBoardFromFEN(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1")
	if got := m.Pick(mated); got != "" {
		t.Errorf("Pick() in a mated position = %q, want empty", got)
	}
}

func TestReplayFiles(t *testing.T) {
	path := writeFile(t, "games.txt", gameFile)
	cfg, out := testConfig(config.NewConfigBuilder().
		WithMode(config.ReplayMode).
		WithInputFiles(path).
		WithFEN(true))

	if err := replayFiles(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("replayFiles() error = %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"Game 1: Player1 - Player2",
		"1. f3",
		"1... e5",
		"2... Qh4#",
		"checkmate, Black wins",
		"Result: 0-1",
		"Game 2: A - B",
		"rnbqkbnr/pp2pppp/3p4/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 3",
		"Result: *",
	} {
		testutil.AssertContains(t, text, want)
	}
}

func TestReplayFiles_SelectGame(t *testing.T) {
	path := writeFile(t, "games.txt", gameFile)
	cfg, out := testConfig(config.NewConfigBuilder().
		WithMode(config.ReplayMode).
		WithInputFiles(path))
	cfg.Replay.GameNumber = 2

	if err := replayFiles(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("replayFiles() error = %v", err)
	}
	testutil.AssertFalse(t, strings.Contains(out.String(), "Player1"), "game 1 was replayed")
	testutil.AssertContains(t, out.String(), "Game 2: A - B")
}

func TestReplayFiles_Broken(t *testing.T) {
	path := writeFile(t, "broken.txt", brokenFile)
	cfg, _ := testConfig(config.NewConfigBuilder().
		WithMode(config.ReplayMode).
		WithInputFiles(path))

	err := replayFiles(cfg, zerolog.Nop())
	testutil.AssertErrorIs(t, err, errors.ErrNoCandidate)

	var ge *errors.GameError
	if !errors.As(err, &ge) {
		t.Fatalf("replayFiles() error %T is not a GameError", err)
	}
	testutil.AssertEqual(t, ge.File, path)
	testutil.AssertEqual(t, ge.GameNum, 1)
	testutil.AssertEqual(t, ge.PlyNum, 3)
	testutil.AssertEqual(t, ge.MoveText, "Ke3")
}

func TestReplayFiles_French(t *testing.T) {
	path := writeFile(t, "fr.txt", "1. e4 e5 2. Cf3 Cc6 3. Fb5 *\n")
	cfg, out := testConfig(config.NewConfigBuilder().
		WithMode(config.ReplayMode).
		WithInputFiles(path).
		WithFrench(true))

	if err := replayFiles(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("replayFiles() error = %v", err)
	}
	testutil.AssertContains(t, out.String(), "3. Bb5")
}

func TestCheckFiles(t *testing.T) {
	good := writeFile(t, "good.txt", gameFile)
	bad := writeFile(t, "bad.txt", brokenFile)
	cfg, out := testConfig(config.NewConfigBuilder().
		WithMode(config.CheckMode).
		WithInputFiles(good, bad).
		WithWorkers(3).
		WithVerbosity(2))

	failed, err := checkFiles(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("checkFiles() error = %v", err)
	}
	testutil.AssertEqual(t, failed, 1)

	text := out.String()
	testutil.AssertContains(t, text, "FAIL "+bad+":")
	testutil.AssertContains(t, text, "game 1, ply 3")
	testutil.AssertContains(t, text, good+" game 2: 4 plies, *")
	testutil.AssertContains(t, text, "3 game(s) checked, 1 failed.")
}

func TestCheckFiles_MissingFile(t *testing.T) {
	cfg, _ := testConfig(config.NewConfigBuilder().
		WithMode(config.CheckMode).
		WithInputFiles(filepath.Join(t.TempDir(), "missing.txt")))

	if _, err := checkFiles(cfg, zerolog.Nop()); err == nil {
		t.Error("checkFiles() error = nil for a missing file")
	}
}

func TestRun_ExitStatus(t *testing.T) {
	good := writeFile(t, "good.txt", gameFile)
	bad := writeFile(t, "bad.txt", brokenFile)

	tests := []struct {
		name string
		b    *config.ConfigBuilder
		want int
	}{
		{"check passes", config.NewConfigBuilder().WithMode(config.CheckMode).WithInputFiles(good), 0},
		{"check fails", config.NewConfigBuilder().WithMode(config.CheckMode).WithInputFiles(good, bad), 1},
		{"replay fails", config.NewConfigBuilder().WithMode(config.ReplayMode).WithInputFiles(bad), 1},
		{"play ends", config.NewConfigBuilder().WithInput(strings.NewReader("end\n")), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := testConfig(tt.b)
			if got := run(cfg, zerolog.Nop()); got != tt.want {
				t.Errorf("run() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		cfg := config.NewConfigBuilder().WithVerbosity(tt.verbosity).WithLog(&bytes.Buffer{}).Build()
		if got := newLogger(cfg).GetLevel(); got != tt.want {
			t.Errorf("newLogger(verbosity=%d) level = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestNewLogger_WritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithLog(buf).Build()
	logger := newLogger(cfg)
	logger.Info().Str("move", "e4").Msg("player moved")

	testutil.AssertContains(t, buf.String(), `"move":"e4"`)
	testutil.AssertContains(t, buf.String(), `"message":"player moved"`)
}

func TestCheckFiles_Duplicates(t *testing.T) {
	path := writeFile(t, "dupes.txt", `1. e4 e5 2. Nf3 Nc6 *

1. Nf3 e5 2. e4 Nc6 *

1. e4 e5 *
`)
	cfg, out := testConfig(config.NewConfigBuilder().
		WithMode(config.CheckMode).
		WithInputFiles(path).
		WithDuplicates(false))

	if _, err := checkFiles(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("checkFiles() error = %v", err)
	}
	text := out.String()
	testutil.AssertContains(t, text, "dup  "+path+" game 2:")
	testutil.AssertFalse(t, strings.Contains(text, "game 3: same final"), "game 3 reported as duplicate")
	testutil.AssertContains(t, text, "1 duplicate(s) found.")
}

func TestReplayFiles_Repetition(t *testing.T) {
	path := writeFile(t, "shuffle.txt", "1. Nf3 Nf6 2. Ng1 Ng8 3. Nf3 Nf6 4. Ng1 Ng8 *\n")
	cfg, out := testConfig(config.NewConfigBuilder().
		WithMode(config.ReplayMode).
		WithInputFiles(path))

	if err := replayFiles(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("replayFiles() error = %v", err)
	}
	testutil.AssertContains(t, out.String(), "Position has occurred 3 times")
}

func TestReplayFiles_JSON(t *testing.T) {
	path := writeFile(t, "games.txt", gameFile)
	cfg, out := testConfig(config.NewConfigBuilder().
		WithMode(config.ReplayMode).
		WithInputFiles(path).
		WithJSON(true))

	if err := replayFiles(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("replayFiles() error = %v", err)
	}
	text := out.String()
	testutil.AssertContains(t, text, `"games": [`)
	testutil.AssertContains(t, text, `"san": "Qh4#"`)
	testutil.AssertContains(t, text, `"status": "checkmate, Black wins"`)
	testutil.AssertFalse(t, strings.Contains(text, "a b c d e f g h"), "boards printed in JSON mode")
}
