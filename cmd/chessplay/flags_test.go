package main

import (
	"runtime"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg, []string{"game.txt"}); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Mode != config.PlayMode {
		t.Errorf("Mode = %v, want play", cfg.Mode)
	}
	if cfg.Play.HumanColour != chess.White {
		t.Errorf("HumanColour = %v, want White", cfg.Play.HumanColour)
	}
	if cfg.Promotion != chess.Queen {
		t.Errorf("Promotion = %v, want Queen", cfg.Promotion)
	}
	if cfg.Replay.Delay != time.Second {
		t.Errorf("Delay = %v, want 1s", cfg.Replay.Delay)
	}
	if cfg.Check.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Check.Workers, runtime.NumCPU())
	}
	if len(cfg.InputFiles) != 1 || cfg.InputFiles[0] != "game.txt" {
		t.Errorf("InputFiles = %v, want [game.txt]", cfg.InputFiles)
	}
}

func TestApplyFlags_Mode(t *testing.T) {
	defer saveRestoreString(mode, "check")()
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreBool(failFast, true)()
	defer saveRestoreBool(french, true)()

	cfg := config.NewConfig()
	if err := applyFlags(cfg, nil); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Mode != config.CheckMode {
		t.Errorf("Mode = %v, want check", cfg.Mode)
	}
	if cfg.Check.Workers != 3 || !cfg.Check.FailFast {
		t.Errorf("Check = %+v, want 3 workers with fail-fast", cfg.Check)
	}
	if !cfg.French {
		t.Error("French should be true")
	}
}

func TestApplyPlayFlags(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Colour
		wantErr bool
	}{
		{"White", chess.White, false},
		{"black", chess.Black, false},
		{"b", chess.Black, false},
		{"w", chess.White, false},
		{"green", chess.White, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			defer saveRestoreString(colour, tt.in)()
			cfg := config.NewConfig()
			err := applyPlayFlags(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyPlayFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("applyPlayFlags() error = %v, want %v", err, errors.ErrInvalidConfig)
				}
				return
			}
			if cfg.Play.HumanColour != tt.want {
				t.Errorf("HumanColour = %v, want %v", cfg.Play.HumanColour, tt.want)
			}
		})
	}
}

func TestApplyPromotionFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.PieceType
		wantErr bool
	}{
		{"Q", chess.Queen, false},
		{"n", chess.Knight, false},
		{"R", chess.Rook, false},
		{"B", chess.Bishop, false},
		{"K", chess.NoPiece, true},
		{"P", chess.NoPiece, true},
		{"QQ", chess.NoPiece, true},
		{"", chess.NoPiece, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			defer saveRestoreString(promotion, tt.in)()
			cfg := config.NewConfig()
			err := applyPromotionFlag(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyPromotionFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && cfg.Promotion != tt.want {
				t.Errorf("Promotion = %v, want %v", cfg.Promotion, tt.want)
			}
		})
	}
}

func TestApplyFlags_BadMode(t *testing.T) {
	defer saveRestoreString(mode, "watch")()
	err := applyFlags(config.NewConfig(), nil)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("applyFlags() error = %v, want %v", err, errors.ErrInvalidConfig)
	}
}
