package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		text      string
		from, to  string
		promotion chess.PieceType
		castle    chess.CastleSide
	}{
		{"pawn push", InitialFEN, "e4", "e2", "e4", chess.NoPiece, chess.NoCastle},
		{"pawn single step", InitialFEN, "e3", "e2", "e3", chess.NoPiece, chess.NoCastle},
		{"knight", InitialFEN, "Nf3", "g1", "f3", chess.NoPiece, chess.NoCastle},
		{"check annotation", InitialFEN, "Nf3+", "g1", "f3", chess.NoPiece, chess.NoCastle},
		{"comment annotation", InitialFEN, "Nc3!?", "b1", "c3", chess.NoPiece, chess.NoCastle},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "exd5", "e4", "d5", chess.NoPiece, chess.NoCastle},
		{"piece capture", "4k3/8/8/8/8/5p2/8/4K1N1 w - - 0 1", "Nxf3", "g1", "f3", chess.NoPiece, chess.NoCastle},
		{"capture marker optional", "4k3/8/8/8/8/5p2/8/4K1N1 w - - 0 1", "Nf3", "g1", "f3", chess.NoPiece, chess.NoCastle},
		{"file disambiguation", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "Nbd2", "b1", "d2", chess.NoPiece, chess.NoCastle},
		{"other knight", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "Nfd2", "f3", "d2", chess.NoPiece, chess.NoCastle},
		{"rank disambiguation", "7k/8/8/R7/8/8/7K/R7 w - - 0 1", "R1a3", "a1", "a3", chess.NoPiece, chess.NoCastle},
		{"other rook", "7k/8/8/R7/8/8/7K/R7 w - - 0 1", "R5a3", "a5", "a3", chess.NoPiece, chess.NoCastle},
		{"full origin", "4k3/8/8/8/7Q/8/8/K7 w - - 0 1", "Qh4e1", "h4", "e1", chess.NoPiece, chess.NoCastle},
		{"promotion with equals", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=Q", "a7", "a8", chess.Queen, chess.NoCastle},
		{"promotion without equals", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8N", "a7", "a8", chess.Knight, chess.NoCastle},
		{"promotion left to caller", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8", "a7", "a8", chess.NoPiece, chess.NoCastle},
		{"black pawn", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "c5", "c7", "c5", chess.NoPiece, chess.NoCastle},
		{"bishop on b-file destination", "4k3/8/8/8/8/8/8/3BK3 w - - 0 1", "Bb3", "d1", "b3", chess.NoPiece, chess.NoCastle},
		{"kingside castle", castlingFEN, "O-O", "e1", "g1", chess.NoPiece, chess.Kingside},
		{"queenside castle", castlingFEN, "O-O-O", "e1", "c1", chess.NoPiece, chess.Queenside},
		{"zero castle", castlingFEN, "0-0+", "e1", "g1", chess.NoPiece, chess.Kingside},
		{"black castle", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "O-O", "e8", "g8", chess.NoPiece, chess.Kingside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			before := *board

			got, err := Resolve(board, tt.text)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.text, err)
			}
			want := Resolution{
				From:      chess.MustParseSquare(tt.from),
				To:        chess.MustParseSquare(tt.to),
				Promotion: tt.promotion,
				Castle:    tt.castle,
			}
			if got != want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.text, got, want)
			}
			if *board != before {
				t.Error("Resolve() modified the board")
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		text    string
		wantErr error
	}{
		{"ambiguous knights", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "Nd2", errors.ErrAmbiguous},
		{"ambiguous rooks", "7k/8/8/R7/8/8/7K/R7 w - - 0 1", "Ra3", errors.ErrAmbiguous},
		{"blocked queen", InitialFEN, "Qd4", errors.ErrNoCandidate},
		{"no such piece", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "Nf3", errors.ErrNoCandidate},
		{"wrong disambiguation", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "Ncd2", errors.ErrNoCandidate},
		{"pawn cannot reach", InitialFEN, "e5", errors.ErrNoCandidate},
		{"pinned piece", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "Nc3", errors.ErrNoCandidate},
		{"gibberish", InitialFEN, "hello", errors.ErrUnparsable},
		{"off board destination", InitialFEN, "Nj3", errors.ErrUnparsable},
		{"empty", InitialFEN, "", errors.ErrUnparsable},
		{"lower case piece", InitialFEN, "nf3", errors.ErrUnparsable},
		{"promotion off last rank", InitialFEN, "e4=Q", errors.ErrUnparsable},
		{"promotion on piece move", InitialFEN, "Nf3Q", errors.ErrUnparsable},
		{"promotion on own back rank", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", "e8=Q", errors.ErrUnparsable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			_, err := Resolve(board, tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve(%q) = %v, want %v", tt.text, err, tt.wantErr)
			}
			if got := errors.KindOf(err); got != errors.KindNotation {
				t.Errorf("KindOf() = %v, want %v", got, errors.KindNotation)
			}
		})
	}
}

func TestCastleToken(t *testing.T) {
	tests := []struct {
		in   string
		want chess.CastleSide
	}{
		{"O-O", chess.Kingside},
		{"0-0", chess.Kingside},
		{"O-O-O", chess.Queenside},
		{"0-0-0", chess.Queenside},
		{"O-O-O-O", chess.NoCastle},
		{"OO", chess.NoCastle},
	}
	for _, tt := range tests {
		if got := castleToken(tt.in); got != tt.want {
			t.Errorf("castleToken(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
