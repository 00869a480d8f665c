// Package processing provides game analysis built on replaying recorded games.
package processing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/record"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard        *chess.Board  // nil if the start position was invalid
	Status            engine.Status // after the last move played
	Plies             int           // moves played successfully
	Captures          int
	Checks            int
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // Zobrist keys of every position reached

	// Final position with too little material for either side to mate.
	HasInsufficientMaterial bool
}

// RepetitionDetected returns true if some position occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// AnalyzeGame replays a game and analyzes it for various features. The
// analysis covers the moves played before any error and is never nil.
func AnalyzeGame(game *record.Game, promotion chess.PieceType) (*GameAnalysis, error) {
	analysis := &GameAnalysis{}

	start, err := game.StartBoard()
	if err != nil {
		// Replay reports the bad start position with its game context.
		_, _, err = game.Replay(promotion, nil)
		return analysis, err
	}
	positions := hashing.NewPositionCounter()
	positions.Add(start)
	analysis.Positions = append(analysis.Positions, hashing.Key(start))
	prev := start

	board, status, err := game.Replay(promotion, func(s record.Step) error {
		analysis.Plies = s.Ply
		last := s.Board.LastMove

		if !prev.Get(last.To).IsEmpty() && last.Castle == chess.NoCastle {
			analysis.Captures++
		} else if last.Piece == chess.Pawn && last.From.File() != last.To.File() {
			analysis.Captures++
		}
		if placed := s.Board.Get(last.To).Type; last.Piece == chess.Pawn && placed != chess.Pawn && placed != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		if s.Status.Check != chess.NoCheck && s.Status.Check != chess.Stalemate {
			analysis.Checks++
		}

		if positions.Add(s.Board) >= 3 {
			analysis.HasRepetition = true
		}
		analysis.Positions = append(analysis.Positions, hashing.Key(s.Board))
		prev = s.Board.Clone()
		return nil
	})

	analysis.FinalBoard = board
	analysis.Status = status
	if board != nil {
		analysis.HasInsufficientMaterial = HasInsufficientMaterial(board)
	}
	return analysis, err
}

// HasInsufficientMaterial reports whether neither side can possibly mate:
// bare kings, or a single minor piece against a bare king.
func HasInsufficientMaterial(board *chess.Board) bool {
	minors := 0
	for sq := chess.Square(0); sq.Valid(); sq++ {
		switch board.Get(sq).Type {
		case chess.NoPiece, chess.King:
		case chess.Knight, chess.Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}
