package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Move is an origin-destination pair accepted by the legality checker.
type Move struct {
	From      chess.Square
	To        chess.Square
	Piece     chess.PieceType
	Capture   bool
	Promotion bool
}

// LegalMoves returns every legal move of colour, whoever is to move,
// ordered by origin and then destination square.
func LegalMoves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	for from := chess.Square(0); from.Valid(); from++ {
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for to := chess.Square(0); to.Valid(); to++ {
			if !IsValid(board, from, to, false) {
				continue
			}
			moves = append(moves, Move{
				From:      from,
				To:        to,
				Piece:     piece.Type,
				Capture:   !board.Get(to).IsEmpty() || enPassantVictim(board, from, to).Valid(),
				Promotion: piece.Type == chess.Pawn && to.Rank() == chess.PromotionRank(colour),
			})
		}
	}
	return moves
}

// PossibleMoves returns the legal moves of colour in short algebraic form:
// "e4" for a pawn advance, "exd5" for a pawn capture, "Nbd2" for a piece
// (letter, origin file, destination), with "=Q" on promotions, followed by
// "O-O" and "O-O-O" when that castle is available.
func PossibleMoves(board *chess.Board, colour chess.Colour) []string {
	moves := LegalMoves(board, colour)

	notated := make([]string, 0, len(moves)+2)
	for _, m := range moves {
		notated = append(notated, formatMove(m, moves))
	}
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if canCastle(board, colour, side) == nil {
			notated = append(notated, side.String())
		}
	}
	return notated
}

// formatMove notates m. A piece sharing its origin file with another piece
// of the same type that reaches the same square is given its full origin.
func formatMove(m Move, all []Move) string {
	var sb strings.Builder

	if m.Piece == chess.Pawn {
		if m.Capture {
			sb.WriteByte(m.From.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion {
			sb.WriteString("=Q")
		}
		return sb.String()
	}

	sb.WriteByte(m.Piece.Letter())
	if sharesOriginFile(m, all) {
		sb.WriteString(m.From.String())
	} else {
		sb.WriteByte(m.From.FileLetter())
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

func sharesOriginFile(m Move, all []Move) bool {
	for _, other := range all {
		if other.Piece == m.Piece && other.To == m.To && other.From != m.From && other.From.File() == m.From.File() {
			return true
		}
	}
	return false
}

// hasEscape reports whether colour has any legal move on the snapshot.
// It tries every origin against every destination.
func hasEscape(snapshot chess.Board, colour chess.Colour) bool {
	board := &snapshot
	for from := chess.Square(0); from.Valid(); from++ {
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for to := chess.Square(0); to.Valid(); to++ {
			if IsValid(board, from, to, false) {
				return true
			}
		}
	}
	return false
}
