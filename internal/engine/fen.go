// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
// Only the placement field is mandatory; the half-move clock is ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(board); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseMoveNumber(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
			default:
				pieceType := chess.PieceTypeFromLetter(byte(c))
				if pieceType == chess.NoPiece {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.Piece{Type: pieceType, Colour: colour})
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// checkKings requires exactly one king per colour.
func checkKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := len(board.FindPieces(colour, chess.King)); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right whose
// king or rook is not on its home square is dropped.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.NoRights
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var right chess.CastleRights
		switch c {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}
		board.Castling |= right
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			path := castlingPath(colour, side)
			if board.Get(path.kingFrom) != (chess.Piece{Type: chess.King, Colour: colour}) ||
				board.Get(path.rookFrom) != (chess.Piece{Type: chess.Rook, Colour: colour}) {
				board.ClearCastling(colour, side)
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field and records the
// two-square advance it implies as the last move.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := board.ToMove.Opposite()
	direction := chess.ColourOffset(mover)
	from := target.Offset(0, -direction)
	to := target.Offset(0, direction)
	if from.Rank() != chess.PawnStartRank(mover) || board.Get(to) != (chess.Piece{Type: chess.Pawn, Colour: mover}) {
		// Not backed by a pawn that just advanced two squares.
		return nil
	}

	board.LastMove = chess.LastMove{
		Played: true,
		Piece:  chess.Pawn,
		Colour: mover,
		From:   from,
		To:     to,
	}
	return nil
}

// parseMoveNumber parses the full-move number field.
func parseMoveNumber(board *chess.Board, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	board.MoveNumber = uint(n)
	return nil
}

// BoardToFEN converts a board to a FEN string. The half-move clock is
// not tracked and is always written as 0.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	fmt.Fprintf(&sb, " 0 %d", board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if board.Castling == chess.NoRights {
		sb.WriteByte('-')
		return
	}
	letters := []struct {
		right  chess.CastleRights
		letter byte
	}{
		{chess.WhiteKingside, 'K'},
		{chess.WhiteQueenside, 'Q'},
		{chess.BlackKingside, 'k'},
		{chess.BlackQueenside, 'q'},
	}
	for _, l := range letters {
		if board.Castling&l.right != 0 {
			sb.WriteByte(l.letter)
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, ok := board.LastMove.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
