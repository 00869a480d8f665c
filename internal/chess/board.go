package chess

import "strings"

// LastMove records the most recently applied move.
// En-passant eligibility is derived from its fields.
type LastMove struct {
	Played bool
	Piece  PieceType
	Colour Colour
	From   Square
	To     Square
	Castle CastleSide
}

// IsDoublePawnPush reports whether the move was a two-square pawn advance.
func (m LastMove) IsDoublePawnPush() bool {
	if !m.Played || m.Piece != Pawn || m.From.File() != m.To.File() {
		return false
	}
	diff := m.To.Rank() - m.From.Rank()
	return diff == 2 || diff == -2
}

// EnPassantTarget returns the square passed over by a two-square pawn advance.
func (m LastMove) EnPassantTarget() (Square, bool) {
	if !m.IsDoublePawnPush() {
		return NoSquare, false
	}
	return NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2), true
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// Squares indexed [file][rank], both zero-based.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights. Flags are only ever cleared.
	Castling CastleRights

	// The most recently applied move.
	LastMove LastMove

	// The full-move number, incremented after Black moves.
	MoveNumber uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.ToMove = White
	b.Castling = AllRights
	b.LastMove = LastMove{}
	b.MoveNumber = 1
}

// Get returns the piece on a square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.Squares[sq.File()][sq.Rank()]
}

// Set places a piece on a square.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File()][sq.Rank()] = piece
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Relocate moves whatever stands on from to to without any rule checking,
// replacing anything on the destination.
func (b *Board) Relocate(from, to Square) {
	piece := b.Get(from)
	b.Clear(from)
	b.Set(to, piece)
}

// Clone creates an independent copy of the board.
// Board holds only values, so the copy shares nothing with the original.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// HasCastle reports whether the colour still holds the right for the wing.
func (b *Board) HasCastle(colour Colour, side CastleSide) bool {
	right := RightFor(colour, side)
	return right != NoRights && b.Castling&right != 0
}

// ClearCastling removes a castling right.
func (b *Board) ClearCastling(colour Colour, side CastleSide) {
	b.Castling &^= RightFor(colour, side)
}

// FindPieces returns the squares holding the given piece, in square order.
func (b *Board) FindPieces(colour Colour, pieceType PieceType) []Square {
	want := Piece{Type: pieceType, Colour: colour}
	var result []Square
	for sq := Square(0); sq.Valid(); sq++ {
		if b.Get(sq) == want {
			result = append(result, sq)
		}
	}
	return result
}

// King returns the square of the colour's king.
func (b *Board) King(colour Colour) (Square, bool) {
	kings := b.FindPieces(colour, King)
	if len(kings) == 0 {
		return NoSquare, false
	}
	return kings[0], true
}

// String renders the board as text, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(FirstRank + rank))
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteString(b.Squares[file][rank].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for file := 0; file < BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(FirstCol + file))
	}
	return sb.String()
}
