// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts an English piece letter to a piece type.
// Both cases are accepted; anything else yields NoPiece.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPiece
}

// IsPromotionChoice reports whether a pawn may be promoted to p.
func (p PieceType) IsPromotionChoice() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// Piece is an immutable coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece, or "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.FENLetter())
}

// CastleSide identifies the wing of a castling move.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the castling token for the side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	}
	return ""
}

// CastleRights holds the four independent castling flags.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoRights  CastleRights = 0
	AllRights              = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// RightFor returns the flag for a colour and wing.
func RightFor(colour Colour, side CastleSide) CastleRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White && side == Queenside:
		return WhiteQueenside
	case colour == Black && side == Kingside:
		return BlackKingside
	case colour == Black && side == Queenside:
		return BlackQueenside
	}
	return NoRights
}

// CheckStatus describes the position left behind by the side that just moved.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s CheckStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "none"
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstCol  = 'a'
	LastCol   = FirstCol + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index (0-7) of a colour's back rank.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank index (0-7) pawns of a colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index (0-7) on which pawns of a colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
