package chess

// Square identifies one of the 64 coordinates, numbered a1=0, b1=1 ... h8=63.
type Square int

// NoSquare is returned for coordinates off the board.
const NoSquare Square = -1

// NewSquare builds a square from zero-based file and rank indexes.
// Off-board indexes yield NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare converts a coordinate such as "e4" to a square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	if s[0] < FirstCol || s[0] > LastCol || s[1] < FirstRank || s[1] > LastRank {
		return NoSquare, false
	}
	return NewSquare(int(s[0]-FirstCol), int(s[1]-FirstRank)), true
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < BoardSize*BoardSize
}

// File returns the zero-based file index (a=0).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the zero-based rank index (1=0).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// FileLetter returns the file character 'a'-'h'.
func (s Square) FileLetter() byte {
	return byte(FirstCol + s.File())
}

// RankDigit returns the rank character '1'-'8'.
func (s Square) RankDigit() byte {
	return byte(FirstRank + s.Rank())
}

// Offset returns the square df files and dr ranks away, or NoSquare.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// String returns the coordinate in algebraic form.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}
