package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SquareSet is an unordered set of squares.
type SquareSet map[chess.Square]struct{}

// Add inserts a square.
func (s SquareSet) Add(sq chess.Square) {
	s[sq] = struct{}{}
}

// Has reports whether the square is in the set.
func (s SquareSet) Has(sq chess.Square) bool {
	_, ok := s[sq]
	return ok
}

// Sorted returns the squares in a1, b1 ... h8 order.
func (s SquareSet) Sorted() []chess.Square {
	squares := maps.Keys(s)
	slices.Sort(squares)
	return squares
}

// Attacks returns the squares threatened by the piece on from, regardless
// of whose turn it is. An empty square attacks nothing.
//
// Pawn diagonals are reported only when something stands on them. Squares
// holding a piece of the attacker's own colour are removed last, after they
// have already stopped any sliding ray.
func Attacks(board *chess.Board, from chess.Square) SquareSet {
	set := make(SquareSet)
	piece := board.Get(from)
	if piece.IsEmpty() {
		return set
	}

	switch piece.Type {
	case chess.Pawn:
		dir := chess.ColourOffset(piece.Colour)
		for _, df := range []int{-1, 1} {
			sq := from.Offset(df, dir)
			if sq.Valid() && !board.Get(sq).IsEmpty() {
				set.Add(sq)
			}
		}
	case chess.Knight:
		addSteps(from, knightJumps, set)
	case chess.King:
		addSteps(from, kingSteps, set)
	case chess.Bishop:
		walkRays(board, from, diagonalDirs, set)
	case chess.Rook:
		walkRays(board, from, straightDirs, set)
	case chess.Queen:
		walkRays(board, from, diagonalDirs, set)
		walkRays(board, from, straightDirs, set)
	}

	for sq := range set {
		if target := board.Get(sq); !target.IsEmpty() && target.Colour == piece.Colour {
			delete(set, sq)
		}
	}
	return set
}

// AllAttacks returns the union of the attacks of every piece of a colour.
func AllAttacks(board *chess.Board, colour chess.Colour) SquareSet {
	all := make(SquareSet)
	for sq := chess.Square(0); sq.Valid(); sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for target := range Attacks(board, sq) {
			all.Add(target)
		}
	}
	return all
}
