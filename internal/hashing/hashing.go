// Package hashing provides position keys for chess boards, with duplicate
// game detection and repetition counting built on them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key table so keys are stable between runs.
const zobristSeed = 0x5eed

var (
	pieceKeys     [2][7][chess.BoardSize * chess.BoardSize]uint64
	blackToMove   uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// Key returns the Zobrist key of a position: piece placement, side to move,
// castling rights and the file of a pending en-passant capture.
func Key(board *chess.Board) uint64 {
	var key uint64
	for sq := chess.Square(0); sq.Valid(); sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		key ^= pieceKeys[piece.Colour][piece.Type][sq]
	}
	if board.ToMove == chess.Black {
		key ^= blackToMove
	}
	key ^= castlingKeys[board.Castling&chess.AllRights]
	if target, ok := board.LastMove.EnPassantTarget(); ok {
		key ^= enPassantKeys[target.File()]
	}
	return key
}

// PositionCounter counts how often each position has occurred in a game.
type PositionCounter struct {
	seen map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{seen: make(map[uint64]int)}
}

// Add records the position and returns how many times it has now occurred.
func (c *PositionCounter) Add(board *chess.Board) int {
	key := Key(board)
	c.seen[key]++
	return c.seen[key]
}

// Count returns how many times the position has occurred.
func (c *PositionCounter) Count(board *chess.Board) int {
	return c.seen[Key(board)]
}
