package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Step tables as (file, rank) offsets.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// addSteps adds each on-board square one step away from from.
func addSteps(from chess.Square, steps [][2]int, set SquareSet) {
	for _, step := range steps {
		if sq := from.Offset(step[0], step[1]); sq.Valid() {
			set.Add(sq)
		}
	}
}

// walkRays adds every square along each direction up to and including
// the first occupied square, whatever its colour.
func walkRays(board *chess.Board, from chess.Square, dirs [][2]int, set SquareSet) {
	for _, dir := range dirs {
		for sq := from.Offset(dir[0], dir[1]); sq.Valid(); sq = sq.Offset(dir[0], dir[1]) {
			set.Add(sq)
			if !board.Get(sq).IsEmpty() {
				break // Blocked
			}
		}
	}
}

// isPathClear checks that every square strictly between from and to is empty.
// The squares must share a file, rank or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File() - from.File())
	rankDir := sign(to.Rank() - from.Rank())
	if fileDir == 0 && rankDir == 0 {
		return true
	}

	for sq := from.Offset(fileDir, rankDir); sq.Valid() && sq != to; sq = sq.Offset(fileDir, rankDir) {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}
