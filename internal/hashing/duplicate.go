package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameSignature identifies a game by where it ended.
type GameSignature struct {
	// Key is the Zobrist key of the final position.
	Key uint64
	// Plies is the number of half-moves played.
	Plies int
}

// DuplicateDetector tracks the final positions of games seen so far.
type DuplicateDetector struct {
	table          map[uint64][]GameSignature
	exactMatch     bool
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With exactMatch, games must
// also agree on their length to count as duplicates.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		table:      make(map[uint64][]GameSignature),
		exactMatch: exactMatch,
	}
}

// CheckAndAdd reports whether a game ending on board after plies half-moves
// duplicates one already seen, and records it if not.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, plies int) bool {
	if board == nil {
		return false
	}

	sig := GameSignature{Key: Key(board), Plies: plies}
	for _, existing := range d.table[sig.Key] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	d.table[sig.Key] = append(d.table[sig.Key], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Key != b.Key {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct games recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.table {
		count += len(sigs)
	}
	return count
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.table = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
