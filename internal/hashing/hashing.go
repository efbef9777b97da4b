// Package hashing provides position hashing and duplicate detection
// for streams of FEN records.
package hashing

import (
	"hash/fnv"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessfen-go/internal/chess"
	"github.com/lgbarn/chessfen-go/internal/fen"
)

// PositionHash returns a 64-bit FNV-1a hash of the full position
// state. Positions that differ only in piece-list creation order hash
// identically because the hash is taken over the canonical encoding.
func PositionHash(pos *chess.Position) uint64 {
	h := fnv.New64a()
	h.Write([]byte(fen.Encode(pos)))
	return h.Sum64()
}

// DuplicateDetector tracks seen positions so repeated ones can be
// suppressed or counted.
type DuplicateDetector struct {
	// seen maps a position hash to the canonical encodings that
	// produced it, so hash collisions never yield false duplicates.
	seen map[uint64][]string

	duplicateCount int
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		seen: make(map[uint64][]string),
	}
}

// CheckAndAdd checks whether pos has been seen before and records it.
// Returns true if the position is a duplicate of an earlier one.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position) bool {
	canonical := fen.Encode(pos)
	hash := PositionHash(pos)

	if slices.Contains(d.seen[hash], canonical) {
		d.duplicateCount++
		return true
	}
	d.seen[hash] = append(d.seen[hash], canonical)
	return false
}

// DuplicateCount returns the number of duplicates found so far.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	n := 0
	for _, entries := range d.seen {
		n += len(entries)
	}
	return n
}
