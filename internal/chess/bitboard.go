package chess

import "math/bits"

// BitPosition is a 64-bit board mask. When it denotes a single square
// (a piece's location or an en-passant target) exactly one bit is set:
// bit i corresponds to square index i, so bit 0 is a1 and bit 63 is h8.
// The zero value denotes "no square" and is never a valid location.
type BitPosition uint64

// BitAt returns the single-bit position for a square index in [0,63].
func BitAt(index int) BitPosition {
	return BitPosition(1) << index
}

// BitScan returns the index of the lowest set bit. For the single-bit
// values used throughout this package that is the bit's square index.
// If more than one bit is set the lowest wins; the result for zero is
// meaningless (64).
func BitScan(b BitPosition) int {
	return bits.TrailingZeros64(uint64(b))
}

// IsSingle reports whether exactly one bit is set.
func (b BitPosition) IsSingle() bool {
	return bits.OnesCount64(uint64(b)) == 1
}

// Has reports whether the square at index is set in the mask.
func (b BitPosition) Has(index int) bool {
	return b&BitAt(index) != 0
}
