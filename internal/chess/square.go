package chess

import (
	"fmt"

	"github.com/lgbarn/chessfen-go/internal/errors"
)

// IndexToAlgebraic converts a square index in [0,63] to two-character
// algebraic notation: index 0 is "a1", index 63 is "h8". The caller
// guarantees the index is in range.
func IndexToAlgebraic(index int) string {
	col := index % BoardSize
	row := index/BoardSize + 1
	return fmt.Sprintf("%c%d", rune(ColBase+col), row)
}

// AlgebraicToBit converts a two-character algebraic square such as "e4"
// to its single-bit position.
func AlgebraicToBit(s string) (BitPosition, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidLength)
	}

	col := s[0]
	if col < FirstCol || col > LastCol {
		return 0, fmt.Errorf("%q: column %c: %w", s, col, errors.ErrInvalidColumn)
	}

	row := s[1]
	if row < FirstRank || row > LastRank {
		return 0, fmt.Errorf("%q: row %c: %w", s, row, errors.ErrInvalidRow)
	}

	index := int(row-RankBase)*BoardSize + int(col-ColBase)
	return BitAt(index), nil
}

// BitToAlgebraic converts a single-bit position back to algebraic
// notation. A zero value is an error; if more than one bit is set the
// lowest wins (see BitScan).
func BitToAlgebraic(b BitPosition) (string, error) {
	if b == 0 {
		return "", errors.ErrNoPiece
	}
	return IndexToAlgebraic(BitScan(b)), nil
}
