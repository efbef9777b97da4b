package fen

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessfen-go/internal/chess"
)

// Encode converts a Position back to a six-field FEN string, the
// inverse of Decode for canonical inputs.
func Encode(pos *chess.Position) string {
	var sb strings.Builder

	writePlacement(&sb, pos)
	sb.WriteByte(' ')
	if pos.ActiveColour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.CastlingRights.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePlacement writes the piece-placement field, ranks 8 down to 1,
// with runs of empty squares compressed into digits.
func writePlacement(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := pos.PieceAt(rank*chess.BoardSize + col)
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en-passant target square, "-" when none.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if !pos.HasEnPassant() {
		sb.WriteByte('-')
		return
	}
	square, err := chess.BitToAlgebraic(pos.EnPassant)
	if err != nil {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(square)
}
