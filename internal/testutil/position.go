package testutil

import (
	"github.com/lgbarn/chessfen-go/internal/chess"
)

// backRank is the piece order of the first and eighth ranks.
var backRank = []chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// InitialPosition builds the standard starting position square by
// square through the construction helpers, independent of the FEN
// decoder, so decoder tests have a fixture that does not depend on the
// code under test.
func InitialPosition() *chess.Position {
	pos := chess.NewPosition()

	for col, pieceType := range backRank {
		pos.PushPieceAndSquare(col, chess.White, pieceType)
	}
	for col := 0; col < chess.BoardSize; col++ {
		pos.PushPieceAndSquare(chess.BoardSize+col, chess.White, chess.Pawn)
	}
	for i := 2 * chess.BoardSize; i < 6*chess.BoardSize; i++ {
		pos.PushEmptySquare()
	}
	for col := 0; col < chess.BoardSize; col++ {
		pos.PushPieceAndSquare(6*chess.BoardSize+col, chess.Black, chess.Pawn)
	}
	for col, pieceType := range backRank {
		pos.PushPieceAndSquare(7*chess.BoardSize+col, chess.Black, pieceType)
	}

	pos.ActiveColour = chess.White
	pos.CastlingRights = chess.AllRights
	pos.HalfmoveClock = 0
	pos.FullmoveNumber = 1
	return pos
}

// SamePlacement reports whether two positions have identical piece
// placement, comparing square by square so differing piece-list
// creation orders still compare equal.
func SamePlacement(a, b *chess.Position) bool {
	if len(a.Squares) != len(b.Squares) {
		return false
	}
	for i := range a.Squares {
		pa, okA := a.PieceAt(i)
		pb, okB := b.PieceAt(i)
		if okA != okB {
			return false
		}
		if okA && (pa.Colour != pb.Colour || pa.Type != pb.Type || pa.Position != pb.Position) {
			return false
		}
	}
	return true
}
