package chess

import "strings"

// Position represents a chess position: the piece list, the 64 squares
// referencing it, and the bookkeeping FEN carries alongside placement.
//
// Squares hold indices into Pieces rather than pieces themselves, so a
// piece's identity survives however the caller iterates. The invariant
// is that an occupied square's piece has its Position bit equal to
// 1<<(square index), every piece is referenced by exactly one square,
// and Squares always has 64 entries once construction is complete.
type Position struct {
	// Pieces in creation order. Board order is carried by Squares,
	// which reference this list by index.
	Pieces []Piece

	// Squares holds exactly 64 entries; index 0 is a1, 63 is h8.
	Squares []Square

	// Who has the next move.
	ActiveColour Colour

	// Castling availability as given by FEN, not current legality.
	CastlingRights CastlingRights

	// En-passant capture target as a single-bit position, zero when
	// no target exists.
	EnPassant BitPosition

	// Plies since the last capture or pawn move.
	HalfmoveClock uint

	// Fullmove counter, starts at 1 and increments after Black moves.
	FullmoveNumber uint
}

// NewPosition returns an empty container ready for construction via
// PushPieceAndSquare and PushEmptySquare. No squares are populated.
func NewPosition() *Position {
	return &Position{
		Pieces:         make([]Piece, 0, 32),
		Squares:        make([]Square, 0, NumSquares),
		ActiveColour:   White,
		CastlingRights: NoRights,
		FullmoveNumber: 1,
	}
}

// PushPieceAndSquare appends a new piece located at the given square
// index and an occupied square referencing it. Squares must be pushed
// in index order (a1 first) for the indexing invariant to hold.
func (p *Position) PushPieceAndSquare(index int, colour Colour, pieceType PieceType) {
	p.Pieces = append(p.Pieces, Piece{
		Position: BitAt(index),
		Colour:   colour,
		Type:     pieceType,
	})
	p.Squares = append(p.Squares, OccupiedBy(len(p.Pieces)-1))
}

// PushEmptySquare appends an unoccupied square.
func (p *Position) PushEmptySquare() {
	p.Squares = append(p.Squares, EmptySquare)
}

// At returns the square at the given index in [0,63].
func (p *Position) At(index int) Square {
	return p.Squares[index]
}

// PieceAt returns the piece occupying the square at index. The second
// return value is false for an empty square.
func (p *Position) PieceAt(index int) (Piece, bool) {
	s := p.Squares[index]
	if s.IsEmpty() {
		return Piece{}, false
	}
	return p.Pieces[s.PieceIndex()], true
}

// HasEnPassant reports whether an en-passant capture target is set.
func (p *Position) HasEnPassant() bool {
	return p.EnPassant != 0
}

// String renders a diagnostic diagram: eight lines from rank 8 down to
// rank 1, each with eight space-separated tokens, a piece letter for
// occupied squares and the square's algebraic name for empty ones.
// This is a debugging format, not valid FEN.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			index := rank*BoardSize + col
			if piece, ok := p.PieceAt(index); ok {
				sb.WriteByte(piece.Letter())
			} else {
				sb.WriteString(IndexToAlgebraic(index))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
