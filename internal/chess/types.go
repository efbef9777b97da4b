// Package chess provides the core position model: pieces, squares,
// bit positions, castling rights, and the coordinate mapping between
// 0-63 square indices and algebraic notation.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the lowercase FEN letter for a piece type.
func (p PieceType) Letter() byte {
	letters := []byte{'p', 'r', 'n', 'b', 'q', 'k'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a FEN piece letter (either case) to a
// piece type. The second return value is false for any other byte.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	default:
		return 0, false
	}
}

// Piece is a single piece on the board: its colour, its type, and its
// location as a one-bit position. Pieces are constructed once and not
// mutated afterwards.
type Piece struct {
	Position BitPosition
	Colour   Colour
	Type     PieceType
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	c := p.Type.Letter()
	if p.Colour == White {
		c -= 'a' - 'A'
	}
	return c
}

// String returns the one-letter FEN representation of the piece.
func (p Piece) String() string {
	return string(p.Letter())
}

// Square is one cell of a Position: either empty, or occupied by the
// piece at the given index into the Position's piece list.
type Square int

// EmptySquare is the Square value for an unoccupied cell.
const EmptySquare Square = -1

// OccupiedBy returns a Square occupied by the piece at pieceIndex.
func OccupiedBy(pieceIndex int) Square {
	return Square(pieceIndex)
}

// IsEmpty reports whether the square holds no piece.
func (s Square) IsEmpty() bool {
	return s == EmptySquare
}

// PieceIndex returns the index into the owning Position's piece list.
// Only meaningful when !IsEmpty().
func (s Square) PieceIndex() int {
	return int(s)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)
