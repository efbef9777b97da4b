package chess

// CastlingRights is a set of the four castling permissions, one bit
// each. The rights track FEN's castling field only; whether castling
// is actually legal in a position is out of scope.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoRights  CastlingRights = 0
	AllRights                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// With returns the union of c and r.
func (c CastlingRights) With(r CastlingRights) CastlingRights {
	return c | r
}

// Has reports whether every right in r is present in c.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field for the rights, "-" when none.
func (c CastlingRights) String() string {
	if c == NoRights {
		return "-"
	}
	var b []byte
	if c.Has(WhiteKingside) {
		b = append(b, 'K')
	}
	if c.Has(WhiteQueenside) {
		b = append(b, 'Q')
	}
	if c.Has(BlackKingside) {
		b = append(b, 'k')
	}
	if c.Has(BlackQueenside) {
		b = append(b, 'q')
	}
	return string(b)
}
