// Package errors provides sentinel errors and error types for chessfen.
// It defines the validation failures a malformed FEN string or square
// coordinate can produce, structured so callers can inspect them with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed algebraic square strings.
var (
	// ErrInvalidLength indicates a coordinate string that is not two characters.
	ErrInvalidLength = errors.New("invalid coordinate length")

	// ErrInvalidColumn indicates a column character outside 'a'-'h'.
	ErrInvalidColumn = errors.New("invalid column character")

	// ErrInvalidRow indicates a row character outside '1'-'8'.
	ErrInvalidRow = errors.New("invalid row character")

	// ErrNoPiece indicates a zero bit position where a square was expected.
	ErrNoPiece = errors.New("no piece present")
)

// Sentinel errors for malformed FEN fields.
var (
	// ErrInvalidPieceChar indicates a piece-placement character outside
	// digits and the twelve piece letters.
	ErrInvalidPieceChar = errors.New("invalid piece character")

	// ErrRankOverflow indicates a placement rank describing more than 8 files.
	ErrRankOverflow = errors.New("rank exceeds 8 files")

	// ErrWrongSquareCount indicates a placement field that does not
	// describe exactly 64 squares across exactly 8 ranks.
	ErrWrongSquareCount = errors.New("placement does not cover 64 squares")

	// ErrUnknownColor indicates an active-colour field other than "w" or "b".
	ErrUnknownColor = errors.New("unknown colour designator")

	// ErrInvalidCastlingChar indicates a castling character outside {K,Q,k,q,-}.
	ErrInvalidCastlingChar = errors.New("invalid character in castling rights")

	// ErrInvalidHalfmove indicates a non-numeric halfmove clock field.
	ErrInvalidHalfmove = errors.New("invalid halfmove clock")

	// ErrInvalidFullmove indicates a fullmove field that is not a positive integer.
	ErrInvalidFullmove = errors.New("invalid fullmove number")

	// ErrMissingField indicates fewer than six space-separated FEN fields.
	ErrMissingField = errors.New("missing FEN field")
)

// FieldError wraps a FEN validation failure with the field it occurred
// in and the offending text. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type FieldError struct {
	Err   error  // The underlying sentinel error
	Field string // FEN field name ("placement", "colour", ...)
	Value string // The offending text
}

// Error returns a formatted message including field and value context.
func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s field %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s field: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the FieldError wrapper.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// InField wraps err with field and value context. It returns nil if
// err is nil.
func InField(err error, field, value string) error {
	if err == nil {
		return nil
	}
	return &FieldError{Err: err, Field: field, Value: value}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
