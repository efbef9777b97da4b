package errors

import (
	"errors"
	"testing"
)

func TestFieldError(t *testing.T) {
	t.Run("message includes field and value", func(t *testing.T) {
		err := &FieldError{Err: ErrUnknownColor, Field: "colour", Value: "x"}
		want := `colour field "x": unknown colour designator`
		if err.Error() != want {
			t.Errorf("Error() = %q; want %q", err.Error(), want)
		}
	})

	t.Run("message without value", func(t *testing.T) {
		err := &FieldError{Err: ErrMissingField, Field: "fullmove"}
		want := "fullmove field: missing FEN field"
		if err.Error() != want {
			t.Errorf("Error() = %q; want %q", err.Error(), want)
		}
	})

	t.Run("unwraps to the sentinel", func(t *testing.T) {
		err := InField(ErrInvalidCastlingChar, "castling", "Z")
		if !errors.Is(err, ErrInvalidCastlingChar) {
			t.Errorf("errors.Is() failed for %v", err)
		}

		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("errors.As() failed for %v", err)
		}
		if fieldErr.Field != "castling" || fieldErr.Value != "Z" {
			t.Errorf("context = %q/%q; want castling/Z", fieldErr.Field, fieldErr.Value)
		}
	})
}

func TestInFieldNil(t *testing.T) {
	if InField(nil, "colour", "w") != nil {
		t.Error("InField(nil, ...) should return nil")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}

	err := Wrap(ErrNoPiece, "en passant")
	if !errors.Is(err, ErrNoPiece) {
		t.Errorf("errors.Is() failed for %v", err)
	}
	if err.Error() != "en passant: no piece present" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "line %d", 3) != nil {
		t.Error("Wrapf(nil, ...) should return nil")
	}

	err := Wrapf(ErrInvalidRow, "square %q", "a9")
	if !errors.Is(err, ErrInvalidRow) {
		t.Errorf("errors.Is() failed for %v", err)
	}
	if err.Error() != `square "a9": invalid row character` {
		t.Errorf("Error() = %q", err.Error())
	}
}
