package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessfen-go/internal/chess"
	"github.com/lgbarn/chessfen-go/internal/fen"
)

// JSONPosition represents a decoded position in JSON format.
type JSONPosition struct {
	FEN            string      `json:"fen"`
	ActiveColour   string      `json:"activeColour"` // "white" or "black"
	Castling       string      `json:"castling"`
	EnPassant      string      `json:"enPassant,omitempty"`
	HalfmoveClock  uint        `json:"halfmoveClock"`
	FullmoveNumber uint        `json:"fullmoveNumber"`
	Pieces         []JSONPiece `json:"pieces"`
}

// JSONPiece represents one piece in JSON format.
type JSONPiece struct {
	Square string `json:"square"` // algebraic, e.g. "e1"
	Colour string `json:"colour"` // "white" or "black"
	Piece  string `json:"piece"`  // "pawn", "rook", ...
}

// JSONWriter collects positions and writes them as a JSON array on
// Close, so the output is a single valid document.
type JSONWriter struct {
	w         io.Writer
	positions []JSONPosition
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition converts pos to its JSON form and queues it.
func (jw *JSONWriter) WritePosition(pos *chess.Position) error {
	jw.positions = append(jw.positions, convertPosition(pos))
	return nil
}

// Flush is a no-op; the array is only complete at Close.
func (jw *JSONWriter) Flush() error { return nil }

// Close writes all queued positions as an indented JSON array.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jw.positions)
}

// convertPosition builds the JSON record for a position. Pieces are
// listed in board order, a1 through h8.
func convertPosition(pos *chess.Position) JSONPosition {
	jp := JSONPosition{
		FEN:            fen.Encode(pos),
		ActiveColour:   colourName(pos.ActiveColour),
		Castling:       pos.CastlingRights.String(),
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
	}
	if pos.HasEnPassant() {
		if square, err := chess.BitToAlgebraic(pos.EnPassant); err == nil {
			jp.EnPassant = square
		}
	}
	for i := 0; i < chess.NumSquares; i++ {
		piece, ok := pos.PieceAt(i)
		if !ok {
			continue
		}
		jp.Pieces = append(jp.Pieces, JSONPiece{
			Square: chess.IndexToAlgebraic(i),
			Colour: colourName(piece.Colour),
			Piece:  strings.ToLower(piece.Type.String()),
		})
	}
	return jp
}

// colourName returns the JSON spelling of a colour.
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
