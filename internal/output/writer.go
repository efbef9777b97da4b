// Package output provides position output in the supported renderings.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessfen-go/internal/chess"
	"github.com/lgbarn/chessfen-go/internal/config"
	"github.com/lgbarn/chessfen-go/internal/fen"
)

// PositionWriter is the interface for writing decoded positions.
// Different implementations handle different output formats.
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(pos *chess.Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this
	// also writes any pending output.
	Close() error
}

// NewWriter returns the PositionWriter for the configured format.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	switch cfg.Format {
	case config.Diagram:
		return NewDiagramWriter(w)
	case config.JSON:
		return NewJSONWriter(w)
	default:
		return NewFENWriter(w)
	}
}

// FENWriter writes one canonical FEN record per line.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WritePosition writes the canonical encoding of pos on its own line.
func (fw *FENWriter) WritePosition(pos *chess.Position) error {
	_, err := fmt.Fprintln(fw.w, fen.Encode(pos))
	return err
}

// Flush is a no-op; records are written immediately.
func (fw *FENWriter) Flush() error { return nil }

// Close is a no-op for the FEN writer.
func (fw *FENWriter) Close() error { return nil }

// DiagramWriter writes the eight-line diagnostic diagram for each
// position, blank-line separated.
type DiagramWriter struct {
	w     io.Writer
	count int
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer) *DiagramWriter {
	return &DiagramWriter{w: w}
}

// WritePosition writes the diagram for pos.
func (dw *DiagramWriter) WritePosition(pos *chess.Position) error {
	if dw.count > 0 {
		if _, err := fmt.Fprintln(dw.w); err != nil {
			return err
		}
	}
	dw.count++
	_, err := io.WriteString(dw.w, pos.String())
	return err
}

// Flush is a no-op; diagrams are written immediately.
func (dw *DiagramWriter) Flush() error { return nil }

// Close is a no-op for the diagram writer.
func (dw *DiagramWriter) Close() error { return nil }
