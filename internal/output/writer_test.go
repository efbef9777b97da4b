package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessfen-go/internal/config"
	"github.com/lgbarn/chessfen-go/internal/fen"
	"github.com/lgbarn/chessfen-go/internal/testutil"
)

func TestFENWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewFENWriter(&buf)

	testutil.AssertNoError(t, w.WritePosition(fen.Initial()))
	pos, err := fen.Decode("8/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.WritePosition(pos))
	testutil.AssertNoError(t, w.Close())

	want := fen.InitialFEN + "\n8/8/8/8/8/8/8/4K3 w - - 0 1\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestDiagramWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewDiagramWriter(&buf)

	testutil.AssertNoError(t, w.WritePosition(fen.Initial()))
	testutil.AssertNoError(t, w.Close())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("diagram has %d lines; want 8", len(lines))
	}
	testutil.AssertEqual(t, lines[0], "r n b q k b n r")
	testutil.AssertEqual(t, lines[2], "a6 b6 c6 d6 e6 f6 g6 h6")
	testutil.AssertEqual(t, lines[7], "R N B Q K B N R")
}

func TestDiagramWriterSeparatesPositions(t *testing.T) {
	var buf bytes.Buffer
	w := NewDiagramWriter(&buf)

	testutil.AssertNoError(t, w.WritePosition(fen.Initial()))
	testutil.AssertNoError(t, w.WritePosition(fen.Initial()))

	testutil.AssertContains(t, buf.String(), "R N B Q K B N R\n\nr n b q k b n r")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	pos, err := fen.Decode("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.WritePosition(pos))
	testutil.AssertNoError(t, w.Close())

	var decoded []JSONPosition
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	if len(decoded) != 1 {
		t.Fatalf("decoded %d positions; want 1", len(decoded))
	}

	got := decoded[0]
	testutil.AssertEqual(t, got.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, got.ActiveColour, "black")
	testutil.AssertEqual(t, got.Castling, "KQkq")
	testutil.AssertEqual(t, got.EnPassant, "e3")
	testutil.AssertEqual(t, got.HalfmoveClock, uint(0))
	testutil.AssertEqual(t, got.FullmoveNumber, uint(1))
	testutil.AssertEqual(t, len(got.Pieces), 32)

	// Board order: a1 first.
	testutil.AssertEqual(t, got.Pieces[0], JSONPiece{Square: "a1", Colour: "white", Piece: "rook"})
}

func TestNewWriterSelectsFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	cfg.Format = config.FEN
	if _, ok := NewWriter(&buf, cfg).(*FENWriter); !ok {
		t.Error("FEN format did not produce a FENWriter")
	}

	cfg.Format = config.Diagram
	if _, ok := NewWriter(&buf, cfg).(*DiagramWriter); !ok {
		t.Error("diagram format did not produce a DiagramWriter")
	}

	cfg.Format = config.JSON
	if _, ok := NewWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("json format did not produce a JSONWriter")
	}
}
