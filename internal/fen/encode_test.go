package fen

import (
	"testing"

	"github.com/lgbarn/chessfen-go/internal/testutil"
)

func TestEncodeInitialPosition(t *testing.T) {
	got := Encode(Initial())
	testutil.AssertEqual(t, got, InitialFEN)
}

func TestEncodeRoundTrip(t *testing.T) {
	// All inputs are canonical, so Decode then Encode must reproduce
	// them byte for byte.
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 1 2",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 10 30",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := Decode(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, Encode(pos), fen)
		})
	}
}

func TestEncodeFixture(t *testing.T) {
	// The hand-built starting position encodes to the initial FEN even
	// though it never went through Decode.
	testutil.AssertEqual(t, Encode(testutil.InitialPosition()), InitialFEN)
}
