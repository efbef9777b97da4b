package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessfen-go/internal/config"
	"github.com/lgbarn/chessfen-go/internal/fen"
	"github.com/lgbarn/chessfen-go/internal/testutil"
)

// newTestConfig returns a quiet config writing to in-memory buffers.
func newTestConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfig()
	cfg.OutputFile = &out
	cfg.LogFile = &log
	cfg.Verbosity = 0
	return cfg, &out, &log
}

func TestProcessorMixedInput(t *testing.T) {
	cfg, out, log := newTestConfig()
	p := NewProcessor(cfg)

	input := fen.InitialFEN + "\n" +
		"\n" + // blank lines are skipped, not errors
		"this is not fen\n" +
		"8/8/8/8/8/8/8/4K3 w - - 0 1\n"

	testutil.AssertNoError(t, p.ProcessReader(strings.NewReader(input), "input"))
	testutil.AssertNoError(t, p.Finish())

	stats := p.Stats()
	testutil.AssertEqual(t, stats, Stats{Records: 3, Valid: 2, Invalid: 1})

	wantOut := fen.InitialFEN + "\n8/8/8/8/8/8/8/4K3 w - - 0 1\n"
	testutil.AssertEqual(t, out.String(), wantOut)

	// The bad record is logged with source name and line number.
	testutil.AssertContains(t, log.String(), "input:3:")
}

func TestProcessorSuppressDuplicates(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.SuppressDuplicates = true
	p := NewProcessor(cfg)

	input := fen.InitialFEN + "\n" + fen.InitialFEN + "\n" + fen.InitialFEN + "\n"
	testutil.AssertNoError(t, p.ProcessReader(strings.NewReader(input), "input"))
	testutil.AssertNoError(t, p.Finish())

	testutil.AssertEqual(t, p.Stats().Duplicates, 2)
	testutil.AssertEqual(t, out.String(), fen.InitialFEN+"\n")
}

func TestProcessorParallelMatchesSerial(t *testing.T) {
	lines := []string{
		fen.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"bogus",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 10 30",
	}
	input := strings.Join(lines, "\n") + "\n"

	run := func(workers int) (string, Stats) {
		cfg, out, _ := newTestConfig()
		cfg.Workers = workers
		p := NewProcessor(cfg)
		testutil.AssertNoError(t, p.ProcessReader(strings.NewReader(input), "input"))
		testutil.AssertNoError(t, p.Finish())
		return out.String(), p.Stats()
	}

	serialOut, serialStats := run(1)
	parallelOut, parallelStats := run(4)

	testutil.AssertEqual(t, parallelOut, serialOut)
	testutil.AssertEqual(t, parallelStats, serialStats)
}

func TestProcessorDiagramFormat(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Format = config.Diagram
	p := NewProcessor(cfg)

	testutil.AssertNoError(t, p.ProcessReader(strings.NewReader(fen.InitialFEN+"\n"), "input"))
	testutil.AssertNoError(t, p.Finish())

	testutil.AssertContains(t, out.String(), "r n b q k b n r")
	testutil.AssertContains(t, out.String(), "R N B Q K B N R")
}

func TestProcessorStatisticsReport(t *testing.T) {
	cfg, _, log := newTestConfig()
	cfg.Verbosity = 1
	p := NewProcessor(cfg)

	testutil.AssertNoError(t, p.ProcessReader(strings.NewReader(fen.InitialFEN+"\n"), "input"))
	testutil.AssertNoError(t, p.Finish())

	testutil.AssertContains(t, log.String(), "1 records: 1 valid, 0 invalid, 0 duplicates")
}
