// processor.go - FEN record processing and output
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessfen-go/internal/config"
	"github.com/lgbarn/chessfen-go/internal/fen"
	"github.com/lgbarn/chessfen-go/internal/hashing"
	"github.com/lgbarn/chessfen-go/internal/output"
	"github.com/lgbarn/chessfen-go/internal/worker"
)

// Stats accumulates record counts across all processed inputs.
type Stats struct {
	Records    int
	Valid      int
	Invalid    int
	Duplicates int
}

// Processor decodes FEN records from input streams and writes the
// resulting positions in the configured format.
type Processor struct {
	cfg      *config.Config
	writer   output.PositionWriter
	detector *hashing.DuplicateDetector
	stats    Stats
}

// NewProcessor creates a processor for the given configuration.
func NewProcessor(cfg *config.Config) *Processor {
	p := &Processor{
		cfg:    cfg,
		writer: output.NewWriter(cfg.OutputFile, cfg),
	}
	if cfg.SuppressDuplicates {
		p.detector = hashing.NewDuplicateDetector()
	}
	return p
}

// ProcessReader decodes every record of r, one per line, and writes
// the valid positions. Invalid records are logged with name and line
// number and counted, never fatal. The returned error covers I/O only.
func (p *Processor) ProcessReader(r io.Reader, name string) error {
	records, err := readRecords(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	var results []worker.Result
	if p.cfg.Workers > 1 {
		results = decodeParallel(records, p.cfg.Workers)
	} else {
		results = decodeSerial(records)
	}

	for i, res := range results {
		if err := p.consume(res, records[i].num, name); err != nil {
			return err
		}
	}
	return nil
}

// record is one input line that survived blank-line filtering.
type record struct {
	line string
	num  int // 1-based line number in the source
}

// readRecords reads all non-blank lines of r.
func readRecords(r io.Reader) ([]record, error) {
	var records []record
	scanner := bufio.NewScanner(r)
	for num := 1; scanner.Scan(); num++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		records = append(records, record{line: line, num: num})
	}
	return records, scanner.Err()
}

// decodeSerial decodes records on the calling goroutine. The result
// at index i corresponds to records[i].
func decodeSerial(records []record) []worker.Result {
	results := make([]worker.Result, len(records))
	for i, rec := range records {
		pos, err := fen.Decode(rec.line)
		results[i] = worker.Result{
			Index:    i,
			Line:     rec.line,
			Position: pos,
			Err:      err,
		}
	}
	return results
}

// decodeParallel decodes records through a worker pool. Results are
// placed back into input order by their index, so output is
// deterministic regardless of worker scheduling.
func decodeParallel(records []record, workers int) []worker.Result {
	pool := worker.NewPool(func(item worker.WorkItem) worker.Result {
		pos, err := fen.Decode(item.Line)
		return worker.Result{
			Index:    item.Index,
			Line:     item.Line,
			Position: pos,
			Err:      err,
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(records)+1))

	pool.Start()
	go func() {
		for i, rec := range records {
			pool.Submit(worker.WorkItem{Line: rec.line, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.Result, len(records))
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}

// consume updates statistics for one decoded record and writes the
// position unless it is invalid or a suppressed duplicate.
func (p *Processor) consume(res worker.Result, lineNum int, name string) error {
	p.stats.Records++

	if res.Err != nil {
		p.stats.Invalid++
		fmt.Fprintf(p.cfg.LogFile, "%s:%d: %v\n", name, lineNum, res.Err)
		return nil
	}

	p.stats.Valid++
	if p.detector != nil && p.detector.CheckAndAdd(res.Position) {
		p.stats.Duplicates++
		return nil
	}
	return p.writer.WritePosition(res.Position)
}

// Finish flushes the writer and reports statistics. Must be called
// once after all inputs have been processed.
func (p *Processor) Finish() error {
	if err := p.writer.Flush(); err != nil {
		return err
	}
	if err := p.writer.Close(); err != nil {
		return err
	}
	if p.cfg.Verbosity > 0 {
		fmt.Fprintf(p.cfg.LogFile, "%d records: %d valid, %d invalid, %d duplicates\n",
			p.stats.Records, p.stats.Valid, p.stats.Invalid, p.stats.Duplicates)
	}
	return nil
}

// Stats returns the counts accumulated so far.
func (p *Processor) Stats() Stats {
	return p.stats
}
