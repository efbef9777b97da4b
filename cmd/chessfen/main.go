// chessfen is a tool for validating, normalizing, and reformatting
// chess positions in Forsyth-Edwards Notation. It reads FEN records
// one per line from files or stdin and writes them as canonical FEN,
// a board diagram, or JSON.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/lgbarn/chessfen-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessfen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chessfen: %v\n", err)
		os.Exit(2)
	}

	processor := NewProcessor(cfg)
	if err := processAllInputs(processor, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "chessfen: %v\n", err)
		os.Exit(1)
	}

	if err := processor.Finish(); err != nil {
		fmt.Fprintf(os.Stderr, "chessfen: %v\n", err)
		os.Exit(1)
	}

	if processor.Stats().Invalid > 0 {
		os.Exit(1)
	}
}

// applyFlags translates command-line flags into the configuration.
func applyFlags(cfg *config.Config) error {
	format, ok := config.ParseOutputFormat(*outputFormat)
	if !ok {
		return fmt.Errorf("unknown output format %q", *outputFormat)
	}
	cfg.Format = format
	if *jsonOutput {
		cfg.Format = config.JSON
	}

	cfg.SuppressDuplicates = *suppressDuplicates

	cfg.Workers = *numWorkers
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}

	if *quiet {
		cfg.Verbosity = 0
	}

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			return fmt.Errorf("creating output file %s: %v", *outputFile, err)
		}
		cfg.OutputFile = file
	}
	return nil
}

// processAllInputs runs the processor over each named file, or stdin
// when no files are given ("-" also means stdin).
func processAllInputs(processor *Processor, args []string) error {
	if len(args) == 0 {
		return processor.ProcessReader(os.Stdin, "stdin")
	}

	for _, name := range args {
		if name == "-" {
			if err := processor.ProcessReader(os.Stdin, "stdin"); err != nil {
				return err
			}
			continue
		}
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		err = processor.ProcessReader(file, name)
		file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: chessfen [options] [file ...]

Reads FEN records (one per line) from the given files, or stdin when
no files are given, and writes the decoded positions.

Options:
`)
	flag.PrintDefaults()
}
