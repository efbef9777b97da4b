// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "fen", "Output format: fen, diagram, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format (same as -W json)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")

	// Processing
	numWorkers = flag.Int("workers", 1, "Number of parallel decoders (0 = number of CPUs)")

	// Reporting
	quiet   = flag.Bool("q", false, "Don't report statistics")
	help    = flag.Bool("h", false, "Show usage")
	version = flag.Bool("version", false, "Show version")
)
