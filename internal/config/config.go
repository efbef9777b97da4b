// Package config provides configuration for the chessfen tool.
package config

import (
	"io"
	"os"
)

// OutputFormat represents the available output renderings.
type OutputFormat int

const (
	FEN     OutputFormat = iota // Canonical six-field FEN
	Diagram                     // Eight-line diagnostic board diagram
	JSON                        // Structured JSON records
)

// String returns the flag spelling of a format.
func (f OutputFormat) String() string {
	switch f {
	case Diagram:
		return "diagram"
	case JSON:
		return "json"
	default:
		return "fen"
	}
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "fen", "":
		return FEN, true
	case "diagram", "board":
		return Diagram, true
	case "json":
		return JSON, true
	default:
		return FEN, false
	}
}

// Config holds the processing options for a chessfen run.
type Config struct {
	// OutputFile is where decoded positions are written.
	OutputFile io.Writer

	// LogFile is where per-record errors and statistics go.
	LogFile io.Writer

	// Format selects the output rendering.
	Format OutputFormat

	// SuppressDuplicates drops positions already seen in the input.
	SuppressDuplicates bool

	// Workers is the number of concurrent decoders; values below 1
	// mean decode on the calling goroutine.
	Workers int

	// Verbosity controls statistics reporting; 0 is silent.
	Verbosity int
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Format:     FEN,
		Workers:    1,
		Verbosity:  1,
	}
}
