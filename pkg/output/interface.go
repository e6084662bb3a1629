package output

import (
	"context"
	"io"
)

// Formatter renders a check report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Quiet drops diagnostic lines and keeps only per-check status.
	Quiet bool

	// Color enables ANSI colors on status labels (text only).
	Color bool

	// MaxDiagnostics caps diagnostic lines per failing check (text only).
	// Zero means DefaultMaxDiagnostics.
	MaxDiagnostics int
}

// DefaultMaxDiagnostics is the per-check diagnostic cap used when
// FormatOptions.MaxDiagnostics is unset.
const DefaultMaxDiagnostics = 10
