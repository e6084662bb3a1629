// Package analyzer runs the camera invariant checks over a loaded event log.
package analyzer

import (
	"fmt"
	"time"
)

// Diagnostic is one invariant violation found by a check.
type Diagnostic struct {
	// Entry is the 1-based position of the offending record in the loaded
	// sequence. Blank lines in the file are not counted.
	Entry int `json:"entry"`

	// EndEntry is set when the violation spans a run of records.
	EndEntry int `json:"end_entry,omitempty"`

	// SourceLine is the raw file line of the record at Entry.
	SourceLine int `json:"source_line,omitempty"`

	Message string `json:"message"`
}

// String renders the diagnostic as "line N: msg" or "lines N-M: msg".
func (d Diagnostic) String() string {
	if d.EndEntry > d.Entry {
		return fmt.Sprintf("lines %d-%d: %s", d.Entry, d.EndEntry, d.Message)
	}
	return fmt.Sprintf("line %d: %s", d.Entry, d.Message)
}

// CheckResult contains findings from executing a single check.
type CheckResult struct {
	// ID is the stable identifier used by --check.
	ID string `json:"id"`

	// Name is the human-readable check name printed in reports.
	Name string `json:"name"`

	Diagnostics []Diagnostic `json:"diagnostics"`

	Duration time.Duration `json:"duration"`
}

// Failed returns true if the check found any violation.
func (r *CheckResult) Failed() bool {
	return len(r.Diagnostics) > 0
}

// AnalysisResult contains the complete analysis output.
type AnalysisResult struct {
	// Results holds one entry per executed check, in execution order.
	Results []*CheckResult

	// Entries is the number of records analysed.
	Entries int

	StartTime time.Time
	EndTime   time.Time
}

// ChecksFailed returns the count of checks that found violations.
func (r *AnalysisResult) ChecksFailed() int {
	count := 0
	for _, result := range r.Results {
		if result.Failed() {
			count++
		}
	}
	return count
}

// TotalDiagnostics returns the number of violations across all checks.
func (r *AnalysisResult) TotalDiagnostics() int {
	total := 0
	for _, result := range r.Results {
		total += len(result.Diagnostics)
	}
	return total
}

// Passed returns true if every executed check passed.
func (r *AnalysisResult) Passed() bool {
	return r.ChecksFailed() == 0
}
