package output

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/ccollicutt/camcheck/pkg/analyzer"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// jsonReport is the wire shape of a Report. Results gain a pass flag and
// each diagnostic carries its rendered text line next to the raw fields.
type jsonReport struct {
	Summary  Summary      `json:"summary"`
	Results  []jsonResult `json:"results"`
	Metadata Metadata     `json:"metadata"`
}

type jsonResult struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Passed      bool             `json:"passed"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Duration    time.Duration    `json:"duration"`
}

type jsonDiagnostic struct {
	analyzer.Diagnostic

	// Text is the diagnostic as the text report prints it, without indent.
	Text string `json:"text"`
}

// Format renders the report as JSON. Diagnostics are never capped.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		// Quiet mode: just summary
		return encoder.Encode(report.Summary)
	}

	return encoder.Encode(newJSONReport(report))
}

func newJSONReport(report *Report) *jsonReport {
	out := &jsonReport{
		Summary:  report.Summary,
		Results:  make([]jsonResult, 0, len(report.Results)),
		Metadata: report.Metadata,
	}

	for _, r := range report.Results {
		jr := jsonResult{
			ID:          r.ID,
			Name:        r.Name,
			Passed:      !r.Failed(),
			Diagnostics: make([]jsonDiagnostic, 0, len(r.Diagnostics)),
			Duration:    r.Duration,
		}
		for _, d := range r.Diagnostics {
			jr.Diagnostics = append(jr.Diagnostics, jsonDiagnostic{Diagnostic: d, Text: d.String()})
		}
		out.Results = append(out.Results, jr)
	}

	return out
}
