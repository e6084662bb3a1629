package output

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ccollicutt/camcheck/pkg/analyzer"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions

	ok   *color.Color
	fail *color.Color
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}

	f := &TextFormatter{
		opts: opts,
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}

	// Set explicitly so the package-level NoColor detection never applies.
	for _, c := range []*color.Color{f.ok, f.fail} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Loaded %d entries\n", report.Summary.Entries); err != nil {
		return err
	}

	for _, result := range report.Results {
		if err := f.formatCheckResult(result, w); err != nil {
			return err
		}
	}

	var err error
	if report.HasIssues() {
		_, err = fmt.Fprintf(w, "\n%s\n", f.fail.Sprint("Some checks failed."))
	} else {
		_, err = fmt.Fprintf(w, "\n%s\n", f.ok.Sprint("All checks passed."))
	}
	return err
}

func (f *TextFormatter) formatCheckResult(result *analyzer.CheckResult, w io.Writer) error {
	if !result.Failed() {
		_, err := fmt.Fprintf(w, "%s   %s\n", f.ok.Sprint("OK:"), result.Name)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %s\n", f.fail.Sprint("FAIL:"), result.Name); err != nil {
		return err
	}

	if f.opts.Quiet {
		return nil
	}

	limit := f.opts.MaxDiagnostics
	for i, d := range result.Diagnostics {
		if i == limit {
			break
		}
		if _, err := fmt.Fprintf(w, "  %s\n", d); err != nil {
			return err
		}
	}

	if rest := len(result.Diagnostics) - limit; rest > 0 {
		if _, err := fmt.Fprintf(w, "  ... and %d more\n", rest); err != nil {
			return err
		}
	}

	return nil
}
