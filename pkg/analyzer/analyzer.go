package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ccollicutt/camcheck/pkg/config"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

// Analyzer runs the check battery over a record sequence.
type Analyzer struct {
	cfg    *config.Config
	checks []Check

	// Options
	checkFilter map[string]bool // nil means all checks
	logger      zerolog.Logger
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithCheckFilter limits analysis to the checks with the given IDs.
func WithCheckFilter(ids []string) AnalyzerOption {
	return func(a *Analyzer) {
		if len(ids) > 0 {
			a.checkFilter = make(map[string]bool)
			for _, id := range ids {
				a.checkFilter[id] = true
			}
		}
	}
}

// WithLogger sets the logger used for per-check debug events.
func WithLogger(l zerolog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer creates a new analyzer from configuration.
func NewAnalyzer(cfg *config.Config, opts ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	all := Checks()
	known := make(map[string]bool, len(all))
	for _, c := range all {
		known[c.ID] = true
		if a.checkFilter != nil && !a.checkFilter[c.ID] {
			continue
		}
		a.checks = append(a.checks, c)
	}

	for id := range a.checkFilter {
		if !known[id] {
			return nil, fmt.Errorf("unknown check %q", id)
		}
	}

	if len(a.checks) == 0 {
		return nil, fmt.Errorf("no checks to execute (check --check filter)")
	}

	return a, nil
}

// Checks returns the checks this analyzer will run, in order.
func (a *Analyzer) Checks() []Check {
	return a.checks
}

// Analyze runs every selected check over records.
// Checks are independent; a failing check never stops the others.
func (a *Analyzer) Analyze(ctx context.Context, records []parser.Record) (*AnalysisResult, error) {
	result := &AnalysisResult{
		Results:   make([]*CheckResult, 0, len(a.checks)),
		Entries:   len(records),
		StartTime: time.Now(),
	}

	for _, c := range a.checks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		start := time.Now()
		diags := c.Run(records, a.cfg)
		if diags == nil {
			diags = []Diagnostic{}
		}
		cr := &CheckResult{
			ID:          c.ID,
			Name:        c.Name,
			Diagnostics: diags,
			Duration:    time.Since(start),
		}
		result.Results = append(result.Results, cr)

		a.logger.Debug().
			Str("check", c.ID).
			Int("violations", len(diags)).
			Dur("duration", cr.Duration).
			Msg("check finished")
	}

	result.EndTime = time.Now()
	return result, nil
}
