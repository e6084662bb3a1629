// Package output provides formatting and output generation for check results.
package output

import (
	"time"

	"github.com/ccollicutt/camcheck/pkg/analyzer"
)

// Report is the complete check output.
type Report struct {
	Summary Summary `json:"summary"`

	// Results contains findings from each check, in report order.
	Results []*analyzer.CheckResult `json:"results"`

	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Entries is the number of records loaded from the log.
	Entries int `json:"entries"`

	ChecksRun    int `json:"checks_run"`
	ChecksFailed int `json:"checks_failed"`

	// TotalViolations counts diagnostics across all checks, uncapped.
	TotalViolations int `json:"total_violations"`

	Passed bool `json:"passed"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Source is the path of the analysed log.
	Source string `json:"source"`

	// ConfigFile is the configuration file used, empty for defaults.
	ConfigFile string `json:"config_file,omitempty"`

	AnalyzedAt time.Time     `json:"analyzed_at"`
	Duration   time.Duration `json:"duration"`
}

// NewReport creates a Report from analysis results.
func NewReport(result *analyzer.AnalysisResult, source, configFile string) *Report {
	return &Report{
		Results: result.Results,
		Summary: Summary{
			Entries:         result.Entries,
			ChecksRun:       len(result.Results),
			ChecksFailed:    result.ChecksFailed(),
			TotalViolations: result.TotalDiagnostics(),
			Passed:          result.Passed(),
		},
		Metadata: Metadata{
			Source:     source,
			ConfigFile: configFile,
			AnalyzedAt: result.EndTime,
			Duration:   result.EndTime.Sub(result.StartTime),
		},
	}
}

// HasIssues returns true if any check failed.
func (r *Report) HasIssues() bool {
	return r.Summary.ChecksFailed > 0
}
