package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/camcheck/internal/logging"
	"github.com/ccollicutt/camcheck/pkg/analyzer"
	"github.com/ccollicutt/camcheck/pkg/config"
	"github.com/ccollicutt/camcheck/pkg/output"
	"github.com/ccollicutt/camcheck/pkg/parser"
)

// CheckOptions holds command-line options for checking a log.
type CheckOptions struct {
	ConfigPath string
	Output     string
	Quiet      bool
	Color      string
	Checks     []string
	LogLevel   string
}

// NewCheckCommand creates the command that validates a camera log. It is
// used as the root command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "camcheck [flags] <log-file>",
		Short: "Validate camera-state JSONL logs",
		Long: `camcheck reads a camera-state log (one JSON object per line) and checks
it against the orbit-camera model: orbit geometry, angle steps and clamps,
WASD shift direction and cancellation, zoom bounds, reset state and full
rotations.

A log file named like a subcommand (checks, validate, version, help,
completion) runs that subcommand instead; pass it with a path such as
./checks.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed
  2 - Usage error, malformed or empty log, config or I/O error`,
		Args: exactlyOneLogFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Camera model config file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Per-check status only, no diagnostics")
	cmd.Flags().StringVar(&opts.Color, "color", "auto", "Colorize output (auto|always|never)")
	cmd.Flags().StringSliceVar(&opts.Checks, "check", nil, "Run specific check(s) only (can be repeated)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "warn", "Diagnostic log level on stderr (debug|info|warn|error)")

	return cmd
}

func exactlyOneLogFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Err: fmt.Errorf("expected exactly one log file, got %d arguments", len(args))}
	}
	return nil
}

func runCheck(cmd *cobra.Command, logPath string, opts *CheckOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()

	logCfg := logging.DefaultConfig()
	logCfg.Level = opts.LogLevel
	logCfg.Out = cmd.ErrOrStderr()
	if err := logging.Init(logCfg); err != nil {
		return &UsageError{Err: err}
	}
	logger := logging.WithComponent("check")

	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Debug().Str("config", opts.ConfigPath).Msg("configuration loaded")

	formatter, err := createFormatter(opts, cfg, stdout)
	if err != nil {
		return &UsageError{Err: err}
	}

	a, err := analyzer.NewAnalyzer(cfg,
		analyzer.WithCheckFilter(opts.Checks),
		analyzer.WithLogger(logging.WithComponent("analyzer")),
	)
	if err != nil {
		return &UsageError{Err: err}
	}

	records, err := parser.Load(ctx, logPath)
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) || errors.Is(err, parser.ErrNoEntries) {
			_, _ = fmt.Fprintf(stdout, "FAIL: %v\n", err)
			return &ExitCodeError{Code: ExitError}
		}
		return fmt.Errorf("reading log: %w", err)
	}
	logger.Debug().Str("log", logPath).Int("entries", len(records)).Msg("log loaded")

	result, err := a.Analyze(ctx, records)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := output.NewReport(result, logPath, opts.ConfigPath)
	if err := formatter.Format(ctx, report, stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasIssues() {
		logger.Info().
			Int("checks_failed", report.Summary.ChecksFailed).
			Int("violations", report.Summary.TotalViolations).
			Msg("log failed validation")
		return &ExitCodeError{Code: ExitChecksFailed}
	}

	return nil
}

func createFormatter(opts *CheckOptions, cfg *config.Config, w io.Writer) (output.Formatter, error) {
	useColor, err := colorEnabled(opts.Color, w)
	if err != nil {
		return nil, err
	}

	formatOpts := output.FormatOptions{
		Quiet:          opts.Quiet,
		Color:          useColor,
		MaxDiagnostics: cfg.Report.MaxDiagnostics,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// colorEnabled resolves the --color mode. Auto colors only a terminal
// and honors NO_COLOR.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (use auto, always or never)", mode)
	}
}
