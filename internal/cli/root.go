// Package cli provides the command-line interface for camcheck.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/camcheck/internal/cli/commands"
)

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args, writing the report to stdout and
// errors to stderr, and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return commands.ExitPass
	}

	// Outcome already reported by the command
	var exitErr *commands.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

	var usageErr *commands.UsageError
	if errors.As(err, &usageErr) {
		if cmd == nil {
			cmd = rootCmd
		}
		_, _ = fmt.Fprint(stdout, cmd.UsageString())
	}
	return commands.ExitError
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewCheckCommand()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &commands.UsageError{Err: err}
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewChecksCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
