package commands

import "fmt"

// Process exit codes.
const (
	ExitPass         = 0 // every check passed
	ExitChecksFailed = 1 // at least one check reported a violation
	ExitError        = 2 // usage, parse, config or I/O error
)

// UsageError reports a malformed command line. The root command prints
// usage to stdout when it sees one.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCodeError carries an outcome the command has already reported.
// Nothing more is printed for it.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
