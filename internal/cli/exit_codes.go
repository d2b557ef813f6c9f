package cli

import (
	"errors"
	"fmt"

	errs "github.com/willowhq/willowcheck/internal/errors"
)

// Exit codes for the willowcheck CLI. These support programmatic
// composition and CI integration.
const (
	// ExitSuccess indicates all records validated clean.
	ExitSuccess = 0
	// ExitValidationFailed indicates validation findings were reported.
	ExitValidationFailed = 1
	// ExitInputError indicates a missing or unparseable input file.
	ExitInputError = 2
	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3
)

// exitError carries a bare exit code through cobra's error path when the
// command already printed its own output.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates an error that maps to the given exit code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	var cliErr *errs.CLIError
	if errors.As(err, &cliErr) {
		switch cliErr.Category {
		case errs.Argument:
			return ExitInvalidArguments
		case errs.Input, errs.Parse:
			return ExitInputError
		}
	}
	return ExitValidationFailed
}
