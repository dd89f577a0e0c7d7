package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or malformed arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested board, list or task does not exist.
	ExitNotFound = 3

	// ExitValidation indicates input that failed validation, including
	// reorders that are not a complete permutation.
	ExitValidation = 5
)

// CommandError carries the process exit code of a failed command.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCodeFor maps the error taxonomy onto exit codes.
func ExitCodeFor(err error) int {
	var exitErr *CommandError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// errorCode is the machine-readable code printed in JSON error output.
func errorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "STORE_ERROR"
	}
}

// UsageError reports malformed command-line input.
func UsageError(format string, args ...any) error {
	return &CommandError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}
