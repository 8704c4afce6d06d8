package cli

import "fmt"

// Exit codes for the relnext CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates a fatal lifecycle, parse or configuration error.
	ExitFailure = 1

	// ExitDirty indicates `munge --check` found changes it would apply.
	ExitDirty = 2

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3
)

// ExitError carries a specific process exit code through cobra's error
// return path. Commands that raise it are responsible for printing their
// own diagnostics first.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
