// Package errors provides structured error handling for the relnext CLI.
// It includes categorized errors with actionable remediation guidance.
// Every error at this layer is fatal for the current lifecycle hook; there
// is no retry and no partial recovery.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Configuration errors are caused by invalid or missing configuration,
	// such as zero registered previous-version providers.
	Configuration ErrorCategory = iota
	// Data errors occur when required release data is absent: no previous
	// version could be found, or the pending section has no changes.
	Data
	// Parse errors are caused by a malformed Changes file or version string.
	Parse
	// IO errors occur while reading or rewriting the changelog file.
	IO
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Configuration:
		return "Configuration Error"
	case Data:
		return "Data Error"
	case Parse:
		return "Parse Error"
	case IO:
		return "I/O Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Configuration, Data, Parse, IO).
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewDataError creates a new data-absence error.
func NewDataError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Data,
		Message:     message,
		Remediation: remediation,
	}
}

// NewParseError creates a new parse error.
func NewParseError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Parse,
		Message:     message,
		Remediation: remediation,
	}
}

// NewIOError creates a new I/O error.
func NewIOError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    IO,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// IsCLIError checks if an error is a CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
