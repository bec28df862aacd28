// Package errors provides categorized application errors for barline.
// Errors carry a category (argument, configuration, lifecycle, runtime) and
// optional remediation hints shown to the user by the CLI layer.
package errors

// ErrorCategory classifies an application error for display and exit-code
// selection.
type ErrorCategory int

const (
	// Argument indicates a bad value supplied by the caller
	Argument ErrorCategory = iota
	// Configuration indicates an invalid or unloadable configuration
	Configuration
	// Lifecycle indicates an API call made in the wrong state
	// (e.g. updating a progress bar after Finish)
	Lifecycle
	// Runtime indicates a failure during execution
	Runtime
)

// String returns the human-readable category name
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Lifecycle:
		return "Lifecycle Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// AppError is a categorized error with optional remediation steps.
type AppError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	Err         error
}

// Error returns the error message
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error, if any
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument category error
func NewArgumentError(message string, remediation ...string) *AppError {
	return &AppError{Category: Argument, Message: message, Remediation: remediation}
}

// NewConfigError creates a Configuration category error
func NewConfigError(message string, remediation ...string) *AppError {
	return &AppError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewLifecycleError creates a Lifecycle category error
func NewLifecycleError(message string, remediation ...string) *AppError {
	return &AppError{Category: Lifecycle, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime category error
func NewRuntimeError(message string, remediation ...string) *AppError {
	return &AppError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap wraps an existing error with a category and remediation hints.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps an existing error with a category and a new message.
// Returns nil if err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
		Err:         err,
	}
}
