package core

import (
	"fmt"
)

// ExecutionError represents a structured error with category and details
type ExecutionError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: element_not_found, invalid_argument, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an ExecutionError with the same code.
// Copies made by WithCause, WithMessage and WithDetails still match the
// predefined error they were derived from.
func (e *ExecutionError) Is(target error) bool {
	t, ok := target.(*ExecutionError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause
func (e *ExecutionError) WithCause(cause error) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *ExecutionError) WithMessage(msg string) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *ExecutionError) WithDetails(details map[string]interface{}) *ExecutionError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors
var (
	// Argument errors are raised before any host interaction.
	ErrInvalidArgument = &ExecutionError{
		Category: ErrCategoryArgument,
		Code:     "invalid_argument",
		Message:  "required argument is nil",
	}

	// Config errors
	ErrMissingIdentifier = &ExecutionError{
		Category: ErrCategoryConfig,
		Code:     "missing_identifier",
		Message:  "no automation id declared for control",
	}
	ErrInvalidConfig = &ExecutionError{
		Category: ErrCategoryConfig,
		Code:     "invalid_config",
		Message:  "invalid configuration",
	}

	// Lookup errors
	ErrElementNotFound = &ExecutionError{
		Category: ErrCategoryNotFound,
		Code:     "element_not_found",
		Message:  "element not found",
	}
	ErrNoVisibleMatch = &ExecutionError{
		Category: ErrCategoryNotFound,
		Code:     "element_not_found",
		Message:  "no visible descendant matches",
	}

	// Availability errors reported by the host. Exists treats the first
	// two as "does not exist"; everything else propagates.
	ErrControlNotAvailable = &ExecutionError{
		Category: ErrCategoryUnavailable,
		Code:     "control_not_available",
		Message:  "control is no longer available",
	}
	ErrElementNotAvailable = &ExecutionError{
		Category: ErrCategoryUnavailable,
		Code:     "element_not_available",
		Message:  "element is no longer available",
	}
	ErrHostUnavailable = &ExecutionError{
		Category: ErrCategoryUnavailable,
		Code:     "host_unavailable",
		Message:  "automation host is not available",
	}
)

// NewExecutionError creates a new ExecutionError with the given parameters
func NewExecutionError(category ErrorCategory, code, message string) *ExecutionError {
	return &ExecutionError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// InvalidArgument returns ErrInvalidArgument naming the nil argument.
func InvalidArgument(name string) *ExecutionError {
	return ErrInvalidArgument.
		WithMessage(name + " must not be nil").
		WithDetails(map[string]interface{}{"argument": name})
}
