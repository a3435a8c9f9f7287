// Package errors provides structured error types for procpuppet.
//
// The fixture has a deliberately small error surface: everything that can go
// wrong before the run starts is a validation failure (conflicting modes,
// negative durations, a bad or unknown flag) and terminates the process with
// status 1. A requested help screen is not a failure at all, and the injected
// crash never surfaces as an error value because the process dies mid-flight.
// The types here encode that taxonomy and give main a single place to turn an
// error into an exit status.
package errors

import "fmt"

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeInternal   ErrorType = "internal"
)

// Error codes for the validation family.
const (
	CodeConflictingModes = "CONFLICTING_MODES"
	CodeNegativeSeconds  = "NEGATIVE_SECONDS"
	CodeBadFlag          = "BAD_FLAG"
)

// PuppetError is the base error type for all procpuppet errors
type PuppetError struct {
	Type       ErrorType
	Code       string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *PuppetError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Type, e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s (%s): %s", e.Type, e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *PuppetError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches another error
func (e *PuppetError) Is(target error) bool {
	if t, ok := target.(*PuppetError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithUnderlying returns a copy of e that carries cause as the underlying
// error. The receiver is left untouched, so the predefined instances stay
// clean for errors.Is comparisons.
func (e *PuppetError) WithUnderlying(cause error) *PuppetError {
	derived := *e
	derived.Underlying = cause
	return &derived
}

// Common error constructors

// Validation creates a validation error
func Validation(code, message string, underlying error) *PuppetError {
	return &PuppetError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		Underlying: underlying,
	}
}

// Internal creates an internal error
func Internal(code, message string, underlying error) *PuppetError {
	return &PuppetError{
		Type:       ErrorTypeInternal,
		Code:       code,
		Message:    message,
		Underlying: underlying,
	}
}

// Predefined error instances

var (
	ErrConflictingModes = Validation(CodeConflictingModes, "invalid arguments: '-d' and '-f' used together", nil)
	ErrNegativeSeconds  = Validation(CodeNegativeSeconds, "invalid arguments: seconds must not be negative", nil)
	ErrBadFlag          = Validation(CodeBadFlag, "invalid arguments", nil)
)

// IsType checks if an error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if puppetErr, ok := err.(*PuppetError); ok {
		return puppetErr.Type == errorType
	}
	return false
}

// IsCode checks if an error has a specific code
func IsCode(err error, code string) bool {
	if puppetErr, ok := err.(*PuppetError); ok {
		return puppetErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) string {
	if puppetErr, ok := err.(*PuppetError); ok {
		return puppetErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetType extracts the error type from an error
func GetType(err error) ErrorType {
	if puppetErr, ok := err.(*PuppetError); ok {
		return puppetErr.Type
	}
	return ErrorTypeInternal
}

// ExitCode maps an error to the process exit status. Help is handled before
// an error value ever exists, and the crash path never returns, so the whole
// taxonomy collapses to: no error means 0, anything else means 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
