package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeUnavailable indicates the service is currently unavailable
	CodeUnavailable Code = "unavailable"

	// CodeNoActorAvailable indicates the invoking user controls no actor
	CodeNoActorAvailable Code = "no_actor_available"

	// CodeAmbiguousActor indicates the user controls several actors and selected none
	CodeAmbiguousActor Code = "ambiguous_actor"

	// CodeInvalidTarget indicates an attack aimed at the caster itself
	CodeInvalidTarget Code = "invalid_target"

	// CodeUndefinedVariable indicates a formula placeholder without a binding
	CodeUndefinedVariable Code = "undefined_variable"

	// CodeMalformedExpression indicates a formula that does not parse
	CodeMalformedExpression Code = "malformed_expression"

	// CodeDivisionByZero indicates a formula divided by zero
	CodeDivisionByZero Code = "division_by_zero"

	// CodeNoAuthorityAvailable indicates nobody could receive a state-mutating command
	CodeNoAuthorityAvailable Code = "no_authority_available"

	// CodeCancelled indicates the user backed out of a prompt or target selection
	CodeCancelled Code = "cancelled"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Keep the code of our own errors
	var tgErr *Error
	if errors.As(err, &tgErr) {
		return &Error{
			Code:    tgErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(tgErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// UndefinedVariable reports a placeholder that has no binding
func UndefinedVariable(name string) *Error {
	return Newf(CodeUndefinedVariable, "undefined variable %q", name).
		WithMeta("variable", name)
}

// MalformedExpressionf reports a formula syntax error
func MalformedExpressionf(format string, args ...any) *Error {
	return Newf(CodeMalformedExpression, format, args...)
}

// DivisionByZero reports a division by zero inside a formula
func DivisionByZero() *Error {
	return New(CodeDivisionByZero, "division by zero")
}

// NoAuthorityAvailable reports that a command could not reach the authority
func NoAuthorityAvailable(message string) *Error {
	return New(CodeNoAuthorityAvailable, message)
}

// Cancelled reports that the user cancelled the current step
func Cancelled(message string) *Error {
	return New(CodeCancelled, message)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var tgErr *Error
	if errors.As(err, &tgErr) {
		return tgErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsCancelled checks if the error is a cancellation
func IsCancelled(err error) bool {
	return Is(err, CodeCancelled)
}

// IsFormulaError reports whether err came out of the formula engine
func IsFormulaError(err error) bool {
	switch GetCode(err) {
	case CodeUndefinedVariable, CodeMalformedExpression, CodeDivisionByZero:
		return true
	}
	return false
}

// GetCode returns the error code
func GetCode(err error) Code {
	var tgErr *Error
	if errors.As(err, &tgErr) {
		return tgErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var tgErr *Error
	if errors.As(err, &tgErr) {
		return tgErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
