// Package errors carries the coded errors the t-test engine and its
// adapters return. Every failure a caller can act on has a Code; match it
// with errors.Is against the sentinels rather than by message.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code classifies an AppError
type Code string

const (
	CodeUnknown       Code = "UNKNOWN"
	CodeConfigInvalid Code = "CONFIG_INVALID"
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeInvalidInput  Code = "INVALID_INPUT" // samples or parameters a test cannot accept
	CodeNumeric       Code = "NUMERIC_ERROR" // statistic undefined, e.g. zero variance
)

// Sentinels for errors.Is checks
var (
	ErrConfigInvalid = newf(CodeConfigInvalid, "invalid configuration")
	ErrInvalidInput  = newf(CodeInvalidInput, "invalid input")
	ErrNumeric       = newf(CodeNumeric, "numeric error")
)

// AppError is an error with a Code and an optional cause
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError with the same code
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func newf(code Code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ConfigInvalid reports a configuration value that failed validation
func ConfigInvalid(format string, args ...interface{}) *AppError {
	return newf(CodeConfigInvalid, format, args...)
}

// InvalidInput reports sample shapes or parameters the requested test cannot accept
func InvalidInput(format string, args ...interface{}) *AppError {
	return newf(CodeInvalidInput, format, args...)
}

// Numeric reports a computation whose result is undefined, such as a
// division by a zero or non-finite variance.
func Numeric(format string, args ...interface{}) *AppError {
	return newf(CodeNumeric, format, args...)
}

// Wrap adds context to err. The code of the innermost AppError is kept;
// anything else becomes an internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: codeOr(err, CodeInternalError), Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the first AppError in err's chain, or CodeUnknown
func GetCode(err error) Code {
	return codeOr(err, CodeUnknown)
}

func codeOr(err error, fallback Code) Code {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return fallback
}
