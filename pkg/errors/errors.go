package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPartial      ErrorCode = "PARTIAL"

	// Scope and privilege errors
	ErrScopeInvalid  ErrorCode = "SCOPE_INVALID"
	ErrAuthorization ErrorCode = "AUTHORIZATION"

	// Environment store errors
	ErrStoreAccess      ErrorCode = "STORE_ACCESS"
	ErrStoreUnsupported ErrorCode = "STORE_UNSUPPORTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// PathctlError represents a structured error with code and details
type PathctlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathctlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathctlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathctlError) Is(target error) bool {
	var targetErr *PathctlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathctlError with the given code and message
func New(code ErrorCode, message string) *PathctlError {
	return &PathctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathctlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathctlError {
	return &PathctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathctlError
func Wrap(err error, code ErrorCode, message string) *PathctlError {
	if err == nil {
		return nil
	}
	return &PathctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathctlError {
	if err == nil {
		return nil
	}
	return &PathctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathctlError) WithDetail(key string, value interface{}) *PathctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PathctlError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathctlError
func GetErrorCode(err error) ErrorCode {
	var perr *PathctlError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}
