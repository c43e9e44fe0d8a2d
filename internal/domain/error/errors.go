package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest   = 4000
	CodeOutOfRange       = 4001
	CodeInvalidFormat    = 4002
	CodeNegativeDuration = 4003

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrOutOfRange is returned when a numeric field or derived total violates its bound
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a string does not match the required grammar
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNegativeDuration is returned when an operation would produce a negative duration
	ErrNegativeDuration = errors.New("negative duration")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	// Negative durations are also range errors, so check them first
	case errors.Is(err, ErrNegativeDuration):
		return CodeNegativeDuration
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, ErrInvalidFormat):
		return CodeInvalidFormat
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// RangeError describes a field that falls outside [Min, Max]
type RangeError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

// Error implements the error interface for RangeError
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Is checks if the target error is an ErrOutOfRange
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LogFields returns a map of fields for structured logging
func (e *RangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "range_error",
		"field":      e.Field,
		"value":      e.Value,
		"min":        e.Min,
		"max":        e.Max,
		"error_code": CodeOutOfRange,
	}
}

// NewRangeError creates a new range error for the named field
func NewRangeError(field string, value, min, max int64) error {
	return &RangeError{
		Field: field,
		Value: value,
		Min:   min,
		Max:   max,
	}
}

// NegativeDurationError is returned when subtracting a longer duration from a shorter one
type NegativeDurationError struct {
	Minuend    int64 // milliseconds
	Subtrahend int64 // milliseconds
}

// Error implements the error interface
func (e *NegativeDurationError) Error() string {
	return fmt.Sprintf("negative duration: %dms - %dms", e.Minuend, e.Subtrahend)
}

// Is reports both ErrNegativeDuration and ErrOutOfRange
func (e *NegativeDurationError) Is(target error) bool {
	return target == ErrNegativeDuration || target == ErrOutOfRange
}

// LogFields returns a map of fields for structured logging
func (e *NegativeDurationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "negative_duration",
		"minuend":    e.Minuend,
		"subtrahend": e.Subtrahend,
		"error_code": CodeNegativeDuration,
	}
}

// NewNegativeDurationError creates a new negative duration error
func NewNegativeDurationError(minuend, subtrahend int64) error {
	return &NegativeDurationError{
		Minuend:    minuend,
		Subtrahend: subtrahend,
	}
}

// FormatError describes an input string rejected by a parser
type FormatError struct {
	Kind   string // what was being parsed, e.g. "time of day"
	Input  string
	Reason string
}

// Error implements the error interface for FormatError
func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}

// Is checks if the target error is an ErrInvalidFormat
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// LogFields returns a map of fields for structured logging
func (e *FormatError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "format_error",
		"kind":       e.Kind,
		"input":      e.Input,
		"reason":     e.Reason,
		"error_code": CodeInvalidFormat,
	}
}

// NewFormatError creates a new format error
func NewFormatError(kind, input, reason string) error {
	return &FormatError{
		Kind:   kind,
		Input:  input,
		Reason: reason,
	}
}

// LogFields extracts structured logging fields from err when it provides them
func LogFields(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsRangeError checks if the error is any out-of-range error
func IsRangeError(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsFormatError checks if the error is a format error
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsNegativeDurationError checks if the error is a negative duration error
func IsNegativeDurationError(err error) bool {
	return errors.Is(err, ErrNegativeDuration)
}
