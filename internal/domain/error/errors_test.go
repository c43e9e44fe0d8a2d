package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrOutOfRange.Error() != "value out of range" {
		t.Errorf("ErrOutOfRange has unexpected message: %s", ErrOutOfRange.Error())
	}
	if ErrInvalidFormat.Error() != "invalid format" {
		t.Errorf("ErrInvalidFormat has unexpected message: %s", ErrInvalidFormat.Error())
	}
	if ErrNegativeDuration.Error() != "negative duration" {
		t.Errorf("ErrNegativeDuration has unexpected message: %s", ErrNegativeDuration.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"OutOfRange", ErrOutOfRange, 4001},
		{"InvalidFormat", ErrInvalidFormat, 4002},
		{"NegativeDuration", ErrNegativeDuration, 4003},
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"RangeError", NewRangeError("hours", 24, 0, 23), 4001},
		{"FormatError", NewFormatError("duration", "x", ""), 4002},
		{"NegativeDurationError", NewNegativeDurationError(100, 200), 4003},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", NewFormatError("time of day", "24", "")), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestRangeError(t *testing.T) {
	err := NewRangeError("minutes", 61, 0, 59)

	expectedErrMsg := "minutes 61 is out of range [0, 59]"
	if err.Error() != expectedErrMsg {
		t.Errorf("RangeError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("errors.Is(err, ErrOutOfRange) = false, want true")
	}
	if errors.Is(err, ErrInvalidFormat) {
		t.Errorf("errors.Is(err, ErrInvalidFormat) = true, want false")
	}
	if !IsRangeError(err) {
		t.Errorf("IsRangeError(err) = false, want true")
	}

	fields := LogFields(err)
	if fields["field"] != "minutes" || fields["error_code"] != CodeOutOfRange {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestNegativeDurationError(t *testing.T) {
	err := NewNegativeDurationError(100, 200)

	expectedErrMsg := "negative duration: 100ms - 200ms"
	if err.Error() != expectedErrMsg {
		t.Errorf("NegativeDurationError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// A negative duration is a range violation too
	if !IsRangeError(err) {
		t.Errorf("IsRangeError(err) = false, want true")
	}
	if !IsNegativeDurationError(err) {
		t.Errorf("IsNegativeDurationError(err) = false, want true")
	}
}

func TestFormatError(t *testing.T) {
	err := NewFormatError("time of day", "24:00:00", "hour must be 0-23")

	expectedErrMsg := `invalid time of day "24:00:00": hour must be 0-23`
	if err.Error() != expectedErrMsg {
		t.Errorf("FormatError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	bare := NewFormatError("duration", "", "")
	if bare.Error() != `invalid duration ""` {
		t.Errorf("FormatError.Error() = %s", bare.Error())
	}

	if !IsFormatError(fmt.Errorf("parse: %w", err)) {
		t.Errorf("IsFormatError(wrapped) = false, want true")
	}
	if IsRangeError(err) {
		t.Errorf("IsRangeError(err) = true, want false")
	}
}

func TestLogFieldsFallback(t *testing.T) {
	fields := LogFields(errors.New("boom"))
	if fields["error"] != "boom" {
		t.Errorf("fields[error] = %v, want boom", fields["error"])
	}
	if fields["error_code"] != CodeInternalServer {
		t.Errorf("fields[error_code] = %v, want %d", fields["error_code"], CodeInternalServer)
	}
}
