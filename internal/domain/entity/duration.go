package entity

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
)

const durationKind = "duration"

// TimeUnit selects the scale of a raw duration value
type TimeUnit int

// Supported time units
const (
	Millisecond TimeUnit = iota
	Second
	Minute
	Hour
)

// factor returns the number of milliseconds in one unit
func (u TimeUnit) factor() (int64, bool) {
	switch u {
	case Millisecond:
		return 1, true
	case Second:
		return msPerSecond, true
	case Minute:
		return msPerMinute, true
	case Hour:
		return msPerHour, true
	default:
		return 0, false
	}
}

// String returns the unit's short symbol
func (u TimeUnit) String() string {
	switch u {
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	case Minute:
		return "m"
	case Hour:
		return "h"
	default:
		return "TimeUnit(" + strconv.Itoa(int(u)) + ")"
	}
}

// ParseTimeUnit accepts a unit symbol or name such as "s", "sec" or "seconds"
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ms", "millisecond", "milliseconds":
		return Millisecond, nil
	case "s", "sec", "second", "seconds":
		return Second, nil
	case "m", "min", "minute", "minutes":
		return Minute, nil
	case "h", "hour", "hours":
		return Hour, nil
	default:
		return 0, errs.NewFormatError("time unit", s, "expected ms, s, m or h")
	}
}

// Duration is a non-negative span of time with millisecond resolution.
// The zero value is a zero-length duration.
type Duration struct {
	milliseconds int64
}

// NewDuration builds a duration from its components.
// Hours are unbounded; minutes and seconds must be 0-59 and milliseconds 0-999.
func NewDuration(hours int64, minutes, seconds uint8, milliseconds int16) (Duration, error) {
	if err := checkRange("hours", hours, 0, maxDurationHours); err != nil {
		return Duration{}, err
	}
	if err := checkRange("minutes", int64(minutes), 0, 59); err != nil {
		return Duration{}, err
	}
	if err := checkRange("seconds", int64(seconds), 0, 59); err != nil {
		return Duration{}, err
	}
	if err := checkRange("milliseconds", int64(milliseconds), 0, 999); err != nil {
		return Duration{}, err
	}

	total, err := totalMilliseconds(hours, int64(minutes), int64(seconds), int64(milliseconds))
	if err != nil {
		return Duration{}, err
	}
	return Duration{milliseconds: total}, nil
}

// DurationFromMilliseconds wraps a raw millisecond count
func DurationFromMilliseconds(milliseconds int64) (Duration, error) {
	if err := checkRange("milliseconds", milliseconds, 0, math.MaxInt64); err != nil {
		return Duration{}, err
	}
	return Duration{milliseconds: milliseconds}, nil
}

// DurationOf scales value by unit
func DurationOf(value int64, unit TimeUnit) (Duration, error) {
	factor, ok := unit.factor()
	if !ok {
		return Duration{}, errs.NewRangeError("unit", int64(unit), int64(Millisecond), int64(Hour))
	}
	if err := checkRange("value", value, 0, math.MaxInt64/factor); err != nil {
		return Duration{}, err
	}
	return Duration{milliseconds: value * factor}, nil
}

// ParseDuration parses H+[:M[:S[.F]]]; the hour group may exceed 23
func ParseDuration(s string) (Duration, error) {
	fields, reason := splitClockString(s, 0)
	if reason != "" {
		return Duration{}, errs.NewFormatError(durationKind, s, reason)
	}

	hours, err := strconv.ParseInt(fields.hours, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Duration{}, errs.NewFormatError(durationKind, s, err.Error())
	}
	// ParseInt saturates on overflow, which totalMilliseconds reports as a range error
	minutes, err := sexagesimal(durationKind, s, "minutes", fields.minutes)
	if err != nil {
		return Duration{}, err
	}
	seconds, err := sexagesimal(durationKind, s, "seconds", fields.seconds)
	if err != nil {
		return Duration{}, err
	}

	total, err := totalMilliseconds(hours, minutes, seconds, fractionToMilliseconds(fields.fraction))
	if err != nil {
		return Duration{}, err
	}
	return Duration{milliseconds: total}, nil
}

// Milliseconds returns the total length in milliseconds
func (d Duration) Milliseconds() int64 {
	return d.milliseconds
}

// Seconds returns the total length in whole seconds, truncating
func (d Duration) Seconds() int64 {
	return d.milliseconds / msPerSecond
}

// Std converts the duration to a time.Duration, saturating at its maximum
func (d Duration) Std() time.Duration {
	if d.milliseconds > int64(math.MaxInt64/time.Millisecond) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d.milliseconds) * time.Millisecond
}

// IsZero reports whether the duration is zero-length
func (d Duration) IsZero() bool {
	return d.milliseconds == 0
}

// String returns H:MM:SS; the hour field is neither padded nor wrapped
func (d Duration) String() string {
	return formatClock(1, d.milliseconds/msPerHour, (d.milliseconds/msPerMinute)%60, (d.milliseconds/msPerSecond)%60)
}

// Format returns H:MM:SS, followed by .SSS when withMilliseconds is set
func (d Duration) Format(withMilliseconds bool) string {
	if !withMilliseconds {
		return d.String()
	}
	return d.String() + formatMilliseconds(d.milliseconds%msPerSecond)
}

// Compare returns -1, 0 or +1 as d is shorter than, equal to or longer than other
func (d Duration) Compare(other Duration) int {
	switch {
	case d.milliseconds < other.milliseconds:
		return -1
	case d.milliseconds > other.milliseconds:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both durations have the same length
func (d Duration) Equal(other Duration) bool {
	return d.milliseconds == other.milliseconds
}

// Less reports whether d is shorter than other
func (d Duration) Less(other Duration) bool {
	return d.milliseconds < other.milliseconds
}

// Add returns the sum of both durations
func (d Duration) Add(other Duration) Duration {
	return Duration{milliseconds: d.milliseconds + other.milliseconds}
}

// Sub returns d minus other. It fails instead of clamping when other is longer than d.
func (d Duration) Sub(other Duration) (Duration, error) {
	if other.milliseconds > d.milliseconds {
		return Duration{}, errs.NewNegativeDurationError(d.milliseconds, other.milliseconds)
	}
	return Duration{milliseconds: d.milliseconds - other.milliseconds}, nil
}
