package entity

import (
	"strconv"
	"time"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
)

const timeOfDayKind = "time of day"

// TimeOfDay is a point on a 24-hour clock with millisecond resolution.
// The zero value is midnight.
type TimeOfDay struct {
	hours        uint8
	minutes      uint8
	seconds      uint8
	milliseconds uint16
}

// NewTimeOfDay validates every field; nothing is clamped
func NewTimeOfDay(hours, minutes, seconds uint8, milliseconds int16) (TimeOfDay, error) {
	if err := checkRange("hours", int64(hours), 0, 23); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange("minutes", int64(minutes), 0, 59); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange("seconds", int64(seconds), 0, 59); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkRange("milliseconds", int64(milliseconds), 0, 999); err != nil {
		return TimeOfDay{}, err
	}

	return TimeOfDay{
		hours:        hours,
		minutes:      minutes,
		seconds:      seconds,
		milliseconds: uint16(milliseconds),
	}, nil
}

// ParseTimeOfDay parses H[H][:M[M][:S[S][.F]]] with the hour limited to 0-23
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	fields, reason := splitClockString(s, 2)
	if reason != "" {
		return TimeOfDay{}, errs.NewFormatError(timeOfDayKind, s, reason)
	}

	// At most two ASCII digits
	hours, _ := strconv.ParseInt(fields.hours, 10, 64)
	if hours > 23 {
		return TimeOfDay{}, errs.NewFormatError(timeOfDayKind, s, "hours must be 0-23")
	}
	minutes, err := sexagesimal(timeOfDayKind, s, "minutes", fields.minutes)
	if err != nil {
		return TimeOfDay{}, err
	}
	seconds, err := sexagesimal(timeOfDayKind, s, "seconds", fields.seconds)
	if err != nil {
		return TimeOfDay{}, err
	}

	return TimeOfDay{
		hours:        uint8(hours),
		minutes:      uint8(minutes),
		seconds:      uint8(seconds),
		milliseconds: uint16(fractionToMilliseconds(fields.fraction)),
	}, nil
}

// TimeOfDayFromTime takes the wall-clock fields of t in its own location
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		hours:        uint8(t.Hour()),
		minutes:      uint8(t.Minute()),
		seconds:      uint8(t.Second()),
		milliseconds: uint16(t.Nanosecond() / int(time.Millisecond)),
	}
}

// fromMillisecondOfDay derives the fields of a value already reduced to [0, msPerDay)
func fromMillisecondOfDay(ms int64) TimeOfDay {
	return TimeOfDay{
		hours:        uint8((ms / msPerHour) % 24),
		minutes:      uint8((ms / msPerMinute) % 60),
		seconds:      uint8((ms / msPerSecond) % 60),
		milliseconds: uint16(ms % msPerSecond),
	}
}

// Hours returns the hour field, 0-23
func (t TimeOfDay) Hours() uint8 { return t.hours }

// Minutes returns the minute field, 0-59
func (t TimeOfDay) Minutes() uint8 { return t.minutes }

// Seconds returns the second field, 0-59
func (t TimeOfDay) Seconds() uint8 { return t.seconds }

// Milliseconds returns the millisecond field, 0-999
func (t TimeOfDay) Milliseconds() int16 { return int16(t.milliseconds) }

// MillisecondOfDay returns the number of milliseconds since midnight
func (t TimeOfDay) MillisecondOfDay() int64 {
	return int64(t.hours)*msPerHour +
		int64(t.minutes)*msPerMinute +
		int64(t.seconds)*msPerSecond +
		int64(t.milliseconds)
}

// WholeSeconds drops the millisecond field
func (t TimeOfDay) WholeSeconds() TimeOfDay {
	t.milliseconds = 0
	return t
}

// String returns HH:MM:SS
func (t TimeOfDay) String() string {
	return formatClock(2, int64(t.hours), int64(t.minutes), int64(t.seconds))
}

// Format returns HH:MM:SS, followed by .SSS when withMilliseconds is set
func (t TimeOfDay) Format(withMilliseconds bool) string {
	if !withMilliseconds {
		return t.String()
	}
	return t.String() + formatMilliseconds(int64(t.milliseconds))
}

// Compare orders by hours, then minutes, seconds and milliseconds
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.MillisecondOfDay(), other.MillisecondOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether all four fields match
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t == other
}

// Before reports whether t is earlier in the day than other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Compare(other) < 0
}

// After reports whether t is later in the day than other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Compare(other) > 0
}

// Plus moves forward by d, wrapping past midnight as many times as needed
func (t TimeOfDay) Plus(d Duration) TimeOfDay {
	ms := t.MillisecondOfDay() + d.milliseconds%msPerDay
	return fromMillisecondOfDay(ms % msPerDay)
}

// Minus moves backward by d, wrapping before midnight as many times as needed
func (t TimeOfDay) Minus(d Duration) TimeOfDay {
	ms := t.MillisecondOfDay() - d.milliseconds%msPerDay
	if ms < 0 {
		ms += msPerDay
	}
	return fromMillisecondOfDay(ms)
}
