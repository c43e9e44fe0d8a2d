package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
)

// Millisecond factors shared by Duration and TimeOfDay
const (
	msPerSecond int64 = 1000
	msPerMinute int64 = 60 * msPerSecond
	msPerHour   int64 = 60 * msPerMinute
	msPerDay    int64 = 24 * msPerHour
)

// maxDurationHours is the largest hour count whose millisecond total fits in an int64
const maxDurationHours = math.MaxInt64 / msPerHour

// MaxFractionDigits is the number of digits allowed after the seconds group
const MaxFractionDigits = 3

// clockFields holds the raw digit groups of an H[:M[:S[.F]]] string
type clockFields struct {
	hours    string
	minutes  string
	seconds  string
	fraction string
}

// splitClockString tokenizes s into its digit groups.
// maxHourDigits of zero means the hour group is unbounded.
// On failure the returned string describes the first deviation.
func splitClockString(s string, maxHourDigits int) (clockFields, string) {
	var f clockFields
	rest := s

	digits := func() string {
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		d := rest[:n]
		rest = rest[n:]
		return d
	}

	f.hours = digits()
	if f.hours == "" {
		return f, "expected hour digits"
	}
	if maxHourDigits > 0 && len(f.hours) > maxHourDigits {
		return f, fmt.Sprintf("hour group has more than %d digits", maxHourDigits)
	}

	groups := 1
	for _, group := range []struct {
		name string
		dst  *string
	}{
		{"minute", &f.minutes},
		{"second", &f.seconds},
	} {
		if !strings.HasPrefix(rest, ":") {
			break
		}
		rest = rest[1:]
		*group.dst = digits()
		if len(*group.dst) == 0 || len(*group.dst) > 2 {
			return f, fmt.Sprintf("%s group must have 1 or 2 digits", group.name)
		}
		groups++
	}

	if strings.HasPrefix(rest, ".") {
		if groups < 3 {
			return f, "milliseconds require minute and second groups"
		}
		rest = rest[1:]
		f.fraction = digits()
		if len(f.fraction) == 0 || len(f.fraction) > MaxFractionDigits {
			return f, fmt.Sprintf("fraction group must have 1 to %d digits", MaxFractionDigits)
		}
	}

	if rest != "" {
		return f, fmt.Sprintf("unexpected %q", rest)
	}
	return f, ""
}

// sexagesimal converts a minute or second group, rejecting values above 59
func sexagesimal(kind, input, name, group string) (int64, error) {
	if group == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(group, 10, 64)
	if err != nil {
		return 0, errs.NewFormatError(kind, input, err.Error())
	}
	if v > 59 {
		return 0, errs.NewFormatError(kind, input, fmt.Sprintf("%s must be 0-59", name))
	}
	return v, nil
}

// fractionToMilliseconds reads a fraction group as fractional seconds: "5" is 500ms, "005" is 5ms
func fractionToMilliseconds(fraction string) int64 {
	if fraction == "" {
		return 0
	}
	padded := fraction + strings.Repeat("0", MaxFractionDigits-len(fraction))
	// At most three ASCII digits, cannot fail
	v, _ := strconv.ParseInt(padded, 10, 64)
	return v
}

// totalMilliseconds combines validated components, reporting int64 overflow as a range error
func totalMilliseconds(hours, minutes, seconds, milliseconds int64) (int64, error) {
	if hours > maxDurationHours {
		return 0, errs.NewRangeError("hours", hours, 0, maxDurationHours)
	}
	rest := minutes*msPerMinute + seconds*msPerSecond + milliseconds
	if hours*msPerHour > math.MaxInt64-rest {
		return 0, errs.NewRangeError("hours", hours, 0, maxDurationHours-1)
	}
	return hours*msPerHour + rest, nil
}

// checkRange returns a RangeError when value is outside [min, max]
func checkRange(field string, value, min, max int64) error {
	if value < min || value > max {
		return errs.NewRangeError(field, value, min, max)
	}
	return nil
}

// formatClock renders h:MM:SS with the hour padded to hourWidth digits
func formatClock(hourWidth int, hours, minutes, seconds int64) string {
	return fmt.Sprintf("%0*d:%02d:%02d", hourWidth, hours, minutes, seconds)
}

// formatMilliseconds renders the .SSS suffix
func formatMilliseconds(milliseconds int64) string {
	return fmt.Sprintf(".%03d", milliseconds)
}
