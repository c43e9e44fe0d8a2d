package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDuration(t *testing.T, ms int64) Duration {
	t.Helper()
	d, err := DurationFromMilliseconds(ms)
	require.NoError(t, err)
	return d
}

func TestNewDuration(t *testing.T) {
	t.Run("Valid components", func(t *testing.T) {
		testCases := []struct {
			hours           int64
			minutes         uint8
			seconds         uint8
			milliseconds    int16
			expectedSeconds int64
		}{
			{5, 12, 0, 0, 5*3600 + 12*60},
			{156, 41, 0, 0, 156*3600 + 41*60},
			{0, 55, 0, 0, 55 * 60},
			{5, 12, 13, 0, 5*3600 + 12*60 + 13},
			{156, 41, 21, 0, 156*3600 + 41*60 + 21},
			{0, 55, 55, 999, 55*60 + 55},
		}

		for _, tc := range testCases {
			d, err := NewDuration(tc.hours, tc.minutes, tc.seconds, tc.milliseconds)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedSeconds, d.Seconds())
		}
	})

	t.Run("Out of range components", func(t *testing.T) {
		testCases := []struct {
			description  string
			hours        int64
			minutes      uint8
			seconds      uint8
			milliseconds int16
		}{
			{"Negative hours", -5, 12, 0, 0},
			{"Minutes above 59", 12, 61, 0, 0},
			{"Minutes far above 59", 5, 111, 5, 0},
			{"Seconds above 59", 51, 49, 125, 0},
			{"Negative milliseconds", 1, 0, 0, -1},
			{"Milliseconds above 999", 1, 0, 0, 1000},
			{"Hours overflow", math.MaxInt64, 0, 0, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := NewDuration(tc.hours, tc.minutes, tc.seconds, tc.milliseconds)
				assert.ErrorIs(t, err, errs.ErrOutOfRange)
			})
		}
	})

	t.Run("Largest representable hour count", func(t *testing.T) {
		d, err := NewDuration(maxDurationHours, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, maxDurationHours*msPerHour, d.Milliseconds())

		_, err = NewDuration(maxDurationHours, 59, 59, 999)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})
}

func TestDurationFromMilliseconds(t *testing.T) {
	for _, ms := range []int64{-5, -12021002, -1} {
		_, err := DurationFromMilliseconds(ms)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	}

	for _, ms := range []int64{0, 1, 156, 55555, math.MaxInt64} {
		d, err := DurationFromMilliseconds(ms)
		assert.NoError(t, err)
		assert.Equal(t, ms, d.Milliseconds())
		assert.Equal(t, ms/1000, d.Seconds())
	}
}

func TestDurationOf(t *testing.T) {
	testCases := []struct {
		value    int64
		unit     TimeUnit
		expected int64
	}{
		{7, Millisecond, 7},
		{7, Second, 7000},
		{7, Minute, 420000},
		{7, Hour, 25200000},
		{0, Hour, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.unit.String(), func(t *testing.T) {
			d, err := DurationOf(tc.value, tc.unit)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, d.Milliseconds())
		})
	}

	t.Run("Negative value", func(t *testing.T) {
		_, err := DurationOf(-1, Second)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})

	t.Run("Unknown unit", func(t *testing.T) {
		_, err := DurationOf(1, TimeUnit(42))
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := DurationOf(math.MaxInt64, Hour)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})
}

func TestParseTimeUnit(t *testing.T) {
	for input, expected := range map[string]TimeUnit{
		"ms": Millisecond, "s": Second, "Seconds": Second,
		"min": Minute, "h": Hour, " hours ": Hour,
	} {
		unit, err := ParseTimeUnit(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, unit, input)
	}

	_, err := ParseTimeUnit("fortnight")
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestParseDuration(t *testing.T) {
	t.Run("Valid strings", func(t *testing.T) {
		testCases := []struct {
			input           string
			expectedSeconds int64
		}{
			{"0", 0},
			{"15", 15 * 3600},
			{"15:12", 15*3600 + 12*60},
			{"125:12", 125*3600 + 12*60},
			{"15:59:59", 15*3600 + 59*60 + 59},
			{"125:1:52", 125*3600 + 1*60 + 52},
			{"56:01:05", 56*3600 + 1*60 + 5},
			{"25:14:03", 25*3600 + 14*60 + 3},
			{"0025:14:03", 25*3600 + 14*60 + 3},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				d, err := ParseDuration(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedSeconds, d.Seconds())
			})
		}
	})

	t.Run("Fractional seconds", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"0:00:01.5", 1500},
			{"0:00:01.05", 1050},
			{"0:00:01.005", 1005},
			{"0:00:00.000", 0},
			{"1:02:03.456", 3723456},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				d, err := ParseDuration(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, d.Milliseconds())
			})
		}
	})

	t.Run("Invalid strings", func(t *testing.T) {
		testCases := []string{
			"",
			"15.2.2",
			"safas",
			"15:124",
			"-14:12:12",
			"1:23,42",
			"22:69:12",
			"1:59:123",
			"12:-1:-5",
			"12:12:12:12",
			"145:145",
			"1:2.5",
			"1:02:03.",
			"1:02:03.4567",
			" 1:02",
			"1:02 ",
			"1:",
			":30",
		}

		for _, input := range testCases {
			t.Run(input, func(t *testing.T) {
				_, err := ParseDuration(input)
				assert.ErrorIs(t, err, errs.ErrInvalidFormat)
			})
		}
	})

	t.Run("Hour group too large", func(t *testing.T) {
		_, err := ParseDuration("99999999999999999999999")
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
		assert.NotErrorIs(t, err, errs.ErrInvalidFormat)
	})
}

func TestDurationString(t *testing.T) {
	testCases := []struct {
		seconds  int64
		expected string
	}{
		{121, "0:02:01"},
		{1, "0:00:01"},
		{6*3600 + 45*60 + 15, "6:45:15"},
		{126*3600 + 45*60 + 15, "126:45:15"},
		{1*3600 + 5*60 + 59, "1:05:59"},
		{89*3600 + 2*60 + 12, "89:02:12"},
		{6*3600 + 35*60 + 1, "6:35:01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			d, err := DurationOf(tc.seconds, Second)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
			assert.Equal(t, tc.expected+".000", d.Format(true))
			assert.Equal(t, tc.expected, d.Format(false))
		})
	}

	d, err := NewDuration(125, 7, 9, 42)
	require.NoError(t, err)
	assert.Equal(t, "125:07:09.042", d.Format(true))
}

func TestDurationRoundTrip(t *testing.T) {
	for _, input := range []string{"0", "7", "125:1:52", "1:2:3.4", "48:00:00.05", "0:59:59.999"} {
		t.Run(input, func(t *testing.T) {
			parsed, err := ParseDuration(input)
			require.NoError(t, err)

			reparsed, err := ParseDuration(parsed.Format(true))
			require.NoError(t, err)
			assert.True(t, parsed.Equal(reparsed))
		})
	}

	d, err := NewDuration(3, 4, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, "3:04:05.006", d.Format(true))
}

func TestDurationComparisons(t *testing.T) {
	testCases := []struct {
		a, b     int64
		expected int
	}{
		{121, 125, -1},
		{1, 145, -1},
		{1259812, 888, 1},
		{2, 1, 1},
		{2, 2, 0},
		{551, 551, 0},
	}

	for _, tc := range testCases {
		a, b := mustDuration(t, tc.a), mustDuration(t, tc.b)
		assert.Equal(t, tc.expected, a.Compare(b))
		assert.Equal(t, -tc.expected, b.Compare(a))
		assert.Equal(t, tc.expected == 0, a.Equal(b))
		assert.Equal(t, tc.expected < 0, a.Less(b))
	}

	t.Run("Transitivity", func(t *testing.T) {
		x, y, z := mustDuration(t, 1), mustDuration(t, 2), mustDuration(t, 3)
		assert.True(t, x.Less(y) && y.Less(z) && x.Less(z))
	})
}

func TestDurationAdd(t *testing.T) {
	testCases := []struct {
		a, b, expected int64
	}{
		{121, 125, 121 + 125},
		{1, 145, 1 + 145},
		{1259812, 888, 1259812 + 888},
		{2, 1, 3},
		{0, 0, 0},
	}

	for _, tc := range testCases {
		sum := mustDuration(t, tc.a).Add(mustDuration(t, tc.b))
		assert.Equal(t, tc.expected, sum.Milliseconds())
	}

	t.Run("Zero is the identity", func(t *testing.T) {
		d := mustDuration(t, 98765)
		assert.True(t, d.Add(Duration{}).Equal(d))
		assert.True(t, Duration{}.Add(d).Equal(d))
	})
}

func TestDurationSub(t *testing.T) {
	testCases := []struct {
		a, b, expected int64
	}{
		{121, 120, 1},
		{1, 0, 1},
		{1, 1, 0},
		{1259812, 888, 1259812 - 888},
		{251, 41, 210},
		{0, 0, 0},
	}

	for _, tc := range testCases {
		diff, err := mustDuration(t, tc.a).Sub(mustDuration(t, tc.b))
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, diff.Milliseconds())
	}

	t.Run("Negative result", func(t *testing.T) {
		for _, pair := range [][2]int64{{100, 200}, {121, 125}, {1, 55}, {1259812, 8979891}, {0, 1}} {
			_, err := mustDuration(t, pair[0]).Sub(mustDuration(t, pair[1]))
			assert.ErrorIs(t, err, errs.ErrOutOfRange)
			assert.ErrorIs(t, err, errs.ErrNegativeDuration)
		}
	})
}

func TestDurationStd(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, mustDuration(t, 1500).Std())
	assert.Equal(t, time.Duration(math.MaxInt64), mustDuration(t, math.MaxInt64).Std())
	assert.True(t, Duration{}.IsZero())
}
