package usecase

// TimeResult is the standardized representation of a computed time of day
type TimeResult struct {
	Time         string `json:"time"` // HH:MM:SS or HH:MM:SS.SSS
	Hours        uint8  `json:"hours"`
	Minutes      uint8  `json:"minutes"`
	Seconds      uint8  `json:"seconds"`
	Milliseconds int16  `json:"milliseconds"`
}

// DurationResult is the standardized representation of a computed duration
type DurationResult struct {
	Duration     string `json:"duration"` // H:MM:SS or H:MM:SS.SSS
	Milliseconds int64  `json:"totalMilliseconds"`
	Seconds      int64  `json:"totalSeconds"`
}

// Calculator defines the operations exposed over the time-of-day and duration types.
// Every string argument uses the textual grammar of the corresponding type.
type Calculator interface {
	// NormalizeTime parses a time of day and returns its canonical form
	NormalizeTime(value string, withMilliseconds bool) (*TimeResult, error)

	// NormalizeDuration parses a duration and returns its canonical form
	NormalizeDuration(value string, withMilliseconds bool) (*DurationResult, error)

	// PlusTime moves a time of day forward by a duration, wrapping past midnight
	PlusTime(timeOfDay, duration string, withMilliseconds bool) (*TimeResult, error)

	// MinusTime moves a time of day backward by a duration, wrapping before midnight
	MinusTime(timeOfDay, duration string, withMilliseconds bool) (*TimeResult, error)

	// AddDurations sums two durations
	AddDurations(a, b string, withMilliseconds bool) (*DurationResult, error)

	// SubtractDurations returns a minus b; fails when b is longer than a
	SubtractDurations(a, b string, withMilliseconds bool) (*DurationResult, error)

	// CompareTimes returns -1, 0 or +1
	CompareTimes(a, b string) (int, error)

	// CompareDurations returns -1, 0 or +1
	CompareDurations(a, b string) (int, error)

	// Now returns the current time of day from the time provider
	Now(withMilliseconds bool) *TimeResult
}
