package calculator

import (
	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
)

// Calculator implements the time-of-day and duration arithmetic use cases
type Calculator struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCalculator creates a new calculator use case instance
func NewCalculator(
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.Calculator {
	return &Calculator{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// NormalizeTime parses a time of day and returns its canonical form
func (c *Calculator) NormalizeTime(value string, withMilliseconds bool) (*usecase.TimeResult, error) {
	tod, err := c.parseTime("normalize_time", value)
	if err != nil {
		return nil, err
	}
	return c.timeResult("normalize_time", tod, withMilliseconds), nil
}

// NormalizeDuration parses a duration and returns its canonical form
func (c *Calculator) NormalizeDuration(value string, withMilliseconds bool) (*usecase.DurationResult, error) {
	d, err := c.parseDuration("normalize_duration", value)
	if err != nil {
		return nil, err
	}
	return c.durationResult("normalize_duration", d, withMilliseconds), nil
}

// PlusTime moves a time of day forward by a duration
func (c *Calculator) PlusTime(timeOfDay, duration string, withMilliseconds bool) (*usecase.TimeResult, error) {
	tod, d, err := c.parseTimeAndDuration("plus_time", timeOfDay, duration)
	if err != nil {
		return nil, err
	}
	return c.timeResult("plus_time", tod.Plus(d), withMilliseconds), nil
}

// MinusTime moves a time of day backward by a duration
func (c *Calculator) MinusTime(timeOfDay, duration string, withMilliseconds bool) (*usecase.TimeResult, error) {
	tod, d, err := c.parseTimeAndDuration("minus_time", timeOfDay, duration)
	if err != nil {
		return nil, err
	}
	return c.timeResult("minus_time", tod.Minus(d), withMilliseconds), nil
}

// AddDurations sums two durations
func (c *Calculator) AddDurations(a, b string, withMilliseconds bool) (*usecase.DurationResult, error) {
	da, db, err := c.parseDurations("add_durations", a, b)
	if err != nil {
		return nil, err
	}
	return c.durationResult("add_durations", da.Add(db), withMilliseconds), nil
}

// SubtractDurations returns a minus b
func (c *Calculator) SubtractDurations(a, b string, withMilliseconds bool) (*usecase.DurationResult, error) {
	da, db, err := c.parseDurations("subtract_durations", a, b)
	if err != nil {
		return nil, err
	}

	diff, err := da.Sub(db)
	if err != nil {
		c.rejected("subtract_durations", err)
		return nil, err
	}
	return c.durationResult("subtract_durations", diff, withMilliseconds), nil
}

// CompareTimes returns -1, 0 or +1
func (c *Calculator) CompareTimes(a, b string) (int, error) {
	ta, err := c.parseTime("compare_times", a)
	if err != nil {
		return 0, err
	}
	tb, err := c.parseTime("compare_times", b)
	if err != nil {
		return 0, err
	}
	return ta.Compare(tb), nil
}

// CompareDurations returns -1, 0 or +1
func (c *Calculator) CompareDurations(a, b string) (int, error) {
	da, db, err := c.parseDurations("compare_durations", a, b)
	if err != nil {
		return 0, err
	}
	return da.Compare(db), nil
}

// Now returns the current time of day
func (c *Calculator) Now(withMilliseconds bool) *usecase.TimeResult {
	return c.timeResult("now", entity.TimeOfDayFromTime(c.timeProvider.Now()), withMilliseconds)
}

func (c *Calculator) parseTime(operation, value string) (entity.TimeOfDay, error) {
	tod, err := entity.ParseTimeOfDay(value)
	if err != nil {
		c.rejected(operation, err)
		return entity.TimeOfDay{}, err
	}
	return tod, nil
}

func (c *Calculator) parseDuration(operation, value string) (entity.Duration, error) {
	d, err := entity.ParseDuration(value)
	if err != nil {
		c.rejected(operation, err)
		return entity.Duration{}, err
	}
	return d, nil
}

func (c *Calculator) parseTimeAndDuration(operation, timeOfDay, duration string) (entity.TimeOfDay, entity.Duration, error) {
	tod, err := c.parseTime(operation, timeOfDay)
	if err != nil {
		return entity.TimeOfDay{}, entity.Duration{}, err
	}
	d, err := c.parseDuration(operation, duration)
	if err != nil {
		return entity.TimeOfDay{}, entity.Duration{}, err
	}
	return tod, d, nil
}

func (c *Calculator) parseDurations(operation, a, b string) (entity.Duration, entity.Duration, error) {
	da, err := c.parseDuration(operation, a)
	if err != nil {
		return entity.Duration{}, entity.Duration{}, err
	}
	db, err := c.parseDuration(operation, b)
	if err != nil {
		return entity.Duration{}, entity.Duration{}, err
	}
	return da, db, nil
}

// rejected logs a refused input together with the error's structured fields
func (c *Calculator) rejected(operation string, err error) {
	fields := errs.LogFields(err)
	fields["operation"] = operation
	c.logger.Warn("Input rejected", fields)
}

func (c *Calculator) timeResult(operation string, tod entity.TimeOfDay, withMilliseconds bool) *usecase.TimeResult {
	result := &usecase.TimeResult{
		Time:         tod.Format(withMilliseconds),
		Hours:        tod.Hours(),
		Minutes:      tod.Minutes(),
		Seconds:      tod.Seconds(),
		Milliseconds: tod.Milliseconds(),
	}

	c.logger.Debug("Time computed", map[string]any{
		"operation": operation,
		"result":    result.Time,
	})

	return result
}

func (c *Calculator) durationResult(operation string, d entity.Duration, withMilliseconds bool) *usecase.DurationResult {
	result := &usecase.DurationResult{
		Duration:     d.Format(withMilliseconds),
		Milliseconds: d.Milliseconds(),
		Seconds:      d.Seconds(),
	}

	c.logger.Debug("Duration computed", map[string]any{
		"operation": operation,
		"result":    result.Duration,
	})

	return result
}
