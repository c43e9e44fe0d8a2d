package clock

import (
	"context"
	"math"
	"sync"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// validateStep rejects zero-length tick steps, which would never advance anything
func validateStep(field string, step entity.Duration) error {
	if step.IsZero() {
		return errs.NewRangeError(field, 0, 1, math.MaxInt64)
	}
	return nil
}

// LiveClock shows the wall-clock time, advancing it by one step per tick
type LiveClock struct {
	timeProvider coreport.TimeProvider
	display      coreport.Display
	logger       coreport.Logger
	step         entity.Duration

	mu      sync.Mutex
	current entity.TimeOfDay
}

// NewLiveClock creates a new live clock advancing by step on every tick
func NewLiveClock(
	timeProvider coreport.TimeProvider,
	display coreport.Display,
	logger coreport.Logger,
	step entity.Duration,
) *LiveClock {
	return &LiveClock{
		timeProvider: timeProvider,
		display:      display,
		logger:       logger,
		step:         step,
	}
}

// Current returns the time of day last shown
func (c *LiveClock) Current() entity.TimeOfDay {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Run seeds the clock from the time provider and ticks until ctx is done
func (c *LiveClock) Run(ctx context.Context) error {
	if err := validateStep("clock step", c.step); err != nil {
		return err
	}

	c.mu.Lock()
	c.current = entity.TimeOfDayFromTime(c.timeProvider.Now()).WholeSeconds()
	c.display.Render(c.current.String())
	c.mu.Unlock()

	ticker := c.timeProvider.NewTicker(c.step.Std())
	defer ticker.Stop()

	c.logger.Info("Clock started", map[string]any{
		"start": c.Current().String(),
		"step":  c.step.Format(true),
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Clock stopped", map[string]any{
				"time": c.Current().String(),
			})
			return nil
		case <-ticker.C():
			c.mu.Lock()
			c.current = c.current.Plus(c.step)
			c.display.Render(c.current.String())
			c.mu.Unlock()
		}
	}
}
