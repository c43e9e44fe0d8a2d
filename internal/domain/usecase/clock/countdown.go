package clock

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// Countdown counts a duration down to zero, one step per tick
type Countdown struct {
	timeProvider coreport.TimeProvider
	display      coreport.Display
	logger       coreport.Logger
	step         entity.Duration

	mu        sync.Mutex
	remaining entity.Duration
}

// NewCountdown creates a countdown starting at total
func NewCountdown(
	timeProvider coreport.TimeProvider,
	display coreport.Display,
	logger coreport.Logger,
	total entity.Duration,
	step entity.Duration,
) *Countdown {
	return &Countdown{
		timeProvider: timeProvider,
		display:      display,
		logger:       logger,
		step:         step,
		remaining:    total,
	}
}

// Remaining returns the time left
func (c *Countdown) Remaining() entity.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Run ticks until the countdown reaches zero or ctx is done
func (c *Countdown) Run(ctx context.Context) error {
	if err := validateStep("countdown step", c.step); err != nil {
		return err
	}

	c.mu.Lock()
	c.display.Render(c.remaining.String())
	done := c.remaining.IsZero()
	c.mu.Unlock()
	if done {
		return nil
	}

	ticker := c.timeProvider.NewTicker(c.step.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Countdown cancelled", map[string]any{
				"remaining": c.Remaining().Format(true),
			})
			return nil
		case <-ticker.C():
			finished, err := c.tick()
			if err != nil {
				return err
			}
			if finished {
				c.logger.Info("Countdown finished", nil)
				return nil
			}
		}
	}
}

// tick subtracts one step, flooring the last partial step at zero
func (c *Countdown) tick() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	decrement := c.step
	if c.remaining.Less(decrement) {
		decrement = c.remaining
	}

	remaining, err := c.remaining.Sub(decrement)
	if err != nil {
		return false, err
	}
	c.remaining = remaining
	c.display.Render(c.remaining.String())
	return c.remaining.IsZero(), nil
}
