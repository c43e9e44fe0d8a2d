package time

import (
	"time"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current local time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NewTicker starts a time.Ticker wrapped as a core.Ticker
func (p *RealTimeProvider) NewTicker(interval time.Duration) core.Ticker {
	return &realTicker{ticker: time.NewTicker(interval)}
}

// realTicker adapts *time.Ticker to core.Ticker
type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
