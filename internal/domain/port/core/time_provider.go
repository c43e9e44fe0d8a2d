package core

import (
	"time"
)

// Ticker delivers ticks at a fixed interval until stopped
type Ticker interface {
	// C returns the channel on which ticks are delivered
	C() <-chan time.Time
	// Stop turns off the ticker
	Stop()
}

// TimeProvider abstracts time operations for the domain
type TimeProvider interface {
	// Now returns the current wall-clock time
	Now() time.Time
	// NewTicker starts a ticker firing every interval
	NewTicker(interval time.Duration) Ticker
}
