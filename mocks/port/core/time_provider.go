package core

import (
	"time"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock implementation of core.TimeProvider
type MockTimeProvider struct {
	mock.Mock
}

// Now provides a mock function with no fields
func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// NewTicker provides a mock function with given fields: interval
func (m *MockTimeProvider) NewTicker(interval time.Duration) core.Ticker {
	args := m.Called(interval)
	return args.Get(0).(core.Ticker)
}

// ManualTicker is a core.Ticker driven by the test through Tick
type ManualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

// NewManualTicker creates a ticker whose channel is unbuffered, so Tick
// returns only once the consumer has received the tick
func NewManualTicker() *ManualTicker {
	return &ManualTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

// C returns the tick channel
func (t *ManualTicker) C() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker as stopped
func (t *ManualTicker) Stop() {
	select {
	case <-t.stopped:
	default:
		close(t.stopped)
	}
}

// Tick delivers one tick, blocking until it is received
func (t *ManualTicker) Tick(at time.Time) {
	t.ch <- at
}

// Stopped is closed once Stop has been called
func (t *ManualTicker) Stopped() <-chan struct{} {
	return t.stopped
}
