package clock

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// Stopwatch accumulates elapsed time one resolution step per tick while running.
// Every tick renders, so a stopped stopwatch keeps showing its frozen value.
// Toggle and Reset may be called from a key-input loop concurrently with Run.
type Stopwatch struct {
	timeProvider coreport.TimeProvider
	display      coreport.Display
	logger       coreport.Logger
	resolution   entity.Duration

	mu      sync.Mutex
	elapsed entity.Duration
	running bool
}

// NewStopwatch creates a stopped stopwatch at zero
func NewStopwatch(
	timeProvider coreport.TimeProvider,
	display coreport.Display,
	logger coreport.Logger,
	resolution entity.Duration,
) *Stopwatch {
	return &Stopwatch{
		timeProvider: timeProvider,
		display:      display,
		logger:       logger,
		resolution:   resolution,
	}
}

// Elapsed returns the accumulated time
func (s *Stopwatch) Elapsed() entity.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Running reports whether the stopwatch is currently counting
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Toggle starts a stopped stopwatch or stops a running one, returning the new state
func (s *Stopwatch) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = !s.running
	s.logger.Debug("Stopwatch toggled", map[string]any{
		"running": s.running,
		"elapsed": s.elapsed.Format(true),
	})
	return s.running
}

// Reset stops the stopwatch and zeroes it
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.elapsed = entity.Duration{}
	s.display.Render(s.elapsed.Format(true))
}

// Run renders the elapsed time on every tick until ctx is done
func (s *Stopwatch) Run(ctx context.Context) error {
	if err := validateStep("stopwatch resolution", s.resolution); err != nil {
		return err
	}

	s.mu.Lock()
	s.display.Render(s.elapsed.Format(true))
	s.mu.Unlock()

	ticker := s.timeProvider.NewTicker(s.resolution.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopwatch closed", map[string]any{
				"elapsed": s.Elapsed().Format(true),
			})
			return nil
		case <-ticker.C():
			s.mu.Lock()
			if s.running {
				s.elapsed = s.elapsed.Add(s.resolution)
			}
			s.display.Render(s.elapsed.Format(true))
			s.mu.Unlock()
		}
	}
}
