package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timekeeper/mocks/port/core"
)

// syncBuffer guards a bytes.Buffer written from a timer goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestTimeProvider() *core.MockTimeProvider {
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(time.Date(2024, 3, 10, 10, 0, 0, 125*int(time.Millisecond), time.UTC)).Maybe()
	return mockTimeProvider
}

func execute(t *testing.T, ctx context.Context, tp *core.MockTimeProvider, out *syncBuffer, args ...string) error {
	t.Helper()

	cmd := newRootCommand(&app{
		fs:           afero.NewMemMapFs(),
		timeProvider: tp,
		logger:       logger.NewNoopLogger(),
	})
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--env", "test"}, args...))
	return cmd.ExecuteContext(ctx)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &syncBuffer{}
	err := execute(t, context.Background(), newTestTimeProvider(), out, args...)
	return out.String(), err
}

func TestCalculatorCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"time plus wraps", []string{"time", "plus", "23:59:59", "0:00:01"}, "00:00:00\n"},
		{"time minus wraps", []string{"time", "minus", "00:00", "0:00:00.5", "--ms"}, "23:59:59.500\n"},
		{"time normalize", []string{"time", "normalize", "7:5:3"}, "07:05:03\n"},
		{"time compare", []string{"time", "compare", "07:00", "08:00"}, "-1\n"},
		{"time now", []string{"time", "now", "--ms"}, "10:00:00.125\n"},
		{"duration add", []string{"duration", "add", "23:00", "2:00"}, "25:00:00\n"},
		{"duration sub", []string{"dur", "sub", "1:00", "0:00:00.001", "--ms"}, "0:59:59.999\n"},
		{"duration normalize", []string{"duration", "normalize", "100"}, "100:00:00\n"},
		{"duration compare", []string{"duration", "compare", "1:00", "0:59:59"}, "1\n"},
		{"duration of", []string{"duration", "of", "90", "m"}, "1:30:00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCalculatorCommands_Errors(t *testing.T) {
	t.Run("should report malformed input", func(t *testing.T) {
		_, err := run(t, "time", "plus", "24:00", "1")
		assert.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("should report a negative difference", func(t *testing.T) {
		_, err := run(t, "duration", "sub", "0:30", "1:00")
		assert.ErrorIs(t, err, errs.ErrNegativeDuration)
	})

	t.Run("should report an unknown unit", func(t *testing.T) {
		_, err := run(t, "duration", "of", "3", "fortnights")
		assert.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("should require both arguments", func(t *testing.T) {
		_, err := run(t, "time", "plus", "10:00")
		assert.Error(t, err)
	})

	t.Run("should reject an unknown environment", func(t *testing.T) {
		_, err := run(t, "--env", "staging", "time", "now")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid environment value")
	})
}

func TestJSONOutput(t *testing.T) {
	out, err := run(t, "--json", "duration", "add", "1:00", "0:30")
	require.NoError(t, err)

	var result usecase.DurationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "1:30:00", result.Duration)
	assert.Equal(t, int64(5_400_000), result.Milliseconds)
	assert.Equal(t, int64(5_400), result.Seconds)
}

func TestClockCommand(t *testing.T) {
	ticker := core.NewManualTicker()
	tp := newTestTimeProvider()
	tp.On("NewTicker", time.Second).Return(ticker)
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- execute(t, ctx, tp, out, "clock")
	}()

	ticker.Tick(time.Now())
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("\r10:00:01"))
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)
	assert.Contains(t, out.String(), "\r10:00:00")
}

func TestStopwatchCommand(t *testing.T) {
	ticker := core.NewManualTicker()
	tp := newTestTimeProvider()
	tp.On("NewTicker", 10*time.Millisecond).Return(ticker)
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- execute(t, ctx, tp, out, "stopwatch")
	}()

	ticker.Tick(time.Now())
	ticker.Tick(time.Now())
	ticker.Tick(time.Now())
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("0:00:00.030"))
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)
	assert.Contains(t, out.String(), "Elapsed: 0:00:00.030\n")
}

func TestCountdownCommand(t *testing.T) {
	ticker := core.NewManualTicker()
	tp := newTestTimeProvider()
	tp.On("NewTicker", time.Second).Return(ticker)
	out := &syncBuffer{}

	errCh := make(chan error, 1)
	go func() {
		errCh <- execute(t, context.Background(), tp, out, "countdown", "2", "--unit", "s")
	}()

	ticker.Tick(time.Now())
	ticker.Tick(time.Now())

	require.NoError(t, <-errCh)
	assert.Contains(t, out.String(), "\r0:00:02")
	assert.Contains(t, out.String(), "\r0:00:01")
	assert.Contains(t, out.String(), "\r0:00:00")
	assert.Contains(t, out.String(), "Time's up\n")
}

func TestCountdownCommand_RejectsBadDuration(t *testing.T) {
	_, err := run(t, "countdown", "1:75")
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestQuietFlag(t *testing.T) {
	a := &app{fs: afero.NewMemMapFs(), timeProvider: newTestTimeProvider()}
	cmd := newRootCommand(a)
	cmd.SetOut(&syncBuffer{})
	cmd.SetArgs([]string{"--env", "test", "--quiet", "time", "now"})

	require.NoError(t, cmd.Execute())
	assert.IsType(t, &logger.NoopLogger{}, a.logger)
}
