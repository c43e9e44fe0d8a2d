package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.LogLevel
	}{
		{"debug", core.LogLevelDebug},
		{"INFO", core.LogLevelInfo},
		{"", core.LogLevelInfo},
		{"warning", core.LogLevelWarn},
		{" error ", core.LogLevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLogLevel(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestZapLogger_Levels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := NewZapLogger(Options{Production: true, Level: "warn", OutputPaths: []string{path}})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())

	log.Info("hidden message", nil)
	log.Warn("visible warning", map[string]any{"field": "minutes"})

	log.SetLevel(core.LogLevelDebug)
	log.Debug("now visible", nil)
	_ = log.Flush()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden message")
	assert.Contains(t, string(content), "visible warning")
	assert.Contains(t, string(content), `"field":"minutes"`)
	assert.Contains(t, string(content), "now visible")
}

func TestNewZapLogger_InvalidLevel(t *testing.T) {
	_, err := NewZapLogger(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.Error("ignored", nil)
	assert.NoError(t, log.Flush())
}

func TestParseLogLevel_AcceptsLevelNames(t *testing.T) {
	for _, level := range []core.LogLevel{core.LogLevelDebug, core.LogLevelInfo, core.LogLevelWarn, core.LogLevelError} {
		parsed, err := ParseLogLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
	assert.Equal(t, "unknown", core.LogLevel(42).String())
}
