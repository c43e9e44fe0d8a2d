package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	Logger      LoggerConfig `mapstructure:"logger"`
	Clock       ClockConfig  `mapstructure:"clock"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stderr, stdout or a file path
}

// ClockConfig contains tick settings for the clock, stopwatch and countdown
type ClockConfig struct {
	TickIntervalMs        int64 `mapstructure:"tickIntervalMs"`
	StopwatchResolutionMs int64 `mapstructure:"stopwatchResolutionMs"`
	CountdownStepMs       int64 `mapstructure:"countdownStepMs"`
}

// Addr returns the listen address of the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missingConfigs []string

	if c.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if c.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if c.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if c.Environment != Development &&
		c.Environment != Production &&
		c.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Tick settings must be positive or the clocks would never advance
	if c.Clock.TickIntervalMs <= 0 {
		return fmt.Errorf("clock.tickIntervalMs must be positive, got %d", c.Clock.TickIntervalMs)
	}
	if c.Clock.StopwatchResolutionMs <= 0 {
		return fmt.Errorf("clock.stopwatchResolutionMs must be positive, got %d", c.Clock.StopwatchResolutionMs)
	}
	if c.Clock.CountdownStepMs <= 0 {
		return fmt.Errorf("clock.countdownStepMs must be positive, got %d", c.Clock.CountdownStepMs)
	}

	return nil
}
