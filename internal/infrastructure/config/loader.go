package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "TK"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from the OS filesystem based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := LoadDotEnv(); err != nil {
		// A missing .env file is normal outside development
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	return LoadConfigFromFs(afero.NewOsFs(), ActiveEnvironment())
}

// LoadConfigFromFs loads <env>.yaml from fs when present and applies defaults and
// environment overrides. A missing config file is not an error.
func LoadConfigFromFs(fs afero.Fs, env string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// LoadDotEnv attempts to load environment variables from .env files
func LoadDotEnv() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for every key so AutomaticEnv can override any of them
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")

	v.SetDefault("clock.tickIntervalMs", 1000)
	v.SetDefault("clock.stopwatchResolutionMs", 10)
	v.SetDefault("clock.countdownStepMs", 1000)
}

// ActiveEnvironment determines the environment to use based on the TK_ENV environment variable
func ActiveEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the documented snake_case variables onto their camelCase keys
func processEnvOverrides(v *viper.Viper) {
	if host := os.Getenv("TK_SERVER_HOST"); host != "" {
		v.Set("server.host", host)
	}
	if port := getEnvInt("TK_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if shutdown := getEnvInt("TK_SERVER_SHUTDOWN_TIMEOUT_SECONDS", 0); shutdown > 0 {
		v.Set("server.shutdownTimeout", shutdown)
	}

	if logLevel := os.Getenv("TK_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
	if logFormat := os.Getenv("TK_LOGGER_FORMAT"); logFormat != "" {
		v.Set("logger.format", logFormat)
	}

	if tick := getEnvInt("TK_CLOCK_TICK_INTERVAL_MS", 0); tick > 0 {
		v.Set("clock.tickIntervalMs", tick)
	}
	if resolution := getEnvInt("TK_CLOCK_STOPWATCH_RESOLUTION_MS", 0); resolution > 0 {
		v.Set("clock.stopwatchResolutionMs", resolution)
	}
	if step := getEnvInt("TK_CLOCK_COUNTDOWN_STEP_MS", 0); step > 0 {
		v.Set("clock.countdownStepMs", step)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw second counts
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
}
