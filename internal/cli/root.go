// Package cli wires the timekeeper command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/usecase/calculator"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/config"
)

// app carries the flags and the dependencies built once per invocation
type app struct {
	fs           afero.Fs
	timeProvider coreport.TimeProvider

	flagJSON    bool
	flagVerbose bool
	flagMs      bool
	flagQuiet   bool
	flagEnv     string

	cfg        *config.Config
	logger     coreport.Logger
	calculator usecase.Calculator
}

// NewRootCommand builds the command tree reading configuration from fs
func NewRootCommand(fs afero.Fs, tp coreport.TimeProvider) *cobra.Command {
	return newRootCommand(&app{fs: fs, timeProvider: tp})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timekeeper",
		Short: "Time-of-day and duration arithmetic, a live clock, a stopwatch and a countdown",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Flush()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVar(&a.flagJSON, "json", false, "print results and logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.flagVerbose, "verbose", "v", false, "enable verbose (debug) logging")
	rootCmd.PersistentFlags().BoolVarP(&a.flagQuiet, "quiet", "q", false, "disable logging")
	rootCmd.PersistentFlags().BoolVar(&a.flagMs, "ms", false, "include milliseconds in printed values")
	rootCmd.PersistentFlags().StringVar(&a.flagEnv, "env", config.ActiveEnvironment(), "configuration environment (development, production, test)")

	rootCmd.AddCommand(
		newTimeCmd(a),
		newDurationCmd(a),
		newClockCmd(a),
		newStopwatchCmd(a),
		newCountdownCmd(a),
		newConsoleCmd(a),
	)

	return rootCmd
}

// Execute runs the command tree against the OS filesystem and the wall clock
func Execute(version string) {
	// A missing .env file is normal outside development
	_ = config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand(afero.NewOsFs(), timeProvider.NewRealTimeProvider())
	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger and the calculator
func (a *app) setup() error {
	cfg, err := config.LoadConfigFromFs(a.fs, a.flagEnv)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil && a.flagQuiet {
		a.logger = logger.NewNoopLogger()
	}
	if a.logger == nil {
		level := cfg.Logger.Level
		if a.flagVerbose {
			level = "debug"
		}
		appLogger, err := logger.NewZapLogger(logger.Options{
			Production:  a.flagJSON || cfg.Logger.Format == "json",
			Level:       level,
			OutputPaths: []string{cfg.Logger.Output},
		})
		if err != nil {
			return err
		}
		a.logger = appLogger
	} else if a.flagVerbose {
		a.logger.SetLevel(coreport.LogLevelDebug)
	}

	a.logger.Debug("Configuration loaded", map[string]any{
		"environment": cfg.Environment,
		"log_level":   a.logger.GetLevel().String(),
		"tick_ms":     cfg.Clock.TickIntervalMs,
	})

	a.calculator = calculator.NewCalculator(a.timeProvider, a.logger)
	return nil
}

// print writes v as indented JSON with --json, otherwise its plain text form
func (a *app) print(w io.Writer, v any, text string) error {
	if !a.flagJSON {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
