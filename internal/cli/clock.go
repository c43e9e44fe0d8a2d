package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/usecase/clock"
)

// lineDisplay redraws a single terminal line in place
type lineDisplay struct {
	mu    sync.Mutex
	w     io.Writer
	width int
}

func (d *lineDisplay) Render(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pad := ""
	if n := d.width - len(text); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	d.width = len(text)
	fmt.Fprint(d.w, "\r"+text+pad)
}

// done ends the redrawn line
func (d *lineDisplay) done() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.w)
}

// steps converts the configured millisecond intervals into durations
func (a *app) steps() (tick, resolution, countdown entity.Duration, err error) {
	if tick, err = entity.DurationOf(a.cfg.Clock.TickIntervalMs, entity.Millisecond); err != nil {
		return
	}
	if resolution, err = entity.DurationOf(a.cfg.Clock.StopwatchResolutionMs, entity.Millisecond); err != nil {
		return
	}
	countdown, err = entity.DurationOf(a.cfg.Clock.CountdownStepMs, entity.Millisecond)
	return
}

func newClockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Show a live clock until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tick, _, _, err := a.steps()
			if err != nil {
				return err
			}

			display := &lineDisplay{w: cmd.OutOrStdout()}
			defer display.done()
			return clock.NewLiveClock(a.timeProvider, display, a.logger, tick).Run(cmd.Context())
		},
	}
}

func newStopwatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stopwatch",
		Short: "Run a stopwatch until interrupted, then print the elapsed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, resolution, _, err := a.steps()
			if err != nil {
				return err
			}

			display := &lineDisplay{w: cmd.OutOrStdout()}
			stopwatch := clock.NewStopwatch(a.timeProvider, display, a.logger, resolution)
			stopwatch.Toggle()

			err = stopwatch.Run(cmd.Context())
			display.done()
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), map[string]any{
				"elapsed":           stopwatch.Elapsed().Format(true),
				"totalMilliseconds": stopwatch.Elapsed().Milliseconds(),
			}, "Elapsed: "+stopwatch.Elapsed().Format(true))
		},
	}
}

func newCountdownCmd(a *app) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "countdown DURATION",
		Short: "Count a duration down to zero",
		Example: `  timekeeper countdown 0:05
  timekeeper countdown 90 --unit s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				total entity.Duration
				err   error
			)
			if unit != "" {
				total, err = durationOf(args[0], unit)
			} else {
				total, err = entity.ParseDuration(args[0])
			}
			if err != nil {
				return err
			}

			_, _, step, err := a.steps()
			if err != nil {
				return err
			}

			display := &lineDisplay{w: cmd.OutOrStdout()}
			countdown := clock.NewCountdown(a.timeProvider, display, a.logger, total, step)
			err = countdown.Run(cmd.Context())
			display.done()
			if err != nil {
				return err
			}

			if countdown.Remaining().IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "Time's up")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "read DURATION as a count of ms, s, m or h")
	return cmd
}
