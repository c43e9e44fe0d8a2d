// Package console provides the interactive readline front end for the clock,
// the stopwatch, the countdown and the calculator.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/usecase/clock"
)

const mainPrompt = "timekeeper> "

// Settings holds the tick steps used by the interactive timers
type Settings struct {
	TickInterval        entity.Duration
	StopwatchResolution entity.Duration
	CountdownStep       entity.Duration
	WithMilliseconds    bool
}

// Console handles interactive mode
type Console struct {
	rl           LineReader
	calculator   usecase.Calculator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	settings     Settings
}

// NewReadline creates the terminal line reader used by New
func NewReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          mainPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

// New creates a new interactive console
func New(
	rl LineReader,
	calculator usecase.Calculator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	settings Settings,
) *Console {
	return &Console{
		rl:           rl,
		calculator:   calculator,
		timeProvider: timeProvider,
		logger:       logger,
		settings:     settings,
	}
}

// Stdout returns a writer that coordinates with the readline input
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the interactive command loop and returns when the user quits or input ends
func (c *Console) Run(ctx context.Context) error {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		c.rl.SetPrompt(mainPrompt)
		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(c.Stdout(), "Exiting...")
			return nil
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if quit := c.dispatch(ctx, args[0], args[1:]); quit {
			fmt.Fprintln(c.Stdout(), "Exiting...")
			return nil
		}
	}
}

func (c *Console) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch strings.ToLower(cmd) {
	case "help", "?":
		c.printHelp()
	case "quit", "exit", "q":
		return true
	case "now":
		fmt.Fprintln(c.Stdout(), c.calculator.Now(c.settings.WithMilliseconds).Time)
	case "clock":
		c.cmdClock(ctx)
	case "stopwatch", "sw":
		c.cmdStopwatch(ctx)
	case "countdown", "cd":
		c.cmdCountdown(ctx, args)
	case "plus", "minus", "add", "sub":
		c.cmdArithmetic(strings.ToLower(cmd), args)
	case "cmp-time", "cmp-duration":
		c.cmdCompare(strings.ToLower(cmd), args)
	case "ms":
		c.settings.WithMilliseconds = !c.settings.WithMilliseconds
		fmt.Fprintf(c.Stdout(), "Milliseconds %s\n", onOff(c.settings.WithMilliseconds))
	default:
		fmt.Fprintf(c.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.Stdout(), `
Commands:
  now                        Print the current time of day
  clock                      Show a live clock in the prompt (Enter to quit)
  stopwatch                  Start the stopwatch (Enter start/stop, r reset, q quit)
  countdown <duration>       Count a duration down to zero (Enter to quit)
  plus <time> <duration>     Move a time of day forward, wrapping at midnight
  minus <time> <duration>    Move a time of day backward, wrapping at midnight
  add <duration> <duration>  Sum two durations
  sub <duration> <duration>  Subtract the second duration from the first
  cmp-time <time> <time>     Compare two times of day
  cmp-duration <d> <d>       Compare two durations
  ms                         Toggle millisecond output
  help                       Show this help
  quit                       Exit`)
}

func (c *Console) cmdArithmetic(cmd string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(c.Stdout(), "Usage: %s <a> <b>\n", cmd)
		return
	}

	ms := c.settings.WithMilliseconds
	var (
		out string
		err error
	)
	switch cmd {
	case "plus", "minus":
		op := c.calculator.PlusTime
		if cmd == "minus" {
			op = c.calculator.MinusTime
		}
		var result *usecase.TimeResult
		if result, err = op(args[0], args[1], ms); err == nil {
			out = result.Time
		}
	default:
		op := c.calculator.AddDurations
		if cmd == "sub" {
			op = c.calculator.SubtractDurations
		}
		var result *usecase.DurationResult
		if result, err = op(args[0], args[1], ms); err == nil {
			out = result.Duration
		}
	}

	if err != nil {
		fmt.Fprintf(c.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintln(c.Stdout(), out)
}

func (c *Console) cmdCompare(cmd string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(c.Stdout(), "Usage: %s <a> <b>\n", cmd)
		return
	}

	compare := c.calculator.CompareTimes
	if cmd == "cmp-duration" {
		compare = c.calculator.CompareDurations
	}

	order, err := compare(args[0], args[1])
	if err != nil {
		fmt.Fprintf(c.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.Stdout(), "%s %s %s\n", args[0], orderSymbol(order), args[1])
}

func (c *Console) cmdClock(ctx context.Context) {
	liveClock := clock.NewLiveClock(c.timeProvider, NewPromptDisplay(c.rl, "clock"), c.logger, c.settings.TickInterval)
	c.runTimer(ctx, liveClock.Run, func(string) bool { return true })
}

func (c *Console) cmdStopwatch(ctx context.Context) {
	stopwatch := clock.NewStopwatch(c.timeProvider, NewPromptDisplay(c.rl, "stopwatch"), c.logger, c.settings.StopwatchResolution)
	c.runTimer(ctx, stopwatch.Run, func(line string) bool {
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			stopwatch.Toggle()
		case "r":
			stopwatch.Reset()
		case "q":
			fmt.Fprintf(c.Stdout(), "Stopwatch: %s\n", stopwatch.Elapsed().Format(true))
			return true
		default:
			fmt.Fprintln(c.Stdout(), "Enter start/stop, r reset, q quit")
		}
		return false
	})
}

func (c *Console) cmdCountdown(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.Stdout(), "Usage: countdown <duration>")
		return
	}

	total, err := entity.ParseDuration(args[0])
	if err != nil {
		fmt.Fprintf(c.Stdout(), "Error: %v\n", err)
		return
	}

	countdown := clock.NewCountdown(c.timeProvider, NewPromptDisplay(c.rl, "countdown"), c.logger, total, c.settings.CountdownStep)
	c.runTimer(ctx, countdown.Run, func(string) bool { return true })
}

// runTimer runs a timer in the background while lines are fed to onLine until it returns true.
// A timer that finishes on its own ends the mode at the next line.
func (c *Console) runTimer(ctx context.Context, run func(context.Context) error, onLine func(string) bool) {
	timerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(timerCtx)
	}()

	var finished bool
	var runErr error
	for !finished {
		line, err := c.rl.Readline()

		select {
		case runErr = <-errCh:
			finished = true
		default:
		}

		if err != nil || finished || onLine(line) {
			break
		}
	}

	cancel()
	if !finished {
		runErr = <-errCh
	}
	if runErr != nil {
		fmt.Fprintf(c.Stdout(), "Error: %v\n", runErr)
	}
}

func orderSymbol(order int) string {
	switch {
	case order < 0:
		return "<"
	case order > 0:
		return ">"
	default:
		return "="
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
