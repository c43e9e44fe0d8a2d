package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
)

func newDurationCmd(a *app) *cobra.Command {
	durationCmd := &cobra.Command{
		Use:     "duration",
		Aliases: []string{"dur"},
		Short:   "Duration arithmetic (H[:MM[:SS[.fff]]], unbounded hours)",
	}

	combine := func(use, short string, op func(usecase.Calculator) func(string, string, bool) (*usecase.DurationResult, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " A B",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := op(a.calculator)(args[0], args[1], a.flagMs)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), result, result.Duration)
			},
		}
	}

	durationCmd.AddCommand(
		combine("add", "Sum two durations",
			func(c usecase.Calculator) func(string, string, bool) (*usecase.DurationResult, error) { return c.AddDurations }),
		combine("sub", "Subtract B from A; fails when B is longer",
			func(c usecase.Calculator) func(string, string, bool) (*usecase.DurationResult, error) { return c.SubtractDurations }),
		&cobra.Command{
			Use:   "normalize DURATION",
			Short: "Print a duration in canonical form",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.calculator.NormalizeDuration(args[0], a.flagMs)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), result, result.Duration)
			},
		},
		&cobra.Command{
			Use:   "compare A B",
			Short: "Compare two durations (-1, 0 or 1)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				order, err := a.calculator.CompareDurations(args[0], args[1])
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), compareResult{A: args[0], B: args[1], Result: order}, fmt.Sprint(order))
			},
		},
		&cobra.Command{
			Use:   "of VALUE UNIT",
			Short: "Build a duration from a count of ms, s, m or h",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := durationOf(args[0], args[1])
				if err != nil {
					return err
				}
				result := &usecase.DurationResult{
					Duration:     d.Format(a.flagMs),
					Milliseconds: d.Milliseconds(),
					Seconds:      d.Seconds(),
				}
				return a.print(cmd.OutOrStdout(), result, result.Duration)
			},
		},
	)

	return durationCmd
}

// durationOf parses a non-negative count and a unit symbol into a duration
func durationOf(value, unit string) (entity.Duration, error) {
	u, err := entity.ParseTimeUnit(unit)
	if err != nil {
		return entity.Duration{}, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return entity.Duration{}, fmt.Errorf("invalid count %q: %w", value, err)
	}
	return entity.DurationOf(n, u)
}
