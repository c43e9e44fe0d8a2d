package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
)

func newTimeCmd(a *app) *cobra.Command {
	timeCmd := &cobra.Command{
		Use:   "time",
		Short: "Time-of-day arithmetic (HH[:MM[:SS[.fff]]])",
	}

	shift := func(use, short string, op func(usecase.Calculator) func(string, string, bool) (*usecase.TimeResult, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " TIME DURATION",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := op(a.calculator)(args[0], args[1], a.flagMs)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), result, result.Time)
			},
		}
	}

	timeCmd.AddCommand(
		shift("plus", "Move a time of day forward, wrapping past midnight",
			func(c usecase.Calculator) func(string, string, bool) (*usecase.TimeResult, error) { return c.PlusTime }),
		shift("minus", "Move a time of day backward, wrapping before midnight",
			func(c usecase.Calculator) func(string, string, bool) (*usecase.TimeResult, error) { return c.MinusTime }),
		&cobra.Command{
			Use:   "normalize TIME",
			Short: "Print a time of day in canonical form",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.calculator.NormalizeTime(args[0], a.flagMs)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), result, result.Time)
			},
		},
		&cobra.Command{
			Use:   "compare A B",
			Short: "Compare two times of day (-1, 0 or 1)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				order, err := a.calculator.CompareTimes(args[0], args[1])
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), compareResult{A: args[0], B: args[1], Result: order}, fmt.Sprint(order))
			},
		},
		&cobra.Command{
			Use:   "now",
			Short: "Print the current time of day",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				result := a.calculator.Now(a.flagMs)
				return a.print(cmd.OutOrStdout(), result, result.Time)
			},
		},
	)

	return timeCmd
}

// compareResult is the JSON form of a comparison
type compareResult struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Result int    `json:"result"`
}
