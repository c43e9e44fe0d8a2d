package cli

import (
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/console"
)

func newConsoleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tick, resolution, countdown, err := a.steps()
			if err != nil {
				return err
			}

			rl, err := console.NewReadline()
			if err != nil {
				return err
			}

			return console.New(rl, a.calculator, a.timeProvider, a.logger, console.Settings{
				TickInterval:        tick,
				StopwatchResolution: resolution,
				CountdownStep:       countdown,
				WithMilliseconds:    a.flagMs,
			}).Run(cmd.Context())
		},
	}
}
