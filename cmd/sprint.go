package cmd

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/macrohard/datalens/config"
	"github.com/macrohard/datalens/render"
	"github.com/macrohard/datalens/sprint"
)

func getSprintCmd() *cobra.Command {
	sprintCmd := &cobra.Command{
		Use:   "sprint [config-file]",
		Args:  cobra.ExactArgs(1),
		Short: "Simulates progress on the configured sprint board and reports its health",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getCmdLogger(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				return err
			}

			// A configured seed makes the simulation reproducible.
			var rng *rand.Rand
			if cfg.Sprint.Seed != 0 {
				rng = rand.New(rand.NewSource(cfg.Sprint.Seed))
			}

			board := sprint.NewBoard(logger, cfg.Sprint.Tasks, rng)
			board.SimulateProgress()

			render.SprintReport(cmd.OutOrStdout(), board)
			return nil
		},
	}

	return sprintCmd
}
