package cmd

import (
	"github.com/spf13/cobra"

	"github.com/macrohard/datalens/analyzer"
	"github.com/macrohard/datalens/config"
	"github.com/macrohard/datalens/render"
)

func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export [config-file]",
		Args:  cobra.ExactArgs(1),
		Short: "Writes the computed insights of every dataset to the configured JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getCmdLogger(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				return err
			}

			insights := make(map[string]analyzer.Insights, len(cfg.Datasets))
			for _, ds := range cfg.Datasets {
				points, err := ds.Points()
				if err != nil {
					return err
				}
				insights[ds.Name] = analyzer.New(logger, points).Insights()
			}

			if err := render.WriteJSON(cfg.Export.Path, insights); err != nil {
				return err
			}

			logger.Info().
				Str("path", cfg.Export.Path).
				Int("datasets", len(insights)).
				Msg("insights exported")
			return nil
		},
	}

	return exportCmd
}
