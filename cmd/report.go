package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/macrohard/datalens/analyzer"
	"github.com/macrohard/datalens/config"
	"github.com/macrohard/datalens/render"
)

func reportCmdHandler(cmd *cobra.Command, args []string) error {
	logger, err := getCmdLogger(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.ParseConfig(args[0])
	if err != nil {
		return err
	}

	deviations, err := cfg.DeviationsMap()
	if err != nil {
		return err
	}

	gen := render.NewChartGenerator(cfg.Chart.Width, cfg.Chart.Height)
	w := cmd.OutOrStdout()

	for _, ds := range cfg.Datasets {
		points, err := ds.Points()
		if err != nil {
			return err
		}

		engine := analyzer.New(logger, points)

		threshold := analyzer.DefaultOutlierThreshold
		if t, ok := deviations[ds.Name]; ok {
			threshold = t
		}

		summary := engine.Statistics()
		change, direction := engine.PercentageChange()
		outliers := engine.FindOutliers(threshold)

		render.AnalysisReport(w, ds.Name, summary, change, direction, outliers)

		top := engine.SortByValue(true)
		if len(top) > cfg.Analysis.TopPerformers {
			top = top[:cfg.Analysis.TopPerformers]
		}
		rows := make([][]string, len(top))
		for i, point := range top {
			rows[i] = []string{strconv.Itoa(i + 1), point.Label, fmt.Sprintf("%.2f", point.Value)}
		}
		fmt.Fprintf(w, "\nTop %d performers:\n", len(top))
		fmt.Fprintln(w, render.FormatTable([]string{"Rank", "Label", "Value"}, rows))

		fmt.Fprintf(w, "Moving average (window %d):\n", cfg.Analysis.MovingAverageWindow)
		for i, avg := range engine.MovingAverage(cfg.Analysis.MovingAverageWindow) {
			fmt.Fprintf(w, "  Period %d: %.2f\n", i+1, avg)
		}

		fmt.Fprintln(w, gen.BarChart(points, ds.Name))
		fmt.Fprintln(w, gen.LineGraph(points.Values(), nil))
		fmt.Fprintln(w, gen.Histogram(points.Values(), cfg.Chart.Bins))

		logger.Info().
			Str("dataset", ds.Name).
			Int("points", summary.Count).
			Int("outliers", len(outliers)).
			Msg("dataset analyzed")
	}

	return nil
}
