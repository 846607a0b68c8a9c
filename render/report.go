package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/macrohard/datalens/analyzer"
	"github.com/macrohard/datalens/analyzer/types"
	"github.com/macrohard/datalens/sprint"
)

const reportRule = 50

// AnalysisReport writes the human-readable analysis report for a single
// dataset. The engine returns plain structured values; all formatting
// lives here.
func AnalysisReport(
	w io.Writer,
	name string,
	summary analyzer.Summary,
	change float64,
	direction analyzer.Direction,
	outliers types.Dataset,
) {
	rule := strings.Repeat("=", reportRule)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "DATA ANALYSIS REPORT: %s\n", name)
	fmt.Fprintf(w, "%s\n", rule)

	if summary.Count == 0 {
		fmt.Fprintln(w, "\nNo data to analyze")
		return
	}

	fmt.Fprintln(w, "\nStatistics:")
	fmt.Fprintf(w, "  Count:   %d\n", summary.Count)
	fmt.Fprintf(w, "  Sum:     %.2f\n", summary.Sum)
	fmt.Fprintf(w, "  Mean:    %.2f\n", summary.Mean)
	fmt.Fprintf(w, "  Median:  %.2f\n", summary.Median)
	fmt.Fprintf(w, "  Min:     %.2f\n", summary.Min)
	fmt.Fprintf(w, "  Max:     %.2f\n", summary.Max)
	fmt.Fprintf(w, "  Range:   %.2f\n", summary.Range)
	fmt.Fprintf(w, "  Std Dev: %.2f\n", summary.StdDev)

	fmt.Fprintln(w, "\nTrend:")
	fmt.Fprintf(w, "  Change: %.2f%% %s\n", change, direction)

	if len(outliers) > 0 {
		fmt.Fprintf(w, "\nOutliers detected (%d):\n", len(outliers))
		for _, outlier := range outliers {
			fmt.Fprintf(w, "  - %s: %.2f\n", outlier.Label, outlier.Value)
		}
	} else {
		fmt.Fprintln(w, "\nNo outliers detected")
	}

	fmt.Fprintf(w, "\n%s\n", rule)
}

// SprintReport writes the human-readable sprint board report.
func SprintReport(w io.Writer, board *sprint.Board) {
	fmt.Fprintln(w, "\nSprint Report")

	for _, t := range board.Tasks() {
		fmt.Fprintf(w, "Task %d: %s | SP: %d | %s\n", t.ID, t.Title, t.Points, t.Status)
	}

	fmt.Fprintf(w, "\nCompletion: %.2f%%\n", board.CompletionPercentage())
	fmt.Fprintf(w, "Health: %s\n", board.Health())
}
