package render

import (
	"fmt"
	"strings"

	"github.com/macrohard/datalens/analyzer/types"
	"github.com/macrohard/datalens/util"
)

const (
	defaultChartWidth  = 50
	defaultChartHeight = 10
	defaultBins        = 10

	// histogramBarWidth caps the length of histogram bars regardless of the
	// configured chart width.
	histogramBarWidth = 30

	noData = "No data to display"
)

// ChartGenerator renders ASCII charts for terminal display.
type ChartGenerator struct {
	Width  int
	Height int
}

// NewChartGenerator returns a generator with the given geometry;
// non-positive dimensions fall back to the 50x10 defaults.
func NewChartGenerator(width, height int) ChartGenerator {
	if width <= 0 {
		width = defaultChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}
	return ChartGenerator{Width: width, Height: height}
}

// BarChart renders a horizontal bar chart of the dataset, one bar per
// point in dataset order, scaled to the maximum value. A non-positive
// maximum yields bars of zero length rather than a numeric fault.
func (c ChartGenerator) BarChart(ds types.Dataset, title string) string {
	if len(ds) == 0 {
		return noData
	}

	maxValue := util.CalcMax(ds.Values())

	var lines []string
	if title != "" {
		lines = append(lines, "\n"+title)
		lines = append(lines, strings.Repeat("=", c.Width))
	}

	for _, d := range ds {
		// negative values alongside a positive maximum would scale to a
		// negative length; they render as an empty bar instead
		barLength := 0
		if maxValue > 0 && d.Value > 0 {
			barLength = int(d.Value / maxValue * float64(c.Width))
		}
		bar := strings.Repeat("█", barLength)
		lines = append(lines, fmt.Sprintf("%15s | %s %.2f", d.Label, bar, d.Value))
	}

	return strings.Join(lines, "\n")
}

// LineGraph renders the values as a column chart of filled dots, with one
// column per value normalized to the min/max range. Identical values carry
// a range of 0 and are normalized against 1 instead.
func (c ChartGenerator) LineGraph(values []float64, labels []string) string {
	if len(values) == 0 {
		return noData
	}

	minValue := util.CalcMin(values)
	maxValue := util.CalcMax(values)
	valueRange := maxValue - minValue
	if valueRange == 0 {
		valueRange = 1
	}

	graph := []string{fmt.Sprintf("\nMax: %.2f", maxValue)}

	for row := c.Height; row > 0; row-- {
		var line strings.Builder
		line.WriteString("|")
		for _, v := range values {
			normalized := (v - minValue) / valueRange
			if normalized*float64(c.Height) >= float64(row-1) {
				line.WriteString("●")
			} else {
				line.WriteString(" ")
			}
		}
		graph = append(graph, line.String())
	}

	graph = append(graph, "+"+strings.Repeat("-", len(values)))
	graph = append(graph, fmt.Sprintf("Min: %.2f", minValue))

	if len(labels) > 0 {
		if len(labels) > len(values) {
			labels = labels[:len(values)]
		}
		graph = append(graph, " "+strings.Join(labels, ""))
	}

	return strings.Join(graph, "\n")
}

// Histogram renders the distribution of the values over the given number
// of bins spanning [min, max]. Non-positive bin counts fall back to 10.
// When every value is identical the bin width is 0 and all counts land in
// the first bin rather than provoking a division by zero.
func (c ChartGenerator) Histogram(values []float64, bins int) string {
	if len(values) == 0 {
		return noData
	}
	if bins <= 0 {
		bins = defaultBins
	}

	minValue := util.CalcMin(values)
	maxValue := util.CalcMax(values)
	binWidth := (maxValue - minValue) / float64(bins)

	binCounts := make([]int, bins)
	for _, v := range values {
		binIndex := 0
		if binWidth > 0 {
			binIndex = int((v - minValue) / binWidth)
			if binIndex > bins-1 {
				binIndex = bins - 1
			}
		}
		binCounts[binIndex]++
	}

	maxCount := 0
	for _, count := range binCounts {
		if count > maxCount {
			maxCount = count
		}
	}

	lines := []string{"\nDistribution:"}
	for i, count := range binCounts {
		binStart := minValue + float64(i)*binWidth
		binEnd := binStart + binWidth
		barLength := int(float64(count) / float64(maxCount) * histogramBarWidth)
		bar := strings.Repeat("▓", barLength)
		lines = append(lines, fmt.Sprintf("%6.1f-%6.1f | %s (%d)", binStart, binEnd, bar, count))
	}

	return strings.Join(lines, "\n")
}
