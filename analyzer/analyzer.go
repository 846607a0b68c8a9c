package analyzer

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/macrohard/datalens/analyzer/types"
	"github.com/macrohard/datalens/util"
)

const (
	// DefaultOutlierThreshold defines how many 𝜎 a point can be away from
	// the mean without being flagged. This can be overridden in the config.
	DefaultOutlierThreshold = 2.0

	// DefaultMovingAverageWindow defines the window size used for moving
	// averages when the config does not set one.
	DefaultMovingAverageWindow = 3
)

// Analyzer implements the statistics engine over a single labeled dataset.
// It holds the dataset immutably after construction; every operation is a
// pure read, so an Analyzer is incidentally safe for concurrent readers.
type Analyzer struct {
	logger zerolog.Logger

	data   types.Dataset
	values []float64
}

func New(logger zerolog.Logger, data types.Dataset) *Analyzer {
	return &Analyzer{
		logger: logger.With().Str("module", "analyzer").Logger(),
		data:   data,
		values: data.Values(),
	}
}

// Statistics computes the aggregate statistics of the dataset. An empty
// dataset yields a zero Summary; a Count of 0 is the empty signal, not an
// error.
func (a *Analyzer) Statistics() Summary {
	if len(a.values) == 0 {
		return Summary{}
	}

	min := util.CalcMin(a.values)
	max := util.CalcMax(a.values)

	return Summary{
		Count:  len(a.values),
		Sum:    util.CalcSum(a.values),
		Mean:   util.CalcMean(a.values),
		Median: util.CalcMedian(a.values),
		Min:    min,
		Max:    max,
		Range:  max - min,
		StdDev: util.CalcSampleStandardDeviation(a.values),
	}
}

// SortByValue returns a copy of the dataset sorted by value. The sort is
// stable with respect to the original order for equal values.
func (a *Analyzer) SortByValue(descending bool) types.Dataset {
	sorted := make(types.Dataset, len(a.data))
	copy(sorted, a.data)

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Value > sorted[j].Value
		}
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// FilterRange returns the points whose value lies within [min, max]
// inclusive, preserving original order.
func (a *Analyzer) FilterRange(min, max float64) types.Dataset {
	var filtered types.Dataset
	for _, d := range a.data {
		if min <= d.Value && d.Value <= max {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// PercentageChange computes the percentage change from the first to the
// last value of the dataset. Fewer than two points yields
// (0, DirectionNotApplicable). When the first value is 0 the change is
// defined as 0% to avoid an undefined division, even though the last value
// may differ; this masks true change and is kept as documented behavior.
// The direction is Up when the change is strictly positive, Down otherwise
// (a 0% change reports Down).
func (a *Analyzer) PercentageChange() (float64, Direction) {
	if len(a.values) < 2 {
		return 0, DirectionNotApplicable
	}

	first := a.values[0]
	last := a.values[len(a.values)-1]

	change := 0.0
	if first != 0 {
		change = (last - first) / first * 100
	}

	if change > 0 {
		return change, DirectionUp
	}
	return change, DirectionDown
}

// MovingAverage computes the means of consecutive windows over the value
// sequence, yielding count-window+1 averages. A dataset shorter than the
// window yields the raw values unchanged rather than an error. Windows of
// 1 or less are the identity and also yield the raw values.
func (a *Analyzer) MovingAverage(window int) []float64 {
	if window <= 1 || len(a.values) < window {
		raw := make([]float64, len(a.values))
		copy(raw, a.values)
		return raw
	}

	averages := make([]float64, 0, len(a.values)-window+1)
	for i := 0; i+window <= len(a.values); i++ {
		averages = append(averages, util.CalcMean(a.values[i:i+window]))
	}
	return averages
}
