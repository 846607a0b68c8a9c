package analyzer

import (
	"math"

	"github.com/macrohard/datalens/analyzer/types"
	"github.com/macrohard/datalens/util"
)

// FindOutliers finds the standard deviation of the dataset and flags any
// points whose z-score exceeds the given threshold. Datasets with fewer
// than two points have no defined deviation and yield no outliers. When
// every value is identical the deviation is 0 and no outliers are reported
// rather than propagating a division by zero.
func (a *Analyzer) FindOutliers(threshold float64) types.Dataset {
	if len(a.values) < 2 {
		return nil
	}

	mean := util.CalcMean(a.values)
	stdDev := util.CalcSampleStandardDeviation(a.values)
	if stdDev == 0 {
		return nil
	}

	var outliers types.Dataset
	for _, d := range a.data {
		zScore := math.Abs((d.Value - mean) / stdDev)
		if zScore > threshold {
			a.logger.Warn().
				Str("label", d.Label).
				Float64("value", d.Value).
				Float64("z_score", zScore).
				Msg("point deviating from dataset mean")
			outliers = append(outliers, d)
		}
	}
	return outliers
}
