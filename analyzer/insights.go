package analyzer

import (
	"github.com/macrohard/datalens/analyzer/types"
)

// Summary defines the aggregate statistics of a dataset. StdDev is the
// sample standard deviation, defined as 0 when Count is 1 or less.
type Summary struct {
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
	StdDev float64 `json:"stdev"`
}

// Direction reports which way a dataset trends from its first to its last
// value.
type Direction int

const (
	DirectionNotApplicable Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "N/A"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Insights aggregates everything the engine derives from a dataset: the
// summary statistics, the trend, the outliers at the default threshold and
// the default-window moving average. It is the unit the export command
// serializes.
type Insights struct {
	Summary       Summary       `json:"summary"`
	Change        float64       `json:"percent_change"`
	Direction     Direction     `json:"direction"`
	Outliers      types.Dataset `json:"outliers"`
	MovingAverage []float64     `json:"moving_average"`
}

// Insights derives the full set of insights from the dataset using the
// default outlier threshold and moving average window.
func (a *Analyzer) Insights() Insights {
	change, direction := a.PercentageChange()

	return Insights{
		Summary:       a.Statistics(),
		Change:        change,
		Direction:     direction,
		Outliers:      a.FindOutliers(DefaultOutlierThreshold),
		MovingAverage: a.MovingAverage(DefaultMovingAverageWindow),
	}
}
