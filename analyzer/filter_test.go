package analyzer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/macrohard/datalens/analyzer/types"
)

func TestFindOutliers(t *testing.T) {
	outliers := salesAnalyzer().FindOutliers(DefaultOutlierThreshold)
	require.Equal(t, types.Dataset{{Label: "July", Value: 150000}}, outliers)
}

func TestFindOutliersLooseThreshold(t *testing.T) {
	// nothing in the sample is more than 3 standard deviations out
	require.Empty(t, salesAnalyzer().FindOutliers(3.0))
}

func TestFindOutliersIdenticalValues(t *testing.T) {
	// identical values have a standard deviation of 0; no outliers are
	// reported instead of propagating a division by zero
	a := New(zerolog.Nop(), types.Dataset{
		{Label: "A", Value: 10},
		{Label: "B", Value: 10},
		{Label: "C", Value: 10},
	})

	require.Empty(t, a.FindOutliers(DefaultOutlierThreshold))
}

func TestFindOutliersTooFewPoints(t *testing.T) {
	testCases := map[string]types.Dataset{
		"empty":  {},
		"single": {{Label: "A", Value: 5}},
	}

	for name, data := range testCases {
		data := data
		t.Run(name, func(t *testing.T) {
			a := New(zerolog.Nop(), data)
			require.Empty(t, a.FindOutliers(DefaultOutlierThreshold))
		})
	}
}
