package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	ds, err := NewDataset(
		[]string{"January", "February", "March"},
		[]float64{45000, 52000, 48000},
	)
	require.NoError(t, err)
	require.Len(t, ds, 3)
	require.Equal(t, DataPoint{Label: "January", Value: 45000}, ds[0])
	require.Equal(t, []float64{45000, 52000, 48000}, ds.Values())
	require.Equal(t, []string{"January", "February", "March"}, ds.Labels())
}

func TestNewDatasetLengthMismatch(t *testing.T) {
	_, err := NewDataset([]string{"January", "February"}, []float64{45000})
	require.Error(t, err)
	require.ErrorContains(t, err, "must be the same length")
}

func TestNewDatasetEmpty(t *testing.T) {
	ds, err := NewDataset(nil, nil)
	require.NoError(t, err)
	require.Empty(t, ds)
}

func TestNewDatasetFromMap(t *testing.T) {
	ds := NewDatasetFromMap(map[string]float64{
		"c": 3,
		"a": 1,
		"b": 2,
	})

	// map construction orders points by label
	require.Equal(t, Dataset{
		{Label: "a", Value: 1},
		{Label: "b", Value: 2},
		{Label: "c", Value: 3},
	}, ds)
}
