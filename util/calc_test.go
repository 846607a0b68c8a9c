package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcSum(t *testing.T) {
	require.Equal(t, 0.0, CalcSum(nil))
	require.Equal(t, 15.0, CalcSum([]float64{1, 2, 3, 4, 5}))
	require.Equal(t, -1.0, CalcSum([]float64{2, -3}))
}

func TestCalcMean(t *testing.T) {
	require.Equal(t, 3.0, CalcMean([]float64{1, 2, 3, 4, 5}))
	require.Equal(t, 5.0, CalcMean([]float64{5}))
}

func TestCalcMedian(t *testing.T) {
	// odd length takes the middle of the sorted values
	require.Equal(t, 3.0, CalcMedian([]float64{5, 1, 3, 2, 4}))

	// even length takes the mean of the two middle values
	require.Equal(t, 2.5, CalcMedian([]float64{4, 1, 3, 2}))

	// input order is preserved
	input := []float64{9, 1, 5}
	CalcMedian(input)
	require.Equal(t, []float64{9, 1, 5}, input)
}

func TestCalcSampleStandardDeviation(t *testing.T) {
	require.Equal(t, 0.0, CalcSampleStandardDeviation(nil))
	require.Equal(t, 0.0, CalcSampleStandardDeviation([]float64{42}))
	require.Equal(t, 0.0, CalcSampleStandardDeviation([]float64{10, 10, 10}))

	// sample variance of {2, 4, 4, 4, 5, 5, 7, 9} is 32/7
	require.InDelta(t, 2.13809, CalcSampleStandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.0001)
}

func TestCalcMinMax(t *testing.T) {
	numbers := []float64{45000, 52000, 48000, 61000, 150000, 44000}
	require.Equal(t, 44000.0, CalcMin(numbers))
	require.Equal(t, 150000.0, CalcMax(numbers))
}
