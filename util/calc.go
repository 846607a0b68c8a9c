package util

import (
	"math"
	"sort"
)

func CalcSum(numbers []float64) float64 {
	sum := 0.0
	for _, num := range numbers {
		sum += num
	}
	return sum
}

func CalcMean(numbers []float64) float64 {
	return CalcSum(numbers) / float64(len(numbers))
}

// CalcMedian returns the middle value of the sorted input, or the mean of
// the two middle values when the input length is even. The input slice is
// not modified.
func CalcMedian(numbers []float64) float64 {
	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// CalcSampleStandardDeviation returns the sample standard deviation (the
// squared deviations from the mean are divided by n-1). It is defined as 0
// when fewer than two numbers are given.
func CalcSampleStandardDeviation(numbers []float64) float64 {
	if len(numbers) < 2 {
		return 0
	}

	mean := CalcMean(numbers)
	variance := 0.0
	for _, num := range numbers {
		diff := num - mean
		variance += diff * diff
	}
	variance /= float64(len(numbers) - 1)
	return math.Sqrt(variance)
}

func CalcMin(numbers []float64) float64 {
	min := numbers[0]
	for _, num := range numbers[1:] {
		if num < min {
			min = num
		}
	}
	return min
}

func CalcMax(numbers []float64) float64 {
	max := numbers[0]
	for _, num := range numbers[1:] {
		if num > max {
			max = num
		}
	}
	return max
}
