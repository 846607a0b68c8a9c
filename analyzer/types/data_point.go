package types

import (
	"fmt"
	"sort"
)

// DataPoint defines a single labeled observation in a dataset. It is
// immutable once constructed.
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Dataset defines an ordered sequence of data points. Order is significant:
// it determines the first and last points for trend calculation and the
// window order for moving averages. Labels and values carry no uniqueness
// constraints.
type Dataset []DataPoint

// NewDataset builds a dataset by zipping two parallel label and value
// sequences, preserving their order.
func NewDataset(labels []string, values []float64) (Dataset, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf(ErrLengthMismatch.Error(), len(labels), len(values))
	}

	ds := make(Dataset, len(labels))
	for i, label := range labels {
		ds[i] = DataPoint{Label: label, Value: values[i]}
	}
	return ds, nil
}

// NewDatasetFromMap builds a dataset from a label to value mapping. Go maps
// carry no iteration order, so points are ordered by label ascending to keep
// construction deterministic; order-sensitive callers should use NewDataset.
func NewDatasetFromMap(data map[string]float64) Dataset {
	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	ds := make(Dataset, len(labels))
	for i, label := range labels {
		ds[i] = DataPoint{Label: label, Value: data[label]}
	}
	return ds
}

// Values returns the positional projection of the dataset's values. The
// result is length- and order-preserving with respect to the dataset.
func (ds Dataset) Values() []float64 {
	values := make([]float64, len(ds))
	for i, d := range ds {
		values[i] = d.Value
	}
	return values
}

// Labels returns the positional projection of the dataset's labels.
func (ds Dataset) Labels() []string {
	labels := make([]string, len(ds))
	for i, d := range ds {
		labels[i] = d.Label
	}
	return labels
}
