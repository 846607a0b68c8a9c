package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/macrohard/datalens/analyzer"
	"github.com/macrohard/datalens/analyzer/types"
	"github.com/macrohard/datalens/sprint"
)

const (
	defaultChartWidth    = 50
	defaultChartHeight   = 10
	defaultHistogramBins = 10
	defaultTopPerformers = 3
	defaultExportPath    = "output.json"

	SampleConfigPath = "datalens.example.toml"
)

var (
	validate = validator.New()

	// ErrEmptyConfigPath defines a sentinel error for an empty config path.
	ErrEmptyConfigPath = errors.New("empty configuration file path")
)

type (
	// Config defines all necessary datalens configuration parameters.
	Config struct {
		Datasets   []Dataset   `mapstructure:"datasets" validate:"required,gt=0,dive"`
		Deviations []Deviation `mapstructure:"deviation_thresholds" validate:"dive"`
		Analysis   Analysis    `mapstructure:"analysis"`
		Chart      Chart       `mapstructure:"chart"`
		Export     Export      `mapstructure:"export"`
		Sprint     Sprint      `mapstructure:"sprint"`
	}

	// Dataset defines a named labeled series embedded in the config file.
	// Labels and values are parallel sequences and must be the same length.
	Dataset struct {
		Name   string    `mapstructure:"name" validate:"required"`
		Labels []string  `mapstructure:"labels" validate:"required,gt=0,dive,required"`
		Values []float64 `mapstructure:"values" validate:"required,gt=0"`
	}

	// Deviation defines the amount of standard deviations that a point of a
	// given dataset can be from the mean without being flagged as an outlier.
	Deviation struct {
		Dataset   string `mapstructure:"dataset" validate:"required"`
		Threshold string `mapstructure:"threshold" validate:"required"`
	}

	// Analysis defines tunables of the analysis report.
	Analysis struct {
		MovingAverageWindow int `mapstructure:"moving_average_window"`
		TopPerformers       int `mapstructure:"top_performers"`
	}

	// Chart defines the geometry of the rendered ASCII charts.
	Chart struct {
		Width  int `mapstructure:"width"`
		Height int `mapstructure:"height"`
		Bins   int `mapstructure:"bins"`
	}

	// Export defines where the JSON insights dump is written.
	Export struct {
		Path string `mapstructure:"path"`
	}

	// Sprint defines the simulated sprint board. A non-zero seed makes the
	// simulation reproducible.
	Sprint struct {
		Seed  int64         `mapstructure:"seed"`
		Tasks []sprint.Task `mapstructure:"tasks" validate:"dive"`
	}
)

// Validate returns an error if the Config object is invalid.
func (c Config) Validate() error {
	if err := c.validateDatasets(); err != nil {
		return err
	}

	if err := c.validateDeviations(); err != nil {
		return err
	}

	return validate.Struct(c)
}

func (c Config) validateDatasets() error {
	for _, ds := range c.Datasets {
		if len(ds.Labels) != len(ds.Values) {
			return fmt.Errorf(
				"dataset %s: %w", ds.Name,
				fmt.Errorf(types.ErrLengthMismatch.Error(), len(ds.Labels), len(ds.Values)),
			)
		}
	}
	return nil
}

func (c Config) validateDeviations() error {
	names := make(map[string]struct{}, len(c.Datasets))
	for _, ds := range c.Datasets {
		names[ds.Name] = struct{}{}
	}

	for _, deviation := range c.Deviations {
		if _, ok := names[deviation.Dataset]; !ok {
			return fmt.Errorf(types.ErrUnknownDataset.Error(), deviation.Dataset)
		}

		threshold, err := strconv.ParseFloat(deviation.Threshold, 64)
		if err != nil || threshold <= 0 {
			return fmt.Errorf(types.ErrBadThreshold.Error(), deviation.Dataset, deviation.Threshold)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Analysis.MovingAverageWindow == 0 {
		c.Analysis.MovingAverageWindow = analyzer.DefaultMovingAverageWindow
	}
	if c.Analysis.TopPerformers == 0 {
		c.Analysis.TopPerformers = defaultTopPerformers
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = defaultChartWidth
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = defaultChartHeight
	}
	if c.Chart.Bins == 0 {
		c.Chart.Bins = defaultHistogramBins
	}
	if c.Export.Path == "" {
		c.Export.Path = defaultExportPath
	}
	for i := range c.Sprint.Tasks {
		if c.Sprint.Tasks[i].Status == "" {
			c.Sprint.Tasks[i].Status = sprint.StatusToDo
		}
	}
}

// DeviationsMap converts the deviation_thresholds from the config file
// into a map of thresholds keyed by dataset name.
func (c Config) DeviationsMap() (map[string]float64, error) {
	deviations := make(map[string]float64, len(c.Deviations))
	for _, deviation := range c.Deviations {
		threshold, err := strconv.ParseFloat(deviation.Threshold, 64)
		if err != nil {
			return nil, fmt.Errorf("deviation thresholds must be numeric: %w", err)
		}
		deviations[deviation.Dataset] = threshold
	}
	return deviations, nil
}

// Points builds the analyzer dataset from the configured parallel label
// and value sequences.
func (d Dataset) Points() (types.Dataset, error) {
	return types.NewDataset(d.Labels, d.Values)
}
