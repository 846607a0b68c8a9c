package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/macrohard/datalens/sprint"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "datalens.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	path := writeConfig(t, `
[[datasets]]
name = "monthly_sales"
labels = ["January", "February", "March"]
values = [45000.0, 52000.0, 48000.0]

[[deviation_thresholds]]
dataset = "monthly_sales"
threshold = "2.0"

[analysis]
moving_average_window = 4
top_performers = 2

[chart]
width = 60
height = 12
bins = 5

[export]
path = "insights.json"

[sprint]
seed = 42

[[sprint.tasks]]
id = 1
title = "Login API"
points = 5
status = "In Progress"
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	require.Len(t, cfg.Datasets, 1)
	require.Equal(t, "monthly_sales", cfg.Datasets[0].Name)

	points, err := cfg.Datasets[0].Points()
	require.NoError(t, err)
	require.Len(t, points, 3)
	require.Equal(t, "January", points[0].Label)
	require.Equal(t, 45000.0, points[0].Value)

	deviations, err := cfg.DeviationsMap()
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"monthly_sales": 2.0}, deviations)

	require.Equal(t, 4, cfg.Analysis.MovingAverageWindow)
	require.Equal(t, 2, cfg.Analysis.TopPerformers)
	require.Equal(t, 60, cfg.Chart.Width)
	require.Equal(t, 12, cfg.Chart.Height)
	require.Equal(t, 5, cfg.Chart.Bins)
	require.Equal(t, "insights.json", cfg.Export.Path)

	require.Equal(t, int64(42), cfg.Sprint.Seed)
	require.Len(t, cfg.Sprint.Tasks, 1)
	require.Equal(t, sprint.StatusInProgress, cfg.Sprint.Tasks[0].Status)
}

func TestParseConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[[datasets]]
name = "tiny"
labels = ["a", "b"]
values = [1.0, 2.0]

[[sprint.tasks]]
id = 1
title = "Spike"
points = 3
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	require.Equal(t, 3, cfg.Analysis.MovingAverageWindow)
	require.Equal(t, 3, cfg.Analysis.TopPerformers)
	require.Equal(t, 50, cfg.Chart.Width)
	require.Equal(t, 10, cfg.Chart.Height)
	require.Equal(t, 10, cfg.Chart.Bins)
	require.Equal(t, "output.json", cfg.Export.Path)

	// tasks without a status start in To Do
	require.Equal(t, sprint.StatusToDo, cfg.Sprint.Tasks[0].Status)
}

func TestParseConfigEmptyPath(t *testing.T) {
	_, err := ParseConfig("")
	require.ErrorIs(t, err, ErrEmptyConfigPath)
}

func TestParseConfigLengthMismatch(t *testing.T) {
	path := writeConfig(t, `
[[datasets]]
name = "bad"
labels = ["a", "b", "c"]
values = [1.0, 2.0]
`)

	_, err := ParseConfig(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "must be the same length")
}

func TestParseConfigUnknownDeviationDataset(t *testing.T) {
	path := writeConfig(t, `
[[datasets]]
name = "known"
labels = ["a", "b"]
values = [1.0, 2.0]

[[deviation_thresholds]]
dataset = "unknown"
threshold = "2.0"
`)

	_, err := ParseConfig(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown dataset")
}

func TestParseConfigBadThreshold(t *testing.T) {
	for _, threshold := range []string{"abc", "-1.5", "0"} {
		path := writeConfig(t, `
[[datasets]]
name = "sales"
labels = ["a", "b"]
values = [1.0, 2.0]

[[deviation_thresholds]]
dataset = "sales"
threshold = "`+threshold+`"
`)

		_, err := ParseConfig(path)
		require.Error(t, err)
		require.ErrorContains(t, err, "must be a positive number")
	}
}

func TestParseConfigUnknownSprintStatus(t *testing.T) {
	path := writeConfig(t, `
[[datasets]]
name = "sales"
labels = ["a", "b"]
values = [1.0, 2.0]

[[sprint.tasks]]
id = 1
title = "Login API"
points = 5
status = "Blocked"
`)

	_, err := ParseConfig(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown task status")
}

func TestParseConfigNoDatasets(t *testing.T) {
	path := writeConfig(t, `
[analysis]
top_performers = 3
`)

	_, err := ParseConfig(path)
	require.Error(t, err)
}
