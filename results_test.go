package linreg

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/aouyang1/go-linreg/dataset"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noiselessResults(t *testing.T) *Results {
	t.Helper()
	res, err := Run(&Options{
		Seed: 17,
		SampleOptions: &dataset.Options{
			Samples:    20,
			Slope:      2.5,
			Intercept:  2.0,
			NoiseScale: 0,
		},
	})
	require.Nil(t, err)
	return res
}

func TestResultsTablePrint(t *testing.T) {
	res := noiselessResults(t)

	var buf bytes.Buffer
	require.Nil(t, res.TablePrint(&buf, "", "  "))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Simple Regression:\n"))
	assert.Contains(t, out, "  Seed: 17\n")
	assert.Contains(t, out, "  Samples: 20\n")
	assert.Contains(t, out, "  Model: y ~ 2.00+2.50*x\n")
	assert.Contains(t, out, "Parameters:\n")
	assert.Contains(t, out, "slope")
	assert.Contains(t, out, "intercept")
	assert.Contains(t, out, "2.500")
	assert.Contains(t, out, "R2: 1.000")
}

func TestResultsTablePrintPrefix(t *testing.T) {
	res := noiselessResults(t)

	var buf bytes.Buffer
	require.Nil(t, res.TablePrint(&buf, "# ", "  "))
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "# "), line)
	}
}

func TestResultsJSON(t *testing.T) {
	res := noiselessResults(t)

	out, err := json.Marshal(res)
	require.Nil(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 17.0, decoded["seed"])
	assert.Equal(t, "y ~ 2.00+2.50*x", decoded["model_eq"])
	assert.Contains(t, decoded, "scores")
	assert.Contains(t, decoded, "data")

	options, ok := decoded["options"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 20.0, options["samples"])
}

func TestResultsPlotFit(t *testing.T) {
	res := noiselessResults(t)

	var buf bytes.Buffer
	require.Nil(t, res.PlotFit(&buf))

	out := buf.String()
	assert.Contains(t, out, "Simple Regression Fit")
	assert.Contains(t, out, "Fit Residual")

	empty := &Results{}
	assert.ErrorIs(t, empty.PlotFit(&buf), ErrNoDataset)
}

func TestScatterFitDegenerate(t *testing.T) {
	data := &dataset.Dataset{X: []float64{2, 2, 2}, Y: []float64{1, 2, 3}}

	testData := map[string]struct {
		slope     float64
		intercept float64
		series    int
	}{
		"finite":        {slope: 1, intercept: 0, series: 2},
		"nan slope":     {slope: math.NaN(), intercept: 0, series: 1},
		"inf slope":     {slope: math.Inf(1), intercept: 0, series: 1},
		"inf intercept": {slope: 1, intercept: math.Inf(-1), series: 1},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := &Results{Slope: td.slope, Intercept: td.intercept, Data: data}
			assert.Len(t, ScatterFit(res).MultiSeries, td.series)

			var buf bytes.Buffer
			require.Nil(t, res.PlotFit(&buf))
		})
	}
}
