package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/aouyang1/go-linreg/dataset"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func parseTrailingFloat(t *testing.T, line, prefix string) float64 {
	t.Helper()
	require.True(t, strings.HasPrefix(line, prefix), line)
	val, err := strconv.ParseFloat(strings.TrimPrefix(line, prefix), 64)
	require.Nil(t, err)
	return val
}

func TestRootDefault(t *testing.T) {
	out, _, err := execute(t)
	require.Nil(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Slope: 0", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "y: ["))
	assert.Len(t, strings.Fields(strings.Trim(strings.TrimPrefix(lines[1], "y: "), "[]")), 100)

	slope := parseTrailingFloat(t, lines[2], "The slope is ")
	intercept := parseTrailingFloat(t, lines[3], "The intercept is ")
	assert.InDelta(t, 2.5, slope, 1.0)
	assert.InDelta(t, 2.0, intercept, 1.0)
}

func TestRootSeedReproducible(t *testing.T) {
	first, _, err := execute(t, "--seed", "42")
	require.Nil(t, err)
	second, _, err := execute(t, "--seed", "42")
	require.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestRootNoiseless(t *testing.T) {
	out, _, err := execute(t, "--seed", "3", "--noise", "0", "--slope", "-1.5", "--intercept", "4", "-n", "12")
	require.Nil(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.InDelta(t, -1.5, parseTrailingFloat(t, lines[2], "The slope is "), 1e-9)
	assert.InDelta(t, 4.0, parseTrailingFloat(t, lines[3], "The intercept is "), 1e-9)
}

func TestRootSummary(t *testing.T) {
	out, _, err := execute(t, "--seed", "5", "--summary")
	require.Nil(t, err)
	assert.Contains(t, out, "Simple Regression:\n")
	assert.Contains(t, out, "  Seed: 5\n")
	assert.Contains(t, out, "Scores:\n")
}

func TestRootJSON(t *testing.T) {
	out, _, err := execute(t, "--seed", "8", "--json", "-n", "10")
	require.Nil(t, err)

	idx := strings.Index(out, "{")
	require.GreaterOrEqual(t, idx, 0)

	var res struct {
		Seed    uint64           `json:"seed"`
		Slope   float64          `json:"slope"`
		Options *dataset.Options `json:"options"`
		Data    *dataset.Dataset `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out[idx:]), &res))
	assert.Equal(t, uint64(8), res.Seed)
	assert.Equal(t, 10, res.Options.Samples)
	assert.Equal(t, 10, res.Data.Len())
}

func TestRootPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.html")
	_, errOut, err := execute(t, "--seed", "13", "--plot", path)
	require.Nil(t, err)

	page, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Contains(t, string(page), "Simple Regression Fit")
	assert.Contains(t, errOut, "wrote fit plot")
}

func TestRootPlotUnwritable(t *testing.T) {
	testData := map[string]string{
		"missing directory": filepath.Join(t.TempDir(), "missing", "fit.html"),
		"directory path":    t.TempDir(),
	}

	for name, path := range testData {
		t.Run(name, func(t *testing.T) {
			out, errOut, err := execute(t, "--seed", "13", "--plot", path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unable to create plot file")
			assert.Contains(t, out, "The slope is ")
			assert.NotContains(t, errOut, "wrote fit plot")
		})
	}
}

func TestRootRestoresLogger(t *testing.T) {
	prev := slog.Default()

	_, errOut, err := execute(t, "--seed", "3", "--verbose")
	require.Nil(t, err)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Same(t, prev, slog.Default())

	path := filepath.Join(t.TempDir(), "fit.html")
	_, errOut, err = execute(t, "--seed", "3", "--plot", path)
	require.Nil(t, err)
	assert.Contains(t, errOut, "wrote fit plot")
	assert.NotContains(t, errOut, "level=DEBUG")
	assert.Same(t, prev, slog.Default())
}

func TestRootInvalid(t *testing.T) {
	testData := map[string]struct {
		args []string
		err  error
	}{
		"zero samples":   {args: []string{"-n", "0"}, err: dataset.ErrInvalidSamples},
		"negative noise": {args: []string{"--noise", "-2"}, err: dataset.ErrInvalidNoiseScale},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, td.args...)
			assert.True(t, errors.Is(err, td.err))
		})
	}

	_, _, err := execute(t, "unexpected")
	assert.Error(t, err)
}
