// Package linreg demonstrates simple linear regression by fitting a closed form ordinary least
// squares line through samples simulated around a known slope and intercept
package linreg

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/aouyang1/go-linreg/dataset"
	"github.com/aouyang1/go-linreg/linearmodel"
)

var ErrNoDataset = errors.New("no dataset generated")

// Demo owns a simple regression model and the simulated samples it is fit against
type Demo struct {
	opt  *Options
	seed uint64

	model *linearmodel.SimpleRegression
	data  *dataset.Dataset
}

// New creates a demo using the provided options. If no options are provided a default is used.
func New(opt *Options) (*Demo, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	seed := opt.Seed
	if seed == 0 {
		seed = rand.Uint64()
		slog.Debug("no seed provided, using random seed", "seed", seed)
	}

	return &Demo{
		opt:   opt,
		seed:  seed,
		model: linearmodel.NewSimpleRegression(),
	}, nil
}

// Seed returns the seed the samples are drawn with
func (d *Demo) Seed() uint64 {
	return d.seed
}

// Model returns the underlying simple regression model
func (d *Demo) Model() *linearmodel.SimpleRegression {
	return d.model
}

// Generate draws a fresh dataset from the demo seed. Repeated calls return the same samples.
func (d *Demo) Generate() (*dataset.Dataset, error) {
	data, err := dataset.Generate(dataset.NewSampler(d.seed), d.opt.SampleOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to generate samples, %w", err)
	}
	d.data = data
	slog.Debug("generated samples",
		"samples", data.Len(),
		"slope", d.opt.SampleOptions.Slope,
		"intercept", d.opt.SampleOptions.Intercept,
		"noise_scale", d.opt.SampleOptions.NoiseScale,
	)
	return data, nil
}

// Dataset returns the most recently generated dataset
func (d *Demo) Dataset() *dataset.Dataset {
	return d.data
}

// Fit fits the model against the generated dataset
func (d *Demo) Fit() error {
	if d.data == nil {
		return ErrNoDataset
	}
	if err := d.model.Fit(d.data.X, d.data.Y); err != nil {
		return fmt.Errorf("unable to fit simple regression, %w", err)
	}
	slog.Debug("fit simple regression", "slope", d.model.Slope(), "intercept", d.model.Intercept())
	return nil
}

// Results summarizes the current model parameters against the generated dataset
func (d *Demo) Results() (*Results, error) {
	if d.data == nil {
		return nil, ErrNoDataset
	}

	predicted := d.model.Predict(d.data.X)
	scores, err := NewScores(predicted, d.data.Y)
	if err != nil {
		return nil, fmt.Errorf("unable to score fit, %w", err)
	}

	return &Results{
		Seed:      d.seed,
		Options:   d.opt.SampleOptions,
		Slope:     d.model.Slope(),
		Intercept: d.model.Intercept(),
		ModelEq:   d.model.ModelEq(),
		Scores:    scores,
		Data:      d.data,
	}, nil
}

// Run generates samples, fits the model and returns the results
func Run(opt *Options) (*Results, error) {
	d, err := New(opt)
	if err != nil {
		return nil, err
	}
	if _, err := d.Generate(); err != nil {
		return nil, err
	}
	if err := d.Fit(); err != nil {
		return nil, err
	}
	return d.Results()
}
