// Package dataset holds paired predictor and response samples along with the utilities to
// simulate them for demonstrations and tests
package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrNoSamples          = errors.New("no samples")
	ErrDatasetLenMismatch = errors.New("predictor has a different length than response")
)

// Dataset represents paired samples where X[i] is observed with Y[i]. Noise is optional and
// holds the error term used when the response was simulated.
type Dataset struct {
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Noise []float64 `json:"noise,omitempty"`
}

// NewDataset returns a copy of the predictor and response as a Dataset. Both must have the
// same, non-zero length.
func NewDataset(x, y []float64) (*Dataset, error) {
	if len(y) == 0 {
		return nil, ErrNoSamples
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"predictor has length of %d, but response has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}, nil
}

// Len returns the number of paired samples
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.X)
}

// XY returns the i-th sample pair
func (d *Dataset) XY(i int) (float64, float64) {
	return d.X[i], d.Y[i]
}
