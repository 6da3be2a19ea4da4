// Package linearmodel fits a straight line through paired samples using the closed form
// ordinary least squares solution
package linearmodel

import (
	"fmt"

	"github.com/aouyang1/go-linreg/floatsunrolled"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SimpleRegression computes ordinary least squares for a single predictor and response
type SimpleRegression struct {
	slope     float64
	intercept float64
}

// NewSimpleRegression initializes a simple regression model with a zero slope and intercept
func NewSimpleRegression() *SimpleRegression {
	return &SimpleRegression{}
}

// Fit the model according to the given predictor and response samples. Both slope and
// intercept are overwritten on success and left untouched on error. A zero variance
// predictor or fewer than two samples is not rejected and yields NaN or infinite
// parameters.
func (s *SimpleRegression) Fit(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("predictor has %d values and response has %d values, %w", len(x), len(y), ErrLengthMismatch)
	}

	n := float64(len(x))
	sumX := floatsunrolled.Sum(x)
	sumY := floatsunrolled.Sum(y)
	sumXY := floatsunrolled.Dot(x, y)
	sumX2 := floatsunrolled.Dot(x, x)

	denom := n*sumX2 - sumX*sumX
	s.slope = (n*sumXY - sumX*sumY) / denom
	s.intercept = (sumY*sumX2 - sumX*sumXY) / denom
	return nil
}

// MustFit is like Fit but panics if the predictor and response lengths differ
func (s *SimpleRegression) MustFit(x, y []float64) {
	if err := s.Fit(x, y); err != nil {
		panic(err)
	}
}

// Predict returns slope*x + intercept for every predictor value
func (s *SimpleRegression) Predict(x []float64) []float64 {
	res := floatsunrolled.ScaleTo(nil, s.slope, x)
	floats.AddConst(s.intercept, res)
	return res
}

// Score computes the coefficient of determination of the prediction
func (s *SimpleRegression) Score(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0.0, fmt.Errorf("predictor has %d values and response has %d values, %w", len(x), len(y), ErrLengthMismatch)
	}
	return stat.RSquaredFrom(s.Predict(x), y, nil), nil
}

// Slope returns the fitted slope. Defaults to 0.0 before fitting.
func (s *SimpleRegression) Slope() float64 {
	return s.slope
}

// Intercept returns the fitted intercept. Defaults to 0.0 before fitting.
func (s *SimpleRegression) Intercept() float64 {
	return s.intercept
}

// ModelEq returns a string representation of the model as y ~ b + m*x
func (s *SimpleRegression) ModelEq() string {
	return fmt.Sprintf("y ~ %.2f%+.2f*x", s.intercept, s.slope)
}
