package linreg

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-linreg/floatsunrolled"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the fit scores
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates the fit scores given the predicted and actual input slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}

	return &Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   rs,
	}, nil
}

// validPairs drops every pair where either value is NaN, returning the remaining predicted and
// actual values in their original order
func validPairs(predicted, actual []float64) ([]float64, []float64, error) {
	if len(predicted) != len(actual) {
		return nil, nil, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	predictCopy := make([]float64, 0, len(predicted))
	actualCopy := make([]float64, 0, len(actual))
	for i := 0; i < len(predicted); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		predictCopy = append(predictCopy, predicted[i])
		actualCopy = append(actualCopy, actual[i])
	}
	return predictCopy, actualCopy, nil
}

// MSE computes the mean squared error over the non-NaN pairs. A score of 0 means a perfect
// match with no errors. NaN is returned if no pair can be scored.
func MSE(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs(predicted, actual)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return math.NaN(), nil
	}

	diff := floats.SubTo(make([]float64, len(a)), a, p)
	return floatsunrolled.Dot(diff, diff) / float64(len(diff)), nil
}

// MAPE calculates the mean average percent error over the non-NaN pairs with a non-zero actual.
// A score of 0 means a perfect match with no errors. NaN is returned if no pair can be scored.
func MAPE(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs(predicted, actual)
	if err != nil {
		return 0, err
	}

	var mape float64
	var cnt int
	for i, act := range a {
		if act == 0 {
			continue
		}
		mape += math.Abs((act - p[i]) / act)
		cnt++
	}
	if cnt == 0 {
		return math.NaN(), nil
	}
	return mape / float64(cnt), nil
}

// RSquared computes the r squared value between the predicted and actual where 1.0 means perfect
// fit and 0 represents no relationship. NaN pairs are ignored.
func RSquared(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs(predicted, actual)
	if err != nil {
		return 0, err
	}
	return stat.RSquaredFrom(p, a, nil), nil
}
