package linreg

import (
	"fmt"

	"github.com/aouyang1/go-linreg/dataset"
)

// Options configures a demonstration run. A Seed of 0 picks a seed at random when the demo is
// created; the chosen seed is reported back in the results so the run can be reproduced.
type Options struct {
	Seed          uint64           `json:"seed"`
	SampleOptions *dataset.Options `json:"sample_options"`
}

// NewDefaultOptions returns a randomly seeded run of 100 samples around y = 2.5x + 2.0
func NewDefaultOptions() *Options {
	return &Options{
		SampleOptions: dataset.NewDefaultOptions(),
	}
}

// Validate runs basic validation on the demo options. A nil receiver returns the default
// options.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}

	sampleOpt, err := o.SampleOptions.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid sample options, %w", err)
	}
	o.SampleOptions = sampleOpt
	return o, nil
}
