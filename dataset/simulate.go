package dataset

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-linreg/floatsunrolled"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInvalidSamples    = errors.New("number of samples must be at least 1")
	ErrInvalidNoiseScale = errors.New("noise scale must be non-negative")
)

// Options configures the simulated line y = Slope*x + Intercept + NoiseScale*e where x and e
// are drawn from a standard normal distribution
type Options struct {
	Samples    int     `json:"samples"`
	Slope      float64 `json:"slope"`
	Intercept  float64 `json:"intercept"`
	NoiseScale float64 `json:"noise_scale"`
}

// NewDefaultOptions returns 100 samples around y = 2.5x + 2.0 with unit noise
func NewDefaultOptions() *Options {
	return &Options{
		Samples:    100,
		Slope:      2.5,
		Intercept:  2.0,
		NoiseScale: 1.0,
	}
}

// Validate runs basic validation on the simulation options. A nil receiver returns the
// default options.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.Samples < 1 {
		return nil, fmt.Errorf("got %d samples, %w", o.Samples, ErrInvalidSamples)
	}
	if o.NoiseScale < 0 {
		return nil, fmt.Errorf("got noise scale of %f, %w", o.NoiseScale, ErrInvalidNoiseScale)
	}
	return o, nil
}

type Series []float64

// Add adds src into the series element-wise and returns the series for chaining
func (s Series) Add(src Series) Series {
	floatsunrolled.Add(s, src)
	return s
}

// Sampler draws from a seeded standard normal distribution. Two samplers created with the
// same seed produce the same sequence of draws.
type Sampler struct {
	norm distuv.Normal
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{
		norm: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewSource(seed),
		},
	}
}

// StdNormal draws n values from the standard normal distribution
func (s *Sampler) StdNormal(n int) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, s.norm.Rand())
	}
	return Series(y)
}

// Noise draws n standard normal values scaled by noiseScale
func (s *Sampler) Noise(n int, noiseScale float64) Series {
	y := s.StdNormal(n)
	floatsunrolled.ScaleTo(y, noiseScale, y)
	return y
}

// Linear returns slope*x + intercept for every value in x
func Linear(x []float64, slope, intercept float64) Series {
	y := floatsunrolled.ScaleTo(nil, slope, x)
	floats.AddConst(intercept, y)
	return Series(y)
}

// Generate draws the predictor first and then the noise from the sampler, returning the
// simulated dataset
func Generate(s *Sampler, opt *Options) (*Dataset, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	x := s.StdNormal(opt.Samples)
	noise := s.Noise(opt.Samples, opt.NoiseScale)

	y := Linear(x, opt.Slope, opt.Intercept).Add(noise)

	d, err := NewDataset(x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create simulated dataset, %w", err)
	}
	d.Noise = noise
	return d, nil
}
