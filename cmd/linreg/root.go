package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aouyang1/go-linreg"
	"github.com/aouyang1/go-linreg/dataset"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type flags struct {
	seed       uint64
	samples    int
	slope      float64
	intercept  float64
	noiseScale float64

	summary    bool
	jsonOut    bool
	plotPath   string
	cpuProfile string
	verbose    bool
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	defaults := dataset.NewDefaultOptions()
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "linreg",
		Short: "Fit a simple linear regression to simulated samples",
		Long: `linreg draws standard normal predictor and noise values, builds a response
around a known slope and intercept, and recovers both with closed form ordinary
least squares.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (0 picks one at random)")
	rootCmd.Flags().IntVarP(&f.samples, "samples", "n", defaults.Samples, "Number of samples to simulate")
	rootCmd.Flags().Float64Var(&f.slope, "slope", defaults.Slope, "True slope of the simulated line")
	rootCmd.Flags().Float64Var(&f.intercept, "intercept", defaults.Intercept, "True intercept of the simulated line")
	rootCmd.Flags().Float64Var(&f.noiseScale, "noise", defaults.NoiseScale, "Standard deviation of the simulated noise")
	rootCmd.Flags().BoolVar(&f.summary, "summary", false, "Print a summary table of the fit")
	rootCmd.Flags().BoolVar(&f.jsonOut, "json", false, "Print the fit results as JSON")
	rootCmd.Flags().StringVar(&f.plotPath, "plot", "", "Write an html plot of the fit to this path")
	rootCmd.Flags().StringVar(&f.cpuProfile, "cpuprofile", "", "Write a cpu profile to this directory")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")

	return rootCmd
}

func run(out, errOut io.Writer, f *flags) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})))
	defer slog.SetDefault(prev)

	if f.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(f.cpuProfile), profile.Quiet).Stop()
	}

	demo, err := linreg.New(&linreg.Options{
		Seed: f.seed,
		SampleOptions: &dataset.Options{
			Samples:    f.samples,
			Slope:      f.slope,
			Intercept:  f.intercept,
			NoiseScale: f.noiseScale,
		},
	})
	if err != nil {
		return err
	}

	model := demo.Model()
	fmt.Fprintf(out, "Slope: %v\n", model.Slope())

	data, err := demo.Generate()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "y: %v\n", data.Y)

	model.MustFit(data.X, data.Y)
	fmt.Fprintf(out, "The slope is %v\n", model.Slope())
	fmt.Fprintf(out, "The intercept is %v\n", model.Intercept())

	if !f.summary && !f.jsonOut && f.plotPath == "" {
		return nil
	}

	res, err := demo.Results()
	if err != nil {
		return err
	}

	if f.summary {
		if err := res.TablePrint(out, "", "  "); err != nil {
			return fmt.Errorf("unable to print summary, %w", err)
		}
	}

	if f.jsonOut {
		bytes, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("unable to marshal results, %w", err)
		}
		if _, err := fmt.Fprintln(out, string(bytes)); err != nil {
			return err
		}
	}

	if f.plotPath != "" {
		if err := writePlot(f.plotPath, res); err != nil {
			return err
		}
		slog.Info("wrote fit plot", "path", f.plotPath)
	}
	return nil
}

func writePlot(path string, res *linreg.Results) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close plot file, %w", cerr)
		}
	}()

	if err := res.PlotFit(file); err != nil {
		return fmt.Errorf("unable to render plot, %w", err)
	}
	return nil
}
