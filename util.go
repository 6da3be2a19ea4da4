package linreg

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// ScatterFit generates an echart scatter of the samples overlapped with the fitted line drawn
// across the range of the predictor
func ScatterFit(r *Results) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    "Simple Regression Fit",
				Subtitle: r.ModelEq,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
	)

	scatterData := make([]opts.ScatterData, 0, r.Data.Len())
	for i := 0; i < r.Data.Len(); i++ {
		x, y := r.Data.XY(i)
		scatterData = append(scatterData, opts.ScatterData{Value: []float64{x, y}})
	}
	scatter.AddSeries("Actual", scatterData)

	if r.Data.Len() > 0 && finite(r.Slope) && finite(r.Intercept) {
		xMin, xMax := floats.Min(r.Data.X), floats.Max(r.Data.X)
		line := charts.NewLine()
		line.AddSeries("Fit", []opts.LineData{
			{Value: []float64{xMin, r.Slope*xMin + r.Intercept}},
			{Value: []float64{xMax, r.Slope*xMax + r.Intercept}},
		})
		scatter.Overlap(line)
	}
	return scatter
}

// ScatterResidual generates an echart scatter of the fit residual against the predictor
func ScatterResidual(r *Results) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Fit Residual",
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "residual", Type: "value"}),
	)

	residual := make([]float64, r.Data.Len())
	for i := range residual {
		x, y := r.Data.XY(i)
		residual[i] = y - (r.Slope*x + r.Intercept)
	}

	scatterData := make([]opts.ScatterData, 0, len(residual))
	for i, res := range residual {
		if !finite(res) {
			continue
		}
		scatterData = append(scatterData, opts.ScatterData{Value: []float64{r.Data.X[i], res}})
	}
	scatter.AddSeries("Residual", scatterData)
	return scatter
}

// PlotFit uses the Apache Echarts library to generate an html page showing the samples with the
// fitted line and the fit residual
func (r *Results) PlotFit(w io.Writer) error {
	if r.Data == nil {
		return ErrNoDataset
	}

	page := components.NewPage()
	page.AddCharts(
		ScatterFit(r),
		ScatterResidual(r),
	)
	return page.Render(w)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
