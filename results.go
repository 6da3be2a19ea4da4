package linreg

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-linreg/dataset"
)

// Results captures the parameters used to simulate the samples alongside the fitted model
type Results struct {
	Seed      uint64           `json:"seed"`
	Options   *dataset.Options `json:"options"`
	Slope     float64          `json:"slope"`
	Intercept float64          `json:"intercept"`
	ModelEq   string           `json:"model_eq"`
	Scores    *Scores          `json:"scores"`
	Data      *dataset.Dataset `json:"data,omitempty"`
}

func indentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}

// TablePrint writes a human readable summary of the results
func (r *Results) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sSimple Regression:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sSeed: %d\n", prefix, indentExpand(indent, 1), r.Seed); err != nil {
		return err
	}
	if r.Data != nil {
		if _, err := fmt.Fprintf(w, "%s%sSamples: %d\n", prefix, indentExpand(indent, 1), r.Data.Len()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s%sModel: %s\n", prefix, indentExpand(indent, 1), r.ModelEq); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%sParameters:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tbl, "%s%sName\tTrue\tFitted\t\n", prefix, indentExpand(indent, 1)); err != nil {
		return err
	}
	trueSlope, trueIntercept := "...", "..."
	if r.Options != nil {
		trueSlope = fmt.Sprintf("%.3f", r.Options.Slope)
		trueIntercept = fmt.Sprintf("%.3f", r.Options.Intercept)
	}
	if _, err := fmt.Fprintf(tbl, "%s%sslope\t%s\t%.3f\t\n", prefix, indentExpand(indent, 1), trueSlope, r.Slope); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "%s%sintercept\t%s\t%.3f\t\n", prefix, indentExpand(indent, 1), trueIntercept, r.Intercept); err != nil {
		return err
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	if r.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, indentExpand(indent, 1),
			r.Scores.MAPE,
			r.Scores.MSE,
			r.Scores.R2,
		); err != nil {
			return err
		}
	}
	return nil
}
