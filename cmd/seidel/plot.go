package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeResidualPlot renders the residual-per-sweep trace as a PNG at path.
func writeResidualPlot(path string, trace []tracePoint) error {
	p := plot.New()
	p.Title.Text = "Gauss-Seidel residual"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "sum |Ax - b|"

	pts := make(plotter.XYs, len(trace))
	for i, tp := range trace {
		pts[i].X = float64(tp.iter)
		pts[i].Y = float64(tp.residual)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("residual plot: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("residual plot: %w", err)
	}
	return nil
}
