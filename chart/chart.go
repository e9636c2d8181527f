// -*- tab-width:2 -*-

// Package chart draws a call time sample: a frequency histogram
// and the empirical CDF against an exponential reference.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	width       = 6 * vg.Inch
	height      = 4 * vg.Inch
	refSamples  = 200
	markerSize  = 3
	defaultBins = 30
)

var errEmpty = errors.New("chart: empty sample")

// Histogram plots the frequency of call times.
func Histogram(sample []float64, bins int) (*plot.Plot, error) {
	if len(sample) == 0 {
		return nil, errEmpty
	}

	if bins <= 0 {
		bins = defaultBins
	}

	h, err := plotter.NewHist(plotter.Values(sample), bins)
	if err != nil {
		return nil, fmt.Errorf("chart: histogram: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Total call time"
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = "calls"
	p.Add(h)

	return p, nil
}

// CDF plots the empirical CDF of the sample as a step line,
// an exponential CDF with the given mean for reference, and a
// marker at each cutoff.
func CDF(sample []float64, mean float64, cutoffs []float64) (*plot.Plot, error) {
	if len(sample) == 0 {
		return nil, errEmpty
	}

	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	pts := make(plotter.XYs, len(sorted))

	for i, v := range sorted {
		pts[i].X = v
		pts[i].Y = float64(i+1) / n
	}

	emp, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: cdf: %w", err)
	}

	emp.StepStyle = plotter.PostStep
	emp.LineStyle.Color = color.RGBA{B: 200, A: 255} //nolint:mnd

	p := plot.New()
	p.Title.Text = "Empirical CDF of total call time"
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = "P[W <= w]"
	p.Add(emp)
	p.Legend.Add("empirical", emp)

	if mean > 0 {
		ref := plotter.NewFunction(distuv.Exponential{Rate: 1 / mean}.CDF)
		ref.XMin, ref.XMax = 0, sorted[len(sorted)-1]
		ref.Samples = refSamples
		ref.Color = color.RGBA{R: 200, A: 255} //nolint:mnd
		ref.Dashes = []vg.Length{vg.Points(4), vg.Points(2)} //nolint:mnd
		p.Add(ref)
		p.Legend.Add(fmt.Sprintf("exponential, mean %g", mean), ref)
	}

	if len(cutoffs) > 0 {
		marks := make(plotter.XYs, len(cutoffs))
		for i, c := range cutoffs {
			marks[i].X = c
			marks[i].Y = stat.CDF(c, stat.Empirical, sorted, nil)
		}

		sc, err := plotter.NewScatter(marks)
		if err != nil {
			return nil, fmt.Errorf("chart: cutoffs: %w", err)
		}

		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(markerSize)
		p.Add(sc)
		p.Legend.Add("cutoffs", sc)
	}

	p.Legend.Top = false
	p.Legend.Left = false

	return p, nil
}

// Save renders the plot; the format follows the file extension.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}
