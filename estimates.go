// -*- tab-width:2 -*-

package callsim

// This file summarizes a sample: mean, quartiles, range and
// the share of calls on either side of some cutoffs.

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

const (
	reportPlaces      = 2
	probabilityPlaces = 3
)

// DefaultCutoffs are the call times, in seconds, reported on
// when none are given.
var DefaultCutoffs = []float64{15, 20, 30, 40, 60, 100} //nolint:gochecknoglobals,mnd

// Threshold is the share of calls at most and above a cutoff.
type Threshold struct {
	Cutoff float64 `yaml:"cutoff"`
	AtMost float64 `yaml:"at_most"`
	Above  float64 `yaml:"above"`
}

// Estimates are the statistics of one sample.
type Estimates struct {
	N          int         `yaml:"n"`
	Mean       float64     `yaml:"mean"`
	Q1         float64     `yaml:"q1"`
	Median     float64     `yaml:"median"`
	Q3         float64     `yaml:"q3"`
	Min        float64     `yaml:"min"`
	Max        float64     `yaml:"max"`
	Thresholds []Threshold `yaml:"thresholds"`
}

// OrderStatisticIndex is the 0-based rank in an ascending sort
// of n values that holds the p quantile: the lowest value with
// at least a fraction p of the sample at or below it.
func OrderStatisticIndex(n int, p float64) int {
	i := int(math.Ceil(p*float64(n))) - 1
	if i < 0 {
		return 0
	}

	if i > n-1 {
		return n - 1
	}

	return i
}

// OrderStatistic returns the p quantile of sorted data without
// interpolating; see OrderStatisticIndex.
func OrderStatistic(sorted []float64, p float64) float64 {
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Estimate computes the statistics of a sample.
func Estimate(sample Sample, cutoffs []float64) (*Estimates, error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInvalidSampleSize)
	}

	sorted := sample.Sorted()

	e := &Estimates{
		N:      len(sorted),
		Mean:   scalar.Round(stat.Mean(sorted, nil), reportPlaces),
		Q1:     scalar.Round(OrderStatistic(sorted, 0.25), reportPlaces), //nolint:mnd
		Median: scalar.Round(OrderStatistic(sorted, 0.5), reportPlaces),  //nolint:mnd
		Q3:     scalar.Round(OrderStatistic(sorted, 0.75), reportPlaces), //nolint:mnd
		Min:    scalar.Round(floats.Min(sorted), reportPlaces),
		Max:    scalar.Round(floats.Max(sorted), reportPlaces),
	}

	for _, c := range cutoffs {
		atMost := stat.CDF(c, stat.Empirical, sorted, nil)
		e.Thresholds = append(e.Thresholds, Threshold{
			Cutoff: c,
			AtMost: scalar.Round(atMost, probabilityPlaces),
			Above:  scalar.Round(1-atMost, probabilityPlaces),
		})
	}

	return e, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', reportPlaces, 64)
}

func formatCutoff(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// Map returns every statistic by name.
func (e *Estimates) Map() map[string]string {
	m := map[string]string{
		"n":      strconv.Itoa(e.N),
		"mean":   formatSeconds(e.Mean),
		"q1":     formatSeconds(e.Q1),
		"median": formatSeconds(e.Median),
		"q3":     formatSeconds(e.Q3),
		"range":  "[" + formatSeconds(e.Min) + ", " + formatSeconds(e.Max) + "]",
	}

	for _, t := range e.Thresholds {
		c := formatCutoff(t.Cutoff)
		m["P[W<="+c+"]"] = strconv.FormatFloat(t.AtMost, 'f', probabilityPlaces, 64)
		m["P[W>"+c+"]"] = strconv.FormatFloat(t.Above, 'f', probabilityPlaces, 64)
	}

	return m
}

// Fprint writes the estimates as a console report.
func (e *Estimates) Fprint(w io.Writer) error {
	m := e.Map()

	lines := []string{"n", "mean", "q1", "median", "q3", "range"}
	for _, t := range e.Thresholds {
		c := formatCutoff(t.Cutoff)
		lines = append(lines, "P[W<="+c+"]", "P[W>"+c+"]")
	}

	for _, k := range lines {
		if _, err := fmt.Fprintf(w, "%-12s %s\n", k, m[k]); err != nil {
			return err
		}
	}

	return nil
}

// Report is the estimates of one run as written to disk.
type Report struct {
	RunID     string     `yaml:"run_id"`
	Seed      int64      `yaml:"seed"`
	Estimates *Estimates `yaml:"estimates"`
}

// WriteYAML encodes the report.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}
