// -*- tab-width:2 -*-

package callsim

// This file has the inverse cdf's used to turn a uniform
// decimal into a time.

import (
	"gonum.org/v1/gonum/stat/distuv"
)

const defaultMeanAnswerDelay = 12.0

// ModelCdf is the inverse Cdf of a Distribution: given a
// probability p it returns z such that P(Z <= z) = p.
type ModelCdf func(p float64) float64

// ExponentialQuantile returns the inverse CDF of an exponential
// random variable with the given mean. Probabilities outside
// [0, 1) map to 0.
func ExponentialQuantile(mean float64) ModelCdf {
	exp := distuv.Exponential{Rate: 1 / mean}

	return func(p float64) float64 {
		if p < 0 || p >= 1 {
			return 0
		}

		return exp.Quantile(p)
	}
}

// InverseCDF is the answer delay model: exponential with a
// mean of 12 seconds.
func InverseCDF(u float64) float64 {
	return answerDelay(u)
}

var answerDelay = ExponentialQuantile(defaultMeanAnswerDelay)

// UniformCDF returns the inverse CDF of a uniform random variable over [a, b].
func UniformCDF(a, b float64) ModelCdf {
	return func(p float64) float64 {
		if p < 0 {
			return a
		}

		if p > 1 {
			return b
		}

		return a + p*(b-a) // Linear interpolation between a and b
	}
}
