// -*- tab-width:2 -*-

package callsim

// This file has the linear congruential generator that drives
// every draw of a simulation run.

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	decimalPlaces = 4
	maxModulus    = 1 << 31 // keeps state*multiplier inside int64
)

// GeneratorConf holds the parameters of the random stream.
type GeneratorConf struct {
	Seed       int64 `mapstructure:"seed"`
	Multiplier int64 `mapstructure:"multiplier"`
	Increment  int64 `mapstructure:"increment"`
	Modulus    int64 `mapstructure:"modulus"`
	// Validate makes Normalize fail on a decimal outside [0,1).
	// States within 0.00005 of the modulus round up to 1.
	Validate bool `mapstructure:"validate"`
}

// DefaultGeneratorConf returns the reference generator parameters.
func DefaultGeneratorConf() GeneratorConf {
	return GeneratorConf{
		Seed:       1000,    //nolint:mnd
		Multiplier: 24693,   //nolint:mnd
		Increment:  3517,    //nolint:mnd
		Modulus:    1 << 17, //nolint:mnd // 131072
	}
}

// Check reports whether the parameters describe a usable generator.
func (g GeneratorConf) Check() error {
	switch {
	case g.Modulus <= 0 || g.Modulus > maxModulus:
		return fmt.Errorf("%w: modulus %d not in (0, %d]", ErrInvalidConfig, g.Modulus, int64(maxModulus))
	case g.Multiplier <= 0 || g.Multiplier >= g.Modulus:
		return fmt.Errorf("%w: multiplier %d not in (0, %d)", ErrInvalidConfig, g.Multiplier, g.Modulus)
	case g.Increment < 0 || g.Increment >= g.Modulus:
		return fmt.Errorf("%w: increment %d not in [0, %d)", ErrInvalidConfig, g.Increment, g.Modulus)
	case g.Seed < 0 || g.Seed >= g.Modulus:
		return fmt.Errorf("%w: seed %d not in [0, %d)", ErrInvalidConfig, g.Seed, g.Modulus)
	}

	return nil
}

// NextState advances an LCG state by one step.
func NextState(prev int64, g GeneratorConf) int64 {
	return (prev*g.Multiplier + g.Increment) % g.Modulus
}

// Normalize maps a state to a decimal rounded half-to-even to
// four places.
func Normalize(state int64, g GeneratorConf) (float64, error) {
	d := scalar.RoundEven(float64(state)/float64(g.Modulus), decimalPlaces)
	if g.Validate && (d < 0 || d >= 1) {
		return d, &DomainError{State: state, Modulus: g.Modulus, Decimal: d}
	}

	return d, nil
}

// Stream is the generator state. It is a value: every
// advancing method hands back the Stream to use next.
type Stream struct {
	state int64
	conf  GeneratorConf
}

// NewStream returns a Stream positioned at conf.Seed.
func NewStream(conf GeneratorConf) (Stream, error) {
	Init()

	if err := conf.Check(); err != nil {
		return Stream{}, err
	}

	return Stream{state: conf.Seed, conf: conf}, nil
}

// State is the last state produced (the seed before any draw).
func (s Stream) State() int64 {
	return s.state
}

// Next returns the advanced stream and its new state.
func (s Stream) Next() (Stream, int64) {
	s.state = NextState(s.state, s.conf)

	return s, s.state
}

// Draw advances the stream and returns the new state as a decimal.
func (s Stream) Draw() (Stream, float64, error) {
	next, state := s.Next()

	d, err := Normalize(state, s.conf)
	if err != nil {
		return s, d, err
	}

	ml.La("draw", state, d)

	return next, d, nil
}
