// -*- tab-width:2 -*-

package callsim

// This file is the batch driver: a source of calls that all
// share one random stream.

import (
	"fmt"
	"sort"

	count "github.com/jayalane/go-counter"
)

// Sample is the total time of each call in a batch, in the
// order the calls were simulated. Treat it as read only.
type Sample []float64

// Sorted returns an ascending copy of the sample.
func (s Sample) Sorted() []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	sort.Float64s(out)

	return out
}

// Generator is a source of calls. Every call continues the
// stream left by the previous one, so the order of calls
// decides their values. Not safe for concurrent use.
type Generator struct {
	conf   *CallConf
	model  ModelCdf
	start  Stream
	stream Stream
	calls  int
}

// NewGenerator turns a call configuration into a Generator
// positioned at the configured seed.
func NewGenerator(conf *CallConf) (*Generator, error) {
	Init()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	s, err := NewStream(conf.Generator)
	if err != nil {
		return nil, err
	}

	return &Generator{
		conf:   conf,
		model:  conf.answerDelayModel(),
		start:  s,
		stream: s,
	}, nil
}

// Call simulates the next call.
func (g *Generator) Call() (CallResult, error) {
	res, next, err := simulateCall(g.conf, g.model, g.stream)
	if err != nil {
		return CallResult{}, fmt.Errorf("call %d: %w", g.calls, err)
	}

	g.stream = next
	g.calls++
	count.MarkDistribution("call_elapsed_seconds", float64(res.Elapsed))

	return res, nil
}

// Sample simulates n calls in order. On error the generator is
// left where it was and no partial sample is returned.
func (g *Generator) Sample(n int) (Sample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, n)
	}

	saved, savedCalls := g.stream, g.calls
	out := make(Sample, 0, n)

	for i := 0; i < n; i++ {
		res, err := g.Call()
		if err != nil {
			g.stream, g.calls = saved, savedCalls

			return nil, err
		}

		out = append(out, float64(res.Elapsed))
	}

	ml.Ln("generated sample of", n, "calls, stream at", g.stream.State())

	return out, nil
}

// Reset rewinds the generator to its seed.
func (g *Generator) Reset() {
	g.stream = g.start
	g.calls = 0
}

// Stream is the stream the next call will draw from.
func (g *Generator) Stream() Stream {
	return g.stream
}

// Calls is how many calls have been simulated since the seed.
func (g *Generator) Calls() int {
	return g.calls
}

// GenerateSample simulates n calls from the configured seed.
func GenerateSample(conf *CallConf, n int) (Sample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, n)
	}

	g, err := NewGenerator(conf)
	if err != nil {
		return nil, err
	}

	return g.Sample(n)
}
