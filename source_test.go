// -*- tab-width:2 -*-
package callsim

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleIsDeterministic(t *testing.T) {
	a, err := GenerateSample(DefaultCallConf(), 1000)
	require.NoError(t, err)

	b, err := GenerateSample(DefaultCallConf(), 1000)
	require.NoError(t, err)

	require.Len(t, a, 1000)
	assert.Equal(t, a, b)

	want := []float64{62.484227612091914, 17.113695461372217, 24.662226993778447, 8.906542060809857, 25.15318030208607}
	for i, w := range want {
		assert.InDelta(t, w, a[i], 1e-9, "call %d", i)
	}
}

func TestSampleRange(t *testing.T) {
	conf := DefaultCallConf()

	s, err := GenerateSample(conf, 1000)
	require.NoError(t, err)

	lo := float64(conf.InitiateCallTime + conf.EndCallTime)
	hi := float64(conf.MaxAttempts) * float64(conf.InitiateCallTime+conf.NotAvailableTime+conf.EndCallTime)

	for i, v := range s {
		assert.GreaterOrEqual(t, v, lo, "call %d", i)
		assert.LessOrEqual(t, v, hi, "call %d", i)
	}
}

func TestGenerateSampleRejectsBadSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		s, err := GenerateSample(DefaultCallConf(), n)
		require.ErrorIs(t, err, ErrInvalidSampleSize)
		assert.Nil(t, s)
	}

	g, err := NewGenerator(DefaultCallConf())
	require.NoError(t, err)

	_, err = g.Sample(0)
	require.ErrorIs(t, err, ErrInvalidSampleSize)
	assert.Equal(t, 0, g.Calls())
}

func TestGeneratorContinuesAndResets(t *testing.T) {
	all, err := GenerateSample(DefaultCallConf(), 5)
	require.NoError(t, err)

	g, err := NewGenerator(DefaultCallConf())
	require.NoError(t, err)

	first, err := g.Sample(3)
	require.NoError(t, err)

	rest, err := g.Sample(2)
	require.NoError(t, err)

	assert.Equal(t, all[:3], first)
	assert.Equal(t, all[3:], rest)
	assert.Equal(t, 5, g.Calls())

	g.Reset()
	assert.Equal(t, 0, g.Calls())
	assert.Equal(t, int64(1000), g.Stream().State())

	again, err := g.Sample(5)
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestSampleErrorLeavesGenerator(t *testing.T) {
	conf := DefaultCallConf()
	conf.Generator.Seed = 49402
	conf.Generator.Validate = true

	g, err := NewGenerator(conf)
	require.NoError(t, err)

	s, err := g.Sample(10)
	require.ErrorIs(t, err, ErrDomain)
	assert.Nil(t, s)
	assert.Equal(t, 0, g.Calls())
	assert.Equal(t, int64(49402), g.Stream().State())
}

func TestSampleValidationPassesOnDefaultBatch(t *testing.T) {
	conf := DefaultCallConf()
	conf.Generator.Validate = true

	s, err := GenerateSample(conf, 1000)
	require.NoError(t, err)
	assert.Len(t, s, 1000)
}

func TestSorted(t *testing.T) {
	s := Sample{3, 1, 2}
	sorted := s.Sorted()

	assert.Equal(t, []float64{1, 2, 3}, sorted)
	assert.Equal(t, Sample{3, 1, 2}, s, "Sorted must not reorder the sample")
	assert.True(t, sort.Float64sAreSorted(sorted))
}

func TestNewGeneratorRejectsBadConf(t *testing.T) {
	conf := DefaultCallConf()
	conf.Generator.Seed = -1

	_, err := NewGenerator(conf)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewGenerator(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
