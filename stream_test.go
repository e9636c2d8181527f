// -*- tab-width:2 -*-
package callsim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStateFromSeed(t *testing.T) {
	g := DefaultGeneratorConf()

	state := NextState(g.Seed, g)
	assert.Equal(t, int64((1000*24693+3517)%131072), state)
	assert.Equal(t, int64(54981), state)

	d, err := Normalize(state, g)
	require.NoError(t, err)
	assert.Equal(t, 0.4195, d)
}

func TestStreamIsAValue(t *testing.T) {
	s, err := NewStream(DefaultGeneratorConf())
	require.NoError(t, err)

	next, state := s.Next()
	assert.Equal(t, int64(1000), s.State(), "original stream must not move")
	assert.Equal(t, int64(54981), state)
	assert.Equal(t, state, next.State())

	again, _ := s.Next()
	assert.Equal(t, next, again)
}

func TestStreamCycle(t *testing.T) {
	g := DefaultGeneratorConf()
	seen := make([]bool, g.Modulus)

	s, err := NewStream(g)
	require.NoError(t, err)

	seen[s.State()] = true
	length := 0

	for {
		var state int64

		s, state = s.Next()
		length++

		require.GreaterOrEqual(t, state, int64(0))
		require.Less(t, state, g.Modulus)

		if seen[state] {
			break
		}

		seen[state] = true
	}

	assert.LessOrEqual(t, length, int(g.Modulus))
	assert.Equal(t, int(g.Modulus), length, "reference parameters have a full period")
	assert.Equal(t, g.Seed, s.State(), "full period returns to the seed")
}

func TestNormalizeRoundsHalfToEven(t *testing.T) {
	g := DefaultGeneratorConf()

	// 4096/131072 is exactly 0.03125
	d, err := Normalize(4096, g)
	require.NoError(t, err)
	assert.Equal(t, 0.0312, d)

	d, err = Normalize(0, g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestNormalizeTopStates(t *testing.T) {
	g := DefaultGeneratorConf()

	d, err := Normalize(131071, g)
	require.NoError(t, err, "validation is off by default")
	assert.Equal(t, 1.0, d)

	g.Validate = true
	_, err = Normalize(131071, g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDomain))

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, int64(131071), de.State)
	assert.Equal(t, int64(131072), de.Modulus)
	assert.Equal(t, 1.0, de.Decimal)

	d, err = Normalize(131065, g)
	require.NoError(t, err)
	assert.Equal(t, 0.9999, d)
}

func TestDrawFailsWithoutAdvancing(t *testing.T) {
	g := DefaultGeneratorConf()
	g.Seed = 49402 // next state is 131071
	g.Validate = true

	s, err := NewStream(g)
	require.NoError(t, err)

	after, _, err := s.Draw()
	require.ErrorIs(t, err, ErrDomain)
	assert.Equal(t, int64(49402), after.State())
}

func TestGeneratorConfCheck(t *testing.T) {
	for name, mod := range map[string]func(*GeneratorConf){
		"zero modulus":        func(g *GeneratorConf) { g.Modulus = 0 },
		"huge modulus":        func(g *GeneratorConf) { g.Modulus = 1 << 40 },
		"zero multiplier":     func(g *GeneratorConf) { g.Multiplier = 0 },
		"negative increment":  func(g *GeneratorConf) { g.Increment = -1 },
		"seed past modulus":   func(g *GeneratorConf) { g.Seed = g.Modulus },
		"negative seed":       func(g *GeneratorConf) { g.Seed = -5 },
		"increment past mod.": func(g *GeneratorConf) { g.Increment = g.Modulus },
	} {
		t.Run(name, func(t *testing.T) {
			g := DefaultGeneratorConf()
			mod(&g)

			_, err := NewStream(g)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
