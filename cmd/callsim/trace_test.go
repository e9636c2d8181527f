// -*- tab-width:2 -*-
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	callsim "github.com/jayalane/go-callsim"
)

func TestTraceFirstCall(t *testing.T) {
	g, err := callsim.NewGenerator(callsim.DefaultCallConf())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, trace(&buf, g, 1))

	out := buf.String()
	assert.Contains(t, out, "call 0\n")
	assert.Contains(t, out, "attempt 1 not_available r=0.4195 +32.0000")
	assert.Contains(t, out, "attempt 4 answered")
	assert.Contains(t, out, "u=0.2520 delay=3.4842")
	assert.Contains(t, out, "total 62.4842 answered=true")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}
