// -*- tab-width:2 -*-
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	callsim "github.com/jayalane/go-callsim"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "callsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, int64(1000), cfg.Call.Generator.Seed)
	assert.Equal(t, int64(131072), cfg.Call.Generator.Modulus)
	assert.Equal(t, 4, cfg.Call.MaxAttempts)
	assert.Equal(t, 1000, cfg.Run.SampleSize)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
call:
  busy_time: 5
  max_attempts: 6
  generator:
    seed: 42
    validate: true
run:
  sample_size: 250
  cutoffs: [10, 50]
  csv_path: out.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, callsim.Seconds(5), cfg.Call.BusyTime)
	assert.Equal(t, callsim.Seconds(6), cfg.Call.InitiateCallTime, "unset keys keep defaults")
	assert.Equal(t, 6, cfg.Call.MaxAttempts)
	assert.Equal(t, int64(42), cfg.Call.Generator.Seed)
	assert.Equal(t, int64(24693), cfg.Call.Generator.Multiplier)
	assert.True(t, cfg.Call.Generator.Validate)
	assert.Equal(t, 250, cfg.Run.SampleSize)
	assert.Equal(t, []float64{10, 50}, cfg.Run.Cutoffs)
	assert.Equal(t, "out.csv", cfg.Run.CSVPath)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CALLSIM_RUN_SAMPLE_SIZE", "50")
	t.Setenv("CALLSIM_CALL_GENERATOR_SEED", "7")
	t.Setenv("CALLSIM_CALL_PICKUP_CUTOFF", "30")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Run.SampleSize)
	assert.Equal(t, int64(7), cfg.Call.Generator.Seed)
	assert.Equal(t, callsim.Seconds(30), cfg.Call.PickupCutoff)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "call:\n  max_attempts: 0\n"))
	require.ErrorIs(t, err, callsim.ErrInvalidConfig)

	_, err = Load(writeConfig(t, "run:\n  sample_size: -1\n"))
	require.ErrorIs(t, err, callsim.ErrInvalidSampleSize)

	_, err = Load(writeConfig(t, "call:\n  generator:\n    modulus: 0\n"))
	require.ErrorIs(t, err, callsim.ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadedConfigRunsTheReferenceBatch(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	s, err := callsim.GenerateSample(&cfg.Call, cfg.Run.SampleSize)
	require.NoError(t, err)

	ref, err := callsim.GenerateSample(callsim.DefaultCallConf(), 1000)
	require.NoError(t, err)

	assert.Equal(t, ref, s)
}
