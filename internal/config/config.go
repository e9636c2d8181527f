// -*- tab-width:2 -*-

// Package config loads the simulation settings from a YAML file
// and CALLSIM_ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	callsim "github.com/jayalane/go-callsim"
)

const envPrefix = "CALLSIM"

// RunConf is everything about a run that is not the call model.
type RunConf struct {
	SampleSize int       `mapstructure:"sample_size"`
	Cutoffs    []float64 `mapstructure:"cutoffs"`
	Bins       int       `mapstructure:"bins"`
	CSVPath    string    `mapstructure:"csv_path"`
	ReportPath string    `mapstructure:"report_path"`
	PlotDir    string    `mapstructure:"plot_dir"`
	LogLevel   string    `mapstructure:"log_level"`
}

// Config captures the full configuration surface.
type Config struct {
	Call callsim.CallConf `mapstructure:"call"`
	Run  RunConf          `mapstructure:"run"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Call: *callsim.DefaultCallConf(),
		Run: RunConf{
			SampleSize: 1000, //nolint:mnd
			Cutoffs:    append([]float64(nil), callsim.DefaultCutoffs...),
			Bins:       30, //nolint:mnd
			LogLevel:   "none",
		},
	}
}

// SetDefaults registers every key so environment variables
// can override values missing from the file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	c, g := d.Call, d.Call.Generator

	for k, val := range map[string]any{
		"call.initiate_call_time":   float64(c.InitiateCallTime),
		"call.busy_time":            float64(c.BusyTime),
		"call.not_available_time":   float64(c.NotAvailableTime),
		"call.end_call_time":        float64(c.EndCallTime),
		"call.busy_bound":           c.BusyBound,
		"call.not_available_bound":  c.NotAvailableBound,
		"call.max_attempts":         c.MaxAttempts,
		"call.pickup_cutoff":        float64(c.PickupCutoff),
		"call.mean_answer_delay":    float64(c.MeanAnswerDelay),
		"call.generator.seed":       g.Seed,
		"call.generator.multiplier": g.Multiplier,
		"call.generator.increment":  g.Increment,
		"call.generator.modulus":    g.Modulus,
		"call.generator.validate":   g.Validate,
		"run.sample_size":           d.Run.SampleSize,
		"run.cutoffs":               d.Run.Cutoffs,
		"run.bins":                  d.Run.Bins,
		"run.csv_path":              d.Run.CSVPath,
		"run.report_path":           d.Run.ReportPath,
		"run.plot_dir":              d.Run.PlotDir,
		"run.log_level":             d.Run.LogLevel,
	} {
		v.SetDefault(k, val)
	}
}

// Load reads configuration from an optional file and the environment.
func Load(path string) (*Config, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is Load on a caller supplied viper, e.g. one with
// command line flags bound to it.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(NewEnvReplacer())
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	cfg := Default()
	cfg.Run.Cutoffs = nil // comes from viper, defaults included

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the call model and the run settings.
func (c *Config) Validate() error {
	if err := c.Call.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Run.SampleSize <= 0 {
		return fmt.Errorf("config: %w: sample_size %d", callsim.ErrInvalidSampleSize, c.Run.SampleSize)
	}

	if c.Run.Bins <= 0 {
		return fmt.Errorf("config: %w: bins %d", callsim.ErrInvalidConfig, c.Run.Bins)
	}

	return nil
}

// NewEnvReplacer maps config keys to environment variable names.
func NewEnvReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_", "-", "_")
}
