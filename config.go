// -*- tab-width:2 -*-

package callsim

import (
	"fmt"
)

// CallConf configures a single call and the batch that
// repeats it. Times are in seconds.
type CallConf struct {
	InitiateCallTime Seconds `mapstructure:"initiate_call_time"`
	BusyTime         Seconds `mapstructure:"busy_time"`
	NotAvailableTime Seconds `mapstructure:"not_available_time"`
	EndCallTime      Seconds `mapstructure:"end_call_time"`

	// A draw below BusyBound is busy, below NotAvailableBound
	// is not available, the rest is available.
	BusyBound         float64 `mapstructure:"busy_bound"`
	NotAvailableBound float64 `mapstructure:"not_available_bound"`

	MaxAttempts     int     `mapstructure:"max_attempts"`
	PickupCutoff    Seconds `mapstructure:"pickup_cutoff"`
	MeanAnswerDelay Seconds `mapstructure:"mean_answer_delay"`

	Generator GeneratorConf `mapstructure:"generator"`

	// AnswerDelay overrides the exponential answer delay model
	// built from MeanAnswerDelay.
	AnswerDelay ModelCdf `mapstructure:"-"`
}

// DefaultCallConf returns the reference call parameters.
func DefaultCallConf() *CallConf {
	return &CallConf{
		InitiateCallTime: 6,  //nolint:mnd
		BusyTime:         3,  //nolint:mnd
		NotAvailableTime: 25, //nolint:mnd
		EndCallTime:      1,  //nolint:mnd

		BusyBound:         0.2, //nolint:mnd
		NotAvailableBound: 0.5, //nolint:mnd

		MaxAttempts:     DefaultRetryPolicy().MaxAttempts,
		PickupCutoff:    25, //nolint:mnd
		MeanAnswerDelay: defaultMeanAnswerDelay,

		Generator: DefaultGeneratorConf(),
	}
}

// Validate checks the configuration.
func (c *CallConf) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil call conf", ErrInvalidConfig)
	}

	for name, v := range map[string]Seconds{
		"initiate_call_time": c.InitiateCallTime,
		"busy_time":          c.BusyTime,
		"not_available_time": c.NotAvailableTime,
		"end_call_time":      c.EndCallTime,
		"pickup_cutoff":      c.PickupCutoff,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidConfig, name, v)
		}
	}

	if c.BusyBound < 0 || c.BusyBound > c.NotAvailableBound || c.NotAvailableBound > 1 {
		return fmt.Errorf("%w: bounds must satisfy 0 <= %v <= %v <= 1",
			ErrInvalidConfig, c.BusyBound, c.NotAvailableBound)
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts %d < 1", ErrInvalidConfig, c.MaxAttempts)
	}

	if c.AnswerDelay == nil && c.MeanAnswerDelay <= 0 {
		return fmt.Errorf("%w: mean_answer_delay %v must be positive", ErrInvalidConfig, c.MeanAnswerDelay)
	}

	return c.Generator.Check()
}

// RetryPolicy returns the redial bound of this configuration.
func (c *CallConf) RetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: c.MaxAttempts}
}

// answerDelayModel picks the inverse CDF used for the answer delay.
func (c *CallConf) answerDelayModel() ModelCdf {
	if c.AnswerDelay != nil {
		return c.AnswerDelay
	}

	if c.MeanAnswerDelay == defaultMeanAnswerDelay {
		return answerDelay
	}

	return ExponentialQuantile(float64(c.MeanAnswerDelay))
}
