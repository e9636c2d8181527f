// -*- tab-width:2 -*-

package callsim

// RetryPolicy bounds how many times a customer redials.
type RetryPolicy struct {
	MaxAttempts int
}

// RetryState tracks the failed attempts of one call.
type RetryState struct {
	policy  RetryPolicy
	attempt int
}

// DefaultRetryPolicy returns the four attempt cap.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 4, //nolint:mnd
	}
}

// NewRetryState starts a call with no failed attempts.
func (p RetryPolicy) NewRetryState() *RetryState {
	return &RetryState{policy: p}
}

// Record counts one attempt that did not connect.
func (r *RetryState) Record() {
	r.attempt++
}

// Attempts is the number of failed attempts so far.
func (r *RetryState) Attempts() int {
	return r.attempt
}

// Exhausted reports whether the customer gives up.
func (r *RetryState) Exhausted() bool {
	return r.attempt >= r.policy.MaxAttempts
}
