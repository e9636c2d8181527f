// -*- tab-width:2 -*-

package callsim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSampleSize is returned when a batch of zero or fewer calls is asked for.
	ErrInvalidSampleSize = errors.New("invalid sample size")
	// ErrDomain is returned when a generator state normalizes outside [0,1).
	ErrDomain = errors.New("decimal outside [0,1)")
	// ErrInvalidConfig is returned by Validate and the constructors.
	ErrInvalidConfig = errors.New("invalid config")
)

// DomainError reports the state that produced an out of range decimal.
type DomainError struct {
	State   int64
	Modulus int64
	Decimal float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("state %d mod %d normalizes to %v: %v",
		e.State, e.Modulus, e.Decimal, ErrDomain)
}

// Unwrap lets errors.Is match ErrDomain.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
