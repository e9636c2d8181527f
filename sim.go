// -*- tab-width:2 -*-

// Package callsim simulates a customer-service call that is redialed
// against an unreliable line and summarizes the total time spent on it
// over a batch of calls.
package callsim

import (
	"sync"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
)

var (
	ml       *ll.Lll
	mlOnce   sync.Once
	cntOnce  sync.Once
	initLock sync.Mutex
)

// Seconds is the internal sim time type.
type Seconds float64

// Init must be called before any simulation stuff
// it inits the logger and the counters. It is safe
// to call more than once.
func Init() {
	initLock.Lock()
	defer initLock.Unlock()

	mlOnce.Do(func() {
		ml = ll.Init("CALLSIM", "none")
	})
	cntOnce.Do(count.InitCounters)
}

// InitWithLogger is an init where you can
// pass in the go-lll logger.
func InitWithLogger(l *ll.Lll) {
	initLock.Lock()
	defer initLock.Unlock()

	mlOnce.Do(func() {
		ml = l
	})
	cntOnce.Do(count.InitCounters)
}
