// -*- tab-width:2 -*-

package callsim

// This file is the redial state machine for one customer call.

import (
	count "github.com/jayalane/go-counter"
)

// OutcomeKind is what happened on one dialing attempt.
type OutcomeKind int

const (
	// Busy means the line was busy.
	Busy OutcomeKind = iota
	// NotAvailable means nobody picked up.
	NotAvailable
	// Missed means the line was available but the pickup
	// took longer than the cutoff.
	Missed
	// Answered means the customer got through.
	Answered
)

func (k OutcomeKind) String() string {
	switch k {
	case Busy:
		return "busy"
	case NotAvailable:
		return "not_available"
	case Missed:
		return "missed"
	case Answered:
		return "answered"
	default:
		return "unknown"
	}
}

// Attempt is one dial and its cost.
type Attempt struct {
	Kind OutcomeKind
	// Decimal is the draw that picked the case.
	Decimal float64
	// Answer is the second draw, only on an available line.
	Answer      float64
	AnswerDelay Seconds
	// Wait is the time spent between dialing and hanging up.
	Wait     Seconds
	Elapsed  Seconds
	Resolved bool
}

// CallResult is one fully resolved call: answered, or given
// up after the retry policy ran out.
type CallResult struct {
	Elapsed  Seconds
	Answered bool
	Attempts []Attempt
}

// Failed is the number of attempts that did not connect.
func (r CallResult) Failed() int {
	if r.Answered {
		return len(r.Attempts) - 1
	}

	return len(r.Attempts)
}

// SimulateCall runs one call against the stream and returns the
// stream to use for the next call.
func SimulateCall(conf *CallConf, s Stream) (CallResult, Stream, error) {
	if err := conf.Validate(); err != nil {
		return CallResult{}, s, err
	}

	return simulateCall(conf, conf.answerDelayModel(), s)
}

func simulateCall(conf *CallConf, model ModelCdf, s Stream) (CallResult, Stream, error) {
	res := CallResult{}
	retry := conf.RetryPolicy().NewRetryState()

	for !res.Answered && !retry.Exhausted() {
		res.Elapsed += conf.InitiateCallTime

		a, next, err := dial(conf, model, s)
		if err != nil {
			return CallResult{}, s, err
		}

		s = next
		res.Elapsed += a.Wait + conf.EndCallTime

		if a.Resolved {
			res.Answered = true
		} else {
			retry.Record()
		}

		res.Attempts = append(res.Attempts, a)

		count.IncrSyncSuffix("call_attempt", a.Kind.String())
		ml.Ls("attempt", len(res.Attempts), a.Kind.String(), "decimal", a.Decimal,
			"wait", a.Wait, "total", res.Elapsed)
	}

	if res.Answered {
		count.IncrSync("call_answered")
	} else {
		count.IncrSync("call_abandoned")
	}

	return res, s, nil
}

// dial draws the outcome of one attempt.
func dial(conf *CallConf, model ModelCdf, s Stream) (Attempt, Stream, error) {
	s, r, err := s.Draw()
	if err != nil {
		return Attempt{}, s, err
	}

	a := Attempt{Decimal: r}

	switch {
	case r < conf.BusyBound:
		a.Kind = Busy
		a.Wait = conf.BusyTime
	case r < conf.NotAvailableBound:
		a.Kind = NotAvailable
		a.Wait = conf.NotAvailableTime
	default:
		var u float64

		s, u, err = s.Draw()
		if err != nil {
			return Attempt{}, s, err
		}

		a.Answer = u
		a.AnswerDelay = Seconds(model(u))

		if a.AnswerDelay < conf.PickupCutoff {
			a.Kind = Answered
			a.Wait = a.AnswerDelay
			a.Resolved = true
		} else {
			a.Kind = Missed
			a.Wait = conf.PickupCutoff
		}
	}

	a.Elapsed = conf.InitiateCallTime + a.Wait + conf.EndCallTime

	return a, s, nil
}
