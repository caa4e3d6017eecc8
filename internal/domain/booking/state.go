package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

// State is the temporal filter a listing is requested with.
type State string

const (
	StateAll      State = "ALL"
	StatePast     State = "PAST"
	StateCurrent  State = "CURRENT"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// Tokens are matched exactly; "past" is not PAST.
func ParseState(token string) (State, error) {
	switch s := State(token); s {
	case StateAll, StatePast, StateCurrent, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", errs.UnknownState(token)
	}
}

func (s State) String() string {
	return string(s)
}

// Order is the sort a listing returns in.
type Order int

const (
	OrderStartDesc Order = iota
	// CURRENT keeps creation order among bookings that are active together.
	OrderIDAsc
)

// Query is a state bound to the instant it is evaluated at.
type Query struct {
	state State
	now   time.Time
}

func NewQuery(token string, now time.Time) (Query, error) {
	state, err := ParseState(token)
	if err != nil {
		return Query{}, err
	}
	return Query{state: state, now: now}, nil
}

func (q Query) State() State   { return q.state }
func (q Query) Now() time.Time { return q.now }

func (q Query) Order() Order {
	if q.state == StateCurrent {
		return OrderIDAsc
	}
	return OrderStartDesc
}

// Matches is the in-memory form of the predicate the store applies.
func (q Query) Matches(b *Booking) bool {
	switch q.state {
	case StateAll:
		return true
	case StatePast:
		return b.Period().EndedBefore(q.now)
	case StateCurrent:
		return b.Period().Contains(q.now)
	case StateFuture:
		return b.Period().StartsAfter(q.now)
	case StateWaiting:
		return b.Status() == StatusWaiting
	case StateRejected:
		return b.Status() == StatusRejected
	default:
		return false
	}
}
