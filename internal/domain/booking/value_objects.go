package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrSameDates  = errs.Validationf("Start and end dates can`t be the same")
	ErrWrongStart = errs.Validationf("Wrong start data value")
	ErrWrongEnd   = errs.Validationf("Wrong end data value")
)

type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod checks, in order, equal bounds, a start in the past and an end in
// the past or before the start. The first failing check is reported.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if end.Equal(start) {
		return Period{}, ErrSameDates
	}
	if start.Before(now) {
		return Period{}, ErrWrongStart
	}
	if end.Before(now) || end.Before(start) {
		return Period{}, ErrWrongEnd
	}
	return Period{start: start, end: end}, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) EndedBefore(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) StartedBefore(now time.Time) bool {
	return p.start.Before(now)
}

func (p Period) StartsAfter(now time.Time) bool {
	return p.start.After(now)
}

// Contains is inclusive on both bounds.
func (p Period) Contains(now time.Time) bool {
	return !p.start.After(now) && !p.end.Before(now)
}
