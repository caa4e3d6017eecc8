package booking

import "time"

type Summary struct {
	ID       int64
	BookerID int64
}

type Projection struct {
	Last *Summary
	Next *Summary
}

// Project expects bookings in ascending start order. Last is the latest
// non-rejected booking that has started, Next the earliest one still ahead.
func Project(bookings []*Booking, now time.Time) Projection {
	var p Projection
	for _, b := range bookings {
		if b.Status() == StatusRejected {
			continue
		}
		switch {
		case b.Period().StartedBefore(now):
			p.Last = &Summary{ID: b.ID(), BookerID: b.BookerID()}
		case b.Period().StartsAfter(now):
			if p.Next == nil {
				p.Next = &Summary{ID: b.ID(), BookerID: b.BookerID()}
			}
		}
	}
	return p
}
