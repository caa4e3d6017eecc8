package shared

import (
	"time"

	"shareit/internal/domain/booking"
)

type UserSnapshot struct {
	ID   int64
	Name string
}

type ItemSnapshot struct {
	ID        int64
	OwnerID   int64
	Name      string
	Available bool
}

func (s *ItemSnapshot) Spec() booking.ItemSpec {
	return booking.ItemSpec{ID: s.ID, OwnerID: s.OwnerID, Available: s.Available}
}

// BookingSnapshot carries the booking together with the item facts needed to
// authorize and render it.
type BookingSnapshot struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      booking.Status
	BookerID    int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
}

func (s *BookingSnapshot) Booking() *booking.Booking {
	return booking.Reconstruct(s.ID, booking.ReconstructPeriod(s.Start, s.End), s.Status, s.ItemID, s.BookerID)
}

func (s *BookingSnapshot) ItemSpec() booking.ItemSpec {
	return booking.ItemSpec{ID: s.ItemID, OwnerID: s.ItemOwnerID}
}
