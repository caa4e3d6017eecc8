package booking

import (
	"errors"
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition is not allowed")
)

// ItemSpec is what a booking needs to know about the booked item.
type ItemSpec struct {
	ID        int64
	OwnerID   int64
	Available bool
}

type Booking struct {
	id       int64
	period   Period
	status   Status
	itemID   int64
	bookerID int64
}

// NewBooking validates a booking request against the item and the instant the
// request was received. The result is WAITING and has no id until stored.
func NewBooking(item ItemSpec, bookerID int64, start, end, now time.Time) (*Booking, error) {
	if item.OwnerID == bookerID {
		return nil, errs.NotFoundf("Unable to create booking. The specified user id=%d is the owner of item id=%d", bookerID, item.ID)
	}
	if !item.Available {
		return nil, errs.Validationf("The specified item id=%d is not available", item.ID)
	}

	period, err := NewPeriod(start, end, now)
	if err != nil {
		return nil, err
	}

	return &Booking{
		period:   period,
		status:   StatusWaiting,
		itemID:   item.ID,
		bookerID: bookerID,
	}, nil
}

func Reconstruct(id int64, period Period, status Status, itemID, bookerID int64) *Booking {
	return &Booking{
		id:       id,
		period:   period,
		status:   status,
		itemID:   itemID,
		bookerID: bookerID,
	}
}

// Decide resolves the owner's answer into the next status. A decided booking
// is reported before ownership so the caller learns the booking is closed.
func (b *Booking) Decide(actorID int64, item ItemSpec, approved bool) (Status, error) {
	if b.status != StatusWaiting {
		return "", AlreadyDecided(b.status)
	}
	if item.OwnerID != actorID {
		return "", errs.NotFoundf("Unable to approve booking. The specified user id=%d is not the owner of item id=%d", actorID, item.ID)
	}

	next := StatusRejected
	if approved {
		next = StatusApproved
	}
	if !CanTransition(b.status, next) {
		return "", ErrInvalidTransition
	}
	return next, nil
}

func AlreadyDecided(status Status) error {
	return errs.Validationf("Booking is already %s by owner of item", status)
}

// VisibleTo reports whether the user is a party to the booking.
func (b *Booking) VisibleTo(userID, itemOwnerID int64) bool {
	return userID == b.bookerID || userID == itemOwnerID
}

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) Period() Period   { return b.period }
func (b *Booking) Start() time.Time { return b.period.Start() }
func (b *Booking) End() time.Time   { return b.period.End() }
func (b *Booking) Status() Status   { return b.status }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) BookerID() int64  { return b.bookerID }
