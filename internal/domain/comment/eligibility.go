package comment

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
)

type EligibilityInput struct {
	UserID      int64
	ItemID      int64
	ItemOwnerID int64
	// The user's bookings of the item, any status, ascending by start.
	History []*booking.Booking
	Now     time.Time
}

// CheckEligibility rejects the owner first, then users who never booked the
// item, then users none of whose bookings has ended yet.
func CheckEligibility(in EligibilityInput) error {
	if in.UserID == in.ItemOwnerID {
		return errs.NotFoundf("Unable to add a comment. User id=%d is the owner of item id=%d", in.UserID, in.ItemID)
	}
	if len(in.History) == 0 {
		return errs.Validationf("User id=%d has not booked item id=%d", in.UserID, in.ItemID)
	}
	for _, b := range in.History {
		if b.Period().EndedBefore(in.Now) {
			return nil
		}
	}
	return errs.Validationf("User id=%d is still the holder of item id=%d", in.UserID, in.ItemID)
}
