//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func at(id int64, start time.Time, status booking.Status, booker int64) *booking.Booking {
	return booking.Reconstruct(id, booking.ReconstructPeriod(start, start.Add(time.Hour)), status, itemID, booker)
}

func TestProject(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("rejected bookings are skipped on both sides", func(t *testing.T) {
		history := []*booking.Booking{
			at(1, now.Add(-2*day), booking.StatusRejected, 7),
			at(2, now.Add(-day), booking.StatusApproved, 8),
			at(3, now.Add(day), booking.StatusWaiting, 9),
		}

		p := booking.Project(history, now)

		assert.Equal(t, &booking.Summary{ID: 2, BookerID: 8}, p.Last)
		assert.Equal(t, &booking.Summary{ID: 3, BookerID: 9}, p.Next)
	})

	t.Run("latest started wins, earliest upcoming wins", func(t *testing.T) {
		history := []*booking.Booking{
			at(1, now.Add(-3*day), booking.StatusApproved, 7),
			at(2, now.Add(-day), booking.StatusWaiting, 8),
			at(3, now.Add(day), booking.StatusRejected, 9),
			at(4, now.Add(2*day), booking.StatusApproved, 10),
			at(5, now.Add(3*day), booking.StatusWaiting, 11),
		}

		p := booking.Project(history, now)

		assert.Equal(t, int64(2), p.Last.ID)
		assert.Equal(t, int64(4), p.Next.ID)
	})

	t.Run("booking starting exactly now is neither", func(t *testing.T) {
		p := booking.Project([]*booking.Booking{at(1, now, booking.StatusApproved, 7)}, now)

		assert.Nil(t, p.Last)
		assert.Nil(t, p.Next)
	})

	t.Run("empty history", func(t *testing.T) {
		p := booking.Project(nil, now)

		assert.Nil(t, p.Last)
		assert.Nil(t, p.Next)
	})

	t.Run("only rejected", func(t *testing.T) {
		history := []*booking.Booking{
			at(1, now.Add(-day), booking.StatusRejected, 7),
			at(2, now.Add(day), booking.StatusRejected, 7),
		}

		p := booking.Project(history, now)

		assert.Nil(t, p.Last)
		assert.Nil(t, p.Next)
	})
}
