//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

type BookingBuilder struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      booking.Status
	BookerID    int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
	return &BookingBuilder{
		ID:          1,
		Start:       start,
		End:         start.Add(24 * time.Hour),
		Status:      booking.StatusWaiting,
		BookerID:    2,
		ItemID:      10,
		ItemName:    "Cordless drill",
		ItemOwnerID: 1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(b.ID, booking.ReconstructPeriod(b.Start, b.End), b.Status, b.ItemID, b.BookerID)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status,
		BookerID:    b.BookerID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.ItemOwnerID,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
		BookerID:    b.BookerID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.ItemOwnerID,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID int64) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithItem(itemID, ownerID int64) *BookingBuilder {
	b.ItemID = itemID
	b.ItemOwnerID = ownerID
	return b
}

// AsPast places the booking a day entirely before now.
func (b *BookingBuilder) AsPast(now time.Time) *BookingBuilder {
	return b.WithPeriod(now.Add(-48*time.Hour), now.Add(-24*time.Hour))
}

func (b *BookingBuilder) AsCurrent(now time.Time) *BookingBuilder {
	return b.WithPeriod(now.Add(-time.Hour), now.Add(time.Hour))
}

func (b *BookingBuilder) AsFuture(now time.Time) *BookingBuilder {
	return b.WithPeriod(now.Add(24*time.Hour), now.Add(48*time.Hour))
}
