package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_mock.go -package=repositorymock

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBookingStatusIfWaiting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusIfWaitingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	row, err := r.queries.CreateBooking(ctx, tx, sqlc.CreateBookingParams{
		StartDate: pgconv.TimeToPgtype(b.Start()),
		EndDate:   pgconv.TimeToPgtype(b.End()),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    b.Status().String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

// UpdateStatusIfWaiting writes only the status column, and only while the
// row is still WAITING.
func (r *BookingRepository) UpdateStatusIfWaiting(ctx context.Context, tx sqlc.DBTX, bookingID int64, status booking.Status) error {
	affected, err := r.queries.UpdateBookingStatusIfWaiting(ctx, tx, sqlc.UpdateBookingStatusIfWaitingParams{
		ID:     bookingID,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking is no longer waiting", nil, infra.KindConflict)
	}
	return nil
}
