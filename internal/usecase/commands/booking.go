package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*shared.BookingSnapshot, error)
	Patch(ctx context.Context, actorID, bookingID int64, approved bool) (*shared.BookingSnapshot, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*shared.BookingSnapshot, error) {
	now := uc.clock.Now()

	var created *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := loadItem(ctx, tx.Reads(), req.ItemID)
		if err != nil {
			return err
		}

		// Item and date faults take precedence over an unknown booker.
		b, err := booking.NewBooking(item.Spec(), bookerID, req.Start, req.End, now)
		if err != nil {
			return err
		}
		if _, err := loadUser(ctx, tx.Reads(), bookerID); err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return err
		}
		created, err = loadBooking(ctx, tx.Reads(), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *bookingUseCaseImpl) Patch(ctx context.Context, actorID, bookingID int64, approved bool) (*shared.BookingSnapshot, error) {
	var updated *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := loadBooking(ctx, tx.Reads(), bookingID)
		if err != nil {
			return err
		}

		next, err := snap.Booking().Decide(actorID, snap.ItemSpec(), approved)
		if err != nil {
			return err
		}

		if err = tx.Bookings().UpdateStatusIfWaiting(ctx, tx.DB(), bookingID, next); err != nil {
			if !infra.IsKind(err, infra.KindConflict) {
				return err
			}
			// Another decision committed between the read and the update.
			current, rerr := loadBooking(ctx, tx.Reads(), bookingID)
			if rerr != nil {
				return rerr
			}
			return booking.AlreadyDecided(current.Status)
		}

		updated, err = loadBooking(ctx, tx.Reads(), bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
