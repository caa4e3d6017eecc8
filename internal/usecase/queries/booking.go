package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, q booking.Query, page Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, q booking.Query, page Page) ([]*BookingView, error)
	// ListByItem and ListByItems order each item's bookings by start ascending.
	ListByItem(ctx context.Context, itemID int64) ([]*BookingView, error)
	ListByItems(ctx context.Context, itemIDs []int64) ([]*BookingView, error)
}

type UserReadStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, requesterID, bookingID int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state string, page Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state string, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, requesterID, bookingID int64) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.BookingNotFound(bookingID)
		}
		return nil, err
	}

	b := booking.Reconstruct(view.ID, booking.ReconstructPeriod(view.Start, view.End), booking.Status(view.Status), view.ItemID, view.BookerID)
	if !b.VisibleTo(requesterID, view.ItemOwnerID) {
		return nil, errs.NotFoundf("User id=%d is not the booker/owner of item id=%d or the specified item does not exist", requesterID, view.ItemID)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID int64, state string, page Page) ([]*BookingView, error) {
	query, err := q.prepare(ctx, bookerID, state)
	if err != nil {
		return nil, err
	}
	return q.bookings.ListByBooker(ctx, bookerID, query, page)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, state string, page Page) ([]*BookingView, error) {
	query, err := q.prepare(ctx, ownerID, state)
	if err != nil {
		return nil, err
	}
	return q.bookings.ListByOwner(ctx, ownerID, query, page)
}

// prepare checks the subject before the token, so an unknown user wins over
// an unknown state.
func (q *bookingQueriesImpl) prepare(ctx context.Context, userID int64, state string) (booking.Query, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return booking.Query{}, err
	}
	return booking.NewQuery(state, q.clock.Now())
}

func requireUser(ctx context.Context, users UserReadStore, userID int64) error {
	ok, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return shared.UserNotFound(userID)
	}
	return nil
}

// toDomain rebuilds the aggregate for projection. Rows with an unknown status
// are skipped.
func toDomain(views []*BookingView) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(views))
	for _, v := range views {
		status, err := booking.ParseStatus(v.Status)
		if err != nil {
			continue
		}
		out = append(out, booking.Reconstruct(v.ID, booking.ReconstructPeriod(v.Start, v.End), status, v.ItemID, v.BookerID))
	}
	return out
}
