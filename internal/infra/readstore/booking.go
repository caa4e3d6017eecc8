package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.BookingRow, error)
	ListBookingsByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListPastBookingsByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListCurrentBookingsByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListFutureBookingsByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListBookingsByBookerAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListBookingsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListPastBookingsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListCurrentBookingsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListFutureBookingsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListBookingsByOwnerAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)
	ListBookingsByItem(ctx context.Context, db sqlc.DBTX, itemID int64) ([]sqlc.BookingRow, error)
	ListBookingsByItems(ctx context.Context, db sqlc.DBTX, itemIDs []int64) ([]sqlc.BookingRow, error)
	ListBookingsByBookerAndItem(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByBookerAndItemParams) ([]sqlc.BookingRow, error)
}

type listFunc func(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.BookingRow, error)

// stateQueries holds one statement per temporal filter. WAITING and REJECTED
// share the status statement.
type stateQueries struct {
	all, past, current, future, status listFunc
}

func (s stateQueries) pick(state booking.State) (listFunc, error) {
	switch state {
	case booking.StateAll:
		return s.all, nil
	case booking.StatePast:
		return s.past, nil
	case booking.StateCurrent:
		return s.current, nil
	case booking.StateFuture:
		return s.future, nil
	case booking.StateWaiting, booking.StateRejected:
		return s.status, nil
	default:
		return nil, infra.WrapRepoErr("no statement for booking state "+state.String(), nil, infra.KindDBFailure)
	}
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
	booker  stateQueries
	owner   stateQueries
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		booker: stateQueries{
			all:     queries.ListBookingsByBooker,
			past:    queries.ListPastBookingsByBooker,
			current: queries.ListCurrentBookingsByBooker,
			future:  queries.ListFutureBookingsByBooker,
			status:  queries.ListBookingsByBookerAndStatus,
		},
		owner: stateQueries{
			all:     queries.ListBookingsByOwner,
			past:    queries.ListPastBookingsByOwner,
			current: queries.ListCurrentBookingsByOwner,
			future:  queries.ListFutureBookingsByOwner,
			status:  queries.ListBookingsByOwnerAndStatus,
		},
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID int64, q booking.Query, page queries.Page) ([]*queries.BookingView, error) {
	return r.list(ctx, r.booker, bookerID, q, page)
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID int64, q booking.Query, page queries.Page) ([]*queries.BookingView, error) {
	return r.list(ctx, r.owner, ownerID, q, page)
}

func (r *BookingReadStore) list(ctx context.Context, set stateQueries, subjectID int64, q booking.Query, page queries.Page) ([]*queries.BookingView, error) {
	fn, err := set.pick(q.State())
	if err != nil {
		return nil, err
	}

	params := sqlc.ListBookingsParams{
		SubjectID: subjectID,
		Now:       pgconv.TimeToPgtype(q.Now()),
		Limit:     page.Limit(),
		Offset:    page.Offset(),
	}
	// Only the status statement reads Status; the state names match the stored values.
	if q.State() == booking.StateWaiting || q.State() == booking.StateRejected {
		params.Status = q.State().String()
	}

	rows, err := fn(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings in state "+q.State().String(), err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByItem(ctx context.Context, itemID int64) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByItems(ctx context.Context, itemIDs []int64) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByItems(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by items", err)
	}
	return toBookingViews(rows), nil
}

// ListByBookerAndItem orders by start ascending.
func (r *BookingReadStore) ListByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByBookerAndItem(ctx, r.db, sqlc.ListBookingsByBookerAndItemParams{
		BookerID: bookerID,
		ItemID:   itemID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker and item", err)
	}
	return toBookingViews(rows), nil
}

func toBookingView(row sqlc.BookingRow) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		Start:       pgconv.TimeFromPgtype(row.StartDate),
		End:         pgconv.TimeFromPgtype(row.EndDate),
		Status:      row.Status,
		BookerID:    row.BookerID,
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		ItemOwnerID: row.ItemOwnerID,
	}
}

func toBookingViews(rows []sqlc.BookingRow) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views
}
