package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRow is a booking joined with the item it books. The owner is read
// through the item on every query and never copied onto the booking.
type BookingRow struct {
	ID          int64              `json:"id"`
	StartDate   pgtype.Timestamptz `json:"start_date"`
	EndDate     pgtype.Timestamptz `json:"end_date"`
	Status      string             `json:"status"`
	BookerID    int64              `json:"booker_id"`
	ItemID      int64              `json:"item_id"`
	ItemName    string             `json:"item_name"`
	ItemOwnerID int64              `json:"item_owner_id"`
}

const bookingRowColumns = `b.id, b.start_date, b.end_date, b.status, b.booker_id, b.item_id, i.name, i.owner_id`

func scanBookingRows(rows pgx.Rows) ([]BookingRow, error) {
	defer rows.Close()
	var items []BookingRow
	for rows.Next() {
		var i BookingRow
		if err := rows.Scan(
			&i.ID,
			&i.StartDate,
			&i.EndDate,
			&i.Status,
			&i.BookerID,
			&i.ItemID,
			&i.ItemName,
			&i.ItemOwnerID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, start_date, end_date, item_id, booker_id, status
`

type CreateBookingParams struct {
	StartDate pgtype.Timestamptz `json:"start_date"`
	EndDate   pgtype.Timestamptz `json:"end_date"`
	ItemID    int64              `json:"item_id"`
	BookerID  int64              `json:"booker_id"`
	Status    string             `json:"status"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.StartDate,
		arg.EndDate,
		arg.ItemID,
		arg.BookerID,
		arg.Status,
	)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.StartDate,
		&i.EndDate,
		&i.ItemID,
		&i.BookerID,
		&i.Status,
	)
	return i, err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id int64) (BookingRow, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var i BookingRow
	err := row.Scan(
		&i.ID,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.BookerID,
		&i.ItemID,
		&i.ItemName,
		&i.ItemOwnerID,
	)
	return i, err
}

const updateBookingStatusIfWaiting = `-- name: UpdateBookingStatusIfWaiting :execrows
UPDATE bookings
SET status = $2
WHERE id = $1 AND status = 'WAITING'
`

type UpdateBookingStatusIfWaitingParams struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// Touches the status column only. Zero rows means the booking was already
// decided by the time the statement ran.
func (q *Queries) UpdateBookingStatusIfWaiting(ctx context.Context, db DBTX, arg UpdateBookingStatusIfWaitingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatusIfWaiting, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type ListBookingsParams struct {
	SubjectID int64              `json:"subject_id"`
	Now       pgtype.Timestamptz `json:"now"`
	Status    string             `json:"status"`
	Limit     int32              `json:"limit"`
	Offset    int32              `json:"offset"`
}

const listBookingsByBooker = `-- name: ListBookingsByBooker :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.booker_id = $1
ORDER BY b.start_date DESC, b.id ASC
LIMIT $2 OFFSET $3
`

func (q *Queries) ListBookingsByBooker(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByBooker, arg.SubjectID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listPastBookingsByBooker = `-- name: ListPastBookingsByBooker :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.booker_id = $1 AND b.end_date < $2
ORDER BY b.start_date DESC, b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListPastBookingsByBooker(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listPastBookingsByBooker, arg.SubjectID, arg.Now, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listCurrentBookingsByBooker = `-- name: ListCurrentBookingsByBooker :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.booker_id = $1 AND b.start_date <= $2 AND b.end_date >= $2
ORDER BY b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListCurrentBookingsByBooker(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listCurrentBookingsByBooker, arg.SubjectID, arg.Now, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listFutureBookingsByBooker = `-- name: ListFutureBookingsByBooker :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.booker_id = $1 AND b.start_date > $2
ORDER BY b.start_date DESC, b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListFutureBookingsByBooker(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listFutureBookingsByBooker, arg.SubjectID, arg.Now, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listBookingsByBookerAndStatus = `-- name: ListBookingsByBookerAndStatus :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.booker_id = $1 AND b.status = $2
ORDER BY b.start_date DESC, b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListBookingsByBookerAndStatus(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByBookerAndStatus, arg.SubjectID, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listBookingsByOwner = `-- name: ListBookingsByOwner :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = $1
ORDER BY b.start_date DESC, b.id ASC
LIMIT $2 OFFSET $3
`

func (q *Queries) ListBookingsByOwner(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByOwner, arg.SubjectID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listPastBookingsByOwner = `-- name: ListPastBookingsByOwner :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = $1 AND b.end_date < $2
ORDER BY b.start_date DESC, b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListPastBookingsByOwner(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listPastBookingsByOwner, arg.SubjectID, arg.Now, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listCurrentBookingsByOwner = `-- name: ListCurrentBookingsByOwner :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = $1 AND b.start_date <= $2 AND b.end_date >= $2
ORDER BY b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListCurrentBookingsByOwner(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listCurrentBookingsByOwner, arg.SubjectID, arg.Now, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listFutureBookingsByOwner = `-- name: ListFutureBookingsByOwner :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = $1 AND b.start_date > $2
ORDER BY b.start_date DESC, b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListFutureBookingsByOwner(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listFutureBookingsByOwner, arg.SubjectID, arg.Now, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listBookingsByOwnerAndStatus = `-- name: ListBookingsByOwnerAndStatus :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = $1 AND b.status = $2
ORDER BY b.start_date DESC, b.id ASC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListBookingsByOwnerAndStatus(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByOwnerAndStatus, arg.SubjectID, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listBookingsByItems = `-- name: ListBookingsByItems :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.item_id = ANY($1::bigint[])
ORDER BY b.item_id, b.start_date ASC, b.id ASC
`

func (q *Queries) ListBookingsByItems(ctx context.Context, db DBTX, itemIDs []int64) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByItems, itemIDs)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listBookingsByBookerAndItem = `-- name: ListBookingsByBookerAndItem :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.booker_id = $1 AND b.item_id = $2
ORDER BY b.start_date ASC, b.id ASC
`

type ListBookingsByBookerAndItemParams struct {
	BookerID int64 `json:"booker_id"`
	ItemID   int64 `json:"item_id"`
}

func (q *Queries) ListBookingsByBookerAndItem(ctx context.Context, db DBTX, arg ListBookingsByBookerAndItemParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByBookerAndItem, arg.BookerID, arg.ItemID)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}

const listBookingsByItem = `-- name: ListBookingsByItem :many
SELECT ` + bookingRowColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.item_id = $1
ORDER BY b.start_date ASC, b.id ASC
`

func (q *Queries) ListBookingsByItem(ctx context.Context, db DBTX, itemID int64) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookingsByItem, itemID)
	if err != nil {
		return nil, err
	}
	return scanBookingRows(rows)
}
