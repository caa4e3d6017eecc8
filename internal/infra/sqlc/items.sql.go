package sqlc

import (
	"context"
)

const getItemByID = `-- name: GetItemByID :one
SELECT id, owner_id, name, description, available
FROM items
WHERE id = $1
`

func (q *Queries) GetItemByID(ctx context.Context, db DBTX, id int64) (Items, error) {
	row := db.QueryRow(ctx, getItemByID, id)
	var i Items
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Description,
		&i.Available,
	)
	return i, err
}

const listItemsByOwner = `-- name: ListItemsByOwner :many
SELECT id, owner_id, name, description, available
FROM items
WHERE owner_id = $1
ORDER BY id ASC
LIMIT $2 OFFSET $3
`

type ListItemsByOwnerParams struct {
	OwnerID int64 `json:"owner_id"`
	Limit   int32 `json:"limit"`
	Offset  int32 `json:"offset"`
}

func (q *Queries) ListItemsByOwner(ctx context.Context, db DBTX, arg ListItemsByOwnerParams) ([]Items, error) {
	rows, err := db.Query(ctx, listItemsByOwner, arg.OwnerID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Items
	for rows.Next() {
		var i Items
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Name,
			&i.Description,
			&i.Available,
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
