package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createComment = `-- name: CreateComment :one
INSERT INTO comments (text, item_id, author_id, created)
VALUES ($1, $2, $3, $4)
RETURNING id, text, item_id, author_id, created
`

type CreateCommentParams struct {
	Text     string             `json:"text"`
	ItemID   int64              `json:"item_id"`
	AuthorID int64              `json:"author_id"`
	Created  pgtype.Timestamptz `json:"created"`
}

func (q *Queries) CreateComment(ctx context.Context, db DBTX, arg CreateCommentParams) (Comments, error) {
	row := db.QueryRow(ctx, createComment,
		arg.Text,
		arg.ItemID,
		arg.AuthorID,
		arg.Created,
	)
	var i Comments
	err := row.Scan(
		&i.ID,
		&i.Text,
		&i.ItemID,
		&i.AuthorID,
		&i.Created,
	)
	return i, err
}

type CommentRow struct {
	ID         int64              `json:"id"`
	Text       string             `json:"text"`
	ItemID     int64              `json:"item_id"`
	AuthorName string             `json:"author_name"`
	Created    pgtype.Timestamptz `json:"created"`
}

const listCommentsByItems = `-- name: ListCommentsByItems :many
SELECT c.id, c.text, c.item_id, u.name, c.created
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = ANY($1::bigint[])
ORDER BY c.item_id, c.created ASC, c.id ASC
`

func (q *Queries) ListCommentsByItems(ctx context.Context, db DBTX, itemIDs []int64) ([]CommentRow, error) {
	rows, err := db.Query(ctx, listCommentsByItems, itemIDs)
	if err != nil {
		return nil, err
	}
	return scanCommentRows(rows)
}

const listCommentsByItem = `-- name: ListCommentsByItem :many
SELECT c.id, c.text, c.item_id, u.name, c.created
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = $1
ORDER BY c.created ASC, c.id ASC
`

func (q *Queries) ListCommentsByItem(ctx context.Context, db DBTX, itemID int64) ([]CommentRow, error) {
	rows, err := db.Query(ctx, listCommentsByItem, itemID)
	if err != nil {
		return nil, err
	}
	return scanCommentRows(rows)
}

func scanCommentRows(rows pgx.Rows) ([]CommentRow, error) {
	defer rows.Close()
	var items []CommentRow
	for rows.Next() {
		var i CommentRow
		if err := rows.Scan(
			&i.ID,
			&i.Text,
			&i.ItemID,
			&i.AuthorName,
			&i.Created,
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
