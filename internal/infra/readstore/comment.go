package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type CommentReadQueries interface {
	ListCommentsByItem(ctx context.Context, db sqlc.DBTX, itemID int64) ([]sqlc.CommentRow, error)
	ListCommentsByItems(ctx context.Context, db sqlc.DBTX, itemIDs []int64) ([]sqlc.CommentRow, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) ListByItem(ctx context.Context, itemID int64) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments by item", err)
	}
	return toCommentViews(rows), nil
}

func (r *CommentReadStore) ListByItems(ctx context.Context, itemIDs []int64) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItems(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments by items", err)
	}
	return toCommentViews(rows), nil
}

func toCommentViews(rows []sqlc.CommentRow) []*queries.CommentView {
	views := make([]*queries.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.CommentView{
			ID:         row.ID,
			Text:       row.Text,
			ItemID:     row.ItemID,
			AuthorName: row.AuthorName,
			Created:    pgconv.TimeFromPgtype(row.Created),
		})
	}
	return views
}
