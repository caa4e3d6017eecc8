package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type ItemReadQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsByOwnerParams) ([]sqlc.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID int64, page queries.Page) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, sqlc.ListItemsByOwnerParams{
		OwnerID: ownerID,
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}

	views := make([]*queries.ItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toItemView(row))
	}
	return views, nil
}

func toItemView(row sqlc.Items) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
	}
}
