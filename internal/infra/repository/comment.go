package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
)

//go:generate mockgen -source=comment.go -destination=../../../tests/mock/repository/comment_mock.go -package=repositorymock

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (sqlc.Comments, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
	db      sqlc.DBTX
}

func NewCommentRepository(queries CommentWriteQueries, db sqlc.DBTX) *CommentRepository {
	return &CommentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error) {
	row, err := r.queries.CreateComment(ctx, tx, sqlc.CreateCommentParams{
		Text:     c.Text().String(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  pgconv.TimeToPgtype(c.Created()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return row.ID, nil
}
