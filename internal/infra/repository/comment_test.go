//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	repositorymock "shareit/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentRepository_Create(t *testing.T) {
	ctx := context.Background()

	text, err := comment.NewText("  works great  ")
	require.NoError(t, err)
	c := comment.NewComment(text, 10, 2, testNow)

	t.Run("success: trimmed text stored with creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCommentWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		want := sqlc.CreateCommentParams{
			Text:     "works great",
			ItemID:   10,
			AuthorID: 2,
			Created:  pgconv.TimeToPgtype(testNow),
		}
		mockQueries.EXPECT().CreateComment(ctx, mockDB, want).Return(sqlc.Comments{ID: 5}, nil)

		id, err := repository.NewCommentRepository(mockQueries, mockDB).Create(ctx, mockDB, c)

		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCommentWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().CreateComment(ctx, mockDB, gomock.Any()).Return(sqlc.Comments{}, errors.New("database connection error"))

		id, err := repository.NewCommentRepository(mockQueries, mockDB).Create(ctx, mockDB, c)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, id)
	})
}
