//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemReadQueries struct {
	mock.Mock
}

func (m *MockItemReadQueries) GetItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Items), args.Error(1)
}

func (m *MockItemReadQueries) ListItemsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsByOwnerParams) ([]sqlc.Items, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Items), args.Error(1)
}

type MockCommentReadQueries struct {
	mock.Mock
}

func (m *MockCommentReadQueries) ListCommentsByItem(ctx context.Context, db sqlc.DBTX, itemID int64) ([]sqlc.CommentRow, error) {
	args := m.Called(ctx, db, itemID)
	return args.Get(0).([]sqlc.CommentRow), args.Error(1)
}

func (m *MockCommentReadQueries) ListCommentsByItems(ctx context.Context, db sqlc.DBTX, itemIDs []int64) ([]sqlc.CommentRow, error) {
	args := m.Called(ctx, db, itemIDs)
	return args.Get(0).([]sqlc.CommentRow), args.Error(1)
}

func TestItemFindByID(t *testing.T) {
	row := sqlc.Items{ID: 10, OwnerID: 1, Name: "Drill", Description: "18V", Available: true}

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockItemReadQueries)
		mockQueries.On("GetItemByID", mock.Anything, mock.Anything, int64(10)).Return(row, nil)

		view, err := NewItemReadStore(mockQueries, nil).FindByID(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, &queries.ItemView{ID: 10, OwnerID: 1, Name: "Drill", Description: "18V", Available: true}, view)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockItemReadQueries)
		mockQueries.On("GetItemByID", mock.Anything, mock.Anything, int64(99)).Return(sqlc.Items{}, pgx.ErrNoRows)

		_, err := NewItemReadStore(mockQueries, nil).FindByID(context.Background(), 99)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestItemListByOwner(t *testing.T) {
	page, err := queries.NewPage(3, 2)
	require.NoError(t, err)

	mockQueries := new(MockItemReadQueries)
	mockQueries.On("ListItemsByOwner", mock.Anything, mock.Anything,
		sqlc.ListItemsByOwnerParams{OwnerID: 1, Limit: 2, Offset: 2}).
		Return([]sqlc.Items{{ID: 12, OwnerID: 1}, {ID: 13, OwnerID: 1}}, nil)

	views, err := NewItemReadStore(mockQueries, nil).ListByOwner(context.Background(), 1, page)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(12), views[0].ID)
	mockQueries.AssertExpectations(t)
}

func TestCommentListByItems(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("maps rows", func(t *testing.T) {
		mockQueries := new(MockCommentReadQueries)
		mockQueries.On("ListCommentsByItems", mock.Anything, mock.Anything, []int64{10, 11}).
			Return([]sqlc.CommentRow{{ID: 1, Text: "ok", ItemID: 11, AuthorName: "Bob", Created: pgconv.TimeToPgtype(created)}}, nil)

		views, err := NewCommentReadStore(mockQueries, nil).ListByItems(context.Background(), []int64{10, 11})

		require.NoError(t, err)
		assert.Equal(t, []*queries.CommentView{{ID: 1, Text: "ok", ItemID: 11, AuthorName: "Bob", Created: created}}, views)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		mockQueries := new(MockCommentReadQueries)
		mockQueries.On("ListCommentsByItem", mock.Anything, mock.Anything, int64(10)).Return([]sqlc.CommentRow{}, nil)

		views, err := NewCommentReadStore(mockQueries, nil).ListByItem(context.Background(), 10)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockCommentReadQueries)
		mockQueries.On("ListCommentsByItem", mock.Anything, mock.Anything, int64(10)).Return([]sqlc.CommentRow(nil), assert.AnError)

		_, err := NewCommentReadStore(mockQueries, nil).ListByItem(context.Background(), 10)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
