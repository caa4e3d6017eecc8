//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemMocks struct {
	items    *queriesmock.MockItemReadStore
	bookings *queriesmock.MockBookingReadStore
	comments *queriesmock.MockCommentReadStore
	users    *queriesmock.MockUserReadStore
}

func newItemMocks(ctrl *gomock.Controller) *itemMocks {
	return &itemMocks{
		items:    queriesmock.NewMockItemReadStore(ctrl),
		bookings: queriesmock.NewMockBookingReadStore(ctrl),
		comments: queriesmock.NewMockCommentReadStore(ctrl),
		users:    queriesmock.NewMockUserReadStore(ctrl),
	}
}

func (m *itemMocks) queries() queries.ItemQueries {
	return queries.NewItemQueries(m.items, m.bookings, m.comments, m.users, clock.NewMockClock(testNow))
}

// itemHistory is one item's bookings ascending by start: an ended one, a
// rejected one that started, a running one, and two ahead.
func itemHistory(id int64) []*queries.BookingView {
	at := func(bookingID int64, start time.Duration, status booking.Status) *queries.BookingView {
		return builder.NewBookingBuilder().
			WithID(bookingID).
			WithItem(id, ownerID).
			WithStatus(status).
			WithPeriod(testNow.Add(start), testNow.Add(start+time.Hour)).
			BuildView()
	}
	return []*queries.BookingView{
		at(id*100+1, -72*time.Hour, booking.StatusApproved),
		at(id*100+2, -30*time.Minute, booking.StatusApproved),
		at(id*100+3, -10*time.Minute, booking.StatusRejected),
		at(id*100+4, 24*time.Hour, booking.StatusWaiting),
		at(id*100+5, 48*time.Hour, booking.StatusApproved),
	}
}

func TestItemQueries_GetItem(t *testing.T) {
	ctx := context.Background()
	comments := []*queries.CommentView{builder.NewCommentBuilder().BuildView()}

	t.Run("owner gets the projection and comments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newItemMocks(ctrl)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(builder.NewItemBuilder().BuildView(), nil)
		m.bookings.EXPECT().ListByItem(gomock.Any(), itemID).Return(itemHistory(itemID), nil)
		m.comments.EXPECT().ListByItem(gomock.Any(), itemID).Return(comments, nil)

		got, err := m.queries().GetItem(ctx, ownerID, itemID)

		require.NoError(t, err)
		assert.Equal(t, &queries.BookingSummary{ID: 1002, BookerID: bookerID}, got.LastBooking)
		assert.Equal(t, &queries.BookingSummary{ID: 1004, BookerID: bookerID}, got.NextBooking)
		assert.Equal(t, comments, got.Comments)
	})

	t.Run("others get comments only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newItemMocks(ctrl)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(builder.NewItemBuilder().BuildView(), nil)
		m.comments.EXPECT().ListByItem(gomock.Any(), itemID).Return(nil, nil)

		got, err := m.queries().GetItem(ctx, bookerID, itemID)

		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newItemMocks(ctrl)
		m.items.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := m.queries().GetItem(ctx, ownerID, 404)

		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Equal(t, "The specified item id=404 does not exist", errs.Message(err))
	})
}

func TestItemQueries_ListOwnerItems(t *testing.T) {
	ctx := context.Background()

	t.Run("projection and comments for every item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newItemMocks(ctrl)
		first := builder.NewItemBuilder().WithID(10).BuildView()
		second := builder.NewItemBuilder().WithID(11).BuildView()
		comment := builder.NewCommentBuilder().With(func(c *builder.CommentBuilder) { c.ItemID = 11 }).BuildView()

		m.users.EXPECT().Exists(gomock.Any(), ownerID).Return(true, nil)
		m.items.EXPECT().ListByOwner(gomock.Any(), ownerID, firstPage(t)).Return([]*queries.ItemView{first, second}, nil)
		m.bookings.EXPECT().ListByItems(gomock.Any(), []int64{10, 11}).Return(itemHistory(10), nil)
		m.comments.EXPECT().ListByItems(gomock.Any(), []int64{10, 11}).Return([]*queries.CommentView{comment}, nil)

		got, err := m.queries().ListOwnerItems(ctx, ownerID, firstPage(t))

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1002), got[0].LastBooking.ID)
		assert.Equal(t, int64(1004), got[0].NextBooking.ID)
		assert.Empty(t, got[0].Comments)
		assert.Nil(t, got[1].LastBooking)
		assert.Nil(t, got[1].NextBooking)
		assert.Equal(t, []*queries.CommentView{comment}, got[1].Comments)
	})

	t.Run("no items skips the batch reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newItemMocks(ctrl)
		m.users.EXPECT().Exists(gomock.Any(), ownerID).Return(true, nil)
		m.items.EXPECT().ListByOwner(gomock.Any(), ownerID, firstPage(t)).Return(nil, nil)

		got, err := m.queries().ListOwnerItems(ctx, ownerID, firstPage(t))

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newItemMocks(ctrl)
		m.users.EXPECT().Exists(gomock.Any(), int64(99)).Return(false, nil)

		_, err := m.queries().ListOwnerItems(ctx, 99, firstPage(t))

		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Equal(t, "The specified user id=99 does not exist", errs.Message(err))
	})
}
