//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentCommands_AddComment(t *testing.T) {
	ctx := context.Background()
	author := &shared.UserSnapshot{ID: bookerID, Name: "Booker"}
	item := builder.NewItemBuilder().BuildSnapshot()
	ended := builder.NewBookingBuilder().AsPast(testNow).WithStatus(booking.StatusApproved).BuildDomain()
	running := builder.NewBookingBuilder().AsCurrent(testNow).WithStatus(booking.StatusApproved).BuildDomain()

	t.Run("success: comment stored with author name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(author, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(item, nil)
		m.reads.EXPECT().BookingsOfBooker(gomock.Any(), bookerID, itemID).Return([]*booking.Booking{ended, running}, nil)
		m.comments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *comment.Comment) (int64, error) {
				assert.Equal(t, "Great drill", c.Text().String())
				assert.Equal(t, testNow, c.Created())
				return 3, nil
			})

		got, err := commands.NewCommentUseCase(m.uow, clock.NewMockClock(testNow)).AddComment(ctx, bookerID, itemID, "  Great drill ")

		require.NoError(t, err)
		assert.Equal(t, &commands.AddCommentResult{ID: 3, Text: "Great drill", AuthorName: "Booker", Created: testNow}, got)
	})

	t.Run("success: a rejected booking that ended qualifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		rejected := builder.NewBookingBuilder().AsPast(testNow).WithStatus(booking.StatusRejected).BuildDomain()
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(author, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(item, nil)
		m.reads.EXPECT().BookingsOfBooker(gomock.Any(), bookerID, itemID).Return([]*booking.Booking{rejected}, nil)
		m.comments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(4), nil)

		_, err := commands.NewCommentUseCase(m.uow, clock.NewMockClock(testNow)).AddComment(ctx, bookerID, itemID, "ok")

		require.NoError(t, err)
	})

	t.Run("error: unknown author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(nil, notFoundRow("user not found"))

		_, err := commands.NewCommentUseCase(m.uow, clock.NewMockClock(testNow)).AddComment(ctx, bookerID, itemID, "text")

		assertFault(t, err, errs.KindNotFound, "The specified user id=2 does not exist")
	})

	t.Run("error: blank text is rejected before the gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(author, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(item, nil)

		_, err := commands.NewCommentUseCase(m.uow, clock.NewMockClock(testNow)).AddComment(ctx, bookerID, itemID, "   ")

		assertFault(t, err, errs.KindValidation, "Comment text must not be blank")
	})

	t.Run("error: text too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(author, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(item, nil)

		_, err := commands.NewCommentUseCase(m.uow, clock.NewMockClock(testNow)).AddComment(ctx, bookerID, itemID, strings.Repeat("a", comment.MaxTextLength+1))

		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	gateCases := []struct {
		name    string
		userID  int64
		history []*booking.Booking
		kind    errs.Kind
		msg     string
	}{
		{
			name:    "error: owner cannot comment",
			userID:  ownerID,
			history: []*booking.Booking{ended},
			kind:    errs.KindNotFound,
			msg:     "Unable to add a comment. User id=1 is the owner of item id=10",
		},
		{
			name:   "error: never booked",
			userID: bookerID,
			kind:   errs.KindValidation,
			msg:    "User id=2 has not booked item id=10",
		},
		{
			name:    "error: booking still running",
			userID:  bookerID,
			history: []*booking.Booking{running},
			kind:    errs.KindValidation,
			msg:     "User id=2 is still the holder of item id=10",
		},
	}
	for _, tc := range gateCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			m.reads.EXPECT().UserByID(gomock.Any(), tc.userID).Return(&shared.UserSnapshot{ID: tc.userID}, nil)
			m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(item, nil)
			m.reads.EXPECT().BookingsOfBooker(gomock.Any(), tc.userID, itemID).Return(tc.history, nil)

			_, err := commands.NewCommentUseCase(m.uow, clock.NewMockClock(testNow)).AddComment(ctx, tc.userID, itemID, "text")

			assertFault(t, err, tc.kind, tc.msg)
		})
	}
}
