package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

//go:generate mockgen -source=item.go -destination=../../../tests/mock/queries/item_mock.go -package=queriesmock

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	// ListByOwner orders by id ascending.
	ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error)
}

type CommentReadStore interface {
	// ListByItem and ListByItems order each item's comments by creation.
	ListByItem(ctx context.Context, itemID int64) ([]*CommentView, error)
	ListByItems(ctx context.Context, itemIDs []int64) ([]*CommentView, error)
}

type ItemQueries interface {
	GetItem(ctx context.Context, userID, itemID int64) (*ItemView, error)
	ListOwnerItems(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	comments CommentReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, comments CommentReadStore, users UserReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		bookings: bookings,
		comments: comments,
		users:    users,
		clock:    clk,
	}
}

func (q *itemQueriesImpl) GetItem(ctx context.Context, userID, itemID int64) (*ItemView, error) {
	now := q.clock.Now()

	item, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ItemNotFound(itemID)
		}
		return nil, err
	}

	if item.OwnerID == userID {
		history, err := q.bookings.ListByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		attachProjection(item, booking.Project(toDomain(history), now))
	}

	comments, err := q.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Comments = nonNil(comments)
	return item, nil
}

func (q *itemQueriesImpl) ListOwnerItems(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error) {
	now := q.clock.Now()

	if err := requireUser(ctx, q.users, ownerID); err != nil {
		return nil, err
	}

	items, err := q.items.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*ItemView{}, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	bookings, err := q.bookings.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := q.comments.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	bookingsByItem := make(map[int64][]*BookingView, len(items))
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}
	commentsByItem := make(map[int64][]*CommentView, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	for _, it := range items {
		attachProjection(it, booking.Project(toDomain(bookingsByItem[it.ID]), now))
		it.Comments = nonNil(commentsByItem[it.ID])
	}
	return items, nil
}

func attachProjection(item *ItemView, p booking.Projection) {
	if p.Last != nil {
		item.LastBooking = &BookingSummary{ID: p.Last.ID, BookerID: p.Last.BookerID}
	}
	if p.Next != nil {
		item.NextBooking = &BookingSummary{ID: p.Next.ID, BookerID: p.Next.BookerID}
	}
}

func nonNil(comments []*CommentView) []*CommentView {
	if comments == nil {
		return []*CommentView{}
	}
	return comments
}
