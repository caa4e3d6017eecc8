package commands

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/shared"
)

func loadUser(ctx context.Context, reads shared.CommandReads, id int64) (*shared.UserSnapshot, error) {
	u, err := reads.UserByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.UserNotFound(id)
		}
		return nil, err
	}
	return u, nil
}

func loadItem(ctx context.Context, reads shared.CommandReads, id int64) (*shared.ItemSnapshot, error) {
	item, err := reads.ItemByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ItemNotFound(id)
		}
		return nil, err
	}
	return item, nil
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id int64) (*shared.BookingSnapshot, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.BookingNotFound(id)
		}
		return nil, err
	}
	return b, nil
}
