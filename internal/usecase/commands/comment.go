package commands

import (
	"context"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

//go:generate mockgen -source=comment.go -destination=../../../tests/mock/commands/comment_mock.go -package=commandsmock

type AddCommentResult struct {
	ID         int64
	Text       string
	AuthorName string
	Created    time.Time
}

type CommentCommands interface {
	AddComment(ctx context.Context, userID, itemID int64, text string) (*AddCommentResult, error)
}

type commentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentUseCase(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *commentUseCaseImpl) AddComment(ctx context.Context, userID, itemID int64, text string) (*AddCommentResult, error) {
	now := uc.clock.Now()

	var result *AddCommentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		author, err := loadUser(ctx, tx.Reads(), userID)
		if err != nil {
			return err
		}
		item, err := loadItem(ctx, tx.Reads(), itemID)
		if err != nil {
			return err
		}
		body, err := comment.NewText(text)
		if err != nil {
			return err
		}

		history, err := tx.Reads().BookingsOfBooker(ctx, userID, itemID)
		if err != nil {
			return err
		}
		err = comment.CheckEligibility(comment.EligibilityInput{
			UserID:      userID,
			ItemID:      itemID,
			ItemOwnerID: item.OwnerID,
			History:     history,
			Now:         now,
		})
		if err != nil {
			return err
		}

		c := comment.NewComment(body, itemID, userID, now)
		id, err := tx.Comments().Create(ctx, tx.DB(), c)
		if err != nil {
			return err
		}
		result = &AddCommentResult{
			ID:         id,
			Text:       c.Text().String(),
			AuthorName: author.Name,
			Created:    c.Created(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
