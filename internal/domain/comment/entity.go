package comment

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrEmptyText   = errs.Validationf("Comment text must not be blank")
	ErrTextTooLong = errs.Validationf("Comment text must be at most %d characters", MaxTextLength)
)

type Comment struct {
	id       int64
	text     Text
	itemID   int64
	authorID int64
	created  time.Time
}

// NewComment trusts that the author already passed CheckEligibility.
func NewComment(text Text, itemID, authorID int64, now time.Time) *Comment {
	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  now,
	}
}

func Reconstruct(id int64, text Text, itemID, authorID int64, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() Text         { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
