//go:build unit || e2e

package builder

import (
	"time"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type CommentBuilder struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorName string
	Created    time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ID:         1,
		Text:       "Worked fine, returned on time",
		ItemID:     10,
		AuthorName: "Booker",
		Created:    time.Now().UTC().Truncate(time.Second),
	}
}

func (c *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(c)
	return c
}

func (c *CommentBuilder) BuildView() *queries.CommentView {
	return &queries.CommentView{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func (c *CommentBuilder) BuildResult() *commands.AddCommentResult {
	return &commands.AddCommentResult{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func (c *CommentBuilder) BuildCreateRequestDTO() reqdto.CreateCommentRequest {
	return reqdto.CreateCommentRequest{Text: c.Text}
}

func (c *CommentBuilder) WithText(text string) *CommentBuilder {
	c.Text = text
	return c
}
