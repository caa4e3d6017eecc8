package response

import (
	"time"

	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// Field names line up with the views, so copier handles both sources.
func FromCommentViews(views []*queries.CommentView) []*CommentResponse {
	res := make([]*CommentResponse, 0, len(views))
	for _, v := range views {
		res = append(res, fromComment(v))
	}
	return res
}

func FromAddCommentResult(r *commands.AddCommentResult) *CommentResponse {
	return fromComment(r)
}

func fromComment(src any) *CommentResponse {
	var dst CommentResponse
	_ = copier.Copy(&dst, src)
	return &dst
}
