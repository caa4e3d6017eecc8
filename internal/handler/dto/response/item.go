package response

import "shareit/internal/usecase/queries"

type BookingSummaryResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// LastBooking and NextBooking render as null when absent or hidden.
type ItemResponse struct {
	ID          int64                   `json:"id"`
	OwnerID     int64                   `json:"ownerId"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Available   bool                    `json:"available"`
	LastBooking *BookingSummaryResponse `json:"lastBooking"`
	NextBooking *BookingSummaryResponse `json:"nextBooking"`
	Comments    []*CommentResponse      `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		LastBooking: fromSummary(v.LastBooking),
		NextBooking: fromSummary(v.NextBooking),
		Comments:    FromCommentViews(v.Comments),
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}

func fromSummary(s *queries.BookingSummary) *BookingSummaryResponse {
	if s == nil {
		return nil
	}
	return &BookingSummaryResponse{ID: s.ID, BookerID: s.BookerID}
}
