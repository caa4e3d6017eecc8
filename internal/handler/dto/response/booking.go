package response

import (
	"time"

	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

type BookerResponse struct {
	ID int64 `json:"id"`
}

type BookedItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64              `json:"id"`
	Start  time.Time          `json:"start"`
	End    time.Time          `json:"end"`
	Status string             `json:"status"`
	Booker BookerResponse     `json:"booker"`
	Item   BookedItemResponse `json:"item"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Booker: BookerResponse{ID: v.BookerID},
		Item:   BookedItemResponse{ID: v.ItemID, Name: v.ItemName},
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

func FromBookingSnapshot(s *shared.BookingSnapshot) *BookingResponse {
	return &BookingResponse{
		ID:     s.ID,
		Start:  s.Start,
		End:    s.End,
		Status: s.Status.String(),
		Booker: BookerResponse{ID: s.BookerID},
		Item:   BookedItemResponse{ID: s.ItemID, Name: s.ItemName},
	}
}
