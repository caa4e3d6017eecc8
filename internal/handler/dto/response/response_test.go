//go:build unit

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFromItemView(t *testing.T) {
	view := &queries.ItemView{
		ID:          10,
		OwnerID:     1,
		Name:        "Cordless drill",
		Description: "18V with two batteries",
		Available:   true,
		LastBooking: &queries.BookingSummary{ID: 4, BookerID: 2},
		Comments: []*queries.CommentView{
			{ID: 7, Text: "Worked great", ItemID: 10, AuthorName: "Bob", Created: created},
		},
	}

	got := response.FromItemView(view)

	want := &response.ItemResponse{
		ID:          10,
		OwnerID:     1,
		Name:        "Cordless drill",
		Description: "18V with two batteries",
		Available:   true,
		LastBooking: &response.BookingSummaryResponse{ID: 4, BookerID: 2},
		Comments: []*response.CommentResponse{
			{ID: 7, Text: "Worked great", AuthorName: "Bob", Created: created},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromItemView() mismatch (-want +got):\n%s", diff)
	}
}

func TestItemResponse_JSON(t *testing.T) {
	got := response.FromItemView(&queries.ItemView{ID: 10, OwnerID: 1, Name: "Drill"})

	body, err := json.Marshal(got)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Contains(t, decoded, "lastBooking")
	assert.Nil(t, decoded["lastBooking"])
	assert.Nil(t, decoded["nextBooking"])
	assert.Equal(t, []any{}, decoded["comments"])
}

func TestFromAddCommentResult(t *testing.T) {
	got := response.FromAddCommentResult(&commands.AddCommentResult{
		ID:         3,
		Text:       "Nice",
		AuthorName: "Bob",
		Created:    created,
	})

	assert.Equal(t, &response.CommentResponse{ID: 3, Text: "Nice", AuthorName: "Bob", Created: created}, got)
}

func TestFromBookingView(t *testing.T) {
	start := created.Add(24 * time.Hour)
	got := response.FromBookingView(&queries.BookingView{
		ID:          5,
		Start:       start,
		End:         start.Add(time.Hour),
		Status:      "WAITING",
		BookerID:    2,
		ItemID:      10,
		ItemName:    "Drill",
		ItemOwnerID: 1,
	})

	assert.Equal(t, int64(2), got.Booker.ID)
	assert.Equal(t, response.BookedItemResponse{ID: 10, Name: "Drill"}, got.Item)
	assert.Equal(t, "WAITING", got.Status)
}
