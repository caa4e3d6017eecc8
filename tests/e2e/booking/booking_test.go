//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/bookings"
	bookingURL       = "/bookings/%d"
	ownerBookingsURL = "/bookings/owner"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	ownerID  int64
	bookerID int64
	itemID   int64
}

func (s *BookingSuite) seed(available bool) fixture {
	t := s.T()
	ownerID := dbtest.CreateTestUser(t, s.DB, "Owner")
	bookerID := dbtest.CreateTestUser(t, s.DB, "Booker")
	itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", available)
	return fixture{ownerID: ownerID, bookerID: bookerID, itemID: itemID}
}

func futureRequest(itemID int64) reqdto.CreateBookingRequest {
	start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	return reqdto.CreateBookingRequest{ItemID: itemID, Start: start, End: start.Add(24 * time.Hour)}
}

// =============================================================================
// TestLifecycle - create, decide, read back
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("Normal case: booker creates, owner approves once", func() {
		t := s.T()
		f := s.seed(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureRequest(f.itemID), f.bookerID)
		var created resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.Equal(t, "WAITING", created.Status)
		require.Equal(t, f.bookerID, created.Booker.ID)
		require.Equal(t, resdto.BookedItemResponse{ID: f.itemID, Name: "Cordless drill"}, created.Item)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, created.ID)+"?approved=true", nil, f.ownerID)
		var approved resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.Equal(t, "APPROVED", approved.Status)
		require.Equal(t, "APPROVED", dbtest.BookingStatus(t, s.DB, created.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, created.ID)+"?approved=false", nil, f.ownerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Booking is already APPROVED by owner of item")
		require.Equal(t, "APPROVED", dbtest.BookingStatus(t, s.DB, created.ID), "status must not change twice")

		for _, viewer := range []int64{f.bookerID, f.ownerID} {
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, viewer)
			var got resdto.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			if diff := cmp.Diff(approved, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("GET booking mismatch (-want +got):\n%s", diff)
			}
		}
	})

	s.Run("Normal case: owner rejects", func() {
		t := s.T()
		f := s.seed(true)
		id := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, id)+"?approved=false", nil, f.ownerID)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "REJECTED", got.Status)
	})

	s.Run("Normal case: concurrent decisions change the status once", func() {
		t := s.T()
		f := s.seed(true)
		id := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour), "WAITING")

		var (
			wg    sync.WaitGroup
			codes [2]int
			msgs  [2]string
		)
		for i, approved := range []string{"true", "false"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, id)+"?approved="+approved, nil, f.ownerID)
				codes[i] = w.Code
				msgs[i] = w.Body.String()
			}()
		}
		wg.Wait()

		final := dbtest.BookingStatus(t, s.DB, id)
		require.Contains(t, []string{"APPROVED", "REJECTED"}, final)

		var ok, lost int
		for i := range codes {
			switch codes[i] {
			case http.StatusOK:
				ok++
			case http.StatusBadRequest:
				lost++
				assert.Contains(t, msgs[i], "Booking is already "+final+" by owner of item")
			}
		}
		require.Equal(t, 1, ok, "exactly one decision wins: %v", msgs)
		require.Equal(t, 1, lost, "the other sees the decided status: %v", msgs)
	})

	s.Run("Error case: booker cannot decide", func() {
		t := s.T()
		f := s.seed(true)
		id := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, id)+"?approved=true", nil, f.bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "is not the owner of item")
		require.Equal(t, "WAITING", dbtest.BookingStatus(t, s.DB, id))
	})

	s.Run("Error case: stranger cannot read", func() {
		t := s.T()
		f := s.seed(true)
		strangerID := dbtest.CreateTestUser(t, s.DB, "Stranger")
		id := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, strangerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "is not the booker/owner")
	})

	s.Run("Error case: unknown booking", func() {
		t := s.T()
		f := s.seed(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, 9999), nil, f.bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "The specified booking id=9999 does not exist")
	})
}

// =============================================================================
// TestCreateRejections
// =============================================================================

func (s *BookingSuite) TestCreateRejections() {
	s.Run("Error case: owner books own item", func() {
		t := s.T()
		f := s.seed(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureRequest(f.itemID), f.ownerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "is the owner of item")
	})

	s.Run("Error case: item unavailable", func() {
		t := s.T()
		f := s.seed(false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureRequest(f.itemID), f.bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "is not available")
	})

	s.Run("Error case: start in the past", func() {
		t := s.T()
		f := s.seed(true)
		req := futureRequest(f.itemID)
		req.Start = time.Now().UTC().Add(-time.Hour)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, f.bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Wrong start data value")
	})

	s.Run("Error case: unknown user", func() {
		t := s.T()
		f := s.seed(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureRequest(f.itemID), 9999)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "The specified user id=9999 does not exist")
	})

	s.Run("Error case: item faults precede an unknown user", func() {
		t := s.T()
		f := s.seed(false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureRequest(f.itemID), 9999)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "is not available")
	})

	s.Run("Error case: unknown item", func() {
		t := s.T()
		f := s.seed(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureRequest(9999), f.bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "The specified item id=9999 does not exist")
	})
}

// =============================================================================
// TestListings - temporal filters, ordering and paging
// =============================================================================

func (s *BookingSuite) TestListings() {
	s.Run("Normal case: each state selects its bookings", func() {
		t := s.T()
		f := s.seed(true)
		now := time.Now()

		past := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")
		current := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
		future := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")
		rejected := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, now.Add(72*time.Hour), now.Add(96*time.Hour), "REJECTED")

		cases := []struct {
			state string
			want  []int64
		}{
			{state: "ALL", want: []int64{rejected, future, current, past}},
			{state: "PAST", want: []int64{past}},
			{state: "CURRENT", want: []int64{current}},
			{state: "FUTURE", want: []int64{rejected, future}},
			{state: "WAITING", want: []int64{future}},
			{state: "REJECTED", want: []int64{rejected}},
		}

		for _, tc := range cases {
			for _, route := range []struct {
				url    string
				userID int64
			}{
				{url: bookingsURL, userID: f.bookerID},
				{url: ownerBookingsURL, userID: f.ownerID},
			} {
				w := httptest.PerformRequest(t, s.Router, http.MethodGet, route.url+"?state="+tc.state, nil, route.userID)
				var got []resdto.BookingResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
				require.Equal(t, tc.want, ids(got), "%s %s", route.url, tc.state)
			}
		}
	})

	s.Run("Normal case: CURRENT orders by id, other states by start", func() {
		t := s.T()
		f := s.seed(true)
		now := time.Now()

		// Both active now; the lower id has the earlier start.
		first := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, now.Add(-3*time.Hour), now.Add(3*time.Hour), "APPROVED")
		second := dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")

		for _, route := range []struct {
			url    string
			userID int64
		}{
			{url: bookingsURL, userID: f.bookerID},
			{url: ownerBookingsURL, userID: f.ownerID},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, route.url+"?state=CURRENT", nil, route.userID)
			var current []resdto.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &current)
			require.Equal(t, []int64{first, second}, ids(current), "%s CURRENT", route.url)

			w = httptest.PerformRequest(t, s.Router, http.MethodGet, route.url+"?state=ALL", nil, route.userID)
			var all []resdto.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
			require.Equal(t, []int64{second, first}, ids(all), "%s ALL", route.url)
		}
	})

	s.Run("Normal case: equal starts page by id", func() {
		t := s.T()
		f := s.seed(true)
		start := time.Now().Add(24 * time.Hour)

		var created []int64
		for range 3 {
			created = append(created, dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, start, start.Add(time.Hour), "WAITING"))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=FUTURE&from=0&size=2", nil, f.bookerID)
		var got []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, []int64{created[0], created[1]}, ids(got))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=FUTURE&from=2&size=2", nil, f.bookerID)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, []int64{created[2]}, ids(got))
	})

	s.Run("Normal case: paging by element index", func() {
		t := s.T()
		f := s.seed(true)
		now := time.Now()

		var created []int64
		for i := range 5 {
			start := now.Add(time.Duration(i+1) * 24 * time.Hour)
			created = append(created, dbtest.CreateTestBooking(t, s.DB, f.itemID, f.bookerID, start, start.Add(time.Hour), "WAITING"))
		}

		// newest start first: created[4], created[3], ...
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from=2&size=2", nil, f.bookerID)
		var got []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, []int64{created[2], created[1]}, ids(got))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from=1&size=2", nil, f.bookerID)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, []int64{created[4], created[3]}, ids(got), "index inside the first page selects page 0")
	})

	s.Run("Error case: page size beyond int32", func() {
		t := s.T()
		f := s.seed(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?size=2147483648", nil, f.bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Page size must be at most 2147483647")
	})

	s.Run("Error case: unknown state", func() {
		t := s.T()
		f := s.seed(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=past", nil, f.bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unknown state: past")
	})

	s.Run("Error case: unknown user", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerBookingsURL, nil, 9999)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "The specified user id=9999 does not exist")
	})
}

func ids(bookings []resdto.BookingResponse) []int64 {
	out := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}
