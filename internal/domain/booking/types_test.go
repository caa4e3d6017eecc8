//go:build unit

package booking_test

import (
	"testing"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	all := []booking.Status{booking.StatusWaiting, booking.StatusApproved, booking.StatusRejected}

	allowed := map[[2]booking.Status]bool{
		{booking.StatusWaiting, booking.StatusApproved}: true,
		{booking.StatusWaiting, booking.StatusRejected}: true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[[2]booking.Status{from, to}], booking.CanTransition(from, to))
			})
		}
	}
}

func TestStatus(t *testing.T) {
	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, booking.StatusWaiting.IsTerminal())
		assert.True(t, booking.StatusApproved.IsTerminal())
		assert.True(t, booking.StatusRejected.IsTerminal())
	})

	t.Run("parse", func(t *testing.T) {
		s, err := booking.ParseStatus("APPROVED")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, s)

		_, err = booking.ParseStatus("approved")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
