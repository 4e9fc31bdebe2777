//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"playpark/internal/domain/ticket"
	"playpark/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	t.Run("counter ticket starts active and outside", func(t *testing.T) {
		actual, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Nil(t, actual.BookingID())
		assert.Equal(t, ticket.StatusActive, actual.Status())
		assert.False(t, actual.InsideVenue())
		assert.Nil(t, actual.UsedAt())
	})

	t.Run("booking ticket carries the booking reference", func(t *testing.T) {
		bookingID := uuid.New()
		actual, err := builder.NewTicketBuilder().WithBookingID(bookingID).BuildDomain()
		require.NoError(t, err)

		require.NotNil(t, actual.BookingID())
		assert.Equal(t, bookingID, *actual.BookingID())
	})

	t.Run("rejects blank number and holder", func(t *testing.T) {
		_, err := builder.NewTicketBuilder().WithNumber("  ").BuildDomain()
		assert.Error(t, err)

		_, err = builder.NewTicketBuilder().WithHolderName("").BuildDomain()
		assert.Error(t, err)
	})
}

func TestEnterGate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("first entry consumes the ticket", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, tk.EnterGate(now))
		assert.True(t, tk.InsideVenue())
		assert.Equal(t, ticket.StatusUsed, tk.Status())
		require.NotNil(t, tk.UsedAt())
		assert.Equal(t, now, *tk.UsedAt())
	})

	t.Run("double entry is rejected", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.EnterGate(now))

		assert.ErrorIs(t, tk.EnterGate(now), ticket.ErrAlreadyInside)
	})

	t.Run("re-entry after exit keeps used status and timestamp", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.EnterGate(now))
		require.NoError(t, tk.ExitGate())

		later := now.Add(time.Hour)
		require.NoError(t, tk.EnterGate(later))
		assert.True(t, tk.InsideVenue())
		assert.Equal(t, ticket.StatusUsed, tk.Status())
		assert.Equal(t, now, *tk.UsedAt())
	})

	t.Run("cancelled ticket cannot enter", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.Cancel())

		assert.ErrorIs(t, tk.EnterGate(now), ticket.ErrCancelled)
	})
}

func TestExitGate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("exit flips inside off", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.EnterGate(now))

		require.NoError(t, tk.ExitGate())
		assert.False(t, tk.InsideVenue())
	})

	t.Run("exit without entry is rejected", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, tk.ExitGate(), ticket.ErrNotInside)
	})

	t.Run("double exit is rejected", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.EnterGate(now))
		require.NoError(t, tk.ExitGate())

		assert.ErrorIs(t, tk.ExitGate(), ticket.ErrNotInside)
	})
}

func TestMarkUsed(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("consumes an active ticket without occupancy change", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, tk.MarkUsed(now))
		assert.Equal(t, ticket.StatusUsed, tk.Status())
		assert.False(t, tk.InsideVenue())
	})

	t.Run("used is terminal", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.MarkUsed(now))

		assert.ErrorIs(t, tk.MarkUsed(now), ticket.ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("cancel an unused ticket", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, tk.Cancel())
		assert.Equal(t, ticket.StatusCancelled, tk.Status())
	})

	t.Run("cannot cancel while inside", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.EnterGate(now))

		assert.ErrorIs(t, tk.Cancel(), ticket.ErrInsideVenue)
	})

	t.Run("cancel after exit succeeds", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.EnterGate(now))
		require.NoError(t, tk.ExitGate())

		require.NoError(t, tk.Cancel())
		assert.Equal(t, ticket.StatusCancelled, tk.Status())
	})

	t.Run("re-cancel is a no-op", func(t *testing.T) {
		tk, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, tk.Cancel())

		assert.NoError(t, tk.Cancel())
		assert.Equal(t, ticket.StatusCancelled, tk.Status())
	})
}
