//go:build unit

package slot_test

import (
	"testing"
	"time"

	"playpark/internal/domain/slot"
	"playpark/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("opens with normalized date", func(t *testing.T) {
		date := time.Date(2026, 3, 14, 15, 42, 7, 0, time.UTC)
		actual, err := slot.NewSlot(date, "10:00-12:00")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, slot.StatusOpen, actual.Status())
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), actual.Date())
	})

	t.Run("window label validation", func(t *testing.T) {
		cases := []struct {
			name    string
			window  string
			wantErr bool
		}{
			{name: "standard window", window: "10:00-12:00"},
			{name: "early morning", window: "09:30-11:30"},
			{name: "evening", window: "18:00-20:00"},
			{name: "missing dash", window: "10:00 12:00", wantErr: true},
			{name: "hour out of range", window: "25:00-26:00", wantErr: true},
			{name: "minute out of range", window: "10:61-11:00", wantErr: true},
			{name: "free text", window: "morning", wantErr: true},
			{name: "empty", window: "", wantErr: true},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewSlotBuilder().WithWindow(tc.window).BuildDomain()
				if tc.wantErr {
					assert.ErrorIs(t, err, slot.ErrInvalidWindow)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("rejects zero date", func(t *testing.T) {
		_, err := slot.NewSlot(time.Time{}, "10:00-12:00")
		assert.ErrorIs(t, err, slot.ErrZeroDate)
	})
}

func TestClaimRelease(t *testing.T) {
	t.Run("claim then release round-trips", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.Claim())
		assert.Equal(t, slot.StatusClaimed, s.Status())

		require.NoError(t, s.Release())
		assert.True(t, s.IsOpen())
	})

	t.Run("double claim is rejected", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, s.Claim())

		assert.ErrorIs(t, s.Claim(), slot.ErrAlreadyClaimed)
	})

	t.Run("release of an open slot is rejected", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, s.Release(), slot.ErrNotClaimed)
	})
}
