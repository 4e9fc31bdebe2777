//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"playpark/internal/domain/slot"
	"playpark/internal/pkg/clock"
	"playpark/internal/usecase/commands"
	"playpark/tests/common/builder"
	"playpark/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlotFixture(t *testing.T) (*fake.Store, *fake.NotifierRecorder, commands.SlotCommands) {
	t.Helper()
	store := fake.NewStore()
	notifier := fake.NewNotifierRecorder()
	clk := clock.NewMockClock(time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC))
	cmds := commands.NewSlotCommands(
		fake.NewUnitOfWork(store),
		notifier,
		fake.NewSlotQueries(store),
		clk,
	)
	return store, notifier, cmds
}

func TestOpenSlots(t *testing.T) {
	t.Run("opens the day's windows and reports them sorted", func(t *testing.T) {
		_, notifier, cmds := newSlotFixture(t)

		views, err := cmds.OpenSlots(context.Background(), commands.OpenSlotsParams{
			Date:    "2026-03-14",
			Windows: []string{"13:00-15:00", "10:00-12:00"},
		})
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.Equal(t, "10:00-12:00", views[0].Window)
		assert.Equal(t, "13:00-15:00", views[1].Window)
		for _, v := range views {
			assert.Equal(t, slot.StatusOpen.String(), v.Status)
		}
		assert.Equal(t, 2, notifier.SlotEventCount())
	})

	t.Run("re-posting an existing window is a no-op", func(t *testing.T) {
		store, notifier, cmds := newSlotFixture(t)
		seeded, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		store.SeedSlot(seeded)

		views, err := cmds.OpenSlots(context.Background(), commands.OpenSlotsParams{
			Date:    "2026-03-14",
			Windows: []string{"10:00-12:00", "13:00-15:00"},
		})
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.Equal(t, seeded.ID(), views[0].ID)
		assert.Equal(t, 1, notifier.SlotEventCount(), "only the new window notifies")
	})

	t.Run("invalid window aborts the whole day", func(t *testing.T) {
		_, notifier, cmds := newSlotFixture(t)

		_, err := cmds.OpenSlots(context.Background(), commands.OpenSlotsParams{
			Date:    "2026-03-14",
			Windows: []string{"10:00-12:00", "25:00-27:00"},
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Zero(t, notifier.SlotEventCount())
	})

	t.Run("invalid date", func(t *testing.T) {
		_, _, cmds := newSlotFixture(t)

		_, err := cmds.OpenSlots(context.Background(), commands.OpenSlotsParams{
			Date:    "03/14/2026",
			Windows: []string{"10:00-12:00"},
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}
