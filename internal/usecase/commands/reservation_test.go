//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"playpark/internal/domain/booking"
	"playpark/internal/domain/slot"
	"playpark/internal/pkg/clock"
	"playpark/internal/usecase/commands"
	"playpark/internal/usecase/queries"
	"playpark/tests/common/builder"
	"playpark/tests/common/fake"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationFixture(t *testing.T) (*fake.Store, *fake.NotifierRecorder, commands.ReservationCommands) {
	t.Helper()
	store := fake.NewStore()
	notifier := fake.NewNotifierRecorder()
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	cmds := commands.NewReservationCommands(
		fake.NewUnitOfWork(store),
		notifier,
		fake.NewBookingQueries(store),
		clk,
	)
	return store, notifier, cmds
}

func seedOpenSlot(t *testing.T, store *fake.Store) *slot.Slot {
	t.Helper()
	entity, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)
	store.SeedSlot(entity)
	return entity
}

func reserveParams() commands.ReserveSlotParams {
	return commands.ReserveSlotParams{
		Date:       "2026-03-14",
		Window:     "10:00-12:00",
		GuestName:  "Taro Yamada",
		GuestPhone: "090-1234-5678",
		PartySize:  3,
	}
}

func TestReserveSlot(t *testing.T) {
	t.Run("claims the slot and returns the booking view", func(t *testing.T) {
		store, notifier, cmds := newReservationFixture(t)
		seeded := seedOpenSlot(t, store)

		view, err := cmds.ReserveSlot(context.Background(), reserveParams())
		require.NoError(t, err)
		require.NotNil(t, view)

		expected := &queries.BookingView{
			SlotID:        seeded.ID(),
			SlotDate:      "2026-03-14",
			SlotWindow:    "10:00-12:00",
			GuestName:     "Taro Yamada",
			GuestPhone:    "090-1234-5678",
			PartySize:     3,
			Status:        booking.StatusPending.String(),
			PaymentStatus: booking.PaymentUnpaid.String(),
		}
		ignoreGenerated := cmpopts.IgnoreFields(queries.BookingView{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, view, ignoreGenerated); diff != "" {
			t.Errorf("BookingView mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, slot.StatusClaimed, store.Slot(seeded.ID()).Status())
		require.Equal(t, 1, notifier.SlotEventCount())
		assert.Equal(t, slot.StatusClaimed.String(), notifier.SlotEvents[0].Status)
	})

	t.Run("counter booking comes back confirmed", func(t *testing.T) {
		store, _, cmds := newReservationFixture(t)
		seedOpenSlot(t, store)

		params := reserveParams()
		params.Confirmed = true
		view, err := cmds.ReserveSlot(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, notifier, cmds := newReservationFixture(t)

		_, err := cmds.ReserveSlot(context.Background(), reserveParams())
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
		assert.Zero(t, notifier.SlotEventCount())
	})

	t.Run("already claimed slot writes nothing", func(t *testing.T) {
		store, notifier, cmds := newReservationFixture(t)
		seeded := seedOpenSlot(t, store)
		require.NoError(t, seeded.Claim())

		_, err := cmds.ReserveSlot(context.Background(), reserveParams())
		assert.ErrorIs(t, err, commands.ErrSlotUnavailable)
		assert.Empty(t, store.Bookings())
		assert.Zero(t, notifier.SlotEventCount())
	})

	t.Run("invalid party size is rejected before the transaction", func(t *testing.T) {
		store, _, cmds := newReservationFixture(t)
		seeded := seedOpenSlot(t, store)

		params := reserveParams()
		params.PartySize = 0
		_, err := cmds.ReserveSlot(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Equal(t, slot.StatusOpen, store.Slot(seeded.ID()).Status())
	})
}

// Concurrent requests race for one open slot: exactly one booking wins,
// every other caller gets ErrSlotUnavailable.
func TestReserveSlotConcurrent(t *testing.T) {
	const contenders = 16

	store, notifier, cmds := newReservationFixture(t)
	seeded := seedOpenSlot(t, store)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
		errs []error
	)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cmds.ReserveSlot(context.Background(), reserveParams())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
				return
			}
			errs = append(errs, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	require.Len(t, errs, contenders-1)
	for _, err := range errs {
		assert.ErrorIs(t, err, commands.ErrSlotUnavailable)
	}
	assert.Len(t, store.Bookings(), 1)
	assert.Equal(t, slot.StatusClaimed, store.Slot(seeded.ID()).Status())
	assert.Equal(t, 1, notifier.SlotEventCount())
}

func TestCancelBooking(t *testing.T) {
	seedClaimedBooking := func(t *testing.T, store *fake.Store, paid bool) *booking.Booking {
		t.Helper()
		s := seedOpenSlot(t, store)
		require.NoError(t, s.Claim())

		b, err := builder.NewBookingBuilder().WithSlotID(s.ID()).AsConfirmed().BuildDomain()
		require.NoError(t, err)
		if paid {
			require.NoError(t, b.UpdatePayment(booking.PaymentPaid))
		}
		store.SeedBooking(b)
		return b
	}

	t.Run("refund of a paid booking releases the slot", func(t *testing.T) {
		store, notifier, cmds := newReservationFixture(t)
		b := seedClaimedBooking(t, store, true)

		err := cmds.CancelBooking(context.Background(), b.ID(), true, "guest called to cancel")
		require.NoError(t, err)

		cancelled := store.Booking(b.ID())
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
		assert.Equal(t, booking.PaymentRefunded, cancelled.PaymentStatus())
		assert.Contains(t, cancelled.Notes().String(), "guest called to cancel")

		assert.Equal(t, slot.StatusOpen, store.Slot(b.SlotID()).Status())
		require.Equal(t, 1, notifier.SlotEventCount())
		assert.Equal(t, slot.StatusOpen.String(), notifier.SlotEvents[0].Status)
	})

	t.Run("unpaid refund request leaves a follow-up note", func(t *testing.T) {
		store, _, cmds := newReservationFixture(t)
		b := seedClaimedBooking(t, store, false)

		require.NoError(t, cmds.CancelBooking(context.Background(), b.ID(), true, ""))

		cancelled := store.Booking(b.ID())
		assert.Equal(t, booking.PaymentUnpaid, cancelled.PaymentStatus())
		assert.Contains(t, cancelled.Notes().String(), "refund required")
	})

	t.Run("replayed cancel succeeds without a second event", func(t *testing.T) {
		store, notifier, cmds := newReservationFixture(t)
		b := seedClaimedBooking(t, store, true)

		require.NoError(t, cmds.CancelBooking(context.Background(), b.ID(), true, "first"))
		require.NoError(t, cmds.CancelBooking(context.Background(), b.ID(), true, "second"))

		cancelled := store.Booking(b.ID())
		assert.Equal(t, booking.PaymentRefunded, cancelled.PaymentStatus())
		assert.NotContains(t, cancelled.Notes().String(), "second")
		assert.Equal(t, 1, notifier.SlotEventCount())
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, _, cmds := newReservationFixture(t)
		err := cmds.CancelBooking(context.Background(), uuid.New(), false, "")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
