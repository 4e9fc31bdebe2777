//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"playpark/internal/domain/ticket"
	"playpark/internal/pkg/clock"
	"playpark/internal/usecase/commands"
	"playpark/tests/common/builder"
	"playpark/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTicketFixture(t *testing.T) (*fake.Store, *fake.NotifierRecorder, commands.TicketCommands) {
	t.Helper()
	store := fake.NewStore()
	notifier := fake.NewNotifierRecorder()
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	cmds := commands.NewTicketCommands(
		fake.NewUnitOfWork(store),
		notifier,
		fake.NewTicketQueries(store),
		clk,
	)
	return store, notifier, cmds
}

func seedTicket(t *testing.T, store *fake.Store) *ticket.Ticket {
	t.Helper()
	entity, err := builder.NewTicketBuilder().BuildDomain()
	require.NoError(t, err)
	store.SeedTicket(entity)
	return entity
}

func TestIssueTicket(t *testing.T) {
	t.Run("counter ticket is active and outside", func(t *testing.T) {
		_, notifier, cmds := newTicketFixture(t)

		ref := "MEM-0042"
		view, err := cmds.Issue(context.Background(), commands.IssueTicketParams{
			HolderName:    "Hanako Sato",
			MembershipRef: &ref,
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(view.Number, "PP-20260314-"))
		assert.Nil(t, view.BookingID)
		assert.Equal(t, "Hanako Sato", view.HolderName)
		require.NotNil(t, view.MembershipRef)
		assert.Equal(t, "MEM-0042", *view.MembershipRef)
		assert.Equal(t, ticket.StatusActive.String(), view.Status)
		assert.False(t, view.InsideVenue)
		assert.Nil(t, view.UsedAt)

		require.Equal(t, 1, notifier.TicketEventCount())
		assert.Equal(t, view.Number, notifier.TicketEvents[0].Number)
	})

	t.Run("booking ticket carries the reference and defaults the holder", func(t *testing.T) {
		store, _, cmds := newTicketFixture(t)
		b, err := builder.NewBookingBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)
		store.SeedBooking(b)

		bookingID := b.ID()
		view, err := cmds.Issue(context.Background(), commands.IssueTicketParams{
			BookingID: &bookingID,
		})
		require.NoError(t, err)

		require.NotNil(t, view.BookingID)
		assert.Equal(t, bookingID, *view.BookingID)
		assert.Equal(t, b.Contact().Name(), view.HolderName)
	})

	t.Run("explicit holder overrides the booking contact", func(t *testing.T) {
		store, _, cmds := newTicketFixture(t)
		b, err := builder.NewBookingBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)
		store.SeedBooking(b)

		bookingID := b.ID()
		view, err := cmds.Issue(context.Background(), commands.IssueTicketParams{
			BookingID:  &bookingID,
			HolderName: "Kenta Mori",
		})
		require.NoError(t, err)
		assert.Equal(t, "Kenta Mori", view.HolderName)
	})

	t.Run("pending booking cannot be ticketed", func(t *testing.T) {
		store, notifier, cmds := newTicketFixture(t)
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		store.SeedBooking(b)

		bookingID := b.ID()
		_, err = cmds.Issue(context.Background(), commands.IssueTicketParams{BookingID: &bookingID})
		assert.ErrorIs(t, err, commands.ErrBookingNotConfirmed)
		assert.Zero(t, notifier.TicketEventCount())
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, _, cmds := newTicketFixture(t)
		bookingID := uuid.New()
		_, err := cmds.Issue(context.Background(), commands.IssueTicketParams{BookingID: &bookingID})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("blank counter holder is rejected", func(t *testing.T) {
		_, _, cmds := newTicketFixture(t)
		_, err := cmds.Issue(context.Background(), commands.IssueTicketParams{HolderName: "   "})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestMarkUsed(t *testing.T) {
	t.Run("consumes an active ticket without moving occupancy", func(t *testing.T) {
		store, _, cmds := newTicketFixture(t)
		seeded := seedTicket(t, store)

		err := cmds.MarkUsed(context.Background(), seeded.ID())
		require.NoError(t, err)

		updated := store.Ticket(seeded.ID())
		assert.Equal(t, ticket.StatusUsed, updated.Status())
		assert.False(t, updated.InsideVenue())
		assert.NotNil(t, updated.UsedAt())
	})

	t.Run("cancelled ticket cannot be consumed", func(t *testing.T) {
		store, _, cmds := newTicketFixture(t)
		seeded := seedTicket(t, store)
		require.NoError(t, seeded.Cancel())

		err := cmds.MarkUsed(context.Background(), seeded.ID())
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, _, cmds := newTicketFixture(t)
		err := cmds.MarkUsed(context.Background(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrTicketNotFound)
	})
}

func TestCancelTicket(t *testing.T) {
	t.Run("cancels and notifies after commit", func(t *testing.T) {
		store, notifier, cmds := newTicketFixture(t)
		seeded := seedTicket(t, store)

		err := cmds.Cancel(context.Background(), seeded.ID())
		require.NoError(t, err)

		assert.Equal(t, ticket.StatusCancelled, store.Ticket(seeded.ID()).Status())
		require.Equal(t, 1, notifier.TicketEventCount())
		assert.Equal(t, ticket.StatusCancelled.String(), notifier.TicketEvents[0].Status)
	})

	t.Run("holder inside the venue blocks cancellation", func(t *testing.T) {
		store, notifier, cmds := newTicketFixture(t)
		seeded := seedTicket(t, store)
		require.NoError(t, seeded.EnterGate(time.Now()))

		err := cmds.Cancel(context.Background(), seeded.ID())
		assert.ErrorIs(t, err, commands.ErrTicketInsideVenue)
		assert.Zero(t, notifier.TicketEventCount())
	})

	t.Run("replayed cancel succeeds without a second event", func(t *testing.T) {
		store, notifier, cmds := newTicketFixture(t)
		seeded := seedTicket(t, store)

		require.NoError(t, cmds.Cancel(context.Background(), seeded.ID()))
		require.NoError(t, cmds.Cancel(context.Background(), seeded.ID()))
		assert.Equal(t, 1, notifier.TicketEventCount())
	})
}
