//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"playpark/internal/domain/gate"
	"playpark/internal/domain/ticket"
	"playpark/internal/pkg/clock"
	"playpark/internal/usecase/commands"
	"playpark/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateFixture(t *testing.T) (*fake.Store, *fake.NotifierRecorder, commands.GateCommands) {
	t.Helper()
	store := fake.NewStore()
	notifier := fake.NewNotifierRecorder()
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC))
	cmds := commands.NewGateCommands(
		fake.NewUnitOfWork(store),
		notifier,
		fake.NewTicketQueries(store),
		clk,
	)
	return store, notifier, cmds
}

func scanParams(number string) commands.GateScanParams {
	return commands.GateScanParams{
		TicketNumber: number,
		GateID:       "gate-1",
		CameraRef:    "cam-entrance",
		StaffID:      uuid.New(),
	}
}

func TestGateEntry(t *testing.T) {
	t.Run("first entry consumes the ticket and logs the movement", func(t *testing.T) {
		store, notifier, cmds := newGateFixture(t)
		seeded := seedTicket(t, store)
		params := scanParams(seeded.Number())

		view, err := cmds.Entry(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, ticket.StatusUsed.String(), view.Status)
		assert.True(t, view.InsideVenue)
		require.NotNil(t, view.UsedAt)

		log := store.GateLog()
		require.Len(t, log, 1)
		assert.Equal(t, seeded.ID(), log[0].TicketID())
		assert.Equal(t, gate.TypeEntry, log[0].Type())
		assert.Equal(t, "gate-1", log[0].GateID())
		assert.Equal(t, "cam-entrance", log[0].CameraRef())
		assert.Equal(t, params.StaffID, log[0].StaffID())

		require.Equal(t, 1, notifier.TicketEventCount())
		assert.True(t, notifier.TicketEvents[0].InsideVenue)
		assert.Equal(t, "gate-1", notifier.TicketEvents[0].GateID)
	})

	t.Run("double entry writes no log row", func(t *testing.T) {
		store, _, cmds := newGateFixture(t)
		seeded := seedTicket(t, store)

		_, err := cmds.Entry(context.Background(), scanParams(seeded.Number()))
		require.NoError(t, err)
		_, err = cmds.Entry(context.Background(), scanParams(seeded.Number()))
		assert.ErrorIs(t, err, commands.ErrAlreadyInside)
		assert.Len(t, store.GateLog(), 1)
	})

	t.Run("cancelled ticket is turned away", func(t *testing.T) {
		store, notifier, cmds := newGateFixture(t)
		seeded := seedTicket(t, store)
		require.NoError(t, seeded.Cancel())

		_, err := cmds.Entry(context.Background(), scanParams(seeded.Number()))
		assert.ErrorIs(t, err, commands.ErrTicketCancelled)
		assert.Empty(t, store.GateLog())
		assert.Zero(t, notifier.TicketEventCount())
	})

	t.Run("unknown number", func(t *testing.T) {
		_, _, cmds := newGateFixture(t)
		_, err := cmds.Entry(context.Background(), scanParams("PP-20260314-NONE22"))
		assert.ErrorIs(t, err, commands.ErrTicketNotFound)
	})
}

func TestGateExit(t *testing.T) {
	t.Run("exit clears the inside flag but keeps the ticket used", func(t *testing.T) {
		store, _, cmds := newGateFixture(t)
		seeded := seedTicket(t, store)

		_, err := cmds.Entry(context.Background(), scanParams(seeded.Number()))
		require.NoError(t, err)

		view, err := cmds.Exit(context.Background(), scanParams(seeded.Number()))
		require.NoError(t, err)

		assert.False(t, view.InsideVenue)
		assert.Equal(t, ticket.StatusUsed.String(), view.Status)
		assert.Zero(t, store.InsideCount())
	})

	t.Run("exit without entry", func(t *testing.T) {
		store, _, cmds := newGateFixture(t)
		seeded := seedTicket(t, store)

		_, err := cmds.Exit(context.Background(), scanParams(seeded.Number()))
		assert.ErrorIs(t, err, commands.ErrNotInside)
		assert.Empty(t, store.GateLog())
	})

	t.Run("re-entry after exit keeps the original used timestamp", func(t *testing.T) {
		store, _, cmds := newGateFixture(t)
		seeded := seedTicket(t, store)
		params := scanParams(seeded.Number())

		first, err := cmds.Entry(context.Background(), params)
		require.NoError(t, err)
		_, err = cmds.Exit(context.Background(), params)
		require.NoError(t, err)

		again, err := cmds.Entry(context.Background(), params)
		require.NoError(t, err)

		assert.True(t, again.InsideVenue)
		require.NotNil(t, again.UsedAt)
		assert.Equal(t, *first.UsedAt, *again.UsedAt)
	})
}

// A rejected transition writes nothing, so each ticket's log strictly
// alternates entry, exit, entry, ... and the inside count always equals the
// day's entries minus exits.
func TestGateLogAlternates(t *testing.T) {
	store, _, cmds := newGateFixture(t)
	first := seedTicket(t, store)

	secondEntity, err := builderTicketWithNumber(t, "PP-20260314-Q2M4K7")
	require.NoError(t, err)
	store.SeedTicket(secondEntity)

	ctx := context.Background()
	scans := []struct {
		number string
		entry  bool
	}{
		{first.Number(), true},
		{secondEntity.Number(), true},
		{first.Number(), true}, // rejected, already inside
		{first.Number(), false},
		{secondEntity.Number(), false},
		{secondEntity.Number(), false}, // rejected, already outside
		{first.Number(), true},
	}
	for _, s := range scans {
		if s.entry {
			_, _ = cmds.Entry(ctx, scanParams(s.number))
		} else {
			_, _ = cmds.Exit(ctx, scanParams(s.number))
		}
	}

	perTicket := map[uuid.UUID]gate.EntryType{}
	entries, exits := 0, 0
	for _, row := range store.GateLog() {
		if prev, ok := perTicket[row.TicketID()]; ok {
			assert.NotEqual(t, prev, row.Type(), "per-ticket log must alternate")
		}
		perTicket[row.TicketID()] = row.Type()
		if row.Type() == gate.TypeEntry {
			entries++
		} else {
			exits++
		}
	}

	assert.Len(t, store.GateLog(), 5)
	assert.Equal(t, entries-exits, store.InsideCount())
	assert.Equal(t, 1, store.InsideCount())
}

func builderTicketWithNumber(t *testing.T, number string) (*ticket.Ticket, error) {
	t.Helper()
	return ticket.NewCounter(number, "Second Guest", nil, time.Date(2026, 3, 14, 9, 45, 0, 0, time.UTC))
}
