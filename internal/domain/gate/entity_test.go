//go:build unit

package gate_test

import (
	"testing"

	"playpark/internal/domain/gate"
	"playpark/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogEntry(t *testing.T) {
	t.Run("entry and exit record the movement", func(t *testing.T) {
		b := builder.NewGateScanBuilder()

		entry, err := b.BuildEntryDomain()
		require.NoError(t, err)
		assert.Equal(t, gate.TypeEntry, entry.Type())
		assert.Equal(t, b.TicketID, entry.TicketID())
		assert.Equal(t, b.GateID, entry.GateID())
		assert.Equal(t, b.StaffID, entry.StaffID())

		exit, err := b.BuildExitDomain()
		require.NoError(t, err)
		assert.Equal(t, gate.TypeExit, exit.Type())
	})

	t.Run("requires ticket gate and staff", func(t *testing.T) {
		b := builder.NewGateScanBuilder()

		_, err := gate.NewEntry(uuid.Nil, b.GateID, b.CameraRef, b.StaffID, b.At)
		assert.Error(t, err)

		_, err = gate.NewEntry(b.TicketID, "  ", b.CameraRef, b.StaffID, b.At)
		assert.ErrorIs(t, err, gate.ErrGateRequired)

		_, err = gate.NewEntry(b.TicketID, b.GateID, b.CameraRef, uuid.Nil, b.At)
		assert.ErrorIs(t, err, gate.ErrStaffRequired)
	})

	t.Run("camera reference is optional", func(t *testing.T) {
		b := builder.NewGateScanBuilder()
		entry, err := gate.NewEntry(b.TicketID, b.GateID, "", b.StaffID, b.At)
		require.NoError(t, err)
		assert.Empty(t, entry.CameraRef())
	})
}

func TestParseEntryType(t *testing.T) {
	for _, v := range []string{"entry", "exit"} {
		parsed, err := gate.ParseEntryType(v)
		require.NoError(t, err)
		assert.Equal(t, v, parsed.String())
	}

	_, err := gate.ParseEntryType("reset")
	assert.ErrorIs(t, err, gate.ErrInvalidEntryType)
}
