package gate

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEntryType = errors.New("invalid gate entry type")
	ErrGateRequired     = errors.New("gate id is required")
	ErrStaffRequired    = errors.New("scanning staff id is required")
)

// LogEntry is an immutable audit record of one scan. Rows are append-only;
// a bad scan is corrected by appending the opposite movement, never by
// editing history. Per ticket the sequence alternates entry, exit, entry, ...
// which the occupancy tracker guarantees by serializing scans per ticket.
type LogEntry struct {
	id        uuid.UUID
	ticketID  uuid.UUID
	entryType EntryType
	gateID    string
	cameraRef string
	staffID   uuid.UUID
	createdAt time.Time
}

func NewEntry(ticketID uuid.UUID, gateID, cameraRef string, staffID uuid.UUID, at time.Time) (*LogEntry, error) {
	return newLogEntry(ticketID, TypeEntry, gateID, cameraRef, staffID, at)
}

func NewExit(ticketID uuid.UUID, gateID, cameraRef string, staffID uuid.UUID, at time.Time) (*LogEntry, error) {
	return newLogEntry(ticketID, TypeExit, gateID, cameraRef, staffID, at)
}

func newLogEntry(ticketID uuid.UUID, entryType EntryType, gateID, cameraRef string, staffID uuid.UUID, at time.Time) (*LogEntry, error) {
	if ticketID == uuid.Nil {
		return nil, errors.New("ticket id is required")
	}
	gateID = strings.TrimSpace(gateID)
	if gateID == "" {
		return nil, ErrGateRequired
	}
	if staffID == uuid.Nil {
		return nil, ErrStaffRequired
	}

	return &LogEntry{
		id:        uuid.New(),
		ticketID:  ticketID,
		entryType: entryType,
		gateID:    gateID,
		cameraRef: strings.TrimSpace(cameraRef),
		staffID:   staffID,
		createdAt: at,
	}, nil
}

func ReconstructLogEntry(id, ticketID uuid.UUID, entryType EntryType, gateID, cameraRef string, staffID uuid.UUID, createdAt time.Time) *LogEntry {
	return &LogEntry{
		id:        id,
		ticketID:  ticketID,
		entryType: entryType,
		gateID:    gateID,
		cameraRef: cameraRef,
		staffID:   staffID,
		createdAt: createdAt,
	}
}

func (e *LogEntry) ID() uuid.UUID        { return e.id }
func (e *LogEntry) TicketID() uuid.UUID  { return e.ticketID }
func (e *LogEntry) Type() EntryType      { return e.entryType }
func (e *LogEntry) GateID() string       { return e.gateID }
func (e *LogEntry) CameraRef() string    { return e.cameraRef }
func (e *LogEntry) StaffID() uuid.UUID   { return e.staffID }
func (e *LogEntry) CreatedAt() time.Time { return e.createdAt }
