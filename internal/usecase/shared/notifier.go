package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SlotEvent struct {
	SlotID uuid.UUID `json:"slot_id"`
	Date   string    `json:"date"`
	Window string    `json:"window"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

type TicketEvent struct {
	TicketID    uuid.UUID `json:"ticket_id"`
	Number      string    `json:"number"`
	Status      string    `json:"status"`
	InsideVenue bool      `json:"inside_venue"`
	GateID      string    `json:"gate_id,omitempty"`
	At          time.Time `json:"at"`
}

// ChangeNotifier fans committed state deltas out to subscribed viewers
// (availability calendars, the live occupancy board). It is called after
// commit and is fire-and-forget: implementations log and swallow delivery
// failures, which never affect the underlying state change.
type ChangeNotifier interface {
	SlotChanged(ctx context.Context, ev SlotEvent)
	TicketChanged(ctx context.Context, ev TicketEvent)
}
