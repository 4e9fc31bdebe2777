package shared

import (
	"context"

	"playpark/internal/domain/booking"
	"playpark/internal/domain/gate"
	"playpark/internal/domain/slot"
	"playpark/internal/domain/ticket"
	"playpark/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failure/deadlock. The closure re-runs from the top on
	// retry, so no partial state survives a failed attempt.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Tx exposes the write-side repositories bound to one transaction.
type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Tickets() TicketRepository
	GateLog() GateLogRepository
	DB() db.DBTX
}

// SlotRepository owns slot-status writes exclusively. Claim and Release are
// conditional single-row updates keyed on current status: when two callers
// race for the same open slot, exactly one update hits a row.
type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	Claim(ctx context.Context, id uuid.UUID) error
	Release(ctx context.Context, id uuid.UUID) error
	FindByDateWindow(ctx context.Context, date string, window string) (*slot.Slot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// FindForUpdate locks the row so status/payment/notes writes on one
	// booking are serialized.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) error
}

type TicketRepository interface {
	Create(ctx context.Context, t *ticket.Ticket) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	// FindByNumberForUpdate serves gate scanners, which read the printed
	// ticket number rather than the row id.
	FindByNumberForUpdate(ctx context.Context, number string) (*ticket.Ticket, error)
	Save(ctx context.Context, t *ticket.Ticket) error
}

// GateLogRepository only appends; gate-log rows are never updated or
// deleted.
type GateLogRepository interface {
	Append(ctx context.Context, e *gate.LogEntry) error
}
