//go:build unit

package fake

import (
	"context"

	"playpark/internal/domain/booking"
	"playpark/internal/domain/gate"
	"playpark/internal/domain/slot"
	"playpark/internal/domain/ticket"
	"playpark/internal/infra"

	"github.com/google/uuid"
)

type slotRepo struct {
	store *Store
}

func (r *slotRepo) Create(_ context.Context, s *slot.Slot) error {
	key := slotKey(s.Date().Format("2006-01-02"), s.Window())
	if _, exists := r.store.slotsByKey[key]; exists {
		return infra.NewRepoErr("slot already exists", infra.KindDuplicateKey)
	}
	r.store.slots[s.ID()] = s
	r.store.slotsByKey[key] = s.ID()
	return nil
}

func (r *slotRepo) Claim(_ context.Context, id uuid.UUID) error {
	s, ok := r.store.slots[id]
	if !ok {
		return infra.NewRepoErr("slot not found", infra.KindNotFound)
	}
	if !s.IsOpen() {
		return infra.NewRepoErr("slot already claimed", infra.KindConflict)
	}
	return s.Claim()
}

func (r *slotRepo) Release(_ context.Context, id uuid.UUID) error {
	s, ok := r.store.slots[id]
	if !ok {
		return infra.NewRepoErr("slot not found", infra.KindNotFound)
	}
	if s.IsOpen() {
		return nil
	}
	return s.Release()
}

func (r *slotRepo) FindByDateWindow(_ context.Context, date string, window string) (*slot.Slot, error) {
	id, ok := r.store.slotsByKey[slotKey(date, window)]
	if !ok {
		return nil, infra.NewRepoErr("slot not found", infra.KindNotFound)
	}
	return r.store.slots[id], nil
}

type bookingRepo struct {
	store *Store
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.store.bookings[b.ID()] = b
	return nil
}

func (r *bookingRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr("booking not found", infra.KindNotFound)
	}
	return b, nil
}

func (r *bookingRepo) Save(_ context.Context, b *booking.Booking) error {
	if _, ok := r.store.bookings[b.ID()]; !ok {
		return infra.NewRepoErr("booking not found during save", infra.KindNotFound)
	}
	r.store.bookings[b.ID()] = b
	return nil
}

type ticketRepo struct {
	store *Store
}

func (r *ticketRepo) Create(_ context.Context, t *ticket.Ticket) error {
	if _, exists := r.store.ticketNumber[t.Number()]; exists {
		return infra.NewRepoErr("ticket number taken", infra.KindDuplicateKey)
	}
	r.store.tickets[t.ID()] = t
	r.store.ticketNumber[t.Number()] = t.ID()
	return nil
}

func (r *ticketRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	t, ok := r.store.tickets[id]
	if !ok {
		return nil, infra.NewRepoErr("ticket not found", infra.KindNotFound)
	}
	return t, nil
}

func (r *ticketRepo) FindByNumberForUpdate(_ context.Context, number string) (*ticket.Ticket, error) {
	id, ok := r.store.ticketNumber[number]
	if !ok {
		return nil, infra.NewRepoErr("ticket not found", infra.KindNotFound)
	}
	return r.store.tickets[id], nil
}

func (r *ticketRepo) Save(_ context.Context, t *ticket.Ticket) error {
	if _, ok := r.store.tickets[t.ID()]; !ok {
		return infra.NewRepoErr("ticket not found during save", infra.KindNotFound)
	}
	r.store.tickets[t.ID()] = t
	return nil
}

type gateLogRepo struct {
	store *Store
}

func (r *gateLogRepo) Append(_ context.Context, e *gate.LogEntry) error {
	r.store.gateLog = append(r.store.gateLog, e)
	return nil
}
