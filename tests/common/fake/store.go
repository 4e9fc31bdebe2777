//go:build unit

// Package fake provides an in-memory unit of work for command tests. Each
// Within call holds the store lock for its whole duration, so transactions
// are serialized the way row locks serialize them in Postgres.
package fake

import (
	"context"
	"sync"

	"playpark/internal/domain/booking"
	"playpark/internal/domain/gate"
	"playpark/internal/domain/slot"
	"playpark/internal/domain/ticket"
	"playpark/internal/infra/db"
	"playpark/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	slots        map[uuid.UUID]*slot.Slot
	slotsByKey   map[string]uuid.UUID
	bookings     map[uuid.UUID]*booking.Booking
	tickets      map[uuid.UUID]*ticket.Ticket
	ticketNumber map[string]uuid.UUID
	gateLog      []*gate.LogEntry
}

func NewStore() *Store {
	return &Store{
		slots:        make(map[uuid.UUID]*slot.Slot),
		slotsByKey:   make(map[string]uuid.UUID),
		bookings:     make(map[uuid.UUID]*booking.Booking),
		tickets:      make(map[uuid.UUID]*ticket.Ticket),
		ticketNumber: make(map[string]uuid.UUID),
	}
}

func slotKey(date, window string) string {
	return date + "/" + window
}

// Seed helpers bypass the unit of work for test arrangement.

func (s *Store) SeedSlot(entity *slot.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[entity.ID()] = entity
	s.slotsByKey[slotKey(entity.Date().Format("2006-01-02"), entity.Window())] = entity.ID()
}

func (s *Store) SeedBooking(entity *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[entity.ID()] = entity
}

func (s *Store) SeedTicket(entity *ticket.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[entity.ID()] = entity
	s.ticketNumber[entity.Number()] = entity.ID()
}

func (s *Store) Slot(id uuid.UUID) *slot.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[id]
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

func (s *Store) Ticket(id uuid.UUID) *ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets[id]
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out
}

func (s *Store) GateLog() []*gate.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*gate.LogEntry, len(s.gateLog))
	copy(out, s.gateLog)
	return out
}

func (s *Store) InsideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tickets {
		if t.InsideVenue() {
			n++
		}
	}
	return n
}

// UnitOfWork implements shared.UnitOfWork over the store.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *UnitOfWork) WithDB(_ context.Context, _ func(ctx context.Context, dbtx db.DBTX) error) error {
	panic("fake unit of work has no raw database access")
}

type fakeTx struct {
	store *Store
}

func (t *fakeTx) Slots() shared.SlotRepository       { return &slotRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &bookingRepo{store: t.store} }
func (t *fakeTx) Tickets() shared.TicketRepository   { return &ticketRepo{store: t.store} }
func (t *fakeTx) GateLog() shared.GateLogRepository  { return &gateLogRepo{store: t.store} }
func (t *fakeTx) DB() db.DBTX                        { return nil }
