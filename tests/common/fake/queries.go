//go:build unit

package fake

import (
	"context"
	"sort"

	"playpark/internal/infra"
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
)

// Query fakes project views straight off the store, standing in for the
// read side that commands use for read-after-write responses.

type SlotQueries struct {
	store *Store
}

func NewSlotQueries(store *Store) *SlotQueries {
	return &SlotQueries{store: store}
}

func (q *SlotQueries) ListByDate(_ context.Context, date string) ([]*queries.SlotView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	views := make([]*queries.SlotView, 0)
	for _, s := range q.store.slots {
		if s.Date().Format("2006-01-02") != date {
			continue
		}
		views = append(views, &queries.SlotView{
			ID:     s.ID(),
			Date:   date,
			Window: s.Window(),
			Status: s.Status().String(),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Window < views[j].Window })
	return views, nil
}

type BookingQueries struct {
	store *Store
}

func NewBookingQueries(store *Store) *BookingQueries {
	return &BookingQueries{store: store}
}

func (q *BookingQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	b, ok := q.store.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr("booking not found", infra.KindNotFound)
	}

	view := &queries.BookingView{
		ID:            b.ID(),
		SlotID:        b.SlotID(),
		GuestName:     b.Contact().Name(),
		GuestPhone:    b.Contact().Phone(),
		PartySize:     b.PartySize().Value(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	if s, ok := q.store.slots[b.SlotID()]; ok {
		view.SlotDate = s.Date().Format("2006-01-02")
		view.SlotWindow = s.Window()
	}
	if !b.Notes().IsEmpty() {
		notes := b.Notes().String()
		view.Notes = &notes
	}
	return view, nil
}

func (q *BookingQueries) List(_ context.Context, _ queries.BookingFilter) ([]*queries.BookingListItem, error) {
	return nil, nil
}

type TicketQueries struct {
	store *Store
}

func NewTicketQueries(store *Store) *TicketQueries {
	return &TicketQueries{store: store}
}

func (q *TicketQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.TicketView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	t, ok := q.store.tickets[id]
	if !ok {
		return nil, infra.NewRepoErr("ticket not found", infra.KindNotFound)
	}
	return &queries.TicketView{
		ID:            t.ID(),
		Number:        t.Number(),
		BookingID:     t.BookingID(),
		HolderName:    t.HolderName(),
		MembershipRef: t.MembershipRef(),
		Status:        t.Status().String(),
		InsideVenue:   t.InsideVenue(),
		IssuedAt:      t.IssuedAt(),
		UsedAt:        t.UsedAt(),
	}, nil
}

func (q *TicketQueries) GetByNumber(ctx context.Context, number string) (*queries.TicketView, error) {
	q.store.mu.Lock()
	id, ok := q.store.ticketNumber[number]
	q.store.mu.Unlock()
	if !ok {
		return nil, infra.NewRepoErr("ticket not found", infra.KindNotFound)
	}
	return q.GetByID(ctx, id)
}
