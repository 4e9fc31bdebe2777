package queries

import (
	"context"

	"github.com/google/uuid"
)

type TicketQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	GetByNumber(ctx context.Context, number string) (*TicketView, error)
}

type TicketReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	FindByNumber(ctx context.Context, number string) (*TicketView, error)
}

type ticketQueriesImpl struct {
	store TicketReadStore
}

func NewTicketQueries(store TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *ticketQueriesImpl) GetByNumber(ctx context.Context, number string) (*TicketView, error) {
	return q.store.FindByNumber(ctx, number)
}
