package queries

import (
	"context"
)

type SlotQueries interface {
	// ListByDate returns the day's slots ordered by window ascending.
	ListByDate(ctx context.Context, date string) ([]*SlotView, error)
}

type SlotReadStore interface {
	FindByDate(ctx context.Context, date string) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) ListByDate(ctx context.Context, date string) ([]*SlotView, error) {
	return q.store.FindByDate(ctx, date)
}
