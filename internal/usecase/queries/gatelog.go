package queries

import (
	"context"
)

const defaultGateLogPageSize = 50

type GateQueries interface {
	// CurrentOccupancy is derived, not stored: the count of tickets whose
	// inside-venue flag is set, plus today's log replay for audit parity.
	CurrentOccupancy(ctx context.Context) (*OccupancyView, error)
	ListLog(ctx context.Context, filter GateLogFilter) ([]*GateLogView, error)
}

type GateLogReadStore interface {
	CountInside(ctx context.Context) (int64, error)
	CountTodayByType(ctx context.Context) (entries int64, exits int64, err error)
	FindByFilter(ctx context.Context, filter GateLogFilter) ([]*GateLogView, error)
}

type gateQueriesImpl struct {
	store GateLogReadStore
}

func NewGateQueries(store GateLogReadStore) GateQueries {
	return &gateQueriesImpl{store: store}
}

func (q *gateQueriesImpl) CurrentOccupancy(ctx context.Context) (*OccupancyView, error) {
	inside, err := q.store.CountInside(ctx)
	if err != nil {
		return nil, err
	}
	entries, exits, err := q.store.CountTodayByType(ctx)
	if err != nil {
		return nil, err
	}
	return &OccupancyView{
		InsideCount:   inside,
		TodayEntries:  entries,
		TodayExits:    exits,
		TodayLogDelta: entries - exits,
	}, nil
}

func (q *gateQueriesImpl) ListLog(ctx context.Context, filter GateLogFilter) ([]*GateLogView, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultGateLogPageSize
	}
	return q.store.FindByFilter(ctx, filter)
}
