package readstore

import (
	"context"
	"fmt"
	"strings"

	"playpark/internal/infra/db"
	"playpark/internal/usecase/queries"
)

type GateLogReadStore struct {
	db db.DBTX
}

func NewGateLogReadStore(dbtx db.DBTX) *GateLogReadStore {
	return &GateLogReadStore{db: dbtx}
}

// CountInside derives occupancy from the per-ticket inside flag, which is
// the authoritative source. The log replay below exists for audit parity.
func (s *GateLogReadStore) CountInside(ctx context.Context) (int64, error) {
	const q = `SELECT count(*) FROM tickets WHERE inside_venue`

	var n int64
	if err := s.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, wrapQueryErr("failed to count tickets inside", err)
	}
	return n, nil
}

func (s *GateLogReadStore) CountTodayByType(ctx context.Context) (entries int64, exits int64, err error) {
	const q = `
		SELECT count(*) FILTER (WHERE entry_type = 'entry'),
		       count(*) FILTER (WHERE entry_type = 'exit')
		FROM gate_log
		WHERE created_at >= date_trunc('day', now())`

	if err := s.db.QueryRow(ctx, q).Scan(&entries, &exits); err != nil {
		return 0, 0, wrapQueryErr("failed to count today's gate movements", err)
	}
	return entries, exits, nil
}

func (s *GateLogReadStore) FindByFilter(ctx context.Context, filter queries.GateLogFilter) ([]*queries.GateLogView, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.From != nil {
		conds = append(conds, "l.created_at >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "l.created_at < "+arg(*filter.To))
	}
	if filter.GateID != nil {
		conds = append(conds, "l.gate_id = "+arg(*filter.GateID))
	}
	if filter.EntryType != nil {
		conds = append(conds, "l.entry_type = "+arg(filter.EntryType.String()))
	}

	q := `
		SELECT l.id, l.ticket_id, t.ticket_no, l.entry_type, l.gate_id,
		       l.camera_ref, l.staff_id, l.created_at
		FROM gate_log l
		JOIN tickets t ON t.id = l.ticket_id`
	if len(conds) > 0 {
		q += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	q += "\n\t\tORDER BY l.created_at DESC"
	q += "\n\t\tLIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list gate log", err)
	}
	defer rows.Close()

	views := make([]*queries.GateLogView, 0)
	for rows.Next() {
		var v queries.GateLogView
		if err := rows.Scan(
			&v.ID, &v.TicketID, &v.TicketNumber, &v.Type, &v.GateID,
			&v.CameraRef, &v.StaffID, &v.CreatedAt,
		); err != nil {
			return nil, wrapQueryErr("failed to scan gate log row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read gate log rows", err)
	}
	return views, nil
}
