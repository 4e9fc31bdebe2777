package readstore

import (
	"context"

	"playpark/internal/infra/db"
	"playpark/internal/usecase/queries"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (s *SlotReadStore) FindByDate(ctx context.Context, date string) ([]*queries.SlotView, error) {
	const q = `
		SELECT id, to_char(slot_date, 'YYYY-MM-DD'), window_label, status
		FROM slots
		WHERE slot_date = $1::date
		ORDER BY window_label ASC`

	rows, err := s.db.Query(ctx, q, date)
	if err != nil {
		return nil, wrapQueryErr("failed to list slots by date", err)
	}
	defer rows.Close()

	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.Date, &v.Window, &v.Status); err != nil {
			return nil, wrapQueryErr("failed to scan slot row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read slot rows", err)
	}
	return views, nil
}
