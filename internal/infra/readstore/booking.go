package readstore

import (
	"context"
	"fmt"
	"strings"

	"playpark/internal/infra/db"
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT b.id, b.slot_id, to_char(s.slot_date, 'YYYY-MM-DD'), s.window_label,
		       b.guest_name, b.guest_phone, b.party_size, b.status, b.payment_status,
		       b.notes, b.created_at, b.updated_at
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		WHERE b.id = $1`

	var v queries.BookingView
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.SlotID, &v.SlotDate, &v.SlotWindow,
		&v.GuestName, &v.GuestPhone, &v.PartySize, &v.Status, &v.PaymentStatus,
		&v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find booking", err)
	}
	return &v, nil
}

// FindByFilter builds the WHERE clause from the set predicates; everything
// ANDs together. The result is newest first.
func (s *BookingReadStore) FindByFilter(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.DateFrom != nil {
		conds = append(conds, "s.slot_date >= "+arg(*filter.DateFrom)+"::date")
	}
	if filter.DateTo != nil {
		conds = append(conds, "s.slot_date <= "+arg(*filter.DateTo)+"::date")
	}
	if filter.Status != nil {
		conds = append(conds, "b.status = "+arg(filter.Status.String()))
	}
	if filter.PaymentStatus != nil {
		conds = append(conds, "b.payment_status = "+arg(filter.PaymentStatus.String()))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		p := arg("%" + search + "%")
		conds = append(conds, "(b.guest_name ILIKE "+p+" OR b.guest_phone ILIKE "+p+")")
	}

	q := `
		SELECT b.id, to_char(s.slot_date, 'YYYY-MM-DD'), s.window_label,
		       b.guest_name, b.guest_phone, b.party_size, b.status, b.payment_status,
		       b.created_at
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id`
	if len(conds) > 0 {
		q += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	q += "\n\t\tORDER BY b.created_at DESC"

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var it queries.BookingListItem
		if err := rows.Scan(
			&it.ID, &it.SlotDate, &it.SlotWindow,
			&it.GuestName, &it.GuestPhone, &it.PartySize, &it.Status, &it.PaymentStatus,
			&it.CreatedAt,
		); err != nil {
			return nil, wrapQueryErr("failed to scan booking row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read booking rows", err)
	}
	return items, nil
}
