package readstore

import (
	"context"

	"playpark/internal/infra/db"
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(dbtx db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: dbtx}
}

const ticketViewSelect = `
	SELECT id, ticket_no, booking_id, holder_name, membership_ref,
	       status, inside_venue, issued_at, used_at
	FROM tickets`

func (s *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	return s.scanOne(ctx, ticketViewSelect+` WHERE id = $1`, id)
}

func (s *TicketReadStore) FindByNumber(ctx context.Context, number string) (*queries.TicketView, error) {
	return s.scanOne(ctx, ticketViewSelect+` WHERE ticket_no = $1`, number)
}

func (s *TicketReadStore) scanOne(ctx context.Context, q string, arg any) (*queries.TicketView, error) {
	var v queries.TicketView
	err := s.db.QueryRow(ctx, q, arg).Scan(
		&v.ID, &v.Number, &v.BookingID, &v.HolderName, &v.MembershipRef,
		&v.Status, &v.InsideVenue, &v.IssuedAt, &v.UsedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find ticket", err)
	}
	return &v, nil
}
