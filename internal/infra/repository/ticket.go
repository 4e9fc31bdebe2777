package repository

import (
	"context"
	"time"

	"playpark/internal/domain/ticket"
	"playpark/internal/infra"
	"playpark/internal/infra/db"

	"github.com/google/uuid"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) *TicketRepository {
	return &TicketRepository{db: dbtx}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	const q = `
		INSERT INTO tickets (id, ticket_no, booking_id, holder_name, membership_ref, status, inside_venue, issued_at, used_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, q,
		t.ID(),
		t.Number(),
		t.BookingID(),
		t.HolderName(),
		t.MembershipRef(),
		t.Status().String(),
		t.InsideVenue(),
		t.IssuedAt(),
		t.UsedAt(),
	)
	if err != nil {
		return classify("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	const q = ticketSelectForUpdate + ` WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, q, id)
}

// FindByNumberForUpdate serves gate scanners: the row lock serializes
// concurrent scans of the same printed number.
func (r *TicketRepository) FindByNumberForUpdate(ctx context.Context, number string) (*ticket.Ticket, error) {
	const q = ticketSelectForUpdate + ` WHERE ticket_no = $1 FOR UPDATE`
	return r.scanOne(ctx, q, number)
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	const q = `
		UPDATE tickets
		SET status = $2, inside_venue = $3, used_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, t.ID(), t.Status().String(), t.InsideVenue(), t.UsedAt())
	if err != nil {
		return classify("failed to save ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("ticket not found during save", infra.KindNotFound)
	}
	return nil
}

const ticketSelectForUpdate = `
	SELECT id, ticket_no, booking_id, holder_name, membership_ref, status, inside_venue, issued_at, used_at
	FROM tickets`

func (r *TicketRepository) scanOne(ctx context.Context, q string, arg any) (*ticket.Ticket, error) {
	var (
		id            uuid.UUID
		number        string
		bookingID     *uuid.UUID
		holderName    string
		membershipRef *string
		status        string
		insideVenue   bool
		issuedAt      time.Time
		usedAt        *time.Time
	)
	err := r.db.QueryRow(ctx, q, arg).Scan(
		&id, &number, &bookingID, &holderName, &membershipRef,
		&status, &insideVenue, &issuedAt, &usedAt,
	)
	if err != nil {
		return nil, classify("failed to find ticket", err)
	}

	return ticket.ReconstructTicket(
		id, number, bookingID, holderName, membershipRef,
		ticket.Status(status), insideVenue, issuedAt, usedAt,
	), nil
}
