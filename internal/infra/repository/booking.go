package repository

import (
	"context"
	"time"

	"playpark/internal/domain/booking"
	"playpark/internal/infra"
	"playpark/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const q = `
		INSERT INTO bookings (id, slot_id, guest_name, guest_phone, party_size, status, payment_status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`

	_, err := r.db.Exec(ctx, q,
		b.ID(),
		b.SlotID(),
		b.Contact().Name(),
		b.Contact().Phone(),
		b.PartySize().Value(),
		b.Status().String(),
		b.PaymentStatus().String(),
		b.Notes().String(),
	)
	if err != nil {
		return classify("failed to create booking", err)
	}
	return nil
}

// FindForUpdate locks the row so concurrent status/payment/notes writes on
// one booking serialize; the lock is released on commit/rollback.
func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT id, slot_id, guest_name, guest_phone, party_size, status, payment_status, notes, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var (
		bookingID, slotID     uuid.UUID
		guestName, guestPhone string
		partySize             int
		status, paymentStatus string
		notes                 string
		createdAt, updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&bookingID, &slotID, &guestName, &guestPhone, &partySize,
		&status, &paymentStatus, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, classify("failed to find booking for update", err)
	}

	contact, err := booking.NewContact(guestName, guestPhone)
	if err != nil {
		return nil, classify("stored booking contact is invalid", err)
	}
	size, err := booking.NewPartySize(partySize)
	if err != nil {
		return nil, classify("stored booking party size is invalid", err)
	}

	return booking.ReconstructBooking(
		bookingID,
		slotID,
		contact,
		size,
		booking.Status(status),
		booking.PaymentStatusFromStore(paymentStatus),
		booking.NewNotes(notes),
		createdAt,
		updatedAt,
	), nil
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	const q = `
		UPDATE bookings
		SET status = $2, payment_status = $3, notes = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, b.ID(), b.Status().String(), b.PaymentStatus().String(), b.Notes().String())
	if err != nil {
		return classify("failed to save booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("booking not found during save", infra.KindNotFound)
	}
	return nil
}
