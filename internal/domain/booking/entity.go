package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrBookingCancelled     = errors.New("booking is cancelled")
)

// refundRequiredNote flags cancellations where money changed hands outside
// the paid status (deposits, partial payments) for manual follow-up.
const refundRequiredNote = "[refund required]"

type Booking struct {
	id            uuid.UUID
	slotID        uuid.UUID
	contact       Contact
	partySize     PartySize
	status        Status
	paymentStatus PaymentStatus
	notes         Notes
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a booking holding the given slot. Whether it starts
// pending or confirmed is caller intent: online reservations start pending
// until payment, counter bookings are confirmed immediately.
func NewBooking(slotID uuid.UUID, contact Contact, partySize PartySize, notes Notes, confirmed bool) (*Booking, error) {
	if slotID == uuid.Nil {
		return nil, errors.New("slot id is required")
	}

	status := StatusPending
	if confirmed {
		status = StatusConfirmed
	}

	return &Booking{
		id:            uuid.New(),
		slotID:        slotID,
		contact:       contact,
		partySize:     partySize,
		status:        status,
		paymentStatus: PaymentUnpaid,
		notes:         notes,
	}, nil
}

func ReconstructBooking(
	id, slotID uuid.UUID,
	contact Contact,
	partySize PartySize,
	status Status,
	paymentStatus PaymentStatus,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		slotID:        slotID,
		contact:       contact,
		partySize:     partySize,
		status:        status,
		paymentStatus: paymentStatus,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ChangeStatus applies the staff-facing transition matrix. Cancellation is
// not reachable here; it must go through Cancel so the slot is released and
// refund semantics apply.
func (b *Booking) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if b.status == next {
		return nil
	}
	if b.status == StatusPending && next == StatusConfirmed {
		b.status = StatusConfirmed
		return nil
	}
	return ErrInvalidTransition
}

// Cancel is terminal and idempotent: cancelling an already-cancelled booking
// changes nothing and reports success, tolerating duplicate staff clicks.
func (b *Booking) Cancel(refund bool, reason string) {
	if b.status == StatusCancelled {
		return
	}
	b.status = StatusCancelled
	if reason != "" {
		b.notes = b.notes.Append(reason)
	}
	if refund {
		if b.paymentStatus == PaymentPaid {
			b.paymentStatus = PaymentRefunded
		} else {
			b.notes = b.notes.Append(refundRequiredNote)
		}
	}
}

// UpdatePayment is the payment-callback surface. Refunded is only reachable
// through Cancel, and cancelled bookings no longer accept callbacks.
func (b *Booking) UpdatePayment(next PaymentStatus) error {
	if !next.IsValid() || next == PaymentRefunded {
		return ErrInvalidPaymentStatus
	}
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	b.paymentStatus = next
	return nil
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) SlotID() uuid.UUID            { return b.slotID }
func (b *Booking) Contact() Contact             { return b.contact }
func (b *Booking) PartySize() PartySize         { return b.partySize }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Notes() Notes                 { return b.notes }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
