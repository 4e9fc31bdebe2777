package ticket

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid ticket status")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrCancelled         = errors.New("ticket is cancelled")
	ErrAlreadyInside     = errors.New("ticket holder is already inside")
	ErrNotInside         = errors.New("ticket holder is not inside")
	ErrInsideVenue       = errors.New("ticket holder is inside the venue")
)

// Ticket is the admission credential. insideVenue and status move together
// through EnterGate/ExitGate; the occupancy tracker persists the result
// under a row lock so two scanners cannot both flip the same ticket.
type Ticket struct {
	id            uuid.UUID
	number        string
	bookingID     *uuid.UUID
	holderName    string
	membershipRef *string
	status        Status
	insideVenue   bool
	issuedAt      time.Time
	usedAt        *time.Time
}

// NewFromBooking issues a ticket derived from a confirmed booking. The slot
// was claimed by the booking; issuing does not touch it.
func NewFromBooking(number string, bookingID uuid.UUID, holderName string, issuedAt time.Time) (*Ticket, error) {
	if bookingID == uuid.Nil {
		return nil, errors.New("booking id is required")
	}
	return newTicket(number, &bookingID, holderName, nil, issuedAt)
}

// NewCounter issues a walk-in ticket with no booking and no slot.
func NewCounter(number, holderName string, membershipRef *string, issuedAt time.Time) (*Ticket, error) {
	return newTicket(number, nil, holderName, membershipRef, issuedAt)
}

func newTicket(number string, bookingID *uuid.UUID, holderName string, membershipRef *string, issuedAt time.Time) (*Ticket, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, errors.New("ticket number is required")
	}
	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return nil, errors.New("holder name is required")
	}

	return &Ticket{
		id:            uuid.New(),
		number:        number,
		bookingID:     bookingID,
		holderName:    holderName,
		membershipRef: membershipRef,
		status:        StatusActive,
		insideVenue:   false,
		issuedAt:      issuedAt,
	}, nil
}

func ReconstructTicket(
	id uuid.UUID,
	number string,
	bookingID *uuid.UUID,
	holderName string,
	membershipRef *string,
	status Status,
	insideVenue bool,
	issuedAt time.Time,
	usedAt *time.Time,
) *Ticket {
	return &Ticket{
		id:            id,
		number:        number,
		bookingID:     bookingID,
		holderName:    holderName,
		membershipRef: membershipRef,
		status:        status,
		insideVenue:   insideVenue,
		issuedAt:      issuedAt,
		usedAt:        usedAt,
	}
}

// EnterGate moves Outside -> Inside. The first entry consumes the ticket's
// active validity; re-entries after an exit only toggle insideVenue.
func (t *Ticket) EnterGate(now time.Time) error {
	if t.status == StatusCancelled {
		return ErrCancelled
	}
	if t.insideVenue {
		return ErrAlreadyInside
	}
	t.insideVenue = true
	if t.status == StatusActive {
		t.status = StatusUsed
		usedAt := now
		t.usedAt = &usedAt
	}
	return nil
}

// ExitGate moves Inside -> Outside.
func (t *Ticket) ExitGate() error {
	if !t.insideVenue {
		return ErrNotInside
	}
	t.insideVenue = false
	return nil
}

// MarkUsed is the explicit staff action equivalent of a first gate entry,
// without the occupancy flip. Used is terminal.
func (t *Ticket) MarkUsed(now time.Time) error {
	if t.status != StatusActive {
		return ErrInvalidTransition
	}
	t.status = StatusUsed
	usedAt := now
	t.usedAt = &usedAt
	return nil
}

// Cancel is terminal and only permitted while the holder is not physically
// present. Re-cancelling is a no-op.
func (t *Ticket) Cancel() error {
	if t.insideVenue {
		return ErrInsideVenue
	}
	t.status = StatusCancelled
	return nil
}

func (t *Ticket) IsInside() bool {
	return t.insideVenue
}

func (t *Ticket) ID() uuid.UUID          { return t.id }
func (t *Ticket) Number() string         { return t.number }
func (t *Ticket) BookingID() *uuid.UUID  { return t.bookingID }
func (t *Ticket) HolderName() string     { return t.holderName }
func (t *Ticket) MembershipRef() *string { return t.membershipRef }
func (t *Ticket) Status() Status         { return t.status }
func (t *Ticket) InsideVenue() bool      { return t.insideVenue }
func (t *Ticket) IssuedAt() time.Time    { return t.issuedAt }
func (t *Ticket) UsedAt() *time.Time     { return t.usedAt }
