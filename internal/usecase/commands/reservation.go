package commands

import (
	"context"
	"log/slog"

	"playpark/internal/domain/booking"
	"playpark/internal/domain/slot"
	"playpark/internal/infra"
	"playpark/internal/pkg/clock"
	"playpark/internal/pkg/errs"
	"playpark/internal/usecase/queries"
	"playpark/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotUnavailable         = errs.New("slot no longer available")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReserveSlotParams struct {
	Date       string
	Window     string
	GuestName  string
	GuestPhone string
	PartySize  int
	Note       string
	// Confirmed reflects caller intent: counter bookings are confirmed on
	// the spot, online ones start pending until payment.
	Confirmed bool
}

type ReservationCommands interface {
	ReserveSlot(ctx context.Context, params ReserveSlotParams) (*queries.BookingView, error)
	// CancelBooking is idempotent: re-cancelling reports success without
	// touching state, tolerating duplicate clicks and retried requests.
	CancelBooking(ctx context.Context, bookingID uuid.UUID, refund bool, reason string) error
}

type reservationCommandsImpl struct {
	uow            shared.UnitOfWork
	notifier       shared.ChangeNotifier
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	notifier shared.ChangeNotifier,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:            uow,
		notifier:       notifier,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// ReserveSlot claims the slot and persists the booking as one atomic unit.
// The conditional slot claim is the single source of truth for
// availability: when it loses the race nothing is written and the caller
// sees ErrSlotUnavailable.
func (r *reservationCommandsImpl) ReserveSlot(ctx context.Context, params ReserveSlotParams) (*queries.BookingView, error) {
	contact, err := booking.NewContact(params.GuestName, params.GuestPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	partySize, err := booking.NewPartySize(params.PartySize)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var (
		bookingID    uuid.UUID
		claimedSlot  *slot.Slot
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByDateWindow(ctx, params.Date, params.Window)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Slots().Claim(ctx, s.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		b, err := booking.NewBooking(s.ID(), contact, partySize, booking.NewNotes(params.Note), params.Confirmed)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingID = b.ID()
		claimedSlot = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.notifier.SlotChanged(ctx, shared.SlotEvent{
		SlotID: claimedSlot.ID(),
		Date:   params.Date,
		Window: params.Window,
		Status: slot.StatusClaimed.String(),
		At:     r.clock.Now(),
	})

	// Read-after-write: return the full view from the read store
	view, err := r.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *reservationCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, refund bool, reason string) error {
	var (
		replayed     bool
		releasedSlot uuid.UUID
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if b.IsCancelled() {
			replayed = true
			return nil
		}

		b.Cancel(refund, reason)

		if err := tx.Bookings().Save(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Slots().Release(ctx, b.SlotID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		releasedSlot = b.SlotID()
		return nil
	})
	if err != nil {
		return err
	}

	if replayed {
		slog.Info("booking already cancelled, treating as success", "booking_id", bookingID)
		return nil
	}

	r.notifier.SlotChanged(ctx, shared.SlotEvent{
		SlotID: releasedSlot,
		Status: slot.StatusOpen.String(),
		At:     r.clock.Now(),
	})
	return nil
}
