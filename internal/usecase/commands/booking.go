package commands

import (
	"context"
	"errors"

	"playpark/internal/domain/booking"
	"playpark/internal/infra"
	"playpark/internal/pkg/errs"
	"playpark/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrBookingCancelled  = errs.New("booking is cancelled")
)

type BookingCommands interface {
	// UpdateStatus only accepts pending -> confirmed. Cancellation goes
	// through ReservationCommands.CancelBooking so the slot is released
	// and refund semantics apply.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) error
	// UpdatePaymentStatus is the surface a payment callback drives; only
	// the status field is modeled here.
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, next booking.PaymentStatus) error
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) error {
	if next == booking.StatusCancelled {
		return ErrInvalidTransition
	}
	return b.mutate(ctx, bookingID, func(entity *booking.Booking) error {
		if err := entity.ChangeStatus(next); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return nil
	})
}

func (b *bookingCommandsImpl) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, next booking.PaymentStatus) error {
	return b.mutate(ctx, bookingID, func(entity *booking.Booking) error {
		if err := entity.UpdatePayment(next); err != nil {
			if errors.Is(err, booking.ErrBookingCancelled) {
				return errs.Mark(err, ErrBookingCancelled)
			}
			return errs.Mark(err, ErrInvalidTransition)
		}
		return nil
	})
}

func (b *bookingCommandsImpl) mutate(ctx context.Context, bookingID uuid.UUID, apply func(*booking.Booking) error) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := apply(entity); err != nil {
			return err
		}

		if err := tx.Bookings().Save(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
