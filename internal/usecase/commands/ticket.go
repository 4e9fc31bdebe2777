package commands

import (
	"context"
	"errors"
	"log/slog"

	"playpark/internal/domain/ticket"
	"playpark/internal/infra"
	"playpark/internal/pkg/clock"
	"playpark/internal/pkg/errs"
	"playpark/internal/pkg/ticketno"
	"playpark/internal/usecase/queries"
	"playpark/internal/usecase/shared"

	"github.com/google/uuid"
)

// ticket numbers collide only on the same day's random suffix; a couple of
// regenerations is plenty.
const maxTicketNumberAttempts = 3

var (
	ErrTicketNotFound        = errs.New("ticket not found")
	ErrBookingNotConfirmed   = errs.New("booking is not confirmed")
	ErrTicketInsideVenue     = errs.New("ticket holder is inside the venue")
	ErrTicketNumberExhausted = errs.New("could not generate a unique ticket number")
)

// IssueTicketParams carries either a booking reference or a walk-in counter
// draft. Counter tickets never touch the slot registry.
type IssueTicketParams struct {
	BookingID     *uuid.UUID
	HolderName    string
	MembershipRef *string
}

type TicketCommands interface {
	Issue(ctx context.Context, params IssueTicketParams) (*queries.TicketView, error)
	MarkUsed(ctx context.Context, ticketID uuid.UUID) error
	// Cancel fails while the holder is physically present; re-cancelling
	// an already-cancelled ticket reports success.
	Cancel(ctx context.Context, ticketID uuid.UUID) error
}

type ticketCommandsImpl struct {
	uow           shared.UnitOfWork
	notifier      shared.ChangeNotifier
	ticketQueries queries.TicketQueries
	clock         clock.Clock
}

func NewTicketCommands(
	uow shared.UnitOfWork,
	notifier shared.ChangeNotifier,
	ticketQueries queries.TicketQueries,
	clock clock.Clock,
) TicketCommands {
	return &ticketCommandsImpl{
		uow:           uow,
		notifier:      notifier,
		ticketQueries: ticketQueries,
		clock:         clock,
	}
}

func (t *ticketCommandsImpl) Issue(ctx context.Context, params IssueTicketParams) (*queries.TicketView, error) {
	var issued *ticket.Ticket

	for attempt := 0; attempt < maxTicketNumberAttempts; attempt++ {
		number, err := ticketno.Generate(t.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrTicketNumberExhausted)
		}

		issued = nil
		err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			entity, err := t.buildTicket(ctx, tx, number, params)
			if err != nil {
				return err
			}
			if err := tx.Tickets().Create(ctx, entity); err != nil {
				return err
			}
			issued = entity
			return nil
		})
		if err != nil {
			// A duplicate number loses the whole transaction; regenerate
			// and re-run from the top.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				slog.Warn("ticket number collision, regenerating", "number", number)
				continue
			}
			return nil, err
		}
		break
	}
	if issued == nil {
		return nil, ErrTicketNumberExhausted
	}

	t.notifier.TicketChanged(ctx, shared.TicketEvent{
		TicketID:    issued.ID(),
		Number:      issued.Number(),
		Status:      issued.Status().String(),
		InsideVenue: issued.InsideVenue(),
		At:          t.clock.Now(),
	})

	view, err := t.ticketQueries.GetByID(ctx, issued.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (t *ticketCommandsImpl) buildTicket(ctx context.Context, tx shared.Tx, number string, params IssueTicketParams) (*ticket.Ticket, error) {
	now := t.clock.Now()

	if params.BookingID == nil {
		entity, err := ticket.NewCounter(number, params.HolderName, params.MembershipRef, now)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return entity, nil
	}

	b, err := tx.Bookings().FindForUpdate(ctx, *params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !b.IsConfirmed() {
		return nil, ErrBookingNotConfirmed
	}

	holder := params.HolderName
	if holder == "" {
		holder = b.Contact().Name()
	}

	entity, err := ticket.NewFromBooking(number, b.ID(), holder, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

func (t *ticketCommandsImpl) MarkUsed(ctx context.Context, ticketID uuid.UUID) error {
	return t.mutate(ctx, ticketID, func(entity *ticket.Ticket) error {
		if err := entity.MarkUsed(t.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return nil
	})
}

func (t *ticketCommandsImpl) Cancel(ctx context.Context, ticketID uuid.UUID) error {
	var (
		replayed  bool
		cancelled *ticket.Ticket
	)
	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Tickets().FindForUpdate(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if entity.Status() == ticket.StatusCancelled {
			replayed = true
			return nil
		}

		if err := entity.Cancel(); err != nil {
			if errors.Is(err, ticket.ErrInsideVenue) {
				return errs.Mark(err, ErrTicketInsideVenue)
			}
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Tickets().Save(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cancelled = entity
		return nil
	})
	if err != nil {
		return err
	}
	if replayed {
		slog.Info("ticket already cancelled, treating as success", "ticket_id", ticketID)
		return nil
	}

	t.notifyAfter(ctx, cancelled, "")
	return nil
}

func (t *ticketCommandsImpl) mutate(ctx context.Context, ticketID uuid.UUID, apply func(*ticket.Ticket) error) error {
	var changed *ticket.Ticket
	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Tickets().FindForUpdate(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := apply(entity); err != nil {
			return err
		}

		if err := tx.Tickets().Save(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		changed = entity
		return nil
	})
	if err != nil {
		return err
	}

	t.notifyAfter(ctx, changed, "")
	return nil
}

func (t *ticketCommandsImpl) notifyAfter(ctx context.Context, entity *ticket.Ticket, gateID string) {
	t.notifier.TicketChanged(ctx, shared.TicketEvent{
		TicketID:    entity.ID(),
		Number:      entity.Number(),
		Status:      entity.Status().String(),
		InsideVenue: entity.InsideVenue(),
		GateID:      gateID,
		At:          t.clock.Now(),
	})
}
