package commands

import (
	"context"
	"errors"

	"playpark/internal/domain/gate"
	"playpark/internal/domain/ticket"
	"playpark/internal/infra"
	"playpark/internal/pkg/clock"
	"playpark/internal/pkg/errs"
	"playpark/internal/usecase/queries"
	"playpark/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAlreadyInside   = errs.New("ticket holder is already inside")
	ErrNotInside       = errs.New("ticket holder is not inside")
	ErrTicketCancelled = errs.New("ticket is cancelled")
)

type GateScanParams struct {
	TicketNumber string
	GateID       string
	CameraRef    string
	StaffID      uuid.UUID
}

// GateCommands is the per-ticket Outside/Inside state machine. Entry and
// exit lock the ticket row, so scans on the same ticket are strictly
// serialized; scans on different tickets proceed in parallel. There is no
// force reset: a bad scan is corrected by appending the opposite movement.
type GateCommands interface {
	Entry(ctx context.Context, params GateScanParams) (*queries.TicketView, error)
	Exit(ctx context.Context, params GateScanParams) (*queries.TicketView, error)
}

type gateCommandsImpl struct {
	uow           shared.UnitOfWork
	notifier      shared.ChangeNotifier
	ticketQueries queries.TicketQueries
	clock         clock.Clock
}

func NewGateCommands(
	uow shared.UnitOfWork,
	notifier shared.ChangeNotifier,
	ticketQueries queries.TicketQueries,
	clock clock.Clock,
) GateCommands {
	return &gateCommandsImpl{
		uow:           uow,
		notifier:      notifier,
		ticketQueries: ticketQueries,
		clock:         clock,
	}
}

func (g *gateCommandsImpl) Entry(ctx context.Context, params GateScanParams) (*queries.TicketView, error) {
	return g.scan(ctx, params, func(entity *ticket.Ticket, now clock.Clock) (*gate.LogEntry, error) {
		if err := entity.EnterGate(now.Now()); err != nil {
			switch {
			case errors.Is(err, ticket.ErrCancelled):
				return nil, errs.Mark(err, ErrTicketCancelled)
			case errors.Is(err, ticket.ErrAlreadyInside):
				return nil, errs.Mark(err, ErrAlreadyInside)
			default:
				return nil, errs.Mark(err, ErrInvalidTransition)
			}
		}
		return gate.NewEntry(entity.ID(), params.GateID, params.CameraRef, params.StaffID, now.Now())
	})
}

func (g *gateCommandsImpl) Exit(ctx context.Context, params GateScanParams) (*queries.TicketView, error) {
	return g.scan(ctx, params, func(entity *ticket.Ticket, now clock.Clock) (*gate.LogEntry, error) {
		if err := entity.ExitGate(); err != nil {
			return nil, errs.Mark(err, ErrNotInside)
		}
		return gate.NewExit(entity.ID(), params.GateID, params.CameraRef, params.StaffID, now.Now())
	})
}

// scan runs one occupancy transition: lock the ticket, apply the state
// machine, persist the flags and append the log row in the same
// transaction. A rejected transition writes nothing, so the per-ticket log
// keeps alternating entry, exit, entry, ...
func (g *gateCommandsImpl) scan(
	ctx context.Context,
	params GateScanParams,
	transition func(*ticket.Ticket, clock.Clock) (*gate.LogEntry, error),
) (*queries.TicketView, error) {
	var scanned *ticket.Ticket

	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Tickets().FindByNumberForUpdate(ctx, params.TicketNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		logEntry, err := transition(entity, g.clock)
		if err != nil {
			return err
		}

		if err := tx.Tickets().Save(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.GateLog().Append(ctx, logEntry); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		scanned = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.notifier.TicketChanged(ctx, shared.TicketEvent{
		TicketID:    scanned.ID(),
		Number:      scanned.Number(),
		Status:      scanned.Status().String(),
		InsideVenue: scanned.InsideVenue(),
		GateID:      params.GateID,
		At:          g.clock.Now(),
	})

	view, err := g.ticketQueries.GetByID(ctx, scanned.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
