package commands

import (
	"context"
	"time"

	"playpark/internal/domain/slot"
	"playpark/internal/infra"
	"playpark/internal/pkg/clock"
	"playpark/internal/pkg/errs"
	"playpark/internal/usecase/queries"
	"playpark/internal/usecase/shared"
)

type OpenSlotsParams struct {
	Date    string
	Windows []string
}

// SlotCommands is the scheduling surface: it opens the day's bookable
// windows. Claim/release of individual slots belongs to the reservation
// coordinator only.
type SlotCommands interface {
	OpenSlots(ctx context.Context, params OpenSlotsParams) ([]*queries.SlotView, error)
}

type slotCommandsImpl struct {
	uow         shared.UnitOfWork
	notifier    shared.ChangeNotifier
	slotQueries queries.SlotQueries
	clock       clock.Clock
}

func NewSlotCommands(
	uow shared.UnitOfWork,
	notifier shared.ChangeNotifier,
	slotQueries queries.SlotQueries,
	clock clock.Clock,
) SlotCommands {
	return &slotCommandsImpl{
		uow:         uow,
		notifier:    notifier,
		slotQueries: slotQueries,
		clock:       clock,
	}
}

func (s *slotCommandsImpl) OpenSlots(ctx context.Context, params OpenSlotsParams) ([]*queries.SlotView, error) {
	date, err := parseDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var opened []*slot.Slot
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		opened = opened[:0]
		for _, window := range params.Windows {
			entity, err := slot.NewSlot(date, window)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := tx.Slots().Create(ctx, entity); err != nil {
				// Re-posting an existing window is a no-op, not an error:
				// the scheduling screen resubmits whole days.
				if infra.IsKind(err, infra.KindDuplicateKey) {
					continue
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			opened = append(opened, entity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, entity := range opened {
		s.notifier.SlotChanged(ctx, shared.SlotEvent{
			SlotID: entity.ID(),
			Date:   params.Date,
			Window: entity.Window(),
			Status: entity.Status().String(),
			At:     s.clock.Now(),
		})
	}

	return s.slotQueries.ListByDate(ctx, params.Date)
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}
