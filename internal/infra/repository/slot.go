package repository

import (
	"context"
	"time"

	"playpark/internal/domain/slot"
	"playpark/internal/infra"
	"playpark/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	const q = `
		INSERT INTO slots (id, slot_date, window_label, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`

	_, err := r.db.Exec(ctx, q, s.ID(), s.Date(), s.Window(), s.Status().String())
	if err != nil {
		return classify("failed to create slot", err)
	}
	return nil
}

// Claim is the compare-and-set that decides every availability race: only
// an update that still sees status='open' hits a row, so among concurrent
// claimers exactly one succeeds and the rest get KindConflict.
func (r *SlotRepository) Claim(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE slots SET status = 'claimed', updated_at = now()
		WHERE id = $1 AND status = 'open'`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return classify("failed to claim slot", err)
	}
	if tag.RowsAffected() == 0 {
		if exists, err := r.exists(ctx, id); err != nil {
			return err
		} else if !exists {
			return infra.NewRepoErr("slot not found", infra.KindNotFound)
		}
		return infra.NewRepoErr("slot already claimed", infra.KindConflict)
	}
	return nil
}

// Release is idempotent: releasing an already-open slot is a no-op so a
// retried cancellation cannot fail here.
func (r *SlotRepository) Release(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE slots SET status = 'open', updated_at = now()
		WHERE id = $1 AND status = 'claimed'`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return classify("failed to release slot", err)
	}
	if tag.RowsAffected() == 0 {
		if exists, err := r.exists(ctx, id); err != nil {
			return err
		} else if !exists {
			return infra.NewRepoErr("slot not found", infra.KindNotFound)
		}
	}
	return nil
}

func (r *SlotRepository) FindByDateWindow(ctx context.Context, date string, window string) (*slot.Slot, error) {
	const q = `
		SELECT id, slot_date, window_label, status, created_at, updated_at
		FROM slots
		WHERE slot_date = $1 AND window_label = $2`

	var (
		id                   uuid.UUID
		slotDate             time.Time
		windowLabel, status  string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, q, date, window).Scan(&id, &slotDate, &windowLabel, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, classify("failed to find slot by date and window", err)
	}

	return slot.ReconstructSlot(id, slotDate, windowLabel, slot.Status(status), createdAt, updatedAt), nil
}

func (r *SlotRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM slots WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, classify("failed to check slot existence", err)
	}
	return exists, nil
}
