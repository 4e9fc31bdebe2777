package repository

import (
	"context"

	"playpark/internal/domain/gate"
	"playpark/internal/infra/db"
)

type GateLogRepository struct {
	db db.DBTX
}

func NewGateLogRepository(dbtx db.DBTX) *GateLogRepository {
	return &GateLogRepository{db: dbtx}
}

// Append writes one movement record. The table has no UPDATE or DELETE path;
// corrections happen by appending the opposite movement.
func (r *GateLogRepository) Append(ctx context.Context, e *gate.LogEntry) error {
	const q = `
		INSERT INTO gate_log (id, ticket_id, entry_type, gate_id, camera_ref, staff_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		e.ID(),
		e.TicketID(),
		e.Type().String(),
		e.GateID(),
		e.CameraRef(),
		e.StaffID(),
		e.CreatedAt(),
	)
	if err != nil {
		return classify("failed to append gate log entry", err)
	}
	return nil
}
