//go:build unit

package builder

import (
	"time"

	domgate "playpark/internal/domain/gate"
	reqdto "playpark/internal/handler/dto/request"
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type GateScanBuilder struct {
	TicketID     uuid.UUID
	TicketNumber string
	GateID       string
	CameraRef    string
	StaffID      uuid.UUID
	At           time.Time
}

func NewGateScanBuilder() *GateScanBuilder {
	return &GateScanBuilder{
		TicketID:     uuid.New(),
		TicketNumber: "PP-20260314-K7M2XW",
		GateID:       "gate-1",
		CameraRef:    "cam-entrance",
		StaffID:      uuid.New(),
		At:           time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC),
	}
}

func (b *GateScanBuilder) WithGateID(gateID string) *GateScanBuilder {
	b.GateID = gateID
	return b
}

func (b *GateScanBuilder) WithTicketNumber(number string) *GateScanBuilder {
	b.TicketNumber = number
	return b
}

func (b *GateScanBuilder) BuildEntryDomain() (*domgate.LogEntry, error) {
	return domgate.NewEntry(b.TicketID, b.GateID, b.CameraRef, b.StaffID, b.At)
}

func (b *GateScanBuilder) BuildExitDomain() (*domgate.LogEntry, error) {
	return domgate.NewExit(b.TicketID, b.GateID, b.CameraRef, b.StaffID, b.At)
}

func (b *GateScanBuilder) BuildScanRequestDTO() reqdto.GateScanRequest {
	camera := b.CameraRef
	return reqdto.GateScanRequest{
		TicketNumber: b.TicketNumber,
		GateID:       b.GateID,
		CameraRef:    &camera,
	}
}

func (b *GateScanBuilder) BuildLogView(entryType domgate.EntryType) *queries.GateLogView {
	return &queries.GateLogView{
		ID:           uuid.New(),
		TicketID:     b.TicketID,
		TicketNumber: b.TicketNumber,
		Type:         entryType.String(),
		GateID:       b.GateID,
		CameraRef:    b.CameraRef,
		StaffID:      b.StaffID,
		CreatedAt:    b.At,
	}
}
