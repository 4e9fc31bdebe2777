//go:build unit

package builder

import (
	"time"

	domslot "playpark/internal/domain/slot"
	reqdto "playpark/internal/handler/dto/request"
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	Date   time.Time
	Window string
	Status domslot.Status
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		Date:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Window: "10:00-12:00",
		Status: domslot.StatusOpen,
	}
}

func (b *SlotBuilder) WithDate(date time.Time) *SlotBuilder {
	b.Date = date
	return b
}

func (b *SlotBuilder) WithWindow(window string) *SlotBuilder {
	b.Window = window
	return b
}

func (b *SlotBuilder) WithStatus(status domslot.Status) *SlotBuilder {
	b.Status = status
	return b
}

func (b *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	return domslot.NewSlot(b.Date, b.Window)
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:     uuid.New(),
		Date:   b.Date.Format("2006-01-02"),
		Window: b.Window,
		Status: b.Status.String(),
	}
}

func (b *SlotBuilder) BuildOpenRequestDTO() reqdto.OpenSlotsRequest {
	return reqdto.OpenSlotsRequest{
		Date:    b.Date.Format("2006-01-02"),
		Windows: []string{b.Window},
	}
}
