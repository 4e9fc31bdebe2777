package notifier

import (
	"context"

	"playpark/internal/usecase/shared"
)

// NoopNotifier is used when no broker URL is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (NoopNotifier) SlotChanged(context.Context, shared.SlotEvent) {}

func (NoopNotifier) TicketChanged(context.Context, shared.TicketEvent) {}
