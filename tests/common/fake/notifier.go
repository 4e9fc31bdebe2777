//go:build unit

package fake

import (
	"context"
	"sync"

	"playpark/internal/usecase/shared"
)

// NotifierRecorder captures published change events for assertions.
type NotifierRecorder struct {
	mu           sync.Mutex
	SlotEvents   []shared.SlotEvent
	TicketEvents []shared.TicketEvent
}

func NewNotifierRecorder() *NotifierRecorder {
	return &NotifierRecorder{}
}

func (n *NotifierRecorder) SlotChanged(_ context.Context, ev shared.SlotEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.SlotEvents = append(n.SlotEvents, ev)
}

func (n *NotifierRecorder) TicketChanged(_ context.Context, ev shared.TicketEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.TicketEvents = append(n.TicketEvents, ev)
}

func (n *NotifierRecorder) SlotEventCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.SlotEvents)
}

func (n *NotifierRecorder) TicketEventCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.TicketEvents)
}
