package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"playpark/internal/pkg/config"
	"playpark/internal/pkg/errs"
	"playpark/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeySlotChanged   = "slot.changed"
	routingKeyTicketChanged = "ticket.changed"
)

// AMQPNotifier publishes change events to a durable topic exchange. It
// holds one connection and channel for the process lifetime; publish
// failures are logged and swallowed since the state change has already
// committed by the time we get here.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPNotifier(cfg config.AMQPConfig) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial amqp broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open amqp channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare exchange")
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func (n *AMQPNotifier) SlotChanged(ctx context.Context, ev shared.SlotEvent) {
	n.publish(ctx, routingKeySlotChanged, ev)
}

func (n *AMQPNotifier) TicketChanged(ctx context.Context, ev shared.TicketEvent) {
	n.publish(ctx, routingKeyTicketChanged, ev)
}

func (n *AMQPNotifier) publish(ctx context.Context, key string, ev any) {
	body, err := json.Marshal(ev)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal change event", "routing_key", key, "error", err)
		return
	}
	err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish change event", "routing_key", key, "error", err)
	}
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
