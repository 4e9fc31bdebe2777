package bootstrap

import (
	"context"
	"log/slog"

	"playpark/internal/infra/notifier"
	"playpark/internal/pkg/config"
	"playpark/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewChangeNotifier,
	),
)

// NewChangeNotifier wires the AMQP publisher when a broker is configured
// and silently drops events otherwise.
func NewChangeNotifier(lc fx.Lifecycle, cfg config.Config) (shared.ChangeNotifier, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("change notifications disabled, no AMQP URL configured")
		return notifier.NewNoopNotifier(), nil
	}

	amqpNotifier, err := notifier.NewAMQPNotifier(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return amqpNotifier.Close()
		},
	})

	return amqpNotifier, nil
}
