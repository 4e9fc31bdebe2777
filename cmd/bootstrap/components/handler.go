package components

import (
	"playpark/internal/handler"
	"playpark/internal/handler/api"
	"playpark/internal/handler/middleware"
	"playpark/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewTicketHandler,
		api.NewGateHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewRateLimit,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	slot *api.SlotHandler,
	booking *api.BookingHandler,
	ticket *api.TicketHandler,
	gate *api.GateHandler,
) handler.Handlers {
	return handler.Handlers{
		Slot:    slot,
		Booking: booking,
		Ticket:  ticket,
		Gate:    gate,
	}
}

func NewRateLimit(cfg config.Config, rdb *redis.Client) gin.HandlerFunc {
	return middleware.NewRateLimitMiddleware(cfg.RateLimit, rdb)
}
