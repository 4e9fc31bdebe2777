package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"playpark/internal/handler/api"
	"playpark/internal/handler/middleware"
	"playpark/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slot    *api.SlotHandler
	Booking *api.BookingHandler
	Ticket  *api.TicketHandler
	Gate    *api.GateHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, rateLimit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// The booking site surface is public: availability browsing and
		// reservation, throttled per client IP.
		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Slot.ListSlots},
				{Method: http.MethodPost, Path: "", Handler: handlers.Slot.OpenSlots,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin)}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.CreateBooking,
					Mw: []gin.HandlerFunc{rateLimit}},
			})

			staffOnly := bookings.Group("")
			staffOnly.Use(authMiddleware.RequireAuth())
			addRoutes(staffOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Booking.GetBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Booking.CancelBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: handlers.Booking.UpdateStatus},
				{Method: http.MethodPatch, Path: "/:id/payment", Handler: handlers.Booking.UpdatePaymentStatus},
			})
		}

		tickets := apiGroup.Group("/tickets")
		tickets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Ticket.IssueTicket},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Ticket.GetTicket},
				{Method: http.MethodPost, Path: "/:id/use", Handler: handlers.Ticket.MarkUsed},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Ticket.CancelTicket},
			})
		}

		gate := apiGroup.Group("/gate")
		gate.Use(authMiddleware.RequireAuth())
		{
			addRoutes(gate, []route{
				{Method: http.MethodPost, Path: "/entry", Handler: handlers.Gate.Entry},
				{Method: http.MethodPost, Path: "/exit", Handler: handlers.Gate.Exit},
				{Method: http.MethodGet, Path: "/occupancy", Handler: handlers.Gate.Occupancy},
				{Method: http.MethodGet, Path: "/log", Handler: handlers.Gate.Log},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
