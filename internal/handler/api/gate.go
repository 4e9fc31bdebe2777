package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"playpark/internal/domain/gate"
	reqdto "playpark/internal/handler/dto/request"
	resdto "playpark/internal/handler/dto/response"
	"playpark/internal/handler/middleware"
	"playpark/internal/usecase/commands"
	"playpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GateHandler struct {
	gateCommands commands.GateCommands
	gateQueries  queries.GateQueries
}

func NewGateHandler(gateCommands commands.GateCommands, gateQueries queries.GateQueries) *GateHandler {
	return &GateHandler{
		gateCommands: gateCommands,
		gateQueries:  gateQueries,
	}
}

// @Summary Record gate entry
// @Description Scan a ticket in; the first entry consumes the ticket's validity
// @Tags gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GateScanRequest true "Scan"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /gate/entry [post]
func (h *GateHandler) Entry(c *gin.Context) {
	h.scan(c, h.gateCommands.Entry)
}

// @Summary Record gate exit
// @Description Scan a ticket out
// @Tags gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GateScanRequest true "Scan"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /gate/exit [post]
func (h *GateHandler) Exit(c *gin.Context) {
	h.scan(c, h.gateCommands.Exit)
}

func (h *GateHandler) scan(c *gin.Context, do func(ctx context.Context, params commands.GateScanParams) (*queries.TicketView, error)) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.GateScanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := do(c.Request.Context(), commands.GateScanParams{
		TicketNumber: req.TicketNumber,
		GateID:       req.GateID,
		CameraRef:    req.GetCameraRef(),
		StaffID:      staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		case errors.Is(err, commands.ErrTicketCancelled):
			c.JSON(http.StatusGone, gin.H{
				"error": "Ticket is cancelled",
			})
		case errors.Is(err, commands.ErrAlreadyInside):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Ticket holder is already inside",
			})
		case errors.Is(err, commands.ErrNotInside):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Ticket holder is not inside",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Current occupancy
// @Description Derived occupancy: inside-flag count plus today's log replay
// @Tags gate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OccupancyResponse
// @Router /gate/occupancy [get]
func (h *GateHandler) Occupancy(c *gin.Context) {
	view, err := h.gateQueries.CurrentOccupancy(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancyView(view))
}

// @Summary Gate log
// @Description List gate movements filtered by time range, gate and type
// @Tags gate
// @Produce json
// @Security BearerAuth
// @Param from query string false "Lower bound (RFC3339)"
// @Param to query string false "Upper bound (RFC3339)"
// @Param gate_id query string false "Gate ID"
// @Param type query string false "entry or exit"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.GateLogResponse
// @Failure 400 {object} map[string]string
// @Router /gate/log [get]
func (h *GateHandler) Log(c *gin.Context) {
	filter, err := buildGateLogFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.gateQueries.ListLog(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGateLogViews(views))
}

func buildGateLogFilter(c *gin.Context) (queries.GateLogFilter, error) {
	var filter queries.GateLogFilter

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return queries.GateLogFilter{}, errors.New("invalid from timestamp")
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return queries.GateLogFilter{}, errors.New("invalid to timestamp")
		}
		filter.To = &t
	}
	if v := c.Query("gate_id"); v != "" {
		filter.GateID = &v
	}
	if v := c.Query("type"); v != "" {
		entryType, err := gate.ParseEntryType(v)
		if err != nil {
			return queries.GateLogFilter{}, errors.New("unknown gate entry type")
		}
		filter.EntryType = &entryType
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return queries.GateLogFilter{}, errors.New("invalid limit")
		}
		filter.Limit = int32(n)
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return queries.GateLogFilter{}, errors.New("invalid offset")
		}
		filter.Offset = int32(n)
	}

	return filter, nil
}
