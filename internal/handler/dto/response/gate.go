package response

import (
	"time"

	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GateLogResponse struct {
	ID           uuid.UUID `json:"id"`
	TicketID     uuid.UUID `json:"ticket_id"`
	TicketNumber string    `json:"ticket_number"`
	Type         string    `json:"type"`
	GateID       string    `json:"gate_id"`
	CameraRef    string    `json:"camera_ref,omitempty"`
	StaffID      uuid.UUID `json:"staff_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type OccupancyResponse struct {
	InsideCount   int64 `json:"inside_count"`
	TodayEntries  int64 `json:"today_entries"`
	TodayExits    int64 `json:"today_exits"`
	TodayLogDelta int64 `json:"today_log_delta"`
}

func FromGateLogViews(views []*queries.GateLogView) []*GateLogResponse {
	resps := make([]*GateLogResponse, len(views))
	for i, v := range views {
		var resp GateLogResponse
		_ = copier.Copy(&resp, v)
		resps[i] = &resp
	}
	return resps
}

func FromOccupancyView(view *queries.OccupancyView) *OccupancyResponse {
	var resp OccupancyResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
