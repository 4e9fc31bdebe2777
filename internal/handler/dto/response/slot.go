package response

import (
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Window string    `json:"window"`
	Status string    `json:"status"`
}

func FromSlotView(view *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	resps := make([]*SlotResponse, len(views))
	for i, v := range views {
		resps[i] = FromSlotView(v)
	}
	return resps
}
