package response

import (
	"time"

	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	SlotID        uuid.UUID `json:"slot_id"`
	SlotDate      string    `json:"slot_date"`
	SlotWindow    string    `json:"slot_window"`
	GuestName     string    `json:"guest_name"`
	GuestPhone    string    `json:"guest_phone"`
	PartySize     int       `json:"party_size"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	SlotDate      string    `json:"slot_date"`
	SlotWindow    string    `json:"slot_window"`
	GuestName     string    `json:"guest_name"`
	GuestPhone    string    `json:"guest_phone"`
	PartySize     int       `json:"party_size"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	resps := make([]*BookingListResponse, len(items))
	for i, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		resps[i] = &resp
	}
	return resps
}
