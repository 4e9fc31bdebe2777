package request

import (
	"strings"
)

type CreateBookingRequest struct {
	Date       string  `json:"date" binding:"required"`
	Window     string  `json:"window" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required"`
	GuestPhone string  `json:"guest_phone" binding:"required"`
	PartySize  int     `json:"party_size" binding:"required,min=1"`
	Note       *string `json:"note,omitempty"`
	// Confirmed marks a counter booking that skips the pending stage.
	Confirmed bool `json:"confirmed"`
}

func (r CreateBookingRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type CancelBookingRequest struct {
	Refund bool    `json:"refund"`
	Reason *string `json:"reason,omitempty"`
}

func (r CancelBookingRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return strings.TrimSpace(*r.Reason)
}
