package request

import (
	"strings"

	"github.com/google/uuid"
)

// IssueTicketRequest covers both issuance paths: booking_id references a
// confirmed booking, a nil booking_id is a walk-in counter sale.
type IssueTicketRequest struct {
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
	HolderName    string     `json:"holder_name"`
	MembershipRef *string    `json:"membership_ref,omitempty"`
}

func (r IssueTicketRequest) GetMembershipRef() *string {
	if r.MembershipRef == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.MembershipRef)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
