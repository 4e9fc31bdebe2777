package response

import (
	"encoding/base64"
	"time"

	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	qrcode "github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

type TicketResponse struct {
	ID            uuid.UUID  `json:"id"`
	Number        string     `json:"number"`
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
	HolderName    string     `json:"holder_name"`
	MembershipRef *string    `json:"membership_ref,omitempty"`
	Status        string     `json:"status"`
	InsideVenue   bool       `json:"inside_venue"`
	IssuedAt      time.Time  `json:"issued_at"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	// QRCode is the PNG-encoded ticket number the gate scanner reads,
	// base64 for embedding in the printed slip. Empty when encoding fails.
	QRCode string `json:"qr_code,omitempty"`
}

func FromTicketView(view *queries.TicketView) *TicketResponse {
	var resp TicketResponse
	_ = copier.Copy(&resp, view)
	if png, err := qrcode.Encode(view.Number, qrcode.Medium, qrCodeSize); err == nil {
		resp.QRCode = base64.StdEncoding.EncodeToString(png)
	}
	return &resp
}
