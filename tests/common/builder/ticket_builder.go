//go:build unit

package builder

import (
	"time"

	domticket "playpark/internal/domain/ticket"
	reqdto "playpark/internal/handler/dto/request"
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	Number        string
	BookingID     *uuid.UUID
	HolderName    string
	MembershipRef *string
	IssuedAt      time.Time
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		Number:     "PP-20260314-K7M2XW",
		BookingID:  nil,
		HolderName: "Hanako Sato",
		IssuedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) WithNumber(number string) *TicketBuilder {
	b.Number = number
	return b
}

func (b *TicketBuilder) WithBookingID(id uuid.UUID) *TicketBuilder {
	b.BookingID = &id
	return b
}

func (b *TicketBuilder) WithHolderName(name string) *TicketBuilder {
	b.HolderName = name
	return b
}

func (b *TicketBuilder) WithMembershipRef(ref string) *TicketBuilder {
	b.MembershipRef = &ref
	return b
}

func (b *TicketBuilder) BuildDomain() (*domticket.Ticket, error) {
	if b.BookingID != nil {
		return domticket.NewFromBooking(b.Number, *b.BookingID, b.HolderName, b.IssuedAt)
	}
	return domticket.NewCounter(b.Number, b.HolderName, b.MembershipRef, b.IssuedAt)
}

func (b *TicketBuilder) BuildView() *queries.TicketView {
	return &queries.TicketView{
		ID:            uuid.New(),
		Number:        b.Number,
		BookingID:     b.BookingID,
		HolderName:    b.HolderName,
		MembershipRef: b.MembershipRef,
		Status:        domticket.StatusActive.String(),
		InsideVenue:   false,
		IssuedAt:      b.IssuedAt,
	}
}

func (b *TicketBuilder) BuildIssueRequestDTO() reqdto.IssueTicketRequest {
	return reqdto.IssueTicketRequest{
		BookingID:     b.BookingID,
		HolderName:    b.HolderName,
		MembershipRef: b.MembershipRef,
	}
}
