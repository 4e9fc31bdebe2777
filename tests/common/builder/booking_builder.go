//go:build unit

package builder

import (
	"time"

	dombooking "playpark/internal/domain/booking"
	reqdto "playpark/internal/handler/dto/request"
	"playpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SlotID     uuid.UUID
	SlotDate   string
	SlotWindow string
	GuestName  string
	GuestPhone string
	PartySize  int
	Note       string
	Confirmed  bool
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SlotID:     uuid.New(),
		SlotDate:   "2026-03-14",
		SlotWindow: "10:00-12:00",
		GuestName:  "Taro Yamada",
		GuestPhone: "090-1234-5678",
		PartySize:  3,
		Note:       "",
		Confirmed:  false,
		CreatedAt:  time.Now(),
	}
}

func (b *BookingBuilder) WithSlotID(id uuid.UUID) *BookingBuilder {
	b.SlotID = id
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithPartySize(n int) *BookingBuilder {
	b.PartySize = n
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = note
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Confirmed = true
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	contact, err := dombooking.NewContact(b.GuestName, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	partySize, err := dombooking.NewPartySize(b.PartySize)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.SlotID, contact, partySize, dombooking.NewNotes(b.Note), b.Confirmed)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	status := dombooking.StatusPending
	if b.Confirmed {
		status = dombooking.StatusConfirmed
	}
	return &queries.BookingView{
		ID:            uuid.New(),
		SlotID:        b.SlotID,
		SlotDate:      b.SlotDate,
		SlotWindow:    b.SlotWindow,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		PartySize:     b.PartySize,
		Status:        status.String(),
		PaymentStatus: dombooking.PaymentUnpaid.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	view := b.BuildView()
	return &queries.BookingListItem{
		ID:            view.ID,
		SlotDate:      view.SlotDate,
		SlotWindow:    view.SlotWindow,
		GuestName:     view.GuestName,
		GuestPhone:    view.GuestPhone,
		PartySize:     view.PartySize,
		Status:        view.Status,
		PaymentStatus: view.PaymentStatus,
		CreatedAt:     view.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		Date:       b.SlotDate,
		Window:     b.SlotWindow,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		PartySize:  b.PartySize,
		Confirmed:  b.Confirmed,
	}
	if b.Note != "" {
		note := b.Note
		req.Note = &note
	}
	return req
}
