package queries

import (
	"time"

	"playpark/internal/domain/booking"
	"playpark/internal/domain/gate"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Window string    `json:"window"`
	Status string    `json:"status"`
}

type BookingView struct {
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

type BookingListItem struct {
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

type TicketView struct {
	ID            uuid.UUID  `json:"id"`
	Number        string     `json:"number"`
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
	HolderName    string     `json:"holder_name"`
	MembershipRef *string    `json:"membership_ref,omitempty"`
	Status        string     `json:"status"`
	InsideVenue   bool       `json:"inside_venue"`
	IssuedAt      time.Time  `json:"issued_at"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
}

type GateLogView struct {
	ID           uuid.UUID `json:"id"`
	TicketID     uuid.UUID `json:"ticket_id"`
	TicketNumber string    `json:"ticket_number"`
	Type         string    `json:"type"`
	GateID       string    `json:"gate_id"`
	CameraRef    string    `json:"camera_ref,omitempty"`
	StaffID      uuid.UUID `json:"staff_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// OccupancyView carries both derivations of "who is inside": the
// authoritative per-ticket flags and today's log replay. They agree by
// invariant; exposing both lets operators audit that they do.
type OccupancyView struct {
	InsideCount   int64 `json:"inside_count"`
	TodayEntries  int64 `json:"today_entries"`
	TodayExits    int64 `json:"today_exits"`
	TodayLogDelta int64 `json:"today_log_delta"`
}

// BookingFilter composes read-side predicates with AND semantics. Nil
// fields do not constrain; Search matches guest name or phone as substring.
type BookingFilter struct {
	DateFrom      *string
	DateTo        *string
	Status        *booking.Status
	PaymentStatus *booking.PaymentStatus
	Search        string
}

type GateLogFilter struct {
	From      *time.Time
	To        *time.Time
	GateID    *string
	EntryType *gate.EntryType
	Limit     int32
	Offset    int32
}
