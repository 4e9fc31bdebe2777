package slot

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("invalid time window label")
	ErrAlreadyClaimed  = errors.New("slot is already claimed")
	ErrNotClaimed      = errors.New("slot is not claimed")
	ErrInvalidStatus   = errors.New("invalid slot status")
	ErrZeroDate        = errors.New("slot date is required")
)

// windowPattern matches labels like "10:00-11:00". Windows are configured by
// the scheduling process; identity is (date, window label).
var windowPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]-([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Slot struct {
	id        uuid.UUID
	date      time.Time
	window    string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewSlot(date time.Time, window string) (*Slot, error) {
	if date.IsZero() {
		return nil, ErrZeroDate
	}
	if !windowPattern.MatchString(window) {
		return nil, ErrInvalidWindow
	}

	return &Slot{
		id:     uuid.New(),
		date:   normalizeDate(date),
		window: window,
		status: StatusOpen,
	}, nil
}

func ReconstructSlot(id uuid.UUID, date time.Time, window string, status Status, createdAt, updatedAt time.Time) *Slot {
	return &Slot{
		id:        id,
		date:      date,
		window:    window,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Claim flips open to claimed. The registry performs the authoritative
// compare-and-set against the store; this guards in-memory instances.
func (s *Slot) Claim() error {
	if s.status == StatusClaimed {
		return ErrAlreadyClaimed
	}
	s.status = StatusClaimed
	return nil
}

func (s *Slot) Release() error {
	if s.status != StatusClaimed {
		return ErrNotClaimed
	}
	s.status = StatusOpen
	return nil
}

func (s *Slot) IsOpen() bool {
	return s.status == StatusOpen
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) Date() time.Time      { return s.date }
func (s *Slot) Window() string       { return s.window }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
