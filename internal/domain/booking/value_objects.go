package booking

import (
	"errors"
	"strings"
)

const maxPartySize = 30

// Contact is the booking holder's name and phone. Format validation of the
// phone number is an external concern; only presence is required here.
type Contact struct {
	name  string
	phone string
}

func NewContact(name, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Contact{}, errors.New("contact name is required")
	}
	if phone == "" {
		return Contact{}, errors.New("contact phone is required")
	}
	return Contact{name: name, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }

type PartySize struct {
	value int
}

func NewPartySize(n int) (PartySize, error) {
	if n < 1 {
		return PartySize{}, errors.New("party size must be at least 1")
	}
	if n > maxPartySize {
		return PartySize{}, errors.New("party size exceeds venue capacity")
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Value() int { return p.value }

// Notes is free text staff append to; cancellation reasons and the
// refund-required flag land here.
type Notes struct {
	value string
}

func NewNotes(value string) Notes {
	return Notes{value: strings.TrimSpace(value)}
}

func (n Notes) Append(line string) Notes {
	line = strings.TrimSpace(line)
	if line == "" {
		return n
	}
	if n.value == "" {
		return Notes{value: line}
	}
	return Notes{value: n.value + "\n" + line}
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }
