package exchange

import (
	"regexp"
	"strings"
)

const (
	MaxContactNameLength   = 200
	MaxContactEmailLength  = 150
	MaxPickupAddressLength = 500
	MaxModeLength          = 100
	MaxMessageLength       = 1000
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Contact is how the owner reaches the requester.
type Contact struct {
	name  string
	email string
}

func NewContact(name, email string) (Contact, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Contact{}, ErrContactNameRequired
	}
	if len(n) > MaxContactNameLength {
		return Contact{}, ErrContactNameTooLong
	}
	e := strings.TrimSpace(email)
	if len(e) > MaxContactEmailLength || !emailRegex.MatchString(e) {
		return Contact{}, ErrInvalidContactEmail
	}
	return Contact{name: n, email: e}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }

// Handoff describes where and how the book changes hands.
type Handoff struct {
	pickupAddress string
	mode          string
}

func NewHandoff(pickupAddress, mode string) (Handoff, error) {
	addr := strings.TrimSpace(pickupAddress)
	if addr == "" {
		return Handoff{}, ErrPickupAddressRequired
	}
	if len(addr) > MaxPickupAddressLength {
		return Handoff{}, ErrPickupAddressTooLong
	}
	m := strings.TrimSpace(mode)
	if m == "" {
		return Handoff{}, ErrModeRequired
	}
	if len(m) > MaxModeLength {
		return Handoff{}, ErrModeTooLong
	}
	return Handoff{pickupAddress: addr, mode: m}, nil
}

func (h Handoff) PickupAddress() string { return h.pickupAddress }
func (h Handoff) Mode() string          { return h.mode }

type Message struct {
	text string
}

// NewMessage accepts an empty message.
func NewMessage(s string) (Message, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{text: t}, nil
}

func (m Message) String() string { return m.text }
