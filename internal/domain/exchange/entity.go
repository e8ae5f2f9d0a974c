package exchange

import (
	"time"

	"bookloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus         = errs.New("invalid exchange request status")
	ErrContactNameRequired   = errs.New("contact name is required")
	ErrContactNameTooLong    = errs.New("contact name exceeds maximum length")
	ErrInvalidContactEmail   = errs.New("invalid contact email")
	ErrPickupAddressRequired = errs.New("pickup address is required")
	ErrPickupAddressTooLong  = errs.New("pickup address exceeds maximum length")
	ErrModeRequired          = errs.New("exchange mode is required")
	ErrModeTooLong           = errs.New("exchange mode exceeds maximum length")
	ErrMessageTooLong        = errs.New("message exceeds maximum length")
	ErrRequesterRequired     = errs.New("requester is required")

	ErrSelfExchange = errs.New("cannot request an exchange for your own copy")
	ErrNotPending   = errs.New("exchange request is not pending")
)

// Target is the copy a request is filed against, as seen at creation time.
type Target struct {
	UserBookID uuid.UUID
	OwnerID    uuid.UUID
}

type Request struct {
	id          uuid.UUID
	requesterID uuid.UUID
	ownerID     uuid.UUID
	userBookID  uuid.UUID
	contact     Contact
	handoff     Handoff
	message     Message
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRequest files a pending request. The owner is copied from the target and
// never changes afterwards.
func NewRequest(requesterID uuid.UUID, target Target, contact Contact, handoff Handoff, message Message, now time.Time) (*Request, error) {
	if requesterID == uuid.Nil {
		return nil, ErrRequesterRequired
	}
	if requesterID == target.OwnerID {
		return nil, ErrSelfExchange
	}

	return &Request{
		id:          uuid.Must(uuid.NewV7()),
		requesterID: requesterID,
		ownerID:     target.OwnerID,
		userBookID:  target.UserBookID,
		contact:     contact,
		handoff:     handoff,
		message:     message,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type Snapshot struct {
	ID             uuid.UUID
	RequesterID    uuid.UUID
	OwnerID        uuid.UUID
	UserBookID     uuid.UUID
	RequesterName  string
	RequesterEmail string
	PickupAddress  string
	ExchangeMode   string
	Message        string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconstruct rebuilds a request from persisted state without validation.
func Reconstruct(s Snapshot) *Request {
	return &Request{
		id:          s.ID,
		requesterID: s.RequesterID,
		ownerID:     s.OwnerID,
		userBookID:  s.UserBookID,
		contact:     Contact{name: s.RequesterName, email: s.RequesterEmail},
		handoff:     Handoff{pickupAddress: s.PickupAddress, mode: s.ExchangeMode},
		message:     Message{text: s.Message},
		status:      s.Status,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) OwnerID() uuid.UUID     { return r.ownerID }
func (r *Request) UserBookID() uuid.UUID  { return r.userBookID }
func (r *Request) Contact() Contact       { return r.contact }
func (r *Request) Handoff() Handoff       { return r.handoff }
func (r *Request) Message() Message       { return r.message }
func (r *Request) Status() Status         { return r.status }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) UpdatedAt() time.Time   { return r.updatedAt }

// IsAddressedTo reports whether userID owns the requested copy.
func (r *Request) IsAddressedTo(userID uuid.UUID) bool {
	return userID != uuid.Nil && r.ownerID == userID
}

func (r *Request) IsParticipant(userID uuid.UUID) bool {
	return userID != uuid.Nil && (r.ownerID == userID || r.requesterID == userID)
}

func (r *Request) Accept(now time.Time) error {
	return r.transition(StatusAccepted, now)
}

// Reject is a no-op on a request that is already rejected.
func (r *Request) Reject(now time.Time) error {
	if r.status == StatusRejected {
		return nil
	}
	return r.transition(StatusRejected, now)
}

func (r *Request) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrNotPending, "%s -> %s", r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}
