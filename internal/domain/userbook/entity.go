package userbook

import (
	"time"

	"bookloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errs.New("invalid copy status")
	ErrConditionTooLong  = errs.New("condition exceeds maximum length")
	ErrOwnerRequired     = errs.New("copy owner is required")
	ErrBookRequired      = errs.New("copy book is required")
	ErrAlreadyExchanged  = errs.New("copy has already been exchanged")
	ErrInvalidTransition = errs.New("invalid copy status transition")
)

// UserBook is one physical copy of a catalog book held by one owner.
type UserBook struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	bookID    uuid.UUID
	condition Condition
	status    Status
	version   int32
	addedAt   time.Time
	updatedAt time.Time
}

func NewUserBook(ownerID, bookID uuid.UUID, conditionText string, now time.Time) (*UserBook, error) {
	if ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if bookID == uuid.Nil {
		return nil, ErrBookRequired
	}
	condition, err := NewCondition(conditionText)
	if err != nil {
		return nil, err
	}

	return &UserBook{
		id:        uuid.Must(uuid.NewV7()),
		ownerID:   ownerID,
		bookID:    bookID,
		condition: condition,
		status:    StatusAvailable,
		version:   1,
		addedAt:   now,
		updatedAt: now,
	}, nil
}

// ReconstructUserBook rebuilds a copy from persisted state without validation.
func ReconstructUserBook(id, ownerID, bookID uuid.UUID, condition string, status Status, version int32, addedAt, updatedAt time.Time) *UserBook {
	return &UserBook{
		id:        id,
		ownerID:   ownerID,
		bookID:    bookID,
		condition: Condition{text: condition},
		status:    status,
		version:   version,
		addedAt:   addedAt,
		updatedAt: updatedAt,
	}
}

func (u *UserBook) ID() uuid.UUID        { return u.id }
func (u *UserBook) OwnerID() uuid.UUID   { return u.ownerID }
func (u *UserBook) BookID() uuid.UUID    { return u.bookID }
func (u *UserBook) Condition() Condition { return u.condition }
func (u *UserBook) Status() Status       { return u.status }
func (u *UserBook) Version() int32       { return u.version }
func (u *UserBook) AddedAt() time.Time   { return u.addedAt }
func (u *UserBook) UpdatedAt() time.Time { return u.updatedAt }

func (u *UserBook) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && u.ownerID == userID
}

func (u *UserBook) IsExchanged() bool {
	return u.status == StatusExchanged
}

// MarkExchanged is the only transition into StatusExchanged. Exchanged is final.
func (u *UserBook) MarkExchanged(now time.Time) error {
	switch u.status {
	case StatusExchanged:
		return ErrAlreadyExchanged
	case StatusAvailable, StatusReserved:
		u.status = StatusExchanged
		u.updatedAt = now
		return nil
	default:
		return ErrInvalidTransition
	}
}
