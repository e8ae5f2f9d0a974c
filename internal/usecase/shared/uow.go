package shared

import (
	"context"
	"time"

	"bookloop/internal/domain/exchange"
	"bookloop/internal/domain/userbook"
	sqlc "bookloop/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	UserBooks() UserBookRepository
	ExchangeRequests() ExchangeRequestRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are plain (non-locking) reads used for precondition checks.
type CommandReads interface {
	BookByID(ctx context.Context, id uuid.UUID) (*BookSnapshot, error)
	UserBookByID(ctx context.Context, id uuid.UUID) (*userbook.UserBook, error)
	ExchangeRequestByID(ctx context.Context, id uuid.UUID) (*exchange.Request, error)
}

type UserBookRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, ub *userbook.UserBook) (uuid.UUID, error)
	ExistsForOwnerAndBook(ctx context.Context, tx sqlc.DBTX, ownerID, bookID uuid.UUID) (bool, error)
	// LockByID reads the copy with SELECT ... FOR UPDATE.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*userbook.UserBook, error)
	// SetStatus is guarded by expectedVersion; a stale version yields KindConflict.
	SetStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expectedVersion int32, status userbook.Status, at time.Time) error
}

type ExchangeRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, req *exchange.Request) (uuid.UUID, error)
	// LockByID reads the request with SELECT ... FOR UPDATE.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exchange.Request, error)
	// Transition only applies when the stored status still equals from; otherwise KindConflict.
	Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to exchange.Status, at time.Time) error
	RejectPendingSiblings(ctx context.Context, tx sqlc.DBTX, userBookID, acceptedID uuid.UUID, at time.Time) ([]RejectedSibling, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
