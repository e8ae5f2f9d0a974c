package queries

import (
	"context"

	"bookloop/internal/infra"
	"bookloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCopyNotFound = errs.NewKind(errs.ErrNotFound, "copy not found")

type UserBookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserBookView, error)
	ListAvailableByBook(ctx context.Context, bookID uuid.UUID) ([]*UserBookView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*UserBookView, error)
}

// LedgerQueries lists copies in insertion order.
type LedgerQueries interface {
	GetCopy(ctx context.Context, id uuid.UUID) (*UserBookView, error)
	ListAvailableCopies(ctx context.Context, bookID uuid.UUID) ([]*UserBookView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*UserBookView, error)
}

type ledgerQueriesImpl struct {
	store UserBookReadStore
}

func NewLedgerQueries(store UserBookReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

func (q *ledgerQueriesImpl) GetCopy(ctx context.Context, id uuid.UUID) (*UserBookView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCopyNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *ledgerQueriesImpl) ListAvailableCopies(ctx context.Context, bookID uuid.UUID) ([]*UserBookView, error) {
	return q.store.ListAvailableByBook(ctx, bookID)
}

func (q *ledgerQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*UserBookView, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	return q.store.ListByOwner(ctx, ownerID)
}
