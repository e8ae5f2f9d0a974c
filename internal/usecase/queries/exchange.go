package queries

import (
	"context"

	"bookloop/internal/infra"
	"bookloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExchangeNotFound = errs.NewKind(errs.ErrNotFound, "exchange request not found")
	ErrExchangeAccess   = errs.NewKind(errs.ErrUnauthorized, "exchange request belongs to other users")
)

type ExchangeRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExchangeRequestView, error)
	// ListSent and ListReceived order by (created_at, id) descending, strictly after the keyset when given.
	ListSent(ctx context.Context, requesterID uuid.UUID, after *Keyset, limit int32) ([]*ExchangeRequestView, error)
	ListReceived(ctx context.Context, ownerID uuid.UUID, after *Keyset, limit int32) ([]*ExchangeRequestView, error)
}

type ExchangeQueries interface {
	GetExchange(ctx context.Context, callerID, exchangeID uuid.UUID) (*ExchangeRequestView, error)
	ListSent(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ExchangeRequestView, *Cursor, error)
	ListReceived(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ExchangeRequestView, *Cursor, error)
}

type exchangeQueriesImpl struct {
	store ExchangeRequestReadStore
}

func NewExchangeQueries(store ExchangeRequestReadStore) ExchangeQueries {
	return &exchangeQueriesImpl{store: store}
}

func (q *exchangeQueriesImpl) GetExchange(ctx context.Context, callerID, exchangeID uuid.UUID) (*ExchangeRequestView, error) {
	if callerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	v, err := q.store.FindByID(ctx, exchangeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExchangeNotFound
		}
		return nil, err
	}
	if v.RequesterID != callerID && v.OwnerID != callerID {
		return nil, ErrExchangeAccess
	}
	return v, nil
}

func (q *exchangeQueriesImpl) ListSent(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ExchangeRequestView, *Cursor, error) {
	return q.list(ctx, userID, cursor, limit, q.store.ListSent)
}

func (q *exchangeQueriesImpl) ListReceived(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ExchangeRequestView, *Cursor, error) {
	return q.list(ctx, userID, cursor, limit, q.store.ListReceived)
}

type exchangeLister func(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*ExchangeRequestView, error)

func (q *exchangeQueriesImpl) list(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int, fetch exchangeLister) ([]*ExchangeRequestView, *Cursor, error) {
	if userID == uuid.Nil {
		return nil, nil, errs.ErrUnauthenticated
	}
	limit = ValidateLimit(limit)
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := fetch(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
