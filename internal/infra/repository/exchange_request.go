package repository

import (
	"context"
	"time"

	"bookloop/internal/domain/exchange"
	"bookloop/internal/infra"
	"bookloop/internal/infra/repository/converter"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/pgconv"
	"bookloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExchangeRequestWriteQueries interface {
	CreateExchangeRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateExchangeRequestParams) (uuid.UUID, error)
	GetExchangeRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ExchangeRequests, error)
	LockExchangeRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ExchangeRequests, error)
	TransitionExchangeRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionExchangeRequestStatusParams) (int64, error)
	RejectPendingSiblingRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectPendingSiblingRequestsParams) ([]sqlc.RejectPendingSiblingRequestsRow, error)
}

type ExchangeRequestRepository struct {
	queries ExchangeRequestWriteQueries
	db      sqlc.DBTX
}

func NewExchangeRequestRepository(queries ExchangeRequestWriteQueries, db sqlc.DBTX) *ExchangeRequestRepository {
	return &ExchangeRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ExchangeRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *exchange.Request) (uuid.UUID, error) {
	id, err := r.queries.CreateExchangeRequest(ctx, tx, converter.ExchangeRequestToCreateParams(req))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create exchange request", err)
	}
	return id, nil
}

// FindByID is a plain read without a row lock.
func (r *ExchangeRequestRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exchange.Request, error) {
	row, err := r.queries.GetExchangeRequestByID(ctx, tx, id)
	return toExchangeRequest(row, err, "failed to get exchange request")
}

func (r *ExchangeRequestRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*exchange.Request, error) {
	row, err := r.queries.LockExchangeRequestByID(ctx, tx, id)
	return toExchangeRequest(row, err, "failed to lock exchange request")
}

func toExchangeRequest(row sqlc.ExchangeRequests, err error, msg string) (*exchange.Request, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exchange request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	req, err := converter.ExchangeRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map exchange request", err)
	}
	return req, nil
}

func (r *ExchangeRequestRepository) Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to exchange.Status, at time.Time) error {
	affected, err := r.queries.TransitionExchangeRequestStatus(ctx, tx, sqlc.TransitionExchangeRequestStatusParams{
		ToStatus:   to.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		// the partial unique index on accepted requests surfaces here
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("copy already has an accepted request", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to transition exchange request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("exchange request status changed", nil, infra.KindConflict)
	}
	return nil
}

func (r *ExchangeRequestRepository) RejectPendingSiblings(ctx context.Context, tx sqlc.DBTX, userBookID, acceptedID uuid.UUID, at time.Time) ([]shared.RejectedSibling, error) {
	rows, err := r.queries.RejectPendingSiblingRequests(ctx, tx, sqlc.RejectPendingSiblingRequestsParams{
		UpdatedAt:  pgconv.TimeToPgtype(at),
		UserBookID: userBookID,
		ID:         acceptedID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reject sibling requests", err)
	}
	siblings := make([]shared.RejectedSibling, len(rows))
	for i, row := range rows {
		siblings[i] = shared.RejectedSibling{ID: row.ID, RequesterID: row.RequesterID}
	}
	return siblings, nil
}
