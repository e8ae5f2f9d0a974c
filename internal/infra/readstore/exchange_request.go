package readstore

import (
	"context"

	"bookloop/internal/infra"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/pgconv"
	"bookloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExchangeRequestViewQueries interface {
	GetExchangeRequestViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetExchangeRequestViewByIDRow, error)
	ListSentExchangeRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSentExchangeRequestsParams) ([]sqlc.ListSentExchangeRequestsRow, error)
	ListReceivedExchangeRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReceivedExchangeRequestsParams) ([]sqlc.ListReceivedExchangeRequestsRow, error)
}

type ExchangeRequestReadStore struct {
	queries ExchangeRequestViewQueries
	db      sqlc.DBTX
}

func NewExchangeRequestReadStore(queries ExchangeRequestViewQueries, db sqlc.DBTX) *ExchangeRequestReadStore {
	return &ExchangeRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExchangeRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExchangeRequestView, error) {
	row, err := r.queries.GetExchangeRequestViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exchange request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get exchange request view by id", err)
	}
	v := exchangeView(row)
	return &v, nil
}

func (r *ExchangeRequestReadStore) ListSent(ctx context.Context, requesterID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ExchangeRequestView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.queries.ListSentExchangeRequests(ctx, r.db, sqlc.ListSentExchangeRequestsParams{
		UserID:         requesterID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sent exchange requests", err)
	}
	result := make([]*queries.ExchangeRequestView, len(rows))
	for i, row := range rows {
		v := exchangeView(sqlc.GetExchangeRequestViewByIDRow(row))
		result[i] = &v
	}
	return result, nil
}

func (r *ExchangeRequestReadStore) ListReceived(ctx context.Context, ownerID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ExchangeRequestView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.queries.ListReceivedExchangeRequests(ctx, r.db, sqlc.ListReceivedExchangeRequestsParams{
		UserID:         ownerID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list received exchange requests", err)
	}
	result := make([]*queries.ExchangeRequestView, len(rows))
	for i, row := range rows {
		v := exchangeView(sqlc.GetExchangeRequestViewByIDRow(row))
		result[i] = &v
	}
	return result, nil
}

func keysetArgs(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func exchangeView(row sqlc.GetExchangeRequestViewByIDRow) queries.ExchangeRequestView {
	return queries.ExchangeRequestView{
		ID:                row.ID,
		RequesterID:       row.RequesterID,
		RequesterUsername: row.RequesterUsername,
		OwnerID:           row.OwnerID,
		OwnerUsername:     row.OwnerUsername,
		UserBookID:        row.UserBookID,
		BookID:            row.BookID,
		BookTitle:         row.BookTitle,
		RequesterName:     row.RequesterName,
		RequesterEmail:    row.RequesterEmail,
		PickupAddress:     row.PickupAddress,
		ExchangeMode:      row.ExchangeMode,
		Message:           row.Message,
		Status:            row.Status,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
