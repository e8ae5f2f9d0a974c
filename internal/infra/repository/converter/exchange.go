package converter

import (
	"bookloop/internal/domain/exchange"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/pkg/pgconv"
)

func ExchangeRequestToCreateParams(r *exchange.Request) sqlc.CreateExchangeRequestParams {
	return sqlc.CreateExchangeRequestParams{
		ID:             r.ID(),
		RequesterID:    r.RequesterID(),
		OwnerID:        r.OwnerID(),
		UserBookID:     r.UserBookID(),
		RequesterName:  r.Contact().Name(),
		RequesterEmail: r.Contact().Email(),
		PickupAddress:  r.Handoff().PickupAddress(),
		ExchangeMode:   r.Handoff().Mode(),
		Message:        r.Message().String(),
		Status:         r.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ExchangeRequestFromRow(row sqlc.ExchangeRequests) (*exchange.Request, error) {
	status, err := exchange.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "exchange_request %s has status %q", row.ID, row.Status)
	}
	return exchange.Reconstruct(exchange.Snapshot{
		ID:             row.ID,
		RequesterID:    row.RequesterID,
		OwnerID:        row.OwnerID,
		UserBookID:     row.UserBookID,
		RequesterName:  row.RequesterName,
		RequesterEmail: row.RequesterEmail,
		PickupAddress:  row.PickupAddress,
		ExchangeMode:   row.ExchangeMode,
		Message:        row.Message,
		Status:         status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
