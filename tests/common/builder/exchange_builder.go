//go:build unit || e2e

package builder

import (
	"time"

	"bookloop/internal/domain/exchange"
	reqdto "bookloop/internal/handler/dto/request"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/usecase/commands"
	"bookloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExchangeBuilder struct {
	ID                uuid.UUID
	RequesterID       uuid.UUID
	RequesterUsername string
	OwnerID           uuid.UUID
	OwnerUsername     string
	UserBookID        uuid.UUID
	BookID            uuid.UUID
	BookTitle         string
	ContactName       string
	ContactEmail      string
	PickupAddress     string
	Mode              string
	Message           string
	Status            exchange.Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewExchangeBuilder() *ExchangeBuilder {
	now := time.Now()
	return &ExchangeBuilder{
		ID:                uuid.Must(uuid.NewV7()),
		RequesterID:       uuid.New(),
		RequesterUsername: "requester",
		OwnerID:           uuid.New(),
		OwnerUsername:     "owner",
		UserBookID:        uuid.New(),
		BookID:            uuid.New(),
		BookTitle:         "Pride and Prejudice",
		ContactName:       "Requester Name",
		ContactEmail:      "requester@example.com",
		PickupAddress:     "221B Baker Street",
		Mode:              "in person",
		Message:           "Happy to swap this weekend",
		Status:            exchange.StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *ExchangeBuilder) With(mutate func(*ExchangeBuilder)) *ExchangeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ExchangeBuilder) BuildDomain() *exchange.Request {
	return exchange.Reconstruct(exchange.Snapshot{
		ID:             b.ID,
		RequesterID:    b.RequesterID,
		OwnerID:        b.OwnerID,
		UserBookID:     b.UserBookID,
		RequesterName:  b.ContactName,
		RequesterEmail: b.ContactEmail,
		PickupAddress:  b.PickupAddress,
		ExchangeMode:   b.Mode,
		Message:        b.Message,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	})
}

func (b *ExchangeBuilder) BuildInfra() sqlc.ExchangeRequests {
	return sqlc.ExchangeRequests{
		ID:             b.ID,
		RequesterID:    b.RequesterID,
		OwnerID:        b.OwnerID,
		UserBookID:     b.UserBookID,
		RequesterName:  b.ContactName,
		RequesterEmail: b.ContactEmail,
		PickupAddress:  b.PickupAddress,
		ExchangeMode:   b.Mode,
		Message:        b.Message,
		Status:         b.Status.String(),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ExchangeBuilder) BuildView() *queries.ExchangeRequestView {
	return &queries.ExchangeRequestView{
		ID:                b.ID,
		RequesterID:       b.RequesterID,
		RequesterUsername: b.RequesterUsername,
		OwnerID:           b.OwnerID,
		OwnerUsername:     b.OwnerUsername,
		UserBookID:        b.UserBookID,
		BookID:            b.BookID,
		BookTitle:         b.BookTitle,
		RequesterName:     b.ContactName,
		RequesterEmail:    b.ContactEmail,
		PickupAddress:     b.PickupAddress,
		ExchangeMode:      b.Mode,
		Message:           b.Message,
		Status:            b.Status.String(),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *ExchangeBuilder) BuildInput() commands.RequestExchangeInput {
	return commands.RequestExchangeInput{
		UserBookID:    b.UserBookID,
		ContactName:   b.ContactName,
		ContactEmail:  b.ContactEmail,
		PickupAddress: b.PickupAddress,
		Mode:          b.Mode,
		Message:       b.Message,
	}
}

func (b *ExchangeBuilder) BuildRequestDTO() reqdto.RequestExchangeRequest {
	return reqdto.RequestExchangeRequest{
		ContactName:   b.ContactName,
		ContactEmail:  b.ContactEmail,
		PickupAddress: b.PickupAddress,
		ExchangeMode:  b.Mode,
		Message:       b.Message,
	}
}

// Fluent builder methods
func (b *ExchangeBuilder) WithRequesterID(id uuid.UUID) *ExchangeBuilder {
	b.RequesterID = id
	return b
}

func (b *ExchangeBuilder) WithOwnerID(id uuid.UUID) *ExchangeBuilder {
	b.OwnerID = id
	return b
}

func (b *ExchangeBuilder) WithUserBookID(id uuid.UUID) *ExchangeBuilder {
	b.UserBookID = id
	return b
}

func (b *ExchangeBuilder) WithStatus(status exchange.Status) *ExchangeBuilder {
	b.Status = status
	return b
}
