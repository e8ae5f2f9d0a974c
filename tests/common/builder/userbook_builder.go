//go:build unit || e2e

package builder

import (
	"time"

	"bookloop/internal/domain/userbook"
	reqdto "bookloop/internal/handler/dto/request"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBookBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	OwnerUsername string
	BookID        uuid.UUID
	BookTitle     string
	BookAuthor    string
	Condition     string
	Status        userbook.Status
	Version       int32
	AddedAt       time.Time
	UpdatedAt     time.Time
}

func NewUserBookBuilder() *UserBookBuilder {
	now := time.Now()
	return &UserBookBuilder{
		ID:            uuid.Must(uuid.NewV7()),
		OwnerID:       uuid.New(),
		OwnerUsername: "owner",
		BookID:        uuid.New(),
		BookTitle:     "The Great Gatsby",
		BookAuthor:    "F. Scott Fitzgerald",
		Condition:     userbook.DefaultCondition,
		Status:        userbook.StatusAvailable,
		Version:       1,
		AddedAt:       now,
		UpdatedAt:     now,
	}
}

func (b *UserBookBuilder) With(mutate func(*UserBookBuilder)) *UserBookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UserBookBuilder) BuildDomain() *userbook.UserBook {
	return userbook.ReconstructUserBook(b.ID, b.OwnerID, b.BookID, b.Condition, b.Status, b.Version, b.AddedAt, b.UpdatedAt)
}

func (b *UserBookBuilder) BuildInfra() sqlc.UserBooks {
	return sqlc.UserBooks{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		BookID:    b.BookID,
		Condition: b.Condition,
		Status:    b.Status.String(),
		Version:   b.Version,
		AddedAt:   pgtype.Timestamptz{Time: b.AddedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *UserBookBuilder) BuildView() *queries.UserBookView {
	return &queries.UserBookView{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		OwnerUsername: b.OwnerUsername,
		BookID:        b.BookID,
		BookTitle:     b.BookTitle,
		BookAuthor:    b.BookAuthor,
		Condition:     b.Condition,
		Status:        b.Status.String(),
		AddedAt:       b.AddedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *UserBookBuilder) BuildAddCopyRequestDTO() reqdto.AddCopyRequest {
	return reqdto.AddCopyRequest{
		BookID:    b.BookID,
		Condition: b.Condition,
	}
}

// Fluent builder methods
func (b *UserBookBuilder) WithOwnerID(ownerID uuid.UUID) *UserBookBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *UserBookBuilder) WithBookID(bookID uuid.UUID) *UserBookBuilder {
	b.BookID = bookID
	return b
}

func (b *UserBookBuilder) AsExchanged() *UserBookBuilder {
	b.Status = userbook.StatusExchanged
	b.Version++
	return b
}
