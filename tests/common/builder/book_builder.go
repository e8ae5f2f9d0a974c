//go:build unit || e2e

package builder

import (
	"time"

	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/usecase/queries"
	"bookloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookBuilder struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Genre     string
	Rating    float64
	CreatedAt time.Time
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:        uuid.Must(uuid.NewV7()),
		Title:     "1984",
		Author:    "George Orwell",
		Genre:     "Dystopian",
		Rating:    4.6,
		CreatedAt: time.Now(),
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildInfra() sqlc.Books {
	return sqlc.Books{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     pgtype.Text{String: b.Genre, Valid: b.Genre != ""},
		Rating:    b.Rating,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	var genre *string
	if b.Genre != "" {
		g := b.Genre
		genre = &g
	}
	return &queries.BookView{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     genre,
		Rating:    b.Rating,
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookBuilder) BuildSnapshot() *shared.BookSnapshot {
	return &shared.BookSnapshot{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
	}
}
