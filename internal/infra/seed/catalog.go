package seed

import (
	"context"
	"log/slog"

	"bookloop/internal/infra"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/clock"
	"bookloop/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SampleBook struct {
	Title       string
	Author      string
	Genre       string
	Rating      float64
	CoverImage  string
	Description string
}

// SampleCatalog is inserted into an empty catalog.
var SampleCatalog = []SampleBook{
	{"The Silent Patient", "Alex Michaelides", "Thriller", 5.0, "https://i.imgur.com/3h5cS8J.jpg",
		"A psychological thriller about a woman who shoots her husband and then never speaks again."},
	{"Atomic Habits", "James Clear", "Self-Help", 4.0, "https://i.imgur.com/XcK5XcV.jpg",
		"An easy and proven way to build good habits and break bad ones."},
	{"The Alchemist", "Paulo Coelho", "Fiction", 5.0, "https://i.imgur.com/qUJjPAd.jpg",
		"A magical story about following your dreams and listening to your heart."},
	{"Rich Dad Poor Dad", "Robert Kiyosaki", "Finance", 4.0, "https://i.imgur.com/6Ssjbpr.jpg",
		"What the rich teach their kids about money that the poor and middle class do not."},
	{"1984", "George Orwell", "Fiction", 5.0, "https://images.unsplash.com/photo-1544947950-fa07a98d237f",
		"A dystopian social science fiction novel and cautionary tale."},
	{"Sapiens", "Yuval Noah Harari", "Science", 4.5, "https://images.unsplash.com/photo-1589998059171-988d887df646",
		"A brief history of humankind from the Stone Age to the modern age."},
	{"The Lean Startup", "Eric Ries", "Business", 4.0, "https://images.unsplash.com/photo-1507842217343-583bb7270b66",
		"How constant innovation creates radically successful businesses."},
	{"Pride and Prejudice", "Jane Austen", "Romance", 5.0, "https://images.unsplash.com/photo-1524578271613-d550eacf6090",
		"A romantic novel of manners that follows the character development of Elizabeth Bennet."},
}

type CatalogQueries interface {
	CountBooks(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookParams) error
}

type CatalogSeeder struct {
	queries CatalogQueries
	clock   clock.Clock
}

func NewCatalogSeeder(queries CatalogQueries, clk clock.Clock) *CatalogSeeder {
	return &CatalogSeeder{queries: queries, clock: clk}
}

// Seed inserts books only when the catalog is empty and reports how many were written.
// Run it inside a transaction so a partial seed is never visible.
func (s *CatalogSeeder) Seed(ctx context.Context, db sqlc.DBTX, books []SampleBook) (int, error) {
	count, err := s.queries.CountBooks(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count books", err)
	}
	if count > 0 {
		slog.InfoContext(ctx, "catalog already seeded", "books", count)
		return 0, nil
	}

	now := s.clock.Now()
	for _, b := range books {
		id, err := uuid.NewV7()
		if err != nil {
			return 0, infra.WrapRepoErr("failed to generate book id", err, infra.KindDBFailure)
		}
		err = s.queries.CreateBook(ctx, db, sqlc.CreateBookParams{
			ID:          id,
			Title:       b.Title,
			Author:      b.Author,
			Genre:       pgconv.OptionalStringToPgtype(b.Genre),
			Rating:      b.Rating,
			CoverImage:  pgconv.OptionalStringToPgtype(b.CoverImage),
			Description: pgconv.OptionalStringToPgtype(b.Description),
			CreatedAt:   pgconv.TimeToPgtype(now),
		})
		if err != nil {
			return 0, infra.WrapRepoErr("failed to insert book "+b.Title, err)
		}
	}
	slog.InfoContext(ctx, "catalog seeded", "books", len(books))
	return len(books), nil
}
