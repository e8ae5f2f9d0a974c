package readstore

import (
	"context"

	"bookloop/internal/infra"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/pkg/pgconv"
	"bookloop/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
)

const (
	dialectPostgres = "postgres"
	tableBooks      = "books"
)

var bookColumns = []any{"id", "title", "author", "genre", "rating", "cover_image", "description", "created_at"}

type BookReadQueries interface {
	GetBookByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Books, error)
}

type BookReadStore struct {
	queries BookReadQueries
	db      sqlc.DBTX
}

func NewBookReadStore(queries BookReadQueries, db sqlc.DBTX) *BookReadStore {
	return &BookReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	row, err := r.queries.GetBookByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get book by id", err)
	}
	return toBookView(row), nil
}

func (r *BookReadStore) List(ctx context.Context, after *queries.TitleKeyset, limit int32) ([]*queries.BookView, error) {
	sqlQuery, args, err := BuildBookListQuery(after, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book list query", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	var result []*queries.BookView
	for rows.Next() {
		var b sqlc.Books
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Rating, &b.CoverImage, &b.Description, &b.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		result = append(result, toBookView(b))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}
	return result, nil
}

// BuildBookListQuery renders the keyset page query ordered by (title, id).
func BuildBookListQuery(after *queries.TitleKeyset, limit int32) (string, []any, error) {
	if limit <= 0 {
		return "", nil, errs.Newf("limit must be positive, got %d", limit)
	}
	stmt := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Prepared(true).
		Select(bookColumns...).
		Order(goqu.I("title").Asc(), goqu.I("id").Asc()).
		Limit(uint(limit))

	if after != nil {
		stmt = stmt.Where(goqu.L("(title, id) > (?, ?)", after.Title, after.ID.String()))
	}

	return stmt.ToSQL()
}

func toBookView(row sqlc.Books) *queries.BookView {
	return &queries.BookView{
		ID:          row.ID,
		Title:       row.Title,
		Author:      row.Author,
		Genre:       pgconv.StringPtrFromPgtype(row.Genre),
		Rating:      row.Rating,
		CoverImage:  pgconv.StringPtrFromPgtype(row.CoverImage),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
