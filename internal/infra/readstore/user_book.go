package readstore

import (
	"context"

	"bookloop/internal/infra"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/pgconv"
	"bookloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBookViewQueries interface {
	GetUserBookViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserBookViewByIDRow, error)
	ListAvailableUserBooksByBook(ctx context.Context, db sqlc.DBTX, bookID uuid.UUID) ([]sqlc.ListAvailableUserBooksByBookRow, error)
	ListUserBooksByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListUserBooksByOwnerRow, error)
}

type UserBookReadStore struct {
	queries UserBookViewQueries
	db      sqlc.DBTX
}

func NewUserBookReadStore(queries UserBookViewQueries, db sqlc.DBTX) *UserBookReadStore {
	return &UserBookReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserBookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserBookView, error) {
	row, err := r.queries.GetUserBookViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user book view by id", err)
	}
	v := userBookView(row)
	return &v, nil
}

func (r *UserBookReadStore) ListAvailableByBook(ctx context.Context, bookID uuid.UUID) ([]*queries.UserBookView, error) {
	rows, err := r.queries.ListAvailableUserBooksByBook(ctx, r.db, bookID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available copies", err)
	}
	result := make([]*queries.UserBookView, len(rows))
	for i, row := range rows {
		v := userBookView(sqlc.GetUserBookViewByIDRow(row))
		result[i] = &v
	}
	return result, nil
}

func (r *UserBookReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.UserBookView, error) {
	rows, err := r.queries.ListUserBooksByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list copies by owner", err)
	}
	result := make([]*queries.UserBookView, len(rows))
	for i, row := range rows {
		v := userBookView(sqlc.GetUserBookViewByIDRow(row))
		result[i] = &v
	}
	return result, nil
}

// The list rows share the GetUserBookViewByIDRow layout, so they convert directly.
func userBookView(row sqlc.GetUserBookViewByIDRow) queries.UserBookView {
	return queries.UserBookView{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		OwnerUsername: row.OwnerUsername,
		BookID:        row.BookID,
		BookTitle:     row.BookTitle,
		BookAuthor:    row.BookAuthor,
		Condition:     row.Condition,
		Status:        row.Status,
		AddedAt:       pgconv.TimeFromPgtype(row.AddedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
