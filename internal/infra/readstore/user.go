package readstore

import (
	"context"

	"bookloop/internal/infra"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/pgconv"
	"bookloop/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		FullName:  pgconv.StringPtrFromPgtype(row.FullName),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
