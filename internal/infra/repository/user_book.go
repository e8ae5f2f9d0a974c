package repository

import (
	"context"
	"time"

	"bookloop/internal/domain/userbook"
	"bookloop/internal/infra"
	"bookloop/internal/infra/repository/converter"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserBookWriteQueries interface {
	CreateUserBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserBookParams) (uuid.UUID, error)
	ExistsUserBookByOwnerAndBook(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsUserBookByOwnerAndBookParams) (bool, error)
	GetUserBookByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.UserBooks, error)
	LockUserBookByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.UserBooks, error)
	UpdateUserBookStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserBookStatusParams) (int64, error)
}

type UserBookRepository struct {
	queries UserBookWriteQueries
	db      sqlc.DBTX
}

func NewUserBookRepository(queries UserBookWriteQueries, db sqlc.DBTX) *UserBookRepository {
	return &UserBookRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserBookRepository) Create(ctx context.Context, tx sqlc.DBTX, ub *userbook.UserBook) (uuid.UUID, error) {
	id, err := r.queries.CreateUserBook(ctx, tx, converter.UserBookToCreateParams(ub))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user book", err)
	}
	return id, nil
}

func (r *UserBookRepository) ExistsForOwnerAndBook(ctx context.Context, tx sqlc.DBTX, ownerID, bookID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsUserBookByOwnerAndBook(ctx, tx, sqlc.ExistsUserBookByOwnerAndBookParams{
		OwnerID: ownerID,
		BookID:  bookID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user book ownership", err)
	}
	return exists, nil
}

// FindByID is a plain read without a row lock.
func (r *UserBookRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*userbook.UserBook, error) {
	row, err := r.queries.GetUserBookByID(ctx, tx, id)
	return toUserBook(row, err, "failed to get user book")
}

func (r *UserBookRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*userbook.UserBook, error) {
	row, err := r.queries.LockUserBookByID(ctx, tx, id)
	return toUserBook(row, err, "failed to lock user book")
}

func toUserBook(row sqlc.UserBooks, err error, msg string) (*userbook.UserBook, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	ub, err := converter.UserBookFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map user book", err)
	}
	return ub, nil
}

func (r *UserBookRepository) SetStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expectedVersion int32, status userbook.Status, at time.Time) error {
	affected, err := r.queries.UpdateUserBookStatus(ctx, tx, sqlc.UpdateUserBookStatusParams{
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
		ID:        id,
		Version:   expectedVersion,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user book status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user book version changed", nil, infra.KindConflict)
	}
	return nil
}
