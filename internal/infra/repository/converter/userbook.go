package converter

import (
	"bookloop/internal/domain/userbook"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/pkg/pgconv"
)

func UserBookToCreateParams(ub *userbook.UserBook) sqlc.CreateUserBookParams {
	return sqlc.CreateUserBookParams{
		ID:        ub.ID(),
		OwnerID:   ub.OwnerID(),
		BookID:    ub.BookID(),
		Condition: ub.Condition().String(),
		Status:    ub.Status().String(),
		Version:   ub.Version(),
		AddedAt:   pgconv.TimeToPgtype(ub.AddedAt()),
		UpdatedAt: pgconv.TimeToPgtype(ub.UpdatedAt()),
	}
}

func UserBookFromRow(row sqlc.UserBooks) (*userbook.UserBook, error) {
	status, err := userbook.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "user_book %s has status %q", row.ID, row.Status)
	}
	return userbook.ReconstructUserBook(
		row.ID,
		row.OwnerID,
		row.BookID,
		row.Condition,
		status,
		row.Version,
		pgconv.TimeFromPgtype(row.AddedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
